package repositories

import "asteria/internal/models"

// CartItemRepository defines the interface for cart line item data access.
// Rows are keyed by (userID, productID); at most one exists per pair.
type CartItemRepository interface {
	Create(item *models.CartItem) error
	Update(item *models.CartItem) error
	GetByUserAndProduct(userID, productID uint) (*models.CartItem, error)
	// ListByUser returns the user's items ordered by ID with the Product
	// association populated.
	ListByUser(userID uint) ([]models.CartItem, error)
	Delete(userID, productID uint) error
	// DeleteByUser removes every item owned by the user (cascade step of
	// user deletion). Deleting an empty cart is not an error.
	DeleteByUser(userID uint) error
}
