package repositories

import (
	"errors"
	"fmt"

	"asteria/internal/models"

	"gorm.io/gorm"
)

// GORMCartItemRepository is a GORM implementation of CartItemRepository.
type GORMCartItemRepository struct {
	db *gorm.DB
}

// NewGORMCartItemRepository creates a new instance of GORMCartItemRepository.
func NewGORMCartItemRepository(db *gorm.DB) *GORMCartItemRepository {
	return &GORMCartItemRepository{
		db: db,
	}
}

// Create creates a new cart item in the database.
func (r *GORMCartItemRepository) Create(item *models.CartItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create cart item: %w", err)
	}
	return nil
}

// Update updates an existing cart item in the database.
func (r *GORMCartItemRepository) Update(item *models.CartItem) error {
	res := r.db.Save(item)
	if res.Error != nil {
		return fmt.Errorf("failed to update cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item with ID %d for update: %w", item.ID, ErrNotFound)
	}
	return nil
}

// GetByUserAndProduct retrieves the line item for a (user, product) pair.
func (r *GORMCartItemRepository) GetByUserAndProduct(userID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart item for user %d and product %d: %w", userID, productID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart item for user %d and product %d: %w", userID, productID, err)
	}
	return &item, nil
}

// ListByUser retrieves a user's cart items with the product joined in.
func (r *GORMCartItemRepository) ListByUser(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.Preload("Product").Where("user_id = ?", userID).Order("id asc").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items for user %d: %w", userID, err)
	}
	return items, nil
}

// Delete removes the line item for a (user, product) pair.
func (r *GORMCartItemRepository) Delete(userID, productID uint) error {
	res := r.db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.CartItem{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item for user %d and product %d for deletion: %w", userID, productID, ErrNotFound)
	}
	return nil
}

// DeleteByUser removes all of a user's cart items.
func (r *GORMCartItemRepository) DeleteByUser(userID uint) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to delete cart items for user %d: %w", userID, err)
	}
	return nil
}
