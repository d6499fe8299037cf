package repositories

import "asteria/internal/models"

// ProductRepository defines the interface for product data access. The
// catalog is seeded once at boot, so there are no update or delete paths.
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	// List returns products ordered by ID. A limit <= 0 means no limit.
	List(limit int) ([]models.Product, error)
	Count() (int64, error)
}
