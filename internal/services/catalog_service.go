package services

import (
	"errors"
	"fmt"

	"asteria/internal/models"
	"asteria/internal/repositories"
)

// Number of products shown on the homepage and the catalog page. No further
// filtering or sorting exists; both are insertion-order truncations.
const (
	homepageProductLimit = 4
	catalogProductLimit  = 12
)

// CatalogService provides read-only views over the product catalog.
type CatalogService struct {
	repo repositories.ProductRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ProductRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// HomepageProducts returns the first products by ID for the home listing.
func (s *CatalogService) HomepageProducts() ([]models.Product, error) {
	return s.repo.List(homepageProductLimit)
}

// CatalogProducts returns the first products by ID for the catalog listing.
func (s *CatalogService) CatalogProducts() ([]models.Product, error) {
	return s.repo.List(catalogProductLimit)
}

// GetProduct retrieves a single product by its ID.
func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
		}
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return product, nil
}
