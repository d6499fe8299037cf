package services_test

import (
	"fmt"
	"testing"

	"asteria/internal/models"
	"asteria/internal/repositories"
	"asteria/internal/services"

	"github.com/stretchr/testify/assert"
)

func newCatalogFixture(t *testing.T, productCount int) *services.CatalogService {
	t.Helper()

	repo := repositories.NewMockProductRepository()
	for i := 1; i <= productCount; i++ {
		assert.NoError(t, repo.Create(&models.Product{
			Name:  fmt.Sprintf("Piece %d", i),
			Price: float64(100 * i),
			Stock: 10,
		}))
	}
	return services.NewCatalogService(repo)
}

func TestCatalogService_HomepageProducts(t *testing.T) {
	catalog := newCatalogFixture(t, 16)

	products, err := catalog.HomepageProducts()
	assert.NoError(t, err)
	assert.Len(t, products, 4)
	for i, product := range products {
		assert.Equal(t, uint(i+1), product.ID)
	}
}

func TestCatalogService_CatalogProducts(t *testing.T) {
	catalog := newCatalogFixture(t, 16)

	products, err := catalog.CatalogProducts()
	assert.NoError(t, err)
	assert.Len(t, products, 12)
	assert.Equal(t, uint(1), products[0].ID)
	assert.Equal(t, uint(12), products[11].ID)
}

func TestCatalogService_ListingsShorterThanLimit(t *testing.T) {
	catalog := newCatalogFixture(t, 2)

	products, err := catalog.HomepageProducts()
	assert.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestCatalogService_GetProduct(t *testing.T) {
	catalog := newCatalogFixture(t, 16)

	product, err := catalog.GetProduct(3)
	assert.NoError(t, err)
	assert.Equal(t, "Piece 3", product.Name)

	_, err = catalog.GetProduct(999)
	assert.ErrorIs(t, err, services.ErrProductNotFound)
}
