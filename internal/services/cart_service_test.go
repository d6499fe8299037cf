package services_test

import (
	"testing"

	"asteria/internal/models"
	"asteria/internal/repositories"
	"asteria/internal/services"

	"github.com/stretchr/testify/assert"
)

var (
	alice = services.Actor{ID: 1, Username: "alice", Authenticated: true}
	bob   = services.Actor{ID: 2, Username: "bob", Authenticated: true}
	admin = services.Actor{ID: 99, Username: "daonil", IsAdmin: true, Authenticated: true}
)

// newCartFixture wires a CartService over in-memory repositories seeded with
// the two products the tests revolve around.
func newCartFixture(t *testing.T) (*services.CartService, *repositories.MockProductRepository, *repositories.MockCartItemRepository) {
	t.Helper()

	productRepo := repositories.NewMockProductRepository()
	assert.NoError(t, productRepo.Create(&models.Product{ID: 3, Name: "Pearl Earrings", Price: 450, Stock: 15}))
	assert.NoError(t, productRepo.Create(&models.Product{ID: 7, Name: "Ruby Brooch", Price: 600, Stock: 4}))

	userRepo := repositories.NewMockUserRepository()
	assert.NoError(t, userRepo.Create(&models.User{ID: 1, Username: "alice", Email: "alice@example.com"}))
	assert.NoError(t, userRepo.Create(&models.User{ID: 2, Username: "bob", Email: "bob@example.com"}))

	cartRepo := repositories.NewMockCartItemRepository(productRepo)
	return services.NewCartService(cartRepo, productRepo, userRepo), productRepo, cartRepo
}

func TestCartService_AddCreatesLineItem(t *testing.T) {
	cartService, productRepo, _ := newCartFixture(t)

	item, err := cartService.AddToCart(alice, 3, 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, uint(3), item.ProductID)
	assert.Equal(t, "Pearl Earrings", item.Product.Name)

	// Adding to the cart never touches the stock figure.
	product, err := productRepo.GetByID(3)
	assert.NoError(t, err)
	assert.Equal(t, 15, product.Stock)
}

func TestCartService_RepeatAddsMerge(t *testing.T) {
	cartService, _, _ := newCartFixture(t)

	_, err := cartService.AddToCart(alice, 3, 2)
	assert.NoError(t, err)
	item, err := cartService.AddToCart(alice, 3, 5)
	assert.NoError(t, err)
	assert.Equal(t, 7, item.Quantity)

	// Still a single line item, not two.
	items, total, err := cartService.ViewCart(alice)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
	assert.Equal(t, 450.0*7, total)
}

func TestCartService_DefaultQuantityIsOne(t *testing.T) {
	cartService, _, _ := newCartFixture(t)

	item, err := cartService.AddToCart(alice, 3, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestCartService_InsufficientStock(t *testing.T) {
	cartService, _, _ := newCartFixture(t)

	_, err := cartService.AddToCart(alice, 3, 2)
	assert.NoError(t, err)

	_, err = cartService.AddToCart(alice, 7, 10)
	assert.ErrorIs(t, err, services.ErrInsufficientStock)

	var stockErr *services.InsufficientStockError
	assert.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 4, stockErr.Available)
	assert.Equal(t, 10, stockErr.Requested)

	// The failed add left the cart unchanged: one line item.
	items, _, err := cartService.ViewCart(alice)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, uint(3), items[0].ProductID)
}

// Known property, preserved deliberately: the stock check compares the
// requested quantity against total stock only, never against stock minus
// quantities already sitting in carts. A line item can therefore grow past
// the stock figure through repeat adds, and the cumulative carted quantity
// across users can exceed stock.
func TestCartService_StockIsAdvisory(t *testing.T) {
	cartService, _, _ := newCartFixture(t)

	// Ruby Brooch has stock 4. Two adds of 3 both pass the check even
	// though the merged quantity is 6.
	_, err := cartService.AddToCart(alice, 7, 3)
	assert.NoError(t, err)
	item, err := cartService.AddToCart(alice, 7, 3)
	assert.NoError(t, err)
	assert.Equal(t, 6, item.Quantity)

	// Another user's cart is validated against the same nominal stock.
	bobItem, err := cartService.AddToCart(bob, 7, 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, bobItem.Quantity)
}

func TestCartService_ProductNotFound(t *testing.T) {
	cartService, _, _ := newCartFixture(t)

	_, err := cartService.AddToCart(alice, 999, 1)
	assert.ErrorIs(t, err, services.ErrProductNotFound)
}

func TestCartService_ViewCartScopedToActor(t *testing.T) {
	cartService, _, _ := newCartFixture(t)

	_, err := cartService.AddToCart(alice, 3, 2)
	assert.NoError(t, err)
	_, err = cartService.AddToCart(bob, 7, 1)
	assert.NoError(t, err)

	aliceItems, aliceTotal, err := cartService.ViewCart(alice)
	assert.NoError(t, err)
	assert.Len(t, aliceItems, 1)
	assert.Equal(t, 900.0, aliceTotal)

	bobItems, bobTotal, err := cartService.ViewCart(bob)
	assert.NoError(t, err)
	assert.Len(t, bobItems, 1)
	assert.Equal(t, 600.0, bobTotal)
}

func TestCartService_RemoveFromCart(t *testing.T) {
	cartService, _, _ := newCartFixture(t)

	_, err := cartService.AddToCart(alice, 3, 2)
	assert.NoError(t, err)

	assert.NoError(t, cartService.RemoveFromCart(alice, 3))

	// Removing a line item that is not there is a soft not-found.
	err = cartService.RemoveFromCart(alice, 3)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCartService_RequiresAuthentication(t *testing.T) {
	cartService, _, _ := newCartFixture(t)

	_, err := cartService.AddToCart(services.Anonymous, 3, 1)
	assert.ErrorIs(t, err, services.ErrUnauthenticated)

	_, _, err = cartService.ViewCart(services.Anonymous)
	assert.ErrorIs(t, err, services.ErrUnauthenticated)

	err = cartService.RemoveFromCart(services.Anonymous, 3)
	assert.ErrorIs(t, err, services.ErrUnauthenticated)
}

func TestCartService_AdminViewCart(t *testing.T) {
	cartService, _, _ := newCartFixture(t)

	_, err := cartService.AddToCart(alice, 3, 2)
	assert.NoError(t, err)

	user, items, err := cartService.AdminViewCart(admin, alice.ID)
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	_, _, err = cartService.AdminViewCart(bob, alice.ID)
	assert.ErrorIs(t, err, services.ErrForbidden)

	_, _, err = cartService.AdminViewCart(admin, 12345)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
