package repositories

import (
	"fmt"
	"sort"
	"sync"

	"asteria/internal/models"
)

type cartKey struct {
	userID    uint
	productID uint
}

// MockCartItemRepository is an in-memory implementation of
// CartItemRepository. It hydrates the Product association from the supplied
// product repository the way the GORM implementation preloads it.
type MockCartItemRepository struct {
	items    map[cartKey]models.CartItem
	products *MockProductRepository
	nextID   uint
	mu       sync.RWMutex
}

// NewMockCartItemRepository creates a new instance of MockCartItemRepository.
func NewMockCartItemRepository(products *MockProductRepository) *MockCartItemRepository {
	return &MockCartItemRepository{
		items:    make(map[cartKey]models.CartItem),
		products: products,
		nextID:   1,
	}
}

// Create adds a new cart item.
func (r *MockCartItemRepository) Create(item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := cartKey{userID: item.UserID, productID: item.ProductID}
	if _, exists := r.items[key]; exists {
		return fmt.Errorf("cart item for user %d and product %d already exists", item.UserID, item.ProductID)
	}
	if item.ID == 0 {
		item.ID = r.nextID
		r.nextID++
	}
	r.items[key] = *item
	return nil
}

// Update modifies an existing cart item.
func (r *MockCartItemRepository) Update(item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := cartKey{userID: item.UserID, productID: item.ProductID}
	if _, ok := r.items[key]; !ok {
		return fmt.Errorf("cart item with ID %d for update: %w", item.ID, ErrNotFound)
	}
	r.items[key] = *item
	return nil
}

// GetByUserAndProduct returns the line item for a (user, product) pair.
func (r *MockCartItemRepository) GetByUserAndProduct(userID, productID uint) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[cartKey{userID: userID, productID: productID}]
	if !ok {
		return nil, fmt.Errorf("cart item for user %d and product %d: %w", userID, productID, ErrNotFound)
	}
	return &item, nil
}

// ListByUser returns a user's cart items ordered by ID, products attached.
func (r *MockCartItemRepository) ListByUser(userID uint) ([]models.CartItem, error) {
	r.mu.RLock()
	itemList := make([]models.CartItem, 0)
	for key, item := range r.items {
		if key.userID == userID {
			itemList = append(itemList, item)
		}
	}
	r.mu.RUnlock()

	sort.Slice(itemList, func(i, j int) bool { return itemList[i].ID < itemList[j].ID })
	if r.products != nil {
		for i := range itemList {
			if product, err := r.products.GetByID(itemList[i].ProductID); err == nil {
				itemList[i].Product = *product
			}
		}
	}
	return itemList, nil
}

// Delete removes the line item for a (user, product) pair.
func (r *MockCartItemRepository) Delete(userID, productID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := cartKey{userID: userID, productID: productID}
	if _, ok := r.items[key]; !ok {
		return fmt.Errorf("cart item for user %d and product %d for deletion: %w", userID, productID, ErrNotFound)
	}
	delete(r.items, key)
	return nil
}

// DeleteByUser removes all of a user's cart items.
func (r *MockCartItemRepository) DeleteByUser(userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key := range r.items {
		if key.userID == userID {
			delete(r.items, key)
		}
	}
	return nil
}
