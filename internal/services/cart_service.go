package services

import (
	"errors"
	"fmt"

	"asteria/internal/models"
	"asteria/internal/repositories"
)

// CartService handles cart line items: add/merge, removal, and totals.
type CartService struct {
	cartRepo    repositories.CartItemRepository
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartItemRepository, productRepo repositories.ProductRepository, userRepo repositories.UserRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// AddToCart adds quantity units of a product to the actor's cart. A repeat
// add of the same product increments the existing line item rather than
// creating a second one. The stock check compares the requested quantity
// against the product's total stock only; units already sitting in carts
// (the actor's own included) are not netted out, and stock is never
// decremented here. A quantity below 1 is treated as 1.
func (s *CartService) AddToCart(actor Actor, productID uint, quantity int) (*models.CartItem, error) {
	if err := Authorize(actor, ActionModifyOwnCart, nil); err != nil {
		return nil, err
	}
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("product %d: %w", productID, ErrProductNotFound)
		}
		return nil, fmt.Errorf("failed to resolve product %d: %w", productID, err)
	}

	if product.Stock < quantity {
		return nil, &InsufficientStockError{
			ProductName: product.Name,
			Requested:   quantity,
			Available:   product.Stock,
		}
	}

	item, err := s.cartRepo.GetByUserAndProduct(actor.ID, productID)
	switch {
	case err == nil:
		item.Quantity += quantity
		if err := s.cartRepo.Update(item); err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
	case errors.Is(err, repositories.ErrNotFound):
		item = &models.CartItem{
			UserID:    actor.ID,
			ProductID: productID,
			Quantity:  quantity,
		}
		if err := s.cartRepo.Create(item); err != nil {
			return nil, fmt.Errorf("failed to create cart item: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to look up cart item: %w", err)
	}

	item.Product = *product
	return item, nil
}

// RemoveFromCart deletes the actor's line item for a product. A missing line
// item is ErrNotFound, which the boundary surfaces as a soft notice.
func (s *CartService) RemoveFromCart(actor Actor, productID uint) error {
	if err := Authorize(actor, ActionModifyOwnCart, nil); err != nil {
		return err
	}

	if err := s.cartRepo.Delete(actor.ID, productID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("product %d is not in the cart: %w", productID, ErrNotFound)
		}
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

// ViewCart returns the actor's line items with products joined in, plus the
// cart total (sum of price times quantity). Strictly scoped to the actor.
func (s *CartService) ViewCart(actor Actor) ([]models.CartItem, float64, error) {
	if err := Authorize(actor, ActionViewOwnCart, nil); err != nil {
		return nil, 0, err
	}

	items, err := s.cartRepo.ListByUser(actor.ID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list cart items: %w", err)
	}

	var total float64
	for _, item := range items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return items, total, nil
}

// AdminViewCart is an admin-only read of another user's cart.
func (s *CartService) AdminViewCart(actor Actor, targetUserID uint) (*models.User, []models.CartItem, error) {
	if err := Authorize(actor, ActionViewAnyCart, nil); err != nil {
		return nil, nil, err
	}

	user, err := s.userRepo.GetByID(targetUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, fmt.Errorf("user %d: %w", targetUserID, ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to resolve user %d: %w", targetUserID, err)
	}

	items, err := s.cartRepo.ListByUser(targetUserID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list cart items for user %d: %w", targetUserID, err)
	}
	return user, items, nil
}
