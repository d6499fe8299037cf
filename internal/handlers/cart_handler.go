package handlers

import (
	"errors"
	"log"

	"asteria/internal/middleware"
	"asteria/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles the cart routes.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/add_to_cart", h.HandleAddToCart)
	router.Get("/cart", h.HandleViewCart)
	router.Get("/remove_from_cart/:productId", h.HandleRemoveFromCart)
}

// AddToCartRequest is the payload for adding a product to the cart. A
// missing quantity defaults to one unit.
type AddToCartRequest struct {
	ProductID uint `json:"product_id" form:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" form:"quantity"`
}

// HandleAddToCart upserts a line item in the acting user's cart. Anonymous
// visitors are pointed at registration instead.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	item, err := h.service.AddToCart(actor, req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrUnauthenticated) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message":  "Please register or log in to add products to your cart",
				"redirect": "/register",
			})
		}
		log.Printf("Error adding product %d to cart: %v", req.ProductID, err)
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "\"" + item.Product.Name + "\" has been added to your cart",
		"item":    item,
	})
}

// HandleViewCart returns the acting user's line items and cart total.
func (h *CartHandler) HandleViewCart(c *fiber.Ctx) error {
	items, total, err := h.service.ViewCart(middleware.ActorFromCtx(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"items": items,
		"total": total,
	})
}

// HandleRemoveFromCart deletes a line item from the acting user's cart. A
// line item that is not there surfaces as a notice, not an error page.
func (h *CartHandler) HandleRemoveFromCart(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil || productID < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found"})
	}

	if err := h.service.RemoveFromCart(middleware.ActorFromCtx(c), uint(productID)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "The product was not found in your cart",
			})
		}
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "The product has been removed from your cart"})
}
