package handlers

import (
	"fmt"
	"log"

	"asteria/internal/middleware"
	"asteria/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles the admin panel routes. Authorization is decided by
// the policy inside the services; the handler only translates outcomes.
type AdminHandler struct {
	userService       *services.UserService
	cartService       *services.CartService
	suggestionService *services.SuggestionService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(userService *services.UserService, cartService *services.CartService, suggestionService *services.SuggestionService) *AdminHandler {
	return &AdminHandler{
		userService:       userService,
		cartService:       cartService,
		suggestionService: suggestionService,
	}
}

// RegisterRoutes registers the admin routes with the Fiber app.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	adminRoutes := router.Group("/admin")
	adminRoutes.Get("/users", h.HandleListUsers)
	adminRoutes.Get("/suggestions", h.HandleListSuggestions)
	adminRoutes.Get("/user_cart/:userId", h.HandleUserCart)
	adminRoutes.Post("/delete_user/:userId", h.HandleDeleteUser)
}

// HandleListUsers lists every registered user.
func (h *AdminHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(middleware.ActorFromCtx(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

// HandleListSuggestions lists every received suggestion, newest first.
func (h *AdminHandler) HandleListSuggestions(c *fiber.Ctx) error {
	suggestions, err := h.suggestionService.ListAll(middleware.ActorFromCtx(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"suggestions": suggestions})
}

// HandleUserCart shows another user's cart without mutating it.
func (h *AdminHandler) HandleUserCart(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found"})
	}

	user, items, err := h.cartService.AdminViewCart(middleware.ActorFromCtx(c), uint(userID))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"user":  user,
		"items": items,
	})
}

// HandleDeleteUser deletes a user and cascades away their cart items.
func (h *AdminHandler) HandleDeleteUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found"})
	}

	deleted, err := h.userService.DeleteUser(middleware.ActorFromCtx(c), uint(userID))
	if err != nil {
		log.Printf("Error deleting user %d: %v", userID, err)
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("User %q has been deleted", deleted.Username),
	})
}
