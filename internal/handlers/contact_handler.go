package handlers

import (
	"log"

	"asteria/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ContactHandler handles the public contact/suggestion form.
type ContactHandler struct {
	service  *services.SuggestionService
	validate *validator.Validate
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.SuggestionService) *ContactHandler {
	return &ContactHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the contact routes with the Fiber app.
func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/contact", h.HandleContactPage)
	router.Post("/contact", h.HandleContactSubmit)
}

// ContactRequest is the payload for a contact form submission.
type ContactRequest struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required"`
	Message string `json:"message" form:"message" validate:"required"`
}

// HandleContactPage is the contact form entry point.
func (h *ContactHandler) HandleContactPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Send us your suggestions"})
}

// HandleContactSubmit records a suggestion. There is no deduplication and no
// rate limiting; anyone may submit.
func (h *ContactHandler) HandleContactSubmit(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	suggestion, err := h.service.Submit(req.Name, req.Email, req.Message)
	if err != nil {
		log.Printf("Error saving suggestion from %s: %v", req.Email, err)
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Thank you for your suggestion! We have received it.",
		"suggestion": suggestion,
	})
}
