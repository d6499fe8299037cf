package handlers

import (
	"errors"
	"fmt"

	"asteria/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// respondServiceError translates a service error kind into an HTTP status
// and JSON notice. Every kind is recoverable; nothing here is fatal.
func respondServiceError(c *fiber.Ctx, err error) error {
	var stockErr *services.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message":   "Insufficient stock",
			"error":     stockErr.Error(),
			"available": stockErr.Available,
		})
	case errors.Is(err, services.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message":  "Please log in to access this page",
			"redirect": "/login",
		})
	case errors.Is(err, services.ErrSelfDeleteForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "You cannot delete your own admin account",
		})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "You do not have permission to access this page",
		})
	case errors.Is(err, services.ErrDuplicateIdentity):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Username or email already in use",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Incorrect username or password",
		})
	case errors.Is(err, services.ErrProductNotFound), errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Not found",
			"error":   err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong",
			"error":   err.Error(),
		})
	}
}

// respondValidationError renders validator.ValidationErrors as a field map,
// and anything else as a plain bad request.
func respondValidationError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"error":   err.Error(),
	})
}
