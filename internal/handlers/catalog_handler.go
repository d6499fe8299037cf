package handlers

import (
	"log"

	"asteria/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles the public product browsing routes.
type CatalogHandler struct {
	service *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleHome)
	router.Get("/catalog", h.HandleCatalog)
	router.Get("/product/:id", h.HandleProductDetail)
}

// HandleHome returns the homepage product selection.
func (h *CatalogHandler) HandleHome(c *fiber.Ctx) error {
	products, err := h.service.HomepageProducts()
	if err != nil {
		log.Printf("Error listing homepage products: %v", err)
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"products": products})
}

// HandleCatalog returns the catalog product selection.
func (h *CatalogHandler) HandleCatalog(c *fiber.Ctx) error {
	products, err := h.service.CatalogProducts()
	if err != nil {
		log.Printf("Error listing catalog products: %v", err)
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"products": products})
}

// HandleProductDetail returns a single product; missing products are a hard
// 404 on this direct-lookup route.
func (h *CatalogHandler) HandleProductDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found"})
	}

	product, err := h.service.GetProduct(uint(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"product": product})
}
