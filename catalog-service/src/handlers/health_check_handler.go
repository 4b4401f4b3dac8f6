package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

func (h *CatalogHandler) Health(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "ok"})
}

// Status reports the catalog state alongside liveness.
func (h *CatalogHandler) Status(c *fiber.Ctx) error {
	products, loaded := h.service.Products()
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"status":         "ok",
		"source":         h.service.SourceLocation(),
		"productsLoaded": loaded,
		"productCount":   len(products),
	})
}
