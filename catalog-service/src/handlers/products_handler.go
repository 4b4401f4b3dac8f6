package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	apiresponses "github.com/git-pranav2004/getdeal/common/apiresponses"
	"github.com/git-pranav2004/getdeal/common/middleware"
)

// LiveData serves the product document exactly as the source holds it.
func (h *CatalogHandler) LiveData(c *fiber.Ctx) (err error) {
	ctx := c.UserContext()

	raw, appErr := h.service.LiveData(ctx)
	if appErr != nil {
		return appErr
	}

	h.logger.DebugContext(ctx, "Live product data served", slog.Int("bytes", len(raw)))
	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Type("json", "utf-8")
	return c.Status(http.StatusOK).Send(raw)
}

// ListProducts returns the products held since the last successful load.
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) (err error) {
	ctx := c.UserContext()

	products, loaded := h.service.Products()
	h.logger.InfoContext(ctx, "Loaded products listed",
		slog.Int("product_count", len(products)),
		slog.Bool("loaded", loaded))

	response := apiresponses.NewSuccessResponse(products).WithRequestID(middleware.RequestIDFromContext(ctx))
	return c.Status(http.StatusOK).JSON(response)
}
