package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"

	commontrace "github.com/git-pranav2004/getdeal/common/telemetry/trace"
)

// LoadCatalog reloads the catalog and returns the fragment. A failed load
// still returns the fallback fragment, with 502.
func (h *CatalogHandler) LoadCatalog(c *fiber.Ctx) (err error) {
	ctx, span := commontrace.StartSpan(c.UserContext())
	defer commontrace.EndSpan(span, &err, nil)

	h.logger.InfoContext(ctx, "Catalog load requested",
		slog.String("path", c.Path()),
		slog.String("client_ip", c.IP()))

	fragment := h.service.Load(ctx)
	span.SetAttributes(
		attribute.Bool("catalog.load_failed", fragment.Failed),
		attribute.Int("products.returned.count", fragment.Count),
	)

	c.Set(fiber.HeaderCacheControl, "no-store")
	status := http.StatusOK
	if fragment.Failed {
		status = http.StatusBadGateway
	}
	return sendFragment(c, status, string(fragment.HTML))
}
