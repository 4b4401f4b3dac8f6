package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/git-pranav2004/getdeal/catalog-service/src/view"
	apierrors "github.com/git-pranav2004/getdeal/common/apierrors"
)

// Page renders the catalog shell. On a cold start the catalog is loaded first
// so the category nav is complete; the card grid still arrives through
// /catalog/load.
func (h *CatalogHandler) Page(c *fiber.Ctx) (err error) {
	ctx := c.UserContext()
	theme := h.chrome.Current(c)

	if _, loaded := h.service.Products(); !loaded {
		if fragment := h.service.Load(ctx); fragment.Failed {
			h.logger.WarnContext(ctx, "Catalog page rendered without categories, load failed")
		}
	}

	var buf bytes.Buffer
	if err = h.renderer.Page(&buf, view.PageData{
		Theme:      theme,
		Categories: h.service.Categories(),
	}); err != nil {
		h.logger.ErrorContext(ctx, "Failed to render catalog page", slog.Any("error", err))
		return apierrors.NewApplicationError(apierrors.ErrCodeInternalProcessing, "Failed to render page", err)
	}

	h.logger.DebugContext(ctx, "Catalog page rendered", slog.String("theme", string(theme)))
	c.Type("html", "utf-8")
	return c.Status(http.StatusOK).Send(buf.Bytes())
}
