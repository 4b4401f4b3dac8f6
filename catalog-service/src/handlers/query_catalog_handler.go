package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/git-pranav2004/getdeal/catalog-service/src/services"
	apierrors "github.com/git-pranav2004/getdeal/common/apierrors"
	"github.com/git-pranav2004/getdeal/common/apirequests"
)

// QueryCatalog searches when q is present, otherwise filters by category
// (default all). A filter with nothing loaded answers 204.
func (h *CatalogHandler) QueryCatalog(c *fiber.Ctx) (err error) {
	ctx := c.UserContext()

	var query apirequests.CatalogQuery
	if err = c.QueryParser(&query); err != nil {
		return apierrors.NewBusinessError(apierrors.ErrCodeRequestValidation, "Invalid catalog query", err)
	}

	if c.Context().QueryArgs().Has("q") {
		h.logger.DebugContext(ctx, "Catalog search requested", slog.String("query", query.Query))
		fragment := h.service.Search(ctx, query.Query)
		return sendFragment(c, http.StatusOK, string(fragment.HTML))
	}

	category := query.Category
	if category == "" {
		category = services.AllCategories
	}
	h.logger.DebugContext(ctx, "Catalog filter requested", slog.String("category", category))

	fragment, ok := h.service.FilterByCategory(ctx, category)
	if !ok {
		return c.SendStatus(http.StatusNoContent)
	}
	return sendFragment(c, http.StatusOK, string(fragment.HTML))
}
