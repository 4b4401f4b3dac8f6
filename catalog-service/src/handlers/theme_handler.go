package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	apiresponses "github.com/git-pranav2004/getdeal/common/apiresponses"
	"github.com/git-pranav2004/getdeal/common/metrics"
)

func (h *CatalogHandler) ToggleTheme(c *fiber.Ctx) error {
	theme := h.chrome.Toggle(c)
	metrics.ThemeTogglesTotal.WithLabelValues(string(theme)).Inc()

	h.logger.DebugContext(c.UserContext(), "Theme toggled", slog.String("theme", string(theme)))
	return c.Status(http.StatusOK).JSON(apiresponses.ThemeState{
		Theme: string(theme),
		Icon:  theme.Icon(),
	})
}
