package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/git-pranav2004/getdeal/catalog-service/src/chrome"
	"github.com/git-pranav2004/getdeal/catalog-service/src/services"
	"github.com/git-pranav2004/getdeal/catalog-service/src/view"
	"github.com/git-pranav2004/getdeal/common/globals"
)

type CatalogHandler struct {
	service  services.CatalogService
	renderer *view.Renderer
	chrome   *chrome.Controller
	logger   *slog.Logger
}

func NewCatalogHandler(svc services.CatalogService, renderer *view.Renderer, chromeCtl *chrome.Controller) *CatalogHandler {
	return &CatalogHandler{
		service:  svc,
		renderer: renderer,
		chrome:   chromeCtl,
		logger:   globals.Logger(),
	}
}

type AdminHandler struct {
	service  services.AdminService
	renderer *view.Renderer
	chrome   *chrome.Controller
	logger   *slog.Logger
}

func NewAdminHandler(svc services.AdminService, renderer *view.Renderer, chromeCtl *chrome.Controller) *AdminHandler {
	return &AdminHandler{
		service:  svc,
		renderer: renderer,
		chrome:   chromeCtl,
		logger:   globals.Logger(),
	}
}

// wantsJSON reports whether the client prefers JSON over HTML.
func wantsJSON(c *fiber.Ctx) bool {
	return c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}

func sendFragment(c *fiber.Ctx, status int, html string) error {
	c.Type("html", "utf-8")
	return c.Status(status).SendString(html)
}
