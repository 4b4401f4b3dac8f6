package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/git-pranav2004/getdeal/common/metrics"
)

// RegisterRoutes mounts every catalog, chrome and admin route on app.
func RegisterRoutes(app *fiber.App, catalog *CatalogHandler, admin *AdminHandler) {
	app.Get("/health", catalog.Health)
	app.Get("/status", catalog.Status)
	app.Get("/metrics", metrics.Handler())

	app.Get("/", catalog.Page)
	app.Get("/catalog/load", catalog.LoadCatalog)
	app.Get("/catalog", catalog.QueryCatalog)
	app.Get("/products.json", catalog.LiveData)
	app.Get("/api/products", catalog.ListProducts)
	app.Post("/theme/toggle", catalog.ToggleTheme)

	app.Get("/admin", admin.Page)
	app.Post("/admin/products", admin.AddProduct)
	app.Get("/admin/output", admin.CopyJSON)
}
