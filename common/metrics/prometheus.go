package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the service collectors plus the Go and process collectors.
	Registry = prometheus.NewRegistry()

	CatalogLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_loads_total",
			Help: "Catalog loads by outcome (success, failure).",
		},
		[]string{"outcome"},
	)

	CatalogProducts = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_products",
			Help: "Number of products in the last successful load.",
		},
	)

	CatalogQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_queries_total",
			Help: "Catalog filter and search requests by kind.",
		},
		[]string{"kind"},
	)

	AdminProductsAddedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_products_added_total",
			Help: "Products added through the admin helper by publisher and outcome.",
		},
		[]string{"publisher", "outcome"},
	)

	ThemeTogglesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "theme_toggles_total",
			Help: "Theme toggles by resulting theme.",
		},
		[]string{"theme"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		CatalogLoadsTotal,
		CatalogProducts,
		CatalogQueriesTotal,
		AdminProductsAddedTotal,
		ThemeTogglesTotal,
	)
}

// Outcome returns the outcome label for err.
func Outcome(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}

// Handler serves the Prometheus exposition format for Registry.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}
