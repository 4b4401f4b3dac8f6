package middleware

import (
	otelfiber "github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
)

// untracedPaths are health and scrape endpoints kept out of traces.
var untracedPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// OtelMiddleware creates server spans for every request except health checks and scrapes.
func OtelMiddleware(opts ...otelfiber.Option) fiber.Handler {
	opts = append([]otelfiber.Option{
		otelfiber.WithNext(func(c *fiber.Ctx) bool {
			_, skip := untracedPaths[c.Path()]
			return skip
		}),
	}, opts...)
	return otelfiber.Middleware(opts...)
}
