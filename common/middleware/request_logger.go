package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/trace"
)

// RequestLogger logs one line per request at a level derived from the status code.
func RequestLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		ctx := c.UserContext()
		statusCode := c.Response().StatusCode()
		attrs := []slog.Attr{
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status_code", statusCode),
			slog.Duration("duration", time.Since(start)),
			slog.String("ip", c.IP()),
			slog.String("user_agent", c.Get(fiber.HeaderUserAgent)),
			slog.String("request_id", RequestIDFromContext(ctx)),
		}
		if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
			attrs = append(attrs,
				slog.String("trace_id", spanCtx.TraceID().String()),
				slog.String("span_id", spanCtx.SpanID().String()),
			)
		}
		if err != nil {
			attrs = append(attrs, slog.Any("error", err))
		}

		level := slog.LevelInfo
		if statusCode >= 500 {
			level = slog.LevelError
		} else if statusCode >= 400 {
			level = slog.LevelWarn
		}
		logger.LogAttrs(ctx, level, "Request completed", attrs...)

		return err
	}
}
