package lifecycle

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// Shutdowner is implemented by servers that support graceful shutdown.
type Shutdowner interface {
	Shutdown(ctx context.Context) error
}

// FiberShutdownAdapter adapts a *fiber.App to Shutdowner.
type FiberShutdownAdapter struct {
	App *fiber.App
}

func (a *FiberShutdownAdapter) Shutdown(ctx context.Context) error {
	if a.App == nil {
		return nil
	}
	return a.App.ShutdownWithContext(ctx)
}
