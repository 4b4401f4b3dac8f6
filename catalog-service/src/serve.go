package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/log/global"

	"github.com/git-pranav2004/getdeal/catalog-service/src/chrome"
	"github.com/git-pranav2004/getdeal/catalog-service/src/handlers"
	"github.com/git-pranav2004/getdeal/catalog-service/src/repositories"
	"github.com/git-pranav2004/getdeal/catalog-service/src/services"
	"github.com/git-pranav2004/getdeal/catalog-service/src/view"
	"github.com/git-pranav2004/getdeal/common/config"
	db "github.com/git-pranav2004/getdeal/common/db"
	"github.com/git-pranav2004/getdeal/common/debugutils"
	"github.com/git-pranav2004/getdeal/common/globals"
	"github.com/git-pranav2004/getdeal/common/lifecycle"
	commonlog "github.com/git-pranav2004/getdeal/common/log"
	"github.com/git-pranav2004/getdeal/common/middleware"
	"github.com/git-pranav2004/getdeal/common/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the catalog HTTP server (default)",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	// --- Configuration & Logging ---
	if err := globals.Init(); err != nil {
		return fmt.Errorf("initializing configuration and logging: %w", err)
	}
	cfg := globals.Cfg()
	logger := globals.Logger()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// --- Telemetry ---
	telemetryShutdown, err := telemetry.InitTelemetry(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	if cfg.OtelEnabled {
		logrus.AddHook(commonlog.NewLogrusHook(global.GetLoggerProvider()))
	}

	// --- Service and Handler Initialization ---
	catalogHandler, adminHandler, err := buildHandlers(cfg)
	if err != nil {
		_ = telemetryShutdown(context.Background())
		return err
	}

	// --- Fiber App Setup ---
	app := fiber.New(fiber.Config{
		AppName:      cfg.ServiceName,
		ErrorHandler: middleware.ErrorHandler(logger),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
		BodyLimit:    4 * 1024 * 1024,
	})

	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.OtelMiddleware())
	app.Use(middleware.RequestLogger(logger))
	app.Use(middleware.RecoverMiddleware(logger))

	handlers.RegisterRoutes(app, catalogHandler, adminHandler)
	logger.Info("All routes registered successfully")

	// --- Server Startup ---
	addr := fmt.Sprintf(":%d", cfg.Port)
	go func() {
		logger.Info("Server starting to listen", slog.String("address", addr))
		if err := app.Listen(addr); err != nil {
			logger.Error("Server listener failed", slog.Any("error", err))
			cancel()
		}
	}()

	return lifecycle.WaitForGracefulShutdown(ctx, cfg, &lifecycle.FiberShutdownAdapter{App: app}, telemetryShutdown)
}

func buildHandlers(cfg *config.Config) (*handlers.CatalogHandler, *handlers.AdminHandler, error) {
	logger := globals.Logger()

	database := db.NewFileDatabase(cfg.DataFilePath)
	source := repositories.NewProductSource(cfg, database)
	logger.Info("Product source configured", slog.String("location", source.Location()))

	publisher, err := services.NewPublisher(cfg, database)
	if err != nil {
		return nil, nil, fmt.Errorf("configuring publisher: %w", err)
	}

	renderer := view.NewRenderer(view.NewOptions(cfg))
	chromeCtl := chrome.NewController(chrome.NewSettings(cfg))

	catalogService := services.NewCatalogService(source, renderer, debugutils.NewSimulator(cfg))
	adminService := services.NewAdminService(source, publisher)

	return handlers.NewCatalogHandler(catalogService, renderer, chromeCtl),
		handlers.NewAdminHandler(adminService, renderer, chromeCtl),
		nil
}
