package telemetry

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/host"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc/credentials"

	"github.com/git-pranav2004/getdeal/common/config"
)

// ShutdownFunc flushes and stops every provider started by InitTelemetry.
type ShutdownFunc func(context.Context) error

// InitTelemetry installs the W3C propagators and, when OTEL_ENABLED is set,
// OTLP/gRPC providers for traces, metrics and logs plus host and runtime
// metrics. With telemetry disabled the global no-op providers stay in place
// and the returned shutdown does nothing.
func InitTelemetry(ctx context.Context, cfg *config.Config, logger *slog.Logger) (shutdown ShutdownFunc, err error) {
	var shutdownFuncs []ShutdownFunc

	shutdown = func(ctx context.Context) error {
		var shutdownErr error
		for i := len(shutdownFuncs) - 1; i >= 0; i-- {
			shutdownErr = errors.Join(shutdownErr, shutdownFuncs[i](ctx))
		}
		shutdownFuncs = nil
		return shutdownErr
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	if !cfg.OtelEnabled {
		logger.Info("OpenTelemetry export disabled; using no-op providers")
		return shutdown, nil
	}

	defer func() {
		if err != nil {
			logger.Error("OpenTelemetry SDK initialization failed", slog.Any("error", err))
			if shutdownErr := shutdown(context.Background()); shutdownErr != nil {
				logger.Error("Error during OTel cleanup after setup failure", slog.Any("error", shutdownErr))
			}
		}
	}()

	res, err := newResource(ctx, cfg)
	if err != nil {
		return shutdown, err
	}

	var creds credentials.TransportCredentials
	if !cfg.OtelInsecure {
		creds = credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	} else {
		logger.Warn("Using insecure gRPC connection for OTLP exporters", slog.String("endpoint", cfg.OtelEndpoint))
	}

	// --- Traces ---
	traceOpts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.OtelEndpoint)}
	if creds != nil {
		traceOpts = append(traceOpts, otlptracegrpc.WithTLSCredentials(creds))
	} else {
		traceOpts = append(traceOpts, otlptracegrpc.WithInsecure())
	}
	traceExporter, err := otlptracegrpc.New(ctx, traceOpts...)
	if err != nil {
		return shutdown, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.OtelSampleRatio))),
		sdktrace.WithBatcher(traceExporter, sdktrace.WithBatchTimeout(cfg.OtelBatchTimeout())),
	)
	otel.SetTracerProvider(tp)
	shutdownFuncs = append(shutdownFuncs, tp.Shutdown)
	logger.Debug("TracerProvider initialized and set globally")

	// --- Metrics ---
	metricOpts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.OtelEndpoint),
		otlpmetricgrpc.WithTimeout(5 * time.Second),
	}
	if creds != nil {
		metricOpts = append(metricOpts, otlpmetricgrpc.WithTLSCredentials(creds))
	} else {
		metricOpts = append(metricOpts, otlpmetricgrpc.WithInsecure())
	}
	metricExporter, err := otlpmetricgrpc.New(ctx, metricOpts...)
	if err != nil {
		return shutdown, fmt.Errorf("failed to create OTLP metric exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(15*time.Second))),
	)
	otel.SetMeterProvider(mp)
	shutdownFuncs = append(shutdownFuncs, mp.Shutdown)
	logger.Debug("MeterProvider initialized and set globally")

	if err = host.Start(host.WithMeterProvider(mp)); err != nil {
		return shutdown, fmt.Errorf("failed to start host metrics: %w", err)
	}
	if err = runtime.Start(runtime.WithMeterProvider(mp), runtime.WithMinimumReadMemStatsInterval(15*time.Second)); err != nil {
		return shutdown, fmt.Errorf("failed to start runtime metrics: %w", err)
	}

	// --- Logs ---
	logOpts := []otlploggrpc.Option{otlploggrpc.WithEndpoint(cfg.OtelEndpoint)}
	if creds != nil {
		logOpts = append(logOpts, otlploggrpc.WithTLSCredentials(creds))
	} else {
		logOpts = append(logOpts, otlploggrpc.WithInsecure())
	}
	logExporter, err := otlploggrpc.New(ctx, logOpts...)
	if err != nil {
		return shutdown, fmt.Errorf("failed to create OTLP log exporter: %w", err)
	}
	lp := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter, sdklog.WithExportTimeout(cfg.OtelBatchTimeout()))),
	)
	global.SetLoggerProvider(lp)
	shutdownFuncs = append(shutdownFuncs, lp.Shutdown)
	logger.Debug("LoggerProvider initialized and set globally")

	logger.Info("OpenTelemetry SDK initialized", slog.String("endpoint", cfg.OtelEndpoint))
	return shutdown, nil
}
