package metric

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/git-pranav2004/getdeal/common/constants"
)

var (
	meter           = otel.Meter(constants.InstrumentationName)
	operationsTotal metric.Int64Counter
	durationMillis  metric.Float64Histogram
	errorsTotal     metric.Int64Counter
)

func init() {
	var err error

	operationsTotal, err = meter.Int64Counter(
		"app.operations.total",
		metric.WithDescription("Total number of operations executed"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		slog.Error("Failed to initialize operationsTotal counter", slog.Any("error", err))
	}

	durationMillis, err = meter.Float64Histogram(
		"app.operations.duration_milliseconds",
		metric.WithDescription("Duration of operations in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		slog.Error("Failed to initialize durationMillis histogram", slog.Any("error", err))
	}

	errorsTotal, err = meter.Int64Counter(
		"app.operations.errors.total",
		metric.WithDescription("Total number of operations that resulted in an error"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		slog.Error("Failed to initialize errorsTotal counter", slog.Any("error", err))
	}
}

type MetricsController interface {
	End(ctx context.Context, err *error, additionalAttrs ...attribute.KeyValue)
}

type metricsControllerImpl struct {
	startTime time.Time
	layer     string
	operation string
}

// StartMetricsTimer starts timing one operation in the given layer.
func StartMetricsTimer(layer, operation string) MetricsController {
	return &metricsControllerImpl{
		startTime: time.Now(),
		layer:     layer,
		operation: operation,
	}
}

func (mc *metricsControllerImpl) End(ctx context.Context, errPtr *error, additionalAttrs ...attribute.KeyValue) {
	durationMs := float64(time.Since(mc.startTime).Microseconds()) / 1000.0
	isError := errPtr != nil && *errPtr != nil

	attrs := []attribute.KeyValue{
		attribute.String("app.layer", mc.layer),
		attribute.String("app.operation", mc.operation),
		attribute.Bool("app.error", isError),
	}
	attrs = append(attrs, additionalAttrs...)
	opt := metric.WithAttributes(attrs...)

	if operationsTotal != nil {
		operationsTotal.Add(ctx, 1, opt)
	}
	if durationMillis != nil {
		durationMillis.Record(ctx, durationMs, opt)
	}
	if isError && errorsTotal != nil {
		errorsTotal.Add(ctx, 1, opt)
	}
}
