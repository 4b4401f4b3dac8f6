package trace

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func loadCatalogForTest(ctx context.Context, fail bool) (opErr error) {
	_, span := StartSpan(ctx)
	defer EndSpan(span, &opErr, nil)
	if fail {
		opErr = errors.New("source unreachable")
	}
	return opErr
}

func TestStartSpanNamesSpanAfterCaller(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	require.NoError(t, loadCatalogForTest(context.Background(), false))
	require.Error(t, loadCatalogForTest(context.Background(), true))

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "loadCatalogForTest", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Equal(t, "source unreachable", spans[1].Status().Description)
}
