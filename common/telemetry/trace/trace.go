package trace

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/git-pranav2004/getdeal/common/constants"
	"github.com/git-pranav2004/getdeal/common/utils"
)

func DefaultStatusMapper(err error) codes.Code {
	if err == nil {
		return codes.Ok
	}
	return codes.Error
}

type StatusMapperFunc func(error) codes.Code

// StartSpan begins a new OTel span, inferring the operation name from the caller.
func StartSpan(ctx context.Context, initialAttrs ...attribute.KeyValue) (context.Context, trace.Span) {
	operationName := utils.GetCallerFunctionName(3)
	tracer := otel.Tracer(constants.InstrumentationName)

	opts := []trace.SpanStartOption{
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(semconv.CodeFunctionKey.String(operationName)),
		trace.WithAttributes(semconv.CodeNamespaceKey.String(constants.InstrumentationName)),
	}
	if len(initialAttrs) > 0 {
		opts = append(opts, trace.WithAttributes(initialAttrs...))
	}

	if ctx == nil {
		ctx = context.Background()
	}
	return tracer.Start(ctx, operationName, opts...)
}

// EndSpan concludes the given span, recording the error behind errPtr and setting status.
func EndSpan(span trace.Span, errPtr *error, statusMapper StatusMapperFunc, options ...trace.SpanEndOption) {
	defer span.End(options...)

	if errPtr == nil || *errPtr == nil {
		span.SetStatus(codes.Ok, "")
		return
	}

	err := *errPtr
	span.RecordError(err, trace.WithStackTrace(true))

	mapper := statusMapper
	if mapper == nil {
		mapper = DefaultStatusMapper
	}
	statusCode := mapper(err)

	statusMsg := ""
	if statusCode == codes.Error {
		statusMsg = err.Error()
	}
	span.SetStatus(statusCode, statusMsg)
}

func RecordSpanError(span trace.Span, err error, attrs ...attribute.KeyValue) {
	if span == nil || !span.IsRecording() || err == nil {
		return
	}

	allAttrs := []attribute.KeyValue{
		semconv.ExceptionMessageKey.String(err.Error()),
		semconv.ExceptionTypeKey.String(fmt.Sprintf("%T", err)),
	}
	allAttrs = append(allAttrs, attrs...)

	span.RecordError(err, trace.WithAttributes(allAttrs...))
	span.SetStatus(codes.Error, err.Error())
}
