package log

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/git-pranav2004/getdeal/common/constants"
)

// LogrusHook forwards logrus entries (bootstrap and shutdown logs) to an OTel
// logger and stamps them with the trace and span ids of the entry context.
type LogrusHook struct {
	logger otellog.Logger
}

func NewLogrusHook(provider otellog.LoggerProvider) *LogrusHook {
	return &LogrusHook{logger: provider.Logger(constants.InstrumentationName + "/logrus")}
}

func (h *LogrusHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *LogrusHook) Fire(entry *logrus.Entry) error {
	ctx := entry.Context
	if ctx == nil {
		ctx = context.Background()
	}
	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		entry.Data["trace_id"] = spanCtx.TraceID().String()
		entry.Data["span_id"] = spanCtx.SpanID().String()
	}

	var record otellog.Record
	record.SetTimestamp(entry.Time)
	record.SetObservedTimestamp(time.Now())
	record.SetSeverity(severityFor(entry.Level))
	record.SetSeverityText(entry.Level.String())
	record.SetBody(otellog.StringValue(entry.Message))
	record.AddAttributes(attributesFor(entry.Data)...)

	h.logger.Emit(ctx, record)
	return nil
}

func attributesFor(fields logrus.Fields) []otellog.KeyValue {
	attrs := make([]otellog.KeyValue, 0, len(fields))
	for k, v := range fields {
		switch val := v.(type) {
		case string:
			attrs = append(attrs, otellog.String(k, val))
		case int:
			attrs = append(attrs, otellog.Int(k, val))
		case int64:
			attrs = append(attrs, otellog.Int64(k, val))
		case float64:
			attrs = append(attrs, otellog.Float64(k, val))
		case bool:
			attrs = append(attrs, otellog.Bool(k, val))
		case error:
			attrs = append(attrs, otellog.String(k, val.Error()))
		default:
			attrs = append(attrs, otellog.String(k, fmt.Sprintf("%+v", val)))
		}
	}
	return attrs
}

func severityFor(level logrus.Level) otellog.Severity {
	switch level {
	case logrus.TraceLevel:
		return otellog.SeverityTrace
	case logrus.DebugLevel:
		return otellog.SeverityDebug
	case logrus.InfoLevel:
		return otellog.SeverityInfo
	case logrus.WarnLevel:
		return otellog.SeverityWarn
	case logrus.ErrorLevel:
		return otellog.SeverityError
	default:
		// fatal and panic
		return otellog.SeverityFatal
	}
}
