package repositories

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/git-pranav2004/getdeal/catalog-service/src/models"
	apierrors "github.com/git-pranav2004/getdeal/common/apierrors"
	"github.com/git-pranav2004/getdeal/common/constants"
	"github.com/git-pranav2004/getdeal/common/globals"
	"github.com/git-pranav2004/getdeal/common/telemetry/metric"
	commontrace "github.com/git-pranav2004/getdeal/common/telemetry/trace"
)

// maxSourceBytes bounds the product document read from a remote source.
const maxSourceBytes = 10 << 20

type httpSource struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

// NewHTTPSource fetches products from url with cache-bypass headers.
func NewHTTPSource(url string, timeout time.Duration) ProductSource {
	return &httpSource{
		url: url,
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   timeout,
		},
		logger: globals.Logger(),
	}
}

func (s *httpSource) Location() string {
	return s.url
}

func (s *httpSource) Fetch(ctx context.Context) (snapshot *Snapshot, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx,
		attribute.String("repository.operation", "Fetch"),
		attribute.String("product_source.kind", "http"),
		attribute.String("product_source.location", s.url),
	)
	mc := metric.StartMetricsTimer(constants.RepositoryLayer, "HTTPSourceFetch")
	defer func() {
		var telemetryErr error
		if appErr != nil {
			telemetryErr = appErr
		}
		mc.End(ctx, &telemetryErr)
		commontrace.EndSpan(span, &telemetryErr, nil)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, apierrors.NewApplicationError(apierrors.ErrCodeInternalProcessing, "Failed to prepare product source request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.WarnContext(ctx, "Product source unreachable", slog.String("url", s.url), slog.Any("error", err))
		return nil, apierrors.NewApplicationError(apierrors.ErrCodeSourceUnavailable, "Product source is unreachable", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.WarnContext(ctx, "Product source returned non-success status",
			slog.String("url", s.url),
			slog.Int("status_code", resp.StatusCode))
		return nil, apierrors.NewApplicationError(apierrors.ErrCodeSourceUnavailable,
			"Product source returned an error status",
			fmt.Errorf("unexpected status %d from %s", resp.StatusCode, s.url))
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceBytes))
	if err != nil {
		return nil, apierrors.NewApplicationError(apierrors.ErrCodeSourceUnavailable, "Failed to read product source response", err)
	}

	products, err := models.DecodeProducts(raw)
	if err != nil {
		s.logger.ErrorContext(ctx, "Product source returned malformed JSON", slog.String("url", s.url), slog.Any("error", err))
		return nil, apierrors.NewApplicationError(apierrors.ErrCodeMalformedData, "Product data is malformed", err)
	}

	span.SetAttributes(attribute.Int("products.returned.count", len(products)))
	return &Snapshot{Products: products, Raw: raw}, nil
}
