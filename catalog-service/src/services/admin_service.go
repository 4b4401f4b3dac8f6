package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/git-pranav2004/getdeal/catalog-service/src/models"
	"github.com/git-pranav2004/getdeal/catalog-service/src/repositories"
	apierrors "github.com/git-pranav2004/getdeal/common/apierrors"
	"github.com/git-pranav2004/getdeal/common/apirequests"
	"github.com/git-pranav2004/getdeal/common/constants"
	"github.com/git-pranav2004/getdeal/common/globals"
	"github.com/git-pranav2004/getdeal/common/metrics"
	"github.com/git-pranav2004/getdeal/common/telemetry/metric"
	commontrace "github.com/git-pranav2004/getdeal/common/telemetry/trace"
)

type adminService struct {
	source    repositories.ProductSource
	publisher Publisher
	now       func() time.Time
	logger    *slog.Logger

	mu     sync.RWMutex
	output string
}

func NewAdminService(source repositories.ProductSource, publisher Publisher) AdminService {
	return newAdminService(source, publisher, time.Now)
}

func newAdminService(source repositories.ProductSource, publisher Publisher, now func() time.Time) *adminService {
	if publisher == nil {
		publisher = DisplayPublisher{}
	}
	return &adminService{
		source:    source,
		publisher: publisher,
		now:       now,
		logger:    globals.Logger(),
	}
}

// AddProduct appends a product built from req to the live document and hands
// the result to the publisher. Fields are taken as entered. The id is the
// current Unix time in milliseconds, so two adds in the same millisecond
// share an id. When publishing fails the outcome is still returned together
// with a PUBLISH_FAILED error.
func (s *adminService) AddProduct(ctx context.Context, req apirequests.AddProductRequest) (outcome *AdminOutcome, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx, attribute.String("publisher.kind", s.publisher.Name()))
	mc := metric.StartMetricsTimer(constants.ServiceLayer, "AddProduct")
	defer func() {
		var telemetryErr error
		if appErr != nil {
			telemetryErr = appErr
		}
		mc.End(ctx, &telemetryErr)
		commontrace.EndSpan(span, &telemetryErr, nil)
		metrics.AdminProductsAddedTotal.WithLabelValues(s.publisher.Name(), metrics.Outcome(telemetryErr)).Inc()
	}()

	product := models.Product{
		ID:          models.ProductID(s.now().UnixMilli()),
		Title:       models.Text(req.Title),
		Image:       models.Text(req.Image),
		Price:       models.Text(req.Price),
		Description: models.Text(req.Description),
		Category:    models.Text(req.Category),
		Link:        models.Text(req.Link),
	}
	span.SetAttributes(attribute.Int64("product.id", int64(product.ID)))

	snapshot, appErr := s.source.Fetch(ctx)
	if appErr != nil {
		s.logger.ErrorContext(ctx, "Admin could not fetch live product data", slog.String("error_code", appErr.Code), slog.Any("error", appErr))
		return nil, appErr
	}

	data, count, err := models.AppendProduct(snapshot.Raw, product)
	if err != nil {
		return nil, apierrors.NewApplicationError(apierrors.ErrCodeInternalProcessing, "Failed to serialise product list", err)
	}

	s.mu.Lock()
	s.output = string(data)
	s.mu.Unlock()

	outcome = &AdminOutcome{
		Product:   product,
		Output:    string(data),
		Count:     count,
		Publisher: s.publisher.Name(),
	}

	published, err := s.publisher.Publish(ctx, data)
	if err != nil {
		s.logger.ErrorContext(ctx, "Publishing product document failed",
			slog.String("publisher", s.publisher.Name()),
			slog.Any("error", err))
		return outcome, apierrors.NewApplicationError(apierrors.ErrCodePublishFailed, "Product JSON was generated but could not be published", err)
	}
	outcome.Published = published

	s.logger.InfoContext(ctx, "Product added",
		slog.Int64("product_id", int64(product.ID)),
		slog.Int("product_count", count),
		slog.String("publisher", s.publisher.Name()),
		slog.Bool("published", published))
	return outcome, nil
}

func (s *adminService) CopyJSON(ctx context.Context) (string, *apierrors.AppError) {
	output := s.Output()
	if output == "" {
		s.logger.WarnContext(ctx, "Copy requested with no generated JSON")
		return "", apierrors.NewBusinessError(apierrors.ErrCodeNothingToCopy, "No JSON data to copy!", nil)
	}
	return output, nil
}

func (s *adminService) Output() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.output
}

func (s *adminService) PublisherName() string {
	return s.publisher.Name()
}
