package repositories

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/git-pranav2004/getdeal/catalog-service/src/models"
	apierrors "github.com/git-pranav2004/getdeal/common/apierrors"
	"github.com/git-pranav2004/getdeal/common/constants"
	db "github.com/git-pranav2004/getdeal/common/db"
	"github.com/git-pranav2004/getdeal/common/globals"
	"github.com/git-pranav2004/getdeal/common/telemetry/metric"
	commontrace "github.com/git-pranav2004/getdeal/common/telemetry/trace"
)

type fileSource struct {
	database *db.FileDatabase
	logger   *slog.Logger
}

// NewFileSource reads products from the JSON data file on every fetch.
func NewFileSource(database *db.FileDatabase) ProductSource {
	return &fileSource{
		database: database,
		logger:   globals.Logger(),
	}
}

func (s *fileSource) Location() string {
	return s.database.FilePath()
}

func (s *fileSource) Fetch(ctx context.Context) (snapshot *Snapshot, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx,
		attribute.String("repository.operation", "Fetch"),
		attribute.String("product_source.kind", "file"),
		attribute.String("product_source.location", s.Location()),
	)
	mc := metric.StartMetricsTimer(constants.RepositoryLayer, "FileSourceFetch")
	defer func() {
		var telemetryErr error
		if appErr != nil {
			telemetryErr = appErr
		}
		mc.End(ctx, &telemetryErr)
		commontrace.EndSpan(span, &telemetryErr, nil)
	}()

	raw, err := s.database.ReadRaw(ctx)
	if err != nil {
		msg := "Failed to read product data file"
		if errors.Is(err, fs.ErrNotExist) {
			msg = "Product data file not found"
		}
		s.logger.WarnContext(ctx, msg, slog.String("file_path", s.Location()), slog.Any("error", err))
		return nil, apierrors.NewApplicationError(apierrors.ErrCodeSourceUnavailable, msg, err)
	}

	products, err := models.DecodeProducts(raw)
	if err != nil {
		s.logger.ErrorContext(ctx, "Product data file is not valid JSON", slog.String("file_path", s.Location()), slog.Any("error", err))
		return nil, apierrors.NewApplicationError(apierrors.ErrCodeMalformedData, "Product data is malformed", err)
	}

	span.SetAttributes(attribute.Int("products.returned.count", len(products)))
	s.logger.DebugContext(ctx, "Product data file read", slog.Int("product_count", len(products)))
	return &Snapshot{Products: products, Raw: raw}, nil
}
