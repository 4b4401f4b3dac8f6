package services

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/git-pranav2004/getdeal/catalog-service/src/models"
	"github.com/git-pranav2004/getdeal/catalog-service/src/repositories"
	"github.com/git-pranav2004/getdeal/catalog-service/src/view"
	apierrors "github.com/git-pranav2004/getdeal/common/apierrors"
	"github.com/git-pranav2004/getdeal/common/constants"
	"github.com/git-pranav2004/getdeal/common/debugutils"
	"github.com/git-pranav2004/getdeal/common/globals"
	"github.com/git-pranav2004/getdeal/common/metrics"
	"github.com/git-pranav2004/getdeal/common/telemetry/metric"
	commontrace "github.com/git-pranav2004/getdeal/common/telemetry/trace"
)

// AllCategories selects the whole catalog in FilterByCategory. The match is
// exact, so a category named "All" filters like any other.
const AllCategories = "all"

type catalogService struct {
	source    repositories.ProductSource
	renderer  *view.Renderer
	simulator *debugutils.Simulator
	logger    *slog.Logger

	mu       sync.RWMutex
	products []models.Product
	loaded   bool
}

func NewCatalogService(source repositories.ProductSource, renderer *view.Renderer, simulator *debugutils.Simulator) CatalogService {
	return &catalogService{
		source:    source,
		renderer:  renderer,
		simulator: simulator,
		logger:    globals.Logger(),
	}
}

func (s *catalogService) Load(ctx context.Context) (fragment Fragment) {
	ctx, span := commontrace.StartSpan(ctx, attribute.String("product_source.location", s.source.Location()))
	mc := metric.StartMetricsTimer(constants.ServiceLayer, "LoadCatalog")
	var loadErr error
	defer func() {
		mc.End(ctx, &loadErr)
		commontrace.EndSpan(span, &loadErr, nil)
		metrics.CatalogLoadsTotal.WithLabelValues(metrics.Outcome(loadErr)).Inc()
	}()

	s.logger.InfoContext(ctx, "Loading catalog", slog.String("source", s.source.Location()))

	if simErr := s.simulator.Simulate(ctx); simErr != nil {
		loadErr = simErr
		s.logger.ErrorContext(ctx, "Catalog load failed", slog.String("error_code", simErr.Code), slog.Any("error", simErr))
		return s.fallback()
	}

	snapshot, appErr := s.source.Fetch(ctx)
	if appErr != nil {
		loadErr = appErr
		s.logger.ErrorContext(ctx, "Catalog load failed", slog.String("error_code", appErr.Code), slog.Any("error", appErr))
		return s.fallback()
	}

	s.mu.Lock()
	s.products = snapshot.Products
	s.loaded = true
	s.mu.Unlock()

	count := len(snapshot.Products)
	metrics.CatalogProducts.Set(float64(count))
	span.SetAttributes(attribute.Int("products.returned.count", count))
	s.logger.InfoContext(ctx, "Catalog loaded", slog.Int("product_count", count))

	return s.Render(ctx, snapshot.Products)
}

func (s *catalogService) Render(ctx context.Context, products []models.Product) Fragment {
	html, err := s.renderer.Cards(products)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to render product cards", slog.Any("error", err))
		return s.fallback()
	}
	return Fragment{HTML: html, Count: len(products)}
}

func (s *catalogService) FilterByCategory(ctx context.Context, category string) (Fragment, bool) {
	metrics.CatalogQueriesTotal.WithLabelValues("category").Inc()

	products := s.snapshot()
	if len(products) == 0 {
		s.logger.DebugContext(ctx, "Category filter ignored, no products loaded", slog.String("category", category))
		return Fragment{}, false
	}

	if category == AllCategories {
		return s.Render(ctx, products), true
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.EqualFold(p.Category.String(), category) {
			filtered = append(filtered, p)
		}
	}
	s.logger.DebugContext(ctx, "Filtered catalog by category",
		slog.String("category", category),
		slog.Int("product_count", len(filtered)))
	return s.Render(ctx, filtered), true
}

func (s *catalogService) Search(ctx context.Context, query string) Fragment {
	metrics.CatalogQueriesTotal.WithLabelValues("search").Inc()

	products := s.snapshot()
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.Render(ctx, products)
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title.String()), q) ||
			strings.Contains(strings.ToLower(p.Description.String()), q) ||
			strings.Contains(strings.ToLower(p.Category.String()), q) {
			filtered = append(filtered, p)
		}
	}
	s.logger.DebugContext(ctx, "Searched catalog", slog.String("query", q), slog.Int("product_count", len(filtered)))
	return s.Render(ctx, filtered)
}

func (s *catalogService) Products() ([]models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product(nil), s.products...), s.loaded
}

// Categories lists the distinct non-empty categories of the held products,
// keeping the first spelling seen and sorted case-insensitively.
func (s *catalogService) Categories() []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range s.snapshot() {
		name := strings.TrimSpace(p.Category.String())
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		categories = append(categories, name)
	}
	sort.Slice(categories, func(i, j int) bool {
		return strings.ToLower(categories[i]) < strings.ToLower(categories[j])
	})
	return categories
}

// LiveData returns the product document as currently stored by the source.
func (s *catalogService) LiveData(ctx context.Context) ([]byte, *apierrors.AppError) {
	snapshot, appErr := s.source.Fetch(ctx)
	if appErr != nil {
		return nil, appErr
	}
	return snapshot.Raw, nil
}

func (s *catalogService) SourceLocation() string {
	return s.source.Location()
}

func (s *catalogService) snapshot() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product(nil), s.products...)
}

func (s *catalogService) fallback() Fragment {
	return Fragment{HTML: s.renderer.Fallback(), Failed: true}
}
