package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/git-pranav2004/getdeal/common/config"
	db "github.com/git-pranav2004/getdeal/common/db"
	"github.com/git-pranav2004/getdeal/common/globals"
	commontrace "github.com/git-pranav2004/getdeal/common/telemetry/trace"
)

const (
	PublisherDisplay = "display"
	PublisherFile    = "file"
	PublisherHTTP    = "http"
)

// Publisher writes an updated product document somewhere the catalog reads from.
type Publisher interface {
	Name() string
	// Publish reports whether anything was written.
	Publish(ctx context.Context, data []byte) (bool, error)
}

// NewPublisher builds the publisher selected by ADMIN_PUBLISHER.
func NewPublisher(cfg *config.Config, database *db.FileDatabase) (Publisher, error) {
	switch cfg.AdminPublisher {
	case "", PublisherDisplay:
		return DisplayPublisher{}, nil
	case PublisherFile:
		return NewFilePublisher(database), nil
	case PublisherHTTP:
		return NewHTTPPublisher(cfg.AdminPublishURL, cfg.ProductSourceTimeout()), nil
	default:
		return nil, fmt.Errorf("unknown publisher %q", cfg.AdminPublisher)
	}
}

// DisplayPublisher writes nothing; the operator copies the output by hand.
type DisplayPublisher struct{}

func (DisplayPublisher) Name() string { return PublisherDisplay }

func (DisplayPublisher) Publish(context.Context, []byte) (bool, error) { return false, nil }

type filePublisher struct {
	database *db.FileDatabase
}

// NewFilePublisher overwrites the local data file.
func NewFilePublisher(database *db.FileDatabase) Publisher {
	return &filePublisher{database: database}
}

func (p *filePublisher) Name() string { return PublisherFile }

func (p *filePublisher) Publish(ctx context.Context, data []byte) (bool, error) {
	if err := p.database.WriteRaw(ctx, data); err != nil {
		return false, err
	}
	return true, nil
}

type httpPublisher struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

// NewHTTPPublisher PUTs the document to url.
func NewHTTPPublisher(url string, timeout time.Duration) Publisher {
	return &httpPublisher{
		url: url,
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   timeout,
		},
		logger: globals.Logger(),
	}
}

func (p *httpPublisher) Name() string { return PublisherHTTP }

func (p *httpPublisher) Publish(ctx context.Context, data []byte) (published bool, err error) {
	ctx, span := commontrace.StartSpan(ctx,
		attribute.String("publisher.kind", PublisherHTTP),
		attribute.String("publisher.url", p.url),
		attribute.Int("publisher.bytes", len(data)),
	)
	defer commontrace.EndSpan(span, &err, nil)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, p.url, bytes.NewReader(data))
	if err != nil {
		return false, fmt.Errorf("building publish request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("publishing to %s: %w", p.url, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, fmt.Errorf("publishing to %s: unexpected status %d", p.url, resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "Product document published", slog.String("url", p.url), slog.Int("status_code", resp.StatusCode))
	return true, nil
}
