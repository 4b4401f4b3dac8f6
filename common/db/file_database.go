package db

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/git-pranav2004/getdeal/common/globals"
	commontrace "github.com/git-pranav2004/getdeal/common/telemetry/trace"
)

// FileDatabase provides methods to interact with a JSON file database.
type FileDatabase struct {
	filePath string
	logger   *slog.Logger
	mu       sync.RWMutex
}

// NewFileDatabase creates a new instance of FileDatabase backed by filePath.
func NewFileDatabase(filePath string) *FileDatabase {
	return &FileDatabase{
		filePath: filePath,
		logger:   globals.Logger(),
	}
}

// ReadRaw returns the file content exactly as stored.
func (db *FileDatabase) ReadRaw(ctx context.Context) (content []byte, opErr error) {
	ctx, span := commontrace.StartSpan(ctx,
		semconv.DBSystemKey.String("file"),
		attribute.String("db.operation", "READ"),
	)
	defer commontrace.EndSpan(span, &opErr, nil)

	db.logger.DebugContext(ctx, "FileDB: Reading data from file", slog.String("file_path", db.filePath))

	db.mu.RLock()
	content, opErr = os.ReadFile(db.filePath)
	db.mu.RUnlock()
	if opErr != nil {
		db.logger.ErrorContext(ctx, "FileDB: Failed to read data file", slog.String("file_path", db.filePath), slog.Any("error", opErr))
		return nil, opErr
	}
	return content, nil
}

// WriteRaw replaces the file content. The bytes go to a temporary file in the
// same directory first, so readers never observe a half-written catalog.
func (db *FileDatabase) WriteRaw(ctx context.Context, content []byte) (opErr error) {
	ctx, span := commontrace.StartSpan(ctx,
		semconv.DBSystemKey.String("file"),
		attribute.String("db.operation", "WRITE"),
	)
	defer commontrace.EndSpan(span, &opErr, nil)

	db.logger.DebugContext(ctx, "FileDB: Writing data to file", slog.String("file_path", db.filePath), slog.Int("bytes", len(content)))

	db.mu.Lock()
	defer db.mu.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(db.filePath), ".catalog-*.json")
	if err != nil {
		opErr = fmt.Errorf("creating temp file for %s: %w", db.filePath, err)
		return opErr
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		opErr = fmt.Errorf("writing temp file for %s: %w", db.filePath, err)
		return opErr
	}
	if err := tmp.Close(); err != nil {
		opErr = fmt.Errorf("closing temp file for %s: %w", db.filePath, err)
		return opErr
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		opErr = fmt.Errorf("chmod temp file for %s: %w", db.filePath, err)
		return opErr
	}
	if err := os.Rename(tmpName, db.filePath); err != nil {
		opErr = fmt.Errorf("replacing %s: %w", db.filePath, err)
		db.logger.ErrorContext(ctx, "FileDB: Failed to write data file", slog.String("file_path", db.filePath), slog.Any("error", err))
		return opErr
	}

	db.logger.DebugContext(ctx, "FileDB: Data written successfully", slog.String("file_path", db.filePath))
	return nil
}

// FilePath returns the path to the database file.
func (db *FileDatabase) FilePath() string {
	return db.filePath
}
