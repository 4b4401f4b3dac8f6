package repositories

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/git-pranav2004/getdeal/catalog-service/src/models"
	apierrors "github.com/git-pranav2004/getdeal/common/apierrors"
	"github.com/git-pranav2004/getdeal/common/config"
	db "github.com/git-pranav2004/getdeal/common/db"
)

const widgetJSON = `[{"id":1,"title":"Widget","category":"Tools","description":"A widget"}]`

func writeDataFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSourceFetch(t *testing.T) {
	path := writeDataFile(t, widgetJSON)
	source := NewFileSource(db.NewFileDatabase(path))

	snapshot, appErr := source.Fetch(context.Background())
	require.Nil(t, appErr)
	require.Len(t, snapshot.Products, 1)
	assert.Equal(t, models.Text("Widget"), snapshot.Products[0].Title)
	assert.Equal(t, widgetJSON, string(snapshot.Raw))
	assert.Equal(t, path, source.Location())
}

func TestFileSourceRereadsFile(t *testing.T) {
	path := writeDataFile(t, widgetJSON)
	source := NewFileSource(db.NewFileDatabase(path))

	_, appErr := source.Fetch(context.Background())
	require.Nil(t, appErr)

	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))
	snapshot, appErr := source.Fetch(context.Background())
	require.Nil(t, appErr)
	assert.Empty(t, snapshot.Products)
}

func TestFileSourceMissingFile(t *testing.T) {
	source := NewFileSource(db.NewFileDatabase(filepath.Join(t.TempDir(), "missing.json")))

	_, appErr := source.Fetch(context.Background())
	require.NotNil(t, appErr)
	assert.Equal(t, apierrors.ErrCodeSourceUnavailable, appErr.Code)
}

func TestFileSourceMalformed(t *testing.T) {
	source := NewFileSource(db.NewFileDatabase(writeDataFile(t, `[{`)))

	_, appErr := source.Fetch(context.Background())
	require.NotNil(t, appErr)
	assert.Equal(t, apierrors.ErrCodeMalformedData, appErr.Code)
}

func TestHTTPSourceSendsNoStoreHeaders(t *testing.T) {
	var gotCacheControl, gotPragma string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCacheControl = r.Header.Get("Cache-Control")
		gotPragma = r.Header.Get("Pragma")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(widgetJSON))
	}))
	defer server.Close()

	source := NewHTTPSource(server.URL, time.Second)
	snapshot, appErr := source.Fetch(context.Background())

	require.Nil(t, appErr)
	require.Len(t, snapshot.Products, 1)
	assert.Equal(t, "no-cache, no-store", gotCacheControl)
	assert.Equal(t, "no-cache", gotPragma)
}

func TestHTTPSourceNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	_, appErr := NewHTTPSource(server.URL, time.Second).Fetch(context.Background())
	require.NotNil(t, appErr)
	assert.Equal(t, apierrors.ErrCodeSourceUnavailable, appErr.Code)
}

func TestHTTPSourceUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, appErr := NewHTTPSource(url, time.Second).Fetch(context.Background())
	require.NotNil(t, appErr)
	assert.Equal(t, apierrors.ErrCodeSourceUnavailable, appErr.Code)
}

func TestNewProductSourceSelection(t *testing.T) {
	cfg := config.NewDefaultConfig()
	database := db.NewFileDatabase("products.json")

	assert.Equal(t, "products.json", NewProductSource(cfg, database).Location())

	cfg.ProductSourceURL = "http://example.test/products.json"
	assert.Equal(t, "http://example.test/products.json", NewProductSource(cfg, database).Location())
}
