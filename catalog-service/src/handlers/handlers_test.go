package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/git-pranav2004/getdeal/catalog-service/src/chrome"
	"github.com/git-pranav2004/getdeal/catalog-service/src/models"
	"github.com/git-pranav2004/getdeal/catalog-service/src/repositories"
	"github.com/git-pranav2004/getdeal/catalog-service/src/services"
	"github.com/git-pranav2004/getdeal/catalog-service/src/view"
	apierrors "github.com/git-pranav2004/getdeal/common/apierrors"
	apiresponses "github.com/git-pranav2004/getdeal/common/apiresponses"
	"github.com/git-pranav2004/getdeal/common/config"
	db "github.com/git-pranav2004/getdeal/common/db"
	"github.com/git-pranav2004/getdeal/common/middleware"
)

const widgetJSON = `[{"id":1,"title":"Widget","category":"Tools","description":"A widget"}]`

func newTestApp(t *testing.T, dataPath string) *fiber.App {
	t.Helper()
	cfg := config.NewDefaultConfig()
	renderer := view.NewRenderer(view.NewOptions(cfg))
	chromeCtl := chrome.NewController(chrome.NewSettings(cfg))
	source := repositories.NewFileSource(db.NewFileDatabase(dataPath))

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(slog.Default())})
	app.Use(middleware.RequestID())
	RegisterRoutes(app,
		NewCatalogHandler(services.NewCatalogService(source, renderer, nil), renderer, chromeCtl),
		NewAdminHandler(services.NewAdminService(source, services.DisplayPublisher{}), renderer, chromeCtl),
	)
	return app
}

func writeData(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, string(body)
}

func cards(t *testing.T, body string) int {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	return doc.Find("div.card").Length()
}

func TestPageRendersSkeletons(t *testing.T) {
	app := newTestApp(t, writeData(t, widgetJSON))

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 6, doc.Find("#product-section .skeleton").Length())
}

func TestPageListsCategoriesOnColdStart(t *testing.T) {
	app := newTestApp(t, writeData(t, `[
		{"title":"Widget","category":"Tools"},
		{"title":"Lamp","category":"Home"}
	]`))

	_, body := do(t, app, httptest.NewRequest(http.MethodGet, "/", nil))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	var got []string
	doc.Find("nav.categories [data-category]").Each(func(_ int, s *goquery.Selection) {
		got = append(got, s.AttrOr("data-category", ""))
	})
	assert.Equal(t, []string{"all", "Home", "Tools"}, got)
}

func TestPageRendersWhenSourceMissing(t *testing.T) {
	app := newTestApp(t, filepath.Join(t.TempDir(), "missing.json"))

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find("nav.categories [data-category]").Length())
}

func TestLongQueriesAreAnsweredWithFragments(t *testing.T) {
	app := newTestApp(t, writeData(t, widgetJSON))
	do(t, app, httptest.NewRequest(http.MethodGet, "/catalog/load", nil))

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/catalog?q="+strings.Repeat("w", 300), nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, view.EmptyMessage)

	resp, body = do(t, app, httptest.NewRequest(http.MethodGet, "/catalog?category="+strings.Repeat("c", 100), nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, view.EmptyMessage)
}

func TestCatalogLoadSearchAndFilter(t *testing.T) {
	app := newTestApp(t, writeData(t, widgetJSON))

	resp, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/catalog?category=Tools", nil))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode, "filter before load")

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/catalog/load", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, cards(t, body))
	assert.Equal(t, "no-store", resp.Header.Get(fiber.HeaderCacheControl))

	for _, q := range []string{"widget", "WIDGET"} {
		resp, body = do(t, app, httptest.NewRequest(http.MethodGet, "/catalog?q="+q, nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 1, cards(t, body), q)
	}

	_, body = do(t, app, httptest.NewRequest(http.MethodGet, "/catalog?q=gadget", nil))
	assert.Equal(t, 0, cards(t, body))
	assert.Contains(t, body, view.EmptyMessage)

	_, body = do(t, app, httptest.NewRequest(http.MethodGet, "/catalog?category=tools", nil))
	assert.Equal(t, 1, cards(t, body))

	_, body = do(t, app, httptest.NewRequest(http.MethodGet, "/catalog", nil))
	assert.Equal(t, 1, cards(t, body))
}

func TestCatalogLoadFailure(t *testing.T) {
	app := newTestApp(t, filepath.Join(t.TempDir(), "missing.json"))

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/catalog/load", nil))
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, body, "Unable to load products")
	assert.Equal(t, 0, cards(t, body))
}

func TestLiveDataAndProductList(t *testing.T) {
	app := newTestApp(t, writeData(t, widgetJSON))

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/products.json", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, widgetJSON, body)
	assert.Equal(t, "no-store", resp.Header.Get(fiber.HeaderCacheControl))

	do(t, app, httptest.NewRequest(http.MethodGet, "/catalog/load", nil))

	resp, body = do(t, app, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Status string           `json:"status"`
		Data   []models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	assert.Equal(t, "success", envelope.Status)
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, models.Text("Widget"), envelope.Data[0].Title)
}

func TestThemeToggleTwiceRestores(t *testing.T) {
	app := newTestApp(t, writeData(t, widgetJSON))

	toggle := func(cookie string) apiresponses.ThemeState {
		req := httptest.NewRequest(http.MethodPost, "/theme/toggle", nil)
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: chrome.CookieName, Value: cookie})
		}
		resp, body := do(t, app, req)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var state apiresponses.ThemeState
		require.NoError(t, json.Unmarshal([]byte(body), &state))
		for _, c := range resp.Cookies() {
			if c.Name == chrome.CookieName {
				assert.Equal(t, state.Theme, c.Value)
			}
		}
		return state
	}

	first := toggle("")
	assert.Equal(t, "dark", first.Theme)
	assert.Equal(t, "☀️", first.Icon)

	second := toggle(first.Theme)
	assert.Equal(t, "light", second.Theme)
	assert.Equal(t, "🌙", second.Icon)
}

func TestCopyJSONBeforeAdd(t *testing.T) {
	app := newTestApp(t, writeData(t, widgetJSON))

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/admin/output", nil))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var envelope apiresponses.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	assert.Equal(t, apierrors.ErrCodeNothingToCopy, envelope.Error.Code)
	assert.Equal(t, "No JSON data to copy!", envelope.Error.Message)
}

func postForm(values url.Values, accept string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/admin/products", strings.NewReader(values.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	if accept != "" {
		req.Header.Set(fiber.HeaderAccept, accept)
	}
	return req
}

func TestAddProductJSONWithEmptyTitle(t *testing.T) {
	app := newTestApp(t, writeData(t, widgetJSON))

	form := url.Values{"title": {""}, "price": {"12"}, "desc": {"No name"}, "category": {"Misc"}}
	resp, body := do(t, app, postForm(form, fiber.MIMEApplicationJSON))
	require.Equal(t, http.StatusOK, resp.StatusCode, body)

	var envelope struct {
		Data apiresponses.AdminResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	assert.Equal(t, 2, envelope.Data.Count)
	assert.False(t, envelope.Data.Published)
	assert.Equal(t, services.PublisherDisplay, envelope.Data.Publisher)
	assert.Contains(t, envelope.Data.Output, `"title": ""`)
	assert.Contains(t, envelope.Data.Output, `"description": "No name"`)

	resp, copied := do(t, app, httptest.NewRequest(http.MethodGet, "/admin/output", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, envelope.Data.Output, copied)
}

func TestAddProductAcceptsLongFields(t *testing.T) {
	app := newTestApp(t, writeData(t, widgetJSON))
	title := strings.Repeat("t", 600)

	resp, body := do(t, app, postForm(url.Values{"title": {title}, "desc": {strings.Repeat("d", 10000)}}, fiber.MIMEApplicationJSON))
	require.Equal(t, http.StatusOK, resp.StatusCode, body)

	var envelope struct {
		Data apiresponses.AdminResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	assert.Contains(t, envelope.Data.Output, title)
}

func TestAddProductHTML(t *testing.T) {
	app := newTestApp(t, writeData(t, widgetJSON))

	resp, body := do(t, app, postForm(url.Values{"title": {"Lamp"}}, "text/html"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	assert.Contains(t, doc.Find("#output").Text(), `"title": "Lamp"`)
	assert.Contains(t, doc.Find(".notice").Text(), "Product added successfully")
}

func TestAddProductSourceFailureHTML(t *testing.T) {
	app := newTestApp(t, filepath.Join(t.TempDir(), "missing.json"))

	resp, body := do(t, app, postForm(url.Values{"title": {"Lamp"}}, ""))
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Find(".error").Text())
	assert.Empty(t, doc.Find("#output").Text())
}

func TestStatusAndMetrics(t *testing.T) {
	app := newTestApp(t, writeData(t, widgetJSON))

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/status", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"productsLoaded":false`)

	resp, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	do(t, app, httptest.NewRequest(http.MethodGet, "/catalog/load", nil))

	resp, body = do(t, app, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "catalog_loads_total")
}
