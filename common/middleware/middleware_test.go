package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/git-pranav2004/getdeal/common/apierrors"
	apiresponses "github.com/git-pranav2004/getdeal/common/apiresponses"
)

func newApp() *fiber.App {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger)})
	app.Use(RequestID())
	app.Use(RequestLogger(logger))
	app.Use(RecoverMiddleware(logger))
	return app
}

func decodeError(t *testing.T, resp *http.Response) apiresponses.ErrorResponse {
	t.Helper()
	defer resp.Body.Close()
	var body apiresponses.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestErrorHandlerStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{apierrors.NewBusinessError(apierrors.ErrCodeNothingToCopy, "No JSON data to copy!", nil), http.StatusBadRequest, apierrors.ErrCodeNothingToCopy},
		{apierrors.NewBusinessError(apierrors.ErrCodeRequestValidation, "bad", nil), http.StatusBadRequest, apierrors.ErrCodeRequestValidation},
		{apierrors.NewApplicationError(apierrors.ErrCodeSourceUnavailable, "down", nil), http.StatusBadGateway, apierrors.ErrCodeSourceUnavailable},
		{apierrors.NewApplicationError(apierrors.ErrCodePublishFailed, "publish", nil), http.StatusBadGateway, apierrors.ErrCodePublishFailed},
		{apierrors.NewApplicationError(apierrors.ErrCodeInternalProcessing, "oops", nil), http.StatusInternalServerError, apierrors.ErrCodeInternalProcessing},
		{errors.New("plain"), http.StatusInternalServerError, apierrors.ErrCodeUnknown},
	}

	for _, tc := range cases {
		app := newApp()
		err := tc.err
		app.Get("/", func(c *fiber.Ctx) error { return err })

		resp, testErr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, testErr)
		assert.Equal(t, tc.status, resp.StatusCode, tc.code)

		body := decodeError(t, resp)
		assert.Equal(t, "error", body.Status)
		assert.Equal(t, tc.code, body.Error.Code)
		assert.NotEmpty(t, body.Error.RequestID)
	}
}

func TestErrorHandlerNotFound(t *testing.T) {
	app := newApp()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
}

func TestRecoverMiddleware(t *testing.T) {
	app := newApp()
	app.Get("/panic", func(c *fiber.Ctx) error { panic("kaboom") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, apierrors.ErrCodeSystemPanic, decodeError(t, resp).Error.Code)
}

func TestRequestIDReusesIncomingHeader(t *testing.T) {
	app := newApp()
	var seen string
	app.Get("/", func(c *fiber.Ctx) error {
		seen = RequestIDFromContext(c.UserContext())
		return c.SendStatus(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "req-123", resp.Header.Get(RequestIDHeader))
	assert.Equal(t, "req-123", seen)
}
