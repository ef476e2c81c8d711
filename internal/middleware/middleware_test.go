package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/errs"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/sqlerr"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/testutil"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(e *echo.Echo, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func ok(c echo.Context) error {
	return c.String(http.StatusOK, GetRequestID(c))
}

func TestRequestIDGenerated(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", ok)

	rec := serve(e, http.MethodGet, "/", nil)

	id := rec.Header().Get(RequestIDHeader)
	assert.Len(t, id, 36)
	assert.Equal(t, id, rec.Body.String())
}

func TestRequestIDReused(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", ok)

	rec := serve(e, http.MethodGet, "/", http.Header{RequestIDHeader: {"abc-123"}})

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", rec.Body.String())
}

func TestRateLimitDisabledByDefault(t *testing.T) {
	s := testutil.NewServer(testutil.NewConfig())
	e := echo.New()
	e.Use(NewRateLimitMiddleware(s).Limit())
	e.GET("/", ok)

	for i := 0; i < 50; i++ {
		assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/", nil).Code)
	}
}

func TestRateLimitRejectsBurst(t *testing.T) {
	cfg := testutil.NewConfig()
	cfg.Server.RateLimit = 1
	cfg.Server.RateBurst = 2
	s := testutil.NewServer(cfg)

	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler
	e.Use(NewRateLimitMiddleware(s).Limit())
	e.GET("/", ok)

	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/", nil).Code)
	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/", nil).Code)

	rec := serve(e, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	other := serve(e, http.MethodGet, "/", http.Header{echo.HeaderXRealIP: {"10.0.0.9"}})
	assert.Equal(t, http.StatusOK, other.Code)
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "application error",
			err:     errs.NewBadRequestError("bad input", true, nil, nil),
			status:  http.StatusBadRequest,
			message: "bad input",
		},
		{
			name:    "tagged missing row",
			err:     sqlerr.TableError("orders", pgx.ErrNoRows),
			status:  http.StatusNotFound,
			message: "Order not found",
		},
		{
			name:    "echo error",
			err:     echo.ErrMethodNotAllowed,
			status:  http.StatusMethodNotAllowed,
			message: "Method Not Allowed",
		},
		{
			name:    "unknown error",
			err:     errors.New("connection reset by peer"),
			status:  http.StatusInternalServerError,
			message: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testutil.NewServer(testutil.NewConfig())
			e := echo.New()
			e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler
			e.GET("/", func(c echo.Context) error { return tt.err })

			rec := serve(e, http.MethodGet, "/", nil)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, errorBody(t, rec)["error"])
		})
	}
}

func TestGlobalErrorHandlerRouteNotFound(t *testing.T) {
	s := testutil.NewServer(testutil.NewConfig())
	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler

	rec := serve(e, http.MethodGet, "/missing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", errorBody(t, rec)["error"])
}

func TestGlobalErrorHandlerHead(t *testing.T) {
	s := testutil.NewServer(testutil.NewConfig())
	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler
	e.HEAD("/", func(c echo.Context) error { return errs.NewNotFoundError("gone", false, nil) })

	rec := serve(e, http.MethodHead, "/", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRecoverReturnsInternalError(t *testing.T) {
	s := testutil.NewServer(testutil.NewConfig())
	global := NewGlobalMiddlewares(s)
	e := echo.New()
	e.HTTPErrorHandler = global.GlobalErrorHandler
	e.Use(global.Recover())
	e.GET("/", func(c echo.Context) error { panic("boom") })

	rec := serve(e, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestEnhanceContextLogsRequestFields(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	s := testutil.NewServer(testutil.NewConfig())
	s.Logger = &logger

	e := echo.New()
	e.Use(RequestID())
	e.Use(NewContextEnhancer(s).EnhanceContext())
	e.GET("/users/:id", func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("below handler")
		return c.NoContent(http.StatusNoContent)
	})

	serve(e, http.MethodGet, "/users/7", http.Header{RequestIDHeader: {"req-1"}})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "/users/:id", line["path"])
	assert.Equal(t, http.MethodGet, line["method"])
}

func TestGetLoggerWithoutEnhancer(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.NotNil(t, GetLogger(c))
}

func TestCORSHeadersRestrictedOrigins(t *testing.T) {
	cfg := testutil.NewConfig()
	cfg.Server.CORSAllowedOrigins = []string{"http://shop.local"}
	s := testutil.NewServer(cfg)

	e := echo.New()
	e.Use(NewGlobalMiddlewares(s).CORSHeaders())
	e.GET("/", ok)

	rec := serve(e, http.MethodGet, "/", http.Header{echo.HeaderOrigin: {"http://shop.local"}})
	assert.Equal(t, "http://shop.local", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "GET,PUT,POST,DELETE,OPTIONS", rec.Header().Get(echo.HeaderAccessControlAllowMethods))

	rec = serve(e, http.MethodGet, "/", http.Header{echo.HeaderOrigin: {"http://evil.local"}})
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	rec = serve(e, http.MethodGet, "/", nil)
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "Content-Type,Authorization", rec.Header().Get(echo.HeaderAccessControlAllowHeaders))
}
