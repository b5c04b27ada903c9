package server

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/primetrade/landing/internal/config"
	"github.com/primetrade/landing/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Addr:          ":0",
		AppBaseURL:    "http://localhost:8080",
		SessionSecret: "a-very-secret-key-for-testing-!",
		CTARateLimit:  10,
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(testConfig())
	require.NoError(t, err)
	s.RegisterRoutes()
	return s
}

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	e := echo.New()

	// Capture log output to inspect it.
	var logBuffer bytes.Buffer
	handler := slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{
		AddSource: true,
	})
	originalLogger := slog.Default()
	slog.SetDefault(slog.New(handler))
	defer slog.SetDefault(originalLogger)

	setupErrorHandling(e)

	e.GET("/test-unhandled-error", func(c echo.Context) error {
		return errors.New("a deliberate unhandled error occurred")
	})

	req := httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code, "Expected a 500 Internal Server Error response")

	logOutput := logBuffer.String()
	assert.Contains(t, logOutput, "Internal Server Error (Unhandled)")
	assert.Contains(t, logOutput, "error=\"a deliberate unhandled error occurred\"")
	assert.Contains(t, logOutput, "stack_trace=")
	assert.Contains(t, logOutput, "runtime/debug/stack.go", "Stack trace should originate from the debug package")
	assert.Contains(t, logOutput, "internal/server/server_test.go", "Stack trace should point back to this test file")
}

func TestHTTPErrorHandler_StatusMapping(t *testing.T) {
	e := echo.New()
	setupErrorHandling(e)

	e.GET("/unknown-cta", func(c echo.Context) error {
		return fmt.Errorf("activate %q: %w", "nope", domain.ErrUnknownCTA)
	})
	e.GET("/forbidden", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusForbidden, "nope")
	})

	tests := []struct {
		path string
		code int
	}{
		{path: "/unknown-cta", code: http.StatusNotFound},
		{path: "/forbidden", code: http.StatusForbidden},
		{path: "/no-such-route", code: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestServer_Routes(t *testing.T) {
	s := newTestServer(t)

	t.Run("landing page", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		body := html.UnescapeString(rec.Body.String())
		for _, want := range []string{"Welcome to", "PrimeTrade.ai", "Get Started", "Sign In", "Task Analytics", "Secure & Private", "Fast & Reliable"} {
			assert.Contains(t, body, want)
		}
	})

	t.Run("get started navigates to register", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cta/get-started", nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/register", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("sign in navigates to login via htmx", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cta/sign-in", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("HX-Redirect"))
	})

	t.Run("unknown cta is not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cta/pricing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("static assets", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/css/landing.css", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), ".flash")
	})
}

func TestServer_CTARateLimitFromConfig(t *testing.T) {
	t.Setenv("SESSION_SECRET", "a-very-secret-key-for-testing-!")
	t.Setenv("CTA_RATE_LIMIT", "0.5")
	for _, k := range []string{"APP_ADDR", "APP_BASE_URL", "LOG_FORMAT", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	cfg, err := config.FromEnv()
	require.NoError(t, err)

	s, err := New(cfg)
	require.NoError(t, err)
	s.RegisterRoutes()

	serve := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/cta/get-started", nil)
		req.RemoteAddr = "192.0.2.20:1234"
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, req)
		return rec
	}

	first := serve()
	assert.Equal(t, http.StatusSeeOther, first.Code, "a fractional rate must still let the first activation through")
	assert.Equal(t, "/register", first.Header().Get(echo.HeaderLocation))

	assert.Equal(t, http.StatusTooManyRequests, serve().Code)
}
