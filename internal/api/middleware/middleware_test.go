package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"yelpcamp/internal/config"
	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/logger"
	"yelpcamp/internal/render"
	"yelpcamp/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r, err := render.New()
	require.NoError(t, err)

	engine := gin.New()
	engine.HTMLRender = r
	engine.Use(RequestID(), ErrorHandler(), Recovery())
	engine.NoRoute(NotFound)
	return engine
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestErrorHandler_StatusAndMessage(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", apperrors.ErrCampgroundNotFound, http.StatusNotFound, "Campground not found"},
		{"validation", apperrors.NewValidationError(`"review.body" is required`), http.StatusBadRequest, "&#34;review.body&#34; is required"},
		{"explicit status", apperrors.NewHTTPError(http.StatusTeapot, "short and stout"), http.StatusTeapot, "short and stout"},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError, apperrors.DefaultMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newEngine(t)
			engine.GET("/x", func(c *gin.Context) { _ = c.Error(tt.err) })

			rec := serve(engine, httptest.NewRequest(http.MethodGet, "/x", nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}

func TestErrorHandler_LeavesWrittenResponses(t *testing.T) {
	engine := newEngine(t)
	engine.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, "done")
		_ = c.Error(errors.New("late"))
	})

	rec := serve(engine, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}

func TestNotFound(t *testing.T) {
	rec := serve(newEngine(t), httptest.NewRequest(http.MethodGet, "/nonexistent", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestRecovery_RendersServerError(t *testing.T) {
	engine := newEngine(t)
	engine.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	rec := serve(engine, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apperrors.DefaultMessage)
}

func TestRequestID(t *testing.T) {
	engine := newEngine(t)
	var fromCtx string
	engine.GET("/id", func(c *gin.Context) {
		fromCtx = logger.RequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	rec := serve(engine, httptest.NewRequest(http.MethodGet, "/id", nil))
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.Equal(t, rec.Header().Get(RequestIDHeader), fromCtx)

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = serve(engine, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestMethodOverride(t *testing.T) {
	var seen string
	h := MethodOverride(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Method
	}))

	tests := []struct {
		name     string
		req      *http.Request
		expected string
	}{
		{"query delete", httptest.NewRequest(http.MethodPost, "/c/1?_method=DELETE", nil), http.MethodDelete},
		{"query lower case put", httptest.NewRequest(http.MethodPost, "/c/1?_method=put", nil), http.MethodPut},
		{"form field", formRequest("/c/1", url.Values{"_method": {"PATCH"}}), http.MethodPatch},
		{"unsupported value", httptest.NewRequest(http.MethodPost, "/c/1?_method=GET", nil), http.MethodPost},
		{"only post is overridden", httptest.NewRequest(http.MethodGet, "/c/1?_method=DELETE", nil), http.MethodGet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serve(h, tt.req)
			assert.Equal(t, tt.expected, seen)
		})
	}
}

func TestMethodOverride_KeepsFormReadable(t *testing.T) {
	engine := newEngine(t)
	var title string
	engine.PUT("/c", func(c *gin.Context) { title = c.PostForm("campground[title]") })

	serve(MethodOverride(engine), formRequest("/c?_method=PUT", url.Values{"campground[title]": {"Pines"}}))

	assert.Equal(t, "Pines", title)
}

func TestValidateCampground(t *testing.T) {
	engine := newEngine(t)
	var got *validation.CampgroundInput
	engine.POST("/c", ValidateCampground(validation.New()), func(c *gin.Context) {
		got, _ = CampgroundInput(c)
		c.Status(http.StatusCreated)
	})

	rec := serve(engine, formRequest("/c", url.Values{"campground[title]": {"Pines"}, "campground[price]": {"12"}}))
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "Pines", got.Title)
	assert.Equal(t, 12.0, *got.Price)

	got = nil
	rec = serve(engine, formRequest("/c", url.Values{"campground[price]": {"12"}}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "campground.title")
	assert.Nil(t, got)
}

func TestValidateReview(t *testing.T) {
	engine := newEngine(t)
	called := false
	engine.POST("/r", ValidateReview(validation.New()), func(c *gin.Context) {
		in, ok := ReviewInput(c)
		called = ok && in.Rating == 4
		c.Status(http.StatusCreated)
	})

	rec := serve(engine, formRequest("/r", url.Values{"review[body]": {"ok"}, "review[rating]": {"abc"}}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)

	rec = serve(engine, formRequest("/r", url.Values{"review[body]": {"ok"}, "review[rating]": {"4"}}))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, called)
}

func TestRateLimit(t *testing.T) {
	engine := newEngine(t)
	engine.Use(RateLimit(0.001, 1))
	engine.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	first := serve(engine, httptest.NewRequest(http.MethodGet, "/x", nil))
	second := serve(engine, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), "Too many requests")
}

func TestSecureHeaders(t *testing.T) {
	engine := newEngine(t)
	engine.Use(Secure(&config.Config{Environment: "test"}), Metrics(), Logger())
	engine.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rec := serve(engine, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
