package testutils

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// HTTPTestSuite drives an http.Handler the way a browser submits forms
type HTTPTestSuite struct {
	Handler http.Handler
}

// SetupHTTPTest puts gin in test mode and wraps h
func SetupHTTPTest(h http.Handler) *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Handler: h}
}

// Get issues a GET request
func (s *HTTPTestSuite) Get(target string) *httptest.ResponseRecorder {
	return s.Do(httptest.NewRequest(http.MethodGet, target, nil))
}

// PostForm submits form as application/x-www-form-urlencoded
func (s *HTTPTestSuite) PostForm(target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.Do(req)
}

// Do executes req against the handler
func (s *HTTPTestSuite) Do(req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	s.Handler.ServeHTTP(recorder, req)
	return recorder
}

// AssertRedirect asserts a 302 to location
func AssertRedirect(t *testing.T, recorder *httptest.ResponseRecorder, location string) {
	t.Helper()
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, location, recorder.Header().Get("Location"))
}

// AssertHTMLResponse asserts the status, an HTML content type and that the
// body contains every fragment.
func AssertHTMLResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, fragments ...string) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Type"), "text/html")
	for _, f := range fragments {
		assert.Contains(t, recorder.Body.String(), f)
	}
}

// CampgroundForm builds the nested form fields of a campground submission
func CampgroundForm(fields map[string]string) url.Values {
	return nested("campground", fields)
}

// ReviewForm builds the nested form fields of a review submission
func ReviewForm(fields map[string]string) url.Values {
	return nested("review", fields)
}

func nested(prefix string, fields map[string]string) url.Values {
	form := url.Values{}
	for k, v := range fields {
		form.Set(prefix+"["+k+"]", v)
	}
	return form
}

// CreateTestGinContext creates a test Gin context
func CreateTestGinContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	return ctx, recorder
}

// SetURLParam sets URL parameters for a Gin context
func SetURLParam(ctx *gin.Context, kv ...string) {
	params := make(gin.Params, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		params = append(params, gin.Param{Key: kv[i], Value: kv[i+1]})
	}
	ctx.Params = params
}
