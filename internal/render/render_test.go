package render

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"yelpcamp/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderPage(t *testing.T, r *Renderer, name string, data interface{}) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, r.Instance(name, data).Render(rec))
	return rec
}

func TestNew_ParsesEveryPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	for _, name := range []string{PageHome, PageCampgroundIndex, PageCampgroundNew, PageCampgroundShow, PageCampgroundEdit, PageError} {
		assert.True(t, r.Has(name), name)
	}
	assert.False(t, r.Has("layout"))
}

func TestShowPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	price := 25.0
	camp := &models.Campground{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Title:       "Pine Ridge",
		Price:       &price,
		Location:    "Boulder, CO",
		Description: "<b>bold</b>",
	}
	review := models.Review{BaseModel: models.BaseModel{ID: uuid.New()}, Body: "Great spot", Rating: 5}

	rec := renderPage(t, r, PageCampgroundShow, gin.H{
		"PageTitle":  camp.Title,
		"Campground": camp,
		"Reviews":    []models.Review{review},
	})

	body := rec.Body.String()
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, body, "<title>YelpCamp | Pine Ridge</title>")
	assert.Contains(t, body, "$25/night")
	assert.Contains(t, body, "Boulder, CO")
	assert.Contains(t, body, "Great spot")
	assert.Contains(t, body, "★★★★★")
	assert.Contains(t, body, "&lt;b&gt;bold&lt;/b&gt;")
	assert.Contains(t, body, "/campgrounds/"+camp.ID.String()+"/reviews/"+review.ID.String()+"?_method=DELETE")
}

func TestEditPage_PrefillsEditableFields(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	price := 12.5
	camp := &models.Campground{BaseModel: models.BaseModel{ID: uuid.New()}, Title: "Lakeside", Location: "Moab, UT", Price: &price}

	rec := renderPage(t, r, PageCampgroundEdit, gin.H{"Campground": camp})

	body := rec.Body.String()
	assert.Contains(t, body, `value="Lakeside"`)
	assert.Contains(t, body, `value="12.5"`)
	assert.Contains(t, body, "?_method=PUT")
}

func TestErrorPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	rec := renderPage(t, r, PageError, gin.H{"Status": http.StatusNotFound, "Message": "Page not found"})

	assert.Contains(t, rec.Body.String(), "404 Page not found")
}

func TestInstance_UnknownPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	err = r.Instance("nope", nil).Render(httptest.NewRecorder())

	assert.Error(t, err)
}

func TestFormatHelpers(t *testing.T) {
	p := 10.0
	assert.Equal(t, "", formatPrice(nil))
	assert.Equal(t, "10", formatPrice(&p))
	assert.Equal(t, "★★★☆☆", stars(3))
	assert.Equal(t, "☆☆☆☆☆", stars(-1))
}
