package routes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"yelpcamp/internal/api/routes"
	"yelpcamp/internal/config"
	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/store"
	"yelpcamp/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RoutesTestSuite drives the full router against an in-memory SQLite store
type RoutesTestSuite struct {
	suite.Suite
	store *store.Store
	http  *testutils.HTTPTestSuite
	ctx   context.Context
}

func (suite *RoutesTestSuite) SetupTest() {
	suite.ctx = context.Background()
	db := testutils.NewSQLiteDB(suite.T(), "routes_"+strings.ReplaceAll(uuid.NewString(), "-", ""))
	suite.store = store.FromGorm(config.DriverSQLite, db)

	cfg := &config.Config{Environment: "test"}
	h, err := routes.NewHandler(suite.store, cfg)
	suite.Require().NoError(err)
	suite.http = testutils.SetupHTTPTest(h)
}

// createCampground posts a campground and returns its id from the redirect
func (suite *RoutesTestSuite) createCampground(fields map[string]string) uuid.UUID {
	w := suite.http.PostForm("/campgrounds", testutils.CampgroundForm(fields))
	suite.Require().Equal(http.StatusFound, w.Code, w.Body.String())
	location := w.Header().Get("Location")
	suite.Require().True(strings.HasPrefix(location, "/campgrounds/"), location)
	id, err := uuid.Parse(strings.TrimPrefix(location, "/campgrounds/"))
	suite.Require().NoError(err)
	return id
}

func (suite *RoutesTestSuite) addReview(campID uuid.UUID, body, rating string) {
	w := suite.http.PostForm("/campgrounds/"+campID.String()+"/reviews",
		testutils.ReviewForm(map[string]string{"body": body, "rating": rating}))
	testutils.AssertRedirect(suite.T(), w, "/campgrounds/"+campID.String())
}

func (suite *RoutesTestSuite) TestCreateAndShow() {
	id := suite.createCampground(map[string]string{"title": "Pine Ridge", "price": "25", "location": "Boulder, CO"})

	w := suite.http.Get("/campgrounds/" + id.String())
	testutils.AssertHTMLResponse(suite.T(), w, http.StatusOK, "Pine Ridge", "25", "Boulder, CO")

	stored, err := suite.store.Campgrounds.GetByID(suite.ctx, id)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Pine Ridge", stored.Title)
	assert.Equal(suite.T(), "Boulder, CO", stored.Location)
	suite.Require().NotNil(stored.Price)
	assert.Equal(suite.T(), 25.0, *stored.Price)
	assert.Empty(suite.T(), stored.Reviews)
}

func (suite *RoutesTestSuite) TestCreate_MissingTitleCreatesNothing() {
	w := suite.http.PostForm("/campgrounds", testutils.CampgroundForm(map[string]string{"price": "10"}))

	testutils.AssertHTMLResponse(suite.T(), w, http.StatusBadRequest, "is required")
	all, err := suite.store.Campgrounds.GetAll(suite.ctx)
	suite.Require().NoError(err)
	assert.Empty(suite.T(), all)
}

func (suite *RoutesTestSuite) TestIndexListsCampgrounds() {
	suite.createCampground(map[string]string{"title": "Alpha Camp"})
	suite.createCampground(map[string]string{"title": "Beta Camp"})

	w := suite.http.Get("/campgrounds")
	testutils.AssertHTMLResponse(suite.T(), w, http.StatusOK, "Alpha Camp", "Beta Camp")
}

func (suite *RoutesTestSuite) TestAddReview() {
	id := suite.createCampground(map[string]string{"title": "Lakeside"})

	suite.addReview(id, "Great spot", "5")

	w := suite.http.Get("/campgrounds/" + id.String())
	testutils.AssertHTMLResponse(suite.T(), w, http.StatusOK, "Great spot", "Reviews (1)")
	stored, err := suite.store.Campgrounds.GetByID(suite.ctx, id)
	suite.Require().NoError(err)
	assert.Len(suite.T(), stored.Reviews, 1)
}

func (suite *RoutesTestSuite) TestAddReview_NonNumericRating() {
	id := suite.createCampground(map[string]string{"title": "Lakeside"})

	w := suite.http.PostForm("/campgrounds/"+id.String()+"/reviews",
		testutils.ReviewForm(map[string]string{"body": "fine", "rating": "five"}))

	testutils.AssertHTMLResponse(suite.T(), w, http.StatusBadRequest, "must be a number")
	stored, err := suite.store.Campgrounds.GetByID(suite.ctx, id)
	suite.Require().NoError(err)
	assert.Empty(suite.T(), stored.Reviews)
	count, err := suite.store.Reviews.Count(suite.ctx)
	suite.Require().NoError(err)
	assert.Zero(suite.T(), count)
}

func (suite *RoutesTestSuite) TestAddReview_UnknownCampground() {
	w := suite.http.PostForm("/campgrounds/"+uuid.NewString()+"/reviews",
		testutils.ReviewForm(map[string]string{"body": "lost", "rating": "3"}))

	testutils.AssertHTMLResponse(suite.T(), w, http.StatusNotFound, "Campground not found")
	count, err := suite.store.Reviews.Count(suite.ctx)
	suite.Require().NoError(err)
	assert.Zero(suite.T(), count)
}

func (suite *RoutesTestSuite) TestUpdateThroughMethodOverride() {
	id := suite.createCampground(map[string]string{
		"title": "Old", "price": "10", "location": "Here",
		"image": "https://example.com/a.jpg", "description": "keep me",
	})
	suite.addReview(id, "nice", "4")

	w := suite.http.PostForm("/campgrounds/"+id.String()+"?_method=PUT",
		testutils.CampgroundForm(map[string]string{"title": "New", "price": "30", "location": "There"}))
	testutils.AssertRedirect(suite.T(), w, "/campgrounds/"+id.String())

	stored, err := suite.store.Campgrounds.GetByID(suite.ctx, id)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "New", stored.Title)
	assert.Equal(suite.T(), "There", stored.Location)
	suite.Require().NotNil(stored.Price)
	assert.Equal(suite.T(), 30.0, *stored.Price)
	assert.Equal(suite.T(), "https://example.com/a.jpg", stored.Image)
	assert.Equal(suite.T(), "keep me", stored.Description)
	assert.Len(suite.T(), stored.Reviews, 1)
}

func (suite *RoutesTestSuite) TestEditForm() {
	id := suite.createCampground(map[string]string{"title": "Editable"})

	w := suite.http.Get("/campgrounds/" + id.String() + "/edit")
	testutils.AssertHTMLResponse(suite.T(), w, http.StatusOK, "Editable", "?_method=PUT")
}

func (suite *RoutesTestSuite) TestDeleteCascadesReviews() {
	keep := suite.createCampground(map[string]string{"title": "Keeper"})
	suite.addReview(keep, "stays", "3")
	id := suite.createCampground(map[string]string{"title": "Doomed"})
	suite.addReview(id, "first", "5")
	suite.addReview(id, "second", "1")

	stored, err := suite.store.Campgrounds.GetByID(suite.ctx, id)
	suite.Require().NoError(err)
	reviewIDs := stored.Reviews
	suite.Require().Len(reviewIDs, 2)

	w := suite.http.PostForm("/campgrounds/"+id.String()+"?_method=DELETE", nil)
	testutils.AssertRedirect(suite.T(), w, "/campgrounds")

	for _, rid := range reviewIDs {
		_, err := suite.store.Reviews.GetByID(suite.ctx, rid)
		assert.ErrorIs(suite.T(), err, apperrors.ErrReviewNotFound)
	}
	_, err = suite.store.Campgrounds.GetByID(suite.ctx, id)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCampgroundNotFound)
	count, err := suite.store.Reviews.Count(suite.ctx)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(1), count)

	w = suite.http.Get("/campgrounds/" + id.String())
	testutils.AssertHTMLResponse(suite.T(), w, http.StatusNotFound, "Campground not found")
}

func (suite *RoutesTestSuite) TestDeleteSingleReview() {
	id := suite.createCampground(map[string]string{"title": "Two Reviews"})
	suite.addReview(id, "keep", "4")
	suite.addReview(id, "drop", "2")

	stored, err := suite.store.Campgrounds.GetByID(suite.ctx, id)
	suite.Require().NoError(err)
	suite.Require().Len(stored.Reviews, 2)
	kept, dropped := stored.Reviews[0], stored.Reviews[1]

	w := suite.http.PostForm("/campgrounds/"+id.String()+"/reviews/"+dropped.String()+"?_method=DELETE", nil)
	testutils.AssertRedirect(suite.T(), w, "/campgrounds/"+id.String())

	stored, err = suite.store.Campgrounds.GetByID(suite.ctx, id)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), []uuid.UUID{kept}, stored.Reviews)
	_, err = suite.store.Reviews.GetByID(suite.ctx, dropped)
	assert.ErrorIs(suite.T(), err, apperrors.ErrReviewNotFound)
	_, err = suite.store.Reviews.GetByID(suite.ctx, kept)
	assert.NoError(suite.T(), err)

	// a second delete of the same review is a 404
	w = suite.http.PostForm("/campgrounds/"+id.String()+"/reviews/"+dropped.String()+"?_method=DELETE", nil)
	testutils.AssertHTMLResponse(suite.T(), w, http.StatusNotFound, "Review not found")
}

func (suite *RoutesTestSuite) TestUnknownPath() {
	w := suite.http.Get("/nonexistent")
	testutils.AssertHTMLResponse(suite.T(), w, http.StatusNotFound, "Page not found")
}

func (suite *RoutesTestSuite) TestHomeAndHealth() {
	testutils.AssertHTMLResponse(suite.T(), suite.http.Get("/"), http.StatusOK, "YelpCamp")

	w := suite.http.Get("/health")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"sqlite":"healthy"`)
}

func (suite *RoutesTestSuite) TestMetricsEndpoint() {
	suite.http.Get("/campgrounds")

	w := suite.http.Get("/metrics")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "yelpcamp_http_request_duration_seconds")
}

func (suite *RoutesTestSuite) TestSecurityHeaders() {
	w := suite.http.Get("/campgrounds")
	assert.Equal(suite.T(), "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(suite.T(), "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}

func TestRateLimitEnabled(t *testing.T) {
	db := testutils.NewSQLiteDB(t, "routes_ratelimit")
	st := store.FromGorm(config.DriverSQLite, db)
	h, err := routes.NewHandler(st, &config.Config{Environment: "test", RateLimitRPS: 1, RateLimitBurst: 1})
	require.NoError(t, err)

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
