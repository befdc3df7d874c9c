package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"yelpcamp/internal/api/handlers"
	"yelpcamp/internal/api/middleware"
	"yelpcamp/internal/database/models"
	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/mocks"
	"yelpcamp/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ReviewHandlerTestSuite defines the test suite for ReviewHandler
type ReviewHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockReviewSv *mocks.MockReviewServiceInterface
	handler      *handlers.ReviewHandler
	router       *gin.Engine
}

func (suite *ReviewHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockReviewSv = mocks.NewMockReviewServiceInterface(suite.ctrl)
	suite.handler = handlers.NewReviewHandler(suite.mockReviewSv)

	suite.router = newRouter(suite.T())
	suite.router.POST("/campgrounds/:id/reviews", middleware.ValidateReview(validation.New()), suite.handler.Create)
	suite.router.DELETE("/campgrounds/:id/reviews/:reviewId", suite.handler.Delete)
}

func (suite *ReviewHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReviewHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func reviewForm(body, rating string) url.Values {
	form := url.Values{}
	form.Set("review[body]", body)
	form.Set("review[rating]", rating)
	return form
}

func (suite *ReviewHandlerTestSuite) TestCreate_RedirectsToCampground() {
	campID := uuid.New()
	suite.mockReviewSv.EXPECT().
		Create(gomock.Any(), campID, &validation.ReviewInput{Body: "great", Rating: 5}).
		Return(&models.Review{BaseModel: models.BaseModel{ID: uuid.New()}, Body: "great", Rating: 5}, nil)

	w := suite.serve(postForm("/campgrounds/"+campID.String()+"/reviews", reviewForm("great", "5")))

	assert.Equal(suite.T(), http.StatusFound, w.Code)
	assert.Equal(suite.T(), "/campgrounds/"+campID.String(), w.Header().Get("Location"))
}

func (suite *ReviewHandlerTestSuite) TestCreate_InvalidRating() {
	campID := uuid.New()

	w := suite.serve(postForm("/campgrounds/"+campID.String()+"/reviews", reviewForm("meh", "7")))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "must be less than or equal to 5")
}

func (suite *ReviewHandlerTestSuite) TestCreate_MissingBody() {
	campID := uuid.New()

	w := suite.serve(postForm("/campgrounds/"+campID.String()+"/reviews", reviewForm("", "3")))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "review.body")
}

func (suite *ReviewHandlerTestSuite) TestCreate_CampgroundNotFound() {
	campID := uuid.New()
	suite.mockReviewSv.EXPECT().Create(gomock.Any(), campID, gomock.Any()).Return(nil, apperrors.ErrCampgroundNotFound)

	w := suite.serve(postForm("/campgrounds/"+campID.String()+"/reviews", reviewForm("great", "5")))

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Campground not found")
}

func (suite *ReviewHandlerTestSuite) TestDelete_RedirectsToCampground() {
	campID, reviewID := uuid.New(), uuid.New()
	suite.mockReviewSv.EXPECT().Delete(gomock.Any(), campID, reviewID).Return(nil)

	w := suite.serve(httptest.NewRequest(http.MethodDelete, "/campgrounds/"+campID.String()+"/reviews/"+reviewID.String(), nil))

	assert.Equal(suite.T(), http.StatusFound, w.Code)
	assert.Equal(suite.T(), "/campgrounds/"+campID.String(), w.Header().Get("Location"))
}

func (suite *ReviewHandlerTestSuite) TestDelete_ReviewNotFound() {
	campID, reviewID := uuid.New(), uuid.New()
	suite.mockReviewSv.EXPECT().Delete(gomock.Any(), campID, reviewID).Return(apperrors.ErrReviewNotFound)

	w := suite.serve(httptest.NewRequest(http.MethodDelete, "/campgrounds/"+campID.String()+"/reviews/"+reviewID.String(), nil))

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Review not found")
}

func (suite *ReviewHandlerTestSuite) TestDelete_MalformedReviewID() {
	campID := uuid.New()

	w := suite.serve(httptest.NewRequest(http.MethodDelete, "/campgrounds/"+campID.String()+"/reviews/nope", nil))

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Review not found")
}

func (suite *ReviewHandlerTestSuite) TestDelete_StoreFailure() {
	campID, reviewID := uuid.New(), uuid.New()
	suite.mockReviewSv.EXPECT().Delete(gomock.Any(), campID, reviewID).Return(errors.New("write conflict"))

	w := suite.serve(httptest.NewRequest(http.MethodDelete, "/campgrounds/"+campID.String()+"/reviews/"+reviewID.String(), nil))

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	assert.NotContains(suite.T(), w.Body.String(), "write conflict")
}

func TestReviewHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}
