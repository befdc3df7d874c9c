package service_test

import (
	"context"
	"errors"
	"testing"

	"yelpcamp/internal/database/models"
	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/mocks"
	"yelpcamp/internal/repository"
	"yelpcamp/internal/service"
	"yelpcamp/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	ctx            context.Context
	mockCampRepo   *mocks.MockCampgroundRepositoryInterface
	mockReviewRepo *mocks.MockReviewRepositoryInterface
	service        *service.ReviewService
}

func (suite *ReviewServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ctx = context.Background()
	suite.mockCampRepo = mocks.NewMockCampgroundRepositoryInterface(suite.ctrl)
	suite.mockReviewRepo = mocks.NewMockReviewRepositoryInterface(suite.ctrl)
	suite.service = service.NewReviewService(repository.PassThrough{Repos: repository.Repositories{
		Campgrounds: suite.mockCampRepo,
		Reviews:     suite.mockReviewRepo,
	}})
}

func (suite *ReviewServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReviewServiceTestSuite) TestCreate_AppendsToCampground() {
	campID := uuid.New()
	reviewID := uuid.New()

	gomock.InOrder(
		suite.mockCampRepo.EXPECT().GetByID(suite.ctx, campID).Return(&models.Campground{}, nil),
		suite.mockReviewRepo.EXPECT().Create(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *models.Review) error {
			r.ID = reviewID
			return nil
		}),
		suite.mockCampRepo.EXPECT().AddReview(suite.ctx, campID, reviewID).Return(nil),
	)

	review, err := suite.service.Create(suite.ctx, campID, &validation.ReviewInput{Body: "Great spot", Rating: 5})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), reviewID, review.ID)
	assert.Equal(suite.T(), "Great spot", review.Body)
	assert.Equal(suite.T(), 5.0, review.Rating)
}

func (suite *ReviewServiceTestSuite) TestCreate_CampgroundMissing() {
	campID := uuid.New()
	suite.mockCampRepo.EXPECT().GetByID(suite.ctx, campID).Return(nil, apperrors.ErrCampgroundNotFound)

	review, err := suite.service.Create(suite.ctx, campID, &validation.ReviewInput{Body: "x", Rating: 3})

	assert.Nil(suite.T(), review)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCampgroundNotFound)
}

func (suite *ReviewServiceTestSuite) TestCreate_ReviewInsertFails() {
	campID := uuid.New()
	suite.mockCampRepo.EXPECT().GetByID(suite.ctx, campID).Return(&models.Campground{}, nil)
	suite.mockReviewRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(errors.New("insert failed"))

	_, err := suite.service.Create(suite.ctx, campID, &validation.ReviewInput{Body: "x", Rating: 3})

	assert.ErrorContains(suite.T(), err, "insert failed")
}

func (suite *ReviewServiceTestSuite) TestDelete_PullsThenDeletes() {
	reviewID := uuid.New()
	camp := &models.Campground{BaseModel: models.BaseModel{ID: uuid.New()}, Reviews: []uuid.UUID{uuid.New(), reviewID}}

	gomock.InOrder(
		suite.mockCampRepo.EXPECT().GetByID(suite.ctx, camp.ID).Return(camp, nil),
		suite.mockCampRepo.EXPECT().RemoveReview(suite.ctx, camp.ID, reviewID).Return(nil),
		suite.mockReviewRepo.EXPECT().Delete(suite.ctx, reviewID).Return(nil),
	)

	err := suite.service.Delete(suite.ctx, camp.ID, reviewID)

	assert.NoError(suite.T(), err)
}

func (suite *ReviewServiceTestSuite) TestDelete_ReviewNotListed() {
	camp := &models.Campground{BaseModel: models.BaseModel{ID: uuid.New()}, Reviews: []uuid.UUID{uuid.New()}}
	suite.mockCampRepo.EXPECT().GetByID(suite.ctx, camp.ID).Return(camp, nil)

	err := suite.service.Delete(suite.ctx, camp.ID, uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrReviewNotFound)
}

func (suite *ReviewServiceTestSuite) TestDelete_CampgroundMissing() {
	campID := uuid.New()
	suite.mockCampRepo.EXPECT().GetByID(suite.ctx, campID).Return(nil, apperrors.ErrCampgroundNotFound)

	err := suite.service.Delete(suite.ctx, campID, uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrCampgroundNotFound)
}

func (suite *ReviewServiceTestSuite) TestDelete_MissingRecordStillDetaches() {
	reviewID := uuid.New()
	camp := &models.Campground{BaseModel: models.BaseModel{ID: uuid.New()}, Reviews: []uuid.UUID{reviewID}}
	suite.mockCampRepo.EXPECT().GetByID(suite.ctx, camp.ID).Return(camp, nil)
	suite.mockCampRepo.EXPECT().RemoveReview(suite.ctx, camp.ID, reviewID).Return(nil)
	suite.mockReviewRepo.EXPECT().Delete(suite.ctx, reviewID).Return(apperrors.ErrReviewNotFound)

	err := suite.service.Delete(suite.ctx, camp.ID, reviewID)

	assert.NoError(suite.T(), err)
}

func TestReviewServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewServiceTestSuite))
}
