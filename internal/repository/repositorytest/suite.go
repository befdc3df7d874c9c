// Package repositorytest holds the behaviour every repository backend must
// share. Backend packages run ContractSuite against their own store.
package repositorytest

import (
	"context"
	"errors"
	"time"

	"yelpcamp/internal/database/models"
	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/repository"
	"yelpcamp/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ContractSuite exercises a repository.Repositories implementation
type ContractSuite struct {
	suite.Suite
	Repos repository.Repositories
	Tx    repository.Transactor
	// Transactional is set when Tx rolls back on error
	Transactional bool

	ctx       context.Context
	factories *testutils.FactorySet
}

// SetupTest empties both collections
func (s *ContractSuite) SetupTest() {
	s.ctx = context.Background()
	s.factories = testutils.NewFactorySet()
	_, err := s.Repos.Reviews.DeleteAll(s.ctx)
	s.Require().NoError(err)
	_, err = s.Repos.Campgrounds.DeleteAll(s.ctx)
	s.Require().NoError(err)
}

func (s *ContractSuite) createCampground(created time.Time) *models.Campground {
	c := s.factories.Campground.Create()
	c.CreatedAt = created
	s.Require().NoError(s.Repos.Campgrounds.Create(s.ctx, c))
	return c
}

func (s *ContractSuite) createReview() *models.Review {
	r := s.factories.Review.Create()
	s.Require().NoError(s.Repos.Reviews.Create(s.ctx, r))
	return r
}

func (s *ContractSuite) TestCreateAssignsIdentity() {
	c := s.factories.Campground.Create()

	err := s.Repos.Campgrounds.Create(s.ctx, c)

	s.NoError(err)
	s.NotEqual(uuid.Nil, c.ID)
	s.NotZero(c.CreatedAt)
	s.NotZero(c.UpdatedAt)
	s.NotNil(c.Reviews)
}

func (s *ContractSuite) TestGetByIDRoundTrip() {
	c := s.factories.Campground.Create()
	c.Description = "Pine forest with creek access"
	s.Require().NoError(s.Repos.Campgrounds.Create(s.ctx, c))

	got, err := s.Repos.Campgrounds.GetByID(s.ctx, c.ID)

	s.Require().NoError(err)
	s.Equal(c.ID, got.ID)
	s.Equal(c.Title, got.Title)
	s.Require().NotNil(got.Price)
	s.Equal(*c.Price, *got.Price)
	s.Equal(c.Image, got.Image)
	s.Equal(c.Description, got.Description)
	s.Equal(c.Location, got.Location)
	s.Empty(got.Reviews)
}

func (s *ContractSuite) TestGetByIDWithoutPrice() {
	c := s.factories.Campground.WithoutPrice()
	s.Require().NoError(s.Repos.Campgrounds.Create(s.ctx, c))

	got, err := s.Repos.Campgrounds.GetByID(s.ctx, c.ID)

	s.Require().NoError(err)
	s.Nil(got.Price)
}

func (s *ContractSuite) TestGetByIDNotFound() {
	_, err := s.Repos.Campgrounds.GetByID(s.ctx, uuid.New())
	s.True(errors.Is(err, apperrors.ErrCampgroundNotFound))
}

func (s *ContractSuite) TestGetAllInCreationOrder() {
	base := time.Now().UTC().Truncate(time.Millisecond)
	second := s.createCampground(base.Add(2 * time.Second))
	first := s.createCampground(base.Add(1 * time.Second))
	third := s.createCampground(base.Add(3 * time.Second))

	all, err := s.Repos.Campgrounds.GetAll(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal(first.ID, all[0].ID)
	s.Equal(second.ID, all[1].ID)
	s.Equal(third.ID, all[2].ID)
}

func (s *ContractSuite) TestGetAllEmpty() {
	all, err := s.Repos.Campgrounds.GetAll(s.ctx)
	s.NoError(err)
	s.Empty(all)
}

func (s *ContractSuite) TestUpdateChangesOnlyEditableFields() {
	c := s.factories.Campground.Create()
	s.Require().NoError(s.Repos.Campgrounds.Create(s.ctx, c))

	price := 42.5
	updated, err := s.Repos.Campgrounds.Update(s.ctx, c.ID, models.CampgroundUpdate{
		Title:    "Renamed",
		Location: "Boise, Idaho",
		Price:    &price,
	})

	s.Require().NoError(err)
	s.Equal("Renamed", updated.Title)
	s.Equal("Boise, Idaho", updated.Location)
	s.Require().NotNil(updated.Price)
	s.Equal(42.5, *updated.Price)
	s.Equal(c.Image, updated.Image)
	s.Equal(c.Description, updated.Description)
}

func (s *ContractSuite) TestUpdateClearsPrice() {
	c := s.factories.Campground.Create()
	s.Require().NoError(s.Repos.Campgrounds.Create(s.ctx, c))

	updated, err := s.Repos.Campgrounds.Update(s.ctx, c.ID, models.CampgroundUpdate{Title: c.Title})

	s.Require().NoError(err)
	s.Nil(updated.Price)
}

func (s *ContractSuite) TestUpdateNotFound() {
	_, err := s.Repos.Campgrounds.Update(s.ctx, uuid.New(), models.CampgroundUpdate{Title: "x"})
	s.True(errors.Is(err, apperrors.ErrCampgroundNotFound))
}

func (s *ContractSuite) TestAddAndRemoveReviewKeepsOrder() {
	c := s.createCampground(time.Time{})
	r1, r2, r3 := s.createReview(), s.createReview(), s.createReview()

	for _, r := range []*models.Review{r1, r2, r3} {
		s.Require().NoError(s.Repos.Campgrounds.AddReview(s.ctx, c.ID, r.ID))
	}
	got, err := s.Repos.Campgrounds.GetByID(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{r1.ID, r2.ID, r3.ID}, got.Reviews)

	s.Require().NoError(s.Repos.Campgrounds.RemoveReview(s.ctx, c.ID, r2.ID))
	got, err = s.Repos.Campgrounds.GetByID(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{r1.ID, r3.ID}, got.Reviews)
}

func (s *ContractSuite) TestRemoveAbsentReviewIsNoop() {
	c := s.createCampground(time.Time{})
	r := s.createReview()
	s.Require().NoError(s.Repos.Campgrounds.AddReview(s.ctx, c.ID, r.ID))

	s.NoError(s.Repos.Campgrounds.RemoveReview(s.ctx, c.ID, uuid.New()))

	got, err := s.Repos.Campgrounds.GetByID(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{r.ID}, got.Reviews)
}

func (s *ContractSuite) TestReviewListOnMissingCampground() {
	err := s.Repos.Campgrounds.AddReview(s.ctx, uuid.New(), uuid.New())
	s.True(errors.Is(err, apperrors.ErrCampgroundNotFound))

	err = s.Repos.Campgrounds.RemoveReview(s.ctx, uuid.New(), uuid.New())
	s.True(errors.Is(err, apperrors.ErrCampgroundNotFound))
}

func (s *ContractSuite) TestDeleteCampground() {
	c := s.createCampground(time.Time{})

	s.Require().NoError(s.Repos.Campgrounds.Delete(s.ctx, c.ID))

	_, err := s.Repos.Campgrounds.GetByID(s.ctx, c.ID)
	s.True(errors.Is(err, apperrors.ErrCampgroundNotFound))
	err = s.Repos.Campgrounds.Delete(s.ctx, c.ID)
	s.True(errors.Is(err, apperrors.ErrCampgroundNotFound))
}

func (s *ContractSuite) TestDeleteAllCampgrounds() {
	s.createCampground(time.Time{})
	s.createCampground(time.Time{})

	n, err := s.Repos.Campgrounds.DeleteAll(s.ctx)

	s.NoError(err)
	s.Equal(int64(2), n)
	all, err := s.Repos.Campgrounds.GetAll(s.ctx)
	s.NoError(err)
	s.Empty(all)
}

func (s *ContractSuite) TestReviewRoundTrip() {
	r := s.factories.Review.WithRating(3)

	s.Require().NoError(s.Repos.Reviews.Create(s.ctx, r))
	got, err := s.Repos.Reviews.GetByID(s.ctx, r.ID)

	s.Require().NoError(err)
	s.Equal(r.Body, got.Body)
	s.Equal(3.0, got.Rating)
}

func (s *ContractSuite) TestGetReviewNotFound() {
	_, err := s.Repos.Reviews.GetByID(s.ctx, uuid.New())
	s.True(errors.Is(err, apperrors.ErrReviewNotFound))
}

func (s *ContractSuite) TestGetByIDsFollowsRequestedOrder() {
	r1, r2, r3 := s.createReview(), s.createReview(), s.createReview()

	got, err := s.Repos.Reviews.GetByIDs(s.ctx, []uuid.UUID{r3.ID, uuid.New(), r1.ID, r2.ID})

	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal(r3.ID, got[0].ID)
	s.Equal(r1.ID, got[1].ID)
	s.Equal(r2.ID, got[2].ID)

	empty, err := s.Repos.Reviews.GetByIDs(s.ctx, nil)
	s.NoError(err)
	s.NotNil(empty)
	s.Empty(empty)
}

func (s *ContractSuite) TestDeleteReviews() {
	r1, r2, r3 := s.createReview(), s.createReview(), s.createReview()

	s.Require().NoError(s.Repos.Reviews.Delete(s.ctx, r1.ID))
	err := s.Repos.Reviews.Delete(s.ctx, r1.ID)
	s.True(errors.Is(err, apperrors.ErrReviewNotFound))

	n, err := s.Repos.Reviews.DeleteByIDs(s.ctx, []uuid.UUID{r2.ID, uuid.New()})
	s.NoError(err)
	s.Equal(int64(1), n)

	count, err := s.Repos.Reviews.Count(s.ctx)
	s.NoError(err)
	s.Equal(int64(1), count)

	n, err = s.Repos.Reviews.DeleteByIDs(s.ctx, nil)
	s.NoError(err)
	s.Zero(n)

	_, err = s.Repos.Reviews.GetByID(s.ctx, r3.ID)
	s.NoError(err)
}

func (s *ContractSuite) TestWithTxCommits() {
	var created *models.Campground
	err := s.Tx.WithTx(s.ctx, func(repos repository.Repositories) error {
		created = s.factories.Campground.Create()
		return repos.Campgrounds.Create(s.ctx, created)
	})

	s.Require().NoError(err)
	_, err = s.Repos.Campgrounds.GetByID(s.ctx, created.ID)
	s.NoError(err)
}

func (s *ContractSuite) TestWithTxRollsBack() {
	if !s.Transactional {
		s.T().Skip("store has no multi-record transactions")
	}
	boom := errors.New("boom")
	var created *models.Campground

	err := s.Tx.WithTx(s.ctx, func(repos repository.Repositories) error {
		created = s.factories.Campground.Create()
		if err := repos.Campgrounds.Create(s.ctx, created); err != nil {
			return err
		}
		return boom
	})

	s.ErrorIs(err, boom)
	_, err = s.Repos.Campgrounds.GetByID(s.ctx, created.ID)
	s.True(errors.Is(err, apperrors.ErrCampgroundNotFound))
}
