package service

import (
	"context"
	"errors"
	"fmt"

	"yelpcamp/internal/database/models"
	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/logger"
	"yelpcamp/internal/metrics"
	"yelpcamp/internal/repository"
	"yelpcamp/internal/validation"

	"github.com/google/uuid"
)

// ReviewService handles business logic for reviews
type ReviewService struct {
	tx repository.Transactor
}

// Ensure ReviewService implements ReviewServiceInterface
var _ ReviewServiceInterface = (*ReviewService)(nil)

// NewReviewService creates a new review service
func NewReviewService(tx repository.Transactor) *ReviewService {
	return &ReviewService{tx: tx}
}

// Create stores a review and appends it to the campground's review list
func (s *ReviewService) Create(ctx context.Context, campgroundID uuid.UUID, in *validation.ReviewInput) (*models.Review, error) {
	review := &models.Review{Body: in.Body, Rating: in.Rating}

	err := s.tx.WithTx(ctx, func(repos repository.Repositories) error {
		if _, err := repos.Campgrounds.GetByID(ctx, campgroundID); err != nil {
			return err
		}
		if err := repos.Reviews.Create(ctx, review); err != nil {
			return fmt.Errorf("create review: %w", err)
		}
		return repos.Campgrounds.AddReview(ctx, campgroundID, review.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add review: %w", err)
	}
	metrics.RecordChange(metrics.EntityReview, metrics.OpCreate, 1)

	logger.WithContext(ctx).
		WithField("campground_id", campgroundID).
		WithField("review_id", review.ID).
		Info("review created")
	return review, nil
}

// Delete detaches the review from its campground and removes the record. A
// review that the campground does not list is reported as not found.
func (s *ReviewService) Delete(ctx context.Context, campgroundID, reviewID uuid.UUID) error {
	err := s.tx.WithTx(ctx, func(repos repository.Repositories) error {
		campground, err := repos.Campgrounds.GetByID(ctx, campgroundID)
		if err != nil {
			return err
		}
		if !campground.HasReview(reviewID) {
			return apperrors.ErrReviewNotFound
		}
		if err := repos.Campgrounds.RemoveReview(ctx, campgroundID, reviewID); err != nil {
			return err
		}
		// the list no longer references it, a missing record is not an error
		if err := repos.Reviews.Delete(ctx, reviewID); err != nil && !errors.Is(err, apperrors.ErrReviewNotFound) {
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	metrics.RecordChange(metrics.EntityReview, metrics.OpDelete, 1)

	logger.WithContext(ctx).
		WithField("campground_id", campgroundID).
		WithField("review_id", reviewID).
		Info("review deleted")
	return nil
}
