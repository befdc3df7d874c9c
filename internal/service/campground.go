package service

import (
	"context"
	"fmt"

	"yelpcamp/internal/database/models"
	"yelpcamp/internal/logger"
	"yelpcamp/internal/metrics"
	"yelpcamp/internal/repository"
	"yelpcamp/internal/validation"

	"github.com/google/uuid"
)

// CampgroundService handles business logic for campgrounds
type CampgroundService struct {
	repo       repository.CampgroundRepositoryInterface
	reviewRepo repository.ReviewRepositoryInterface
	tx         repository.Transactor
}

// Ensure CampgroundService implements CampgroundServiceInterface
var _ CampgroundServiceInterface = (*CampgroundService)(nil)

// NewCampgroundService creates a new campground service
func NewCampgroundService(repo repository.CampgroundRepositoryInterface, reviewRepo repository.ReviewRepositoryInterface, tx repository.Transactor) *CampgroundService {
	return &CampgroundService{
		repo:       repo,
		reviewRepo: reviewRepo,
		tx:         tx,
	}
}

// CampgroundDetail is a campground with its reviews resolved in list order
type CampgroundDetail struct {
	Campground *models.Campground
	Reviews    []models.Review
}

// GetAll retrieves every campground
func (s *CampgroundService) GetAll(ctx context.Context) ([]models.Campground, error) {
	campgrounds, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get campgrounds: %w", err)
	}
	return campgrounds, nil
}

// GetByID retrieves a campground without resolving its reviews
func (s *CampgroundService) GetByID(ctx context.Context, id uuid.UUID) (*models.Campground, error) {
	campground, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get campground: %w", err)
	}
	return campground, nil
}

// GetWithReviews retrieves a campground and populates its reviews. Ids with
// no stored review are skipped.
func (s *CampgroundService) GetWithReviews(ctx context.Context, id uuid.UUID) (*CampgroundDetail, error) {
	campground, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get campground: %w", err)
	}

	reviews, err := s.reviewRepo.GetByIDs(ctx, campground.Reviews)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	if len(reviews) != len(campground.Reviews) {
		logger.WithContext(ctx).
			WithField("campground_id", id).
			Warnf("campground references %d reviews, %d found", len(campground.Reviews), len(reviews))
	}

	return &CampgroundDetail{Campground: campground, Reviews: reviews}, nil
}

// Create stores a new campground built from a validated submission
func (s *CampgroundService) Create(ctx context.Context, in *validation.CampgroundInput) (*models.Campground, error) {
	campground := &models.Campground{
		Title:       in.Title,
		Price:       in.Price,
		Image:       in.Image,
		Description: in.Description,
		Location:    in.Location,
		Reviews:     []uuid.UUID{},
	}
	if err := s.repo.Create(ctx, campground); err != nil {
		return nil, fmt.Errorf("failed to create campground: %w", err)
	}

	metrics.RecordChange(metrics.EntityCampground, metrics.OpCreate, 1)
	logger.WithContext(ctx).WithField("campground_id", campground.ID).Info("campground created")
	return campground, nil
}

// Update changes only title, location and price. Image, description and the
// review list are left as stored.
func (s *CampgroundService) Update(ctx context.Context, id uuid.UUID, in *validation.CampgroundInput) (*models.Campground, error) {
	campground, err := s.repo.Update(ctx, id, models.CampgroundUpdate{
		Title:    in.Title,
		Location: in.Location,
		Price:    in.Price,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update campground: %w", err)
	}
	metrics.RecordChange(metrics.EntityCampground, metrics.OpUpdate, 1)
	return campground, nil
}

// Delete removes the campground's reviews and then the campground itself
func (s *CampgroundService) Delete(ctx context.Context, id uuid.UUID) error {
	var removed int64
	err := s.tx.WithTx(ctx, func(repos repository.Repositories) error {
		campground, err := repos.Campgrounds.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if removed, err = repos.Reviews.DeleteByIDs(ctx, campground.Reviews); err != nil {
			return fmt.Errorf("delete reviews: %w", err)
		}
		return repos.Campgrounds.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete campground: %w", err)
	}

	metrics.RecordChange(metrics.EntityCampground, metrics.OpDelete, 1)
	metrics.RecordChange(metrics.EntityReview, metrics.OpDelete, int(removed))
	logger.WithContext(ctx).
		WithField("campground_id", id).
		WithField("reviews_deleted", removed).
		Info("campground deleted")
	return nil
}
