package repository

import (
	"context"
	"errors"
	"fmt"

	"yelpcamp/internal/database/models"
	apperrors "yelpcamp/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CampgroundRepository handles database operations for campgrounds
type CampgroundRepository struct {
	db *gorm.DB
}

// Ensure CampgroundRepository implements CampgroundRepositoryInterface
var _ CampgroundRepositoryInterface = (*CampgroundRepository)(nil)

// NewCampgroundRepository creates a new campground repository
func NewCampgroundRepository(db *gorm.DB) *CampgroundRepository {
	return &CampgroundRepository{db: db}
}

// Create inserts a new campground
func (r *CampgroundRepository) Create(ctx context.Context, campground *models.Campground) error {
	if campground.Reviews == nil {
		campground.Reviews = []uuid.UUID{}
	}
	return r.db.WithContext(ctx).Create(campground).Error
}

// GetAll retrieves every campground, oldest first
func (r *CampgroundRepository) GetAll(ctx context.Context) ([]models.Campground, error) {
	var campgrounds []models.Campground
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&campgrounds).Error; err != nil {
		return nil, err
	}
	return campgrounds, nil
}

// GetByID retrieves a campground by its UUID
func (r *CampgroundRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Campground, error) {
	var campground models.Campground
	if err := r.db.WithContext(ctx).First(&campground, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCampgroundNotFound
		}
		return nil, err
	}
	return &campground, nil
}

// Update changes title, location and price only
func (r *CampgroundRepository) Update(ctx context.Context, id uuid.UUID, update models.CampgroundUpdate) (*models.Campground, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Campground{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":    update.Title,
			"location": update.Location,
			"price":    update.Price,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrCampgroundNotFound
	}
	return r.GetByID(ctx, id)
}

// AddReview appends reviewID to the campground's review list
func (r *CampgroundRepository) AddReview(ctx context.Context, id, reviewID uuid.UUID) error {
	return r.mutateReviews(ctx, id, func(ids []uuid.UUID) []uuid.UUID {
		return append(ids, reviewID)
	})
}

// RemoveReview drops reviewID from the campground's review list
func (r *CampgroundRepository) RemoveReview(ctx context.Context, id, reviewID uuid.UUID) error {
	return r.mutateReviews(ctx, id, func(ids []uuid.UUID) []uuid.UUID {
		return RemoveID(ids, reviewID)
	})
}

// mutateReviews rewrites the review list inside a transaction
func (r *CampgroundRepository) mutateReviews(ctx context.Context, id uuid.UUID, mutate func([]uuid.UUID) []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var campground models.Campground
		if err := tx.First(&campground, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCampgroundNotFound
			}
			return err
		}
		campground.Reviews = mutate(campground.Reviews)
		if err := tx.Model(&campground).Select("reviews", "updated_at").Updates(&campground).Error; err != nil {
			return fmt.Errorf("save review list: %w", err)
		}
		return nil
	})
}

// Delete removes a campground by ID
func (r *CampgroundRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Campground{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrCampgroundNotFound
	}
	return nil
}

// DeleteAll removes every campground
func (r *CampgroundRepository) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Campground{})
	return res.RowsAffected, res.Error
}
