package repository

import (
	"context"
	"errors"

	"yelpcamp/internal/database/models"
	apperrors "yelpcamp/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewRepository handles database operations for reviews
type ReviewRepository struct {
	db *gorm.DB
}

// Ensure ReviewRepository implements ReviewRepositoryInterface
var _ ReviewRepositoryInterface = (*ReviewRepository)(nil)

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a new review
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// GetByID retrieves a review by its UUID
func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

// GetByIDs retrieves reviews by a set of UUIDs, preserving the order of ids
func (r *ReviewRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Review, error) {
	if len(ids) == 0 {
		return []models.Review{}, nil
	}
	var reviews []models.Review
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return OrderReviews(reviews, ids), nil
}

// Delete removes a review by ID
func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Review{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrReviewNotFound
	}
	return nil
}

// DeleteByIDs removes every review whose id is in ids
func (r *ReviewRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Review{})
	return res.RowsAffected, res.Error
}

// DeleteAll removes every review
func (r *ReviewRepository) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Review{})
	return res.RowsAffected, res.Error
}

// Count returns the number of stored reviews
func (r *ReviewRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Review{}).Count(&total).Error
	return total, err
}
