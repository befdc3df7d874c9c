package service

import (
	"context"

	"yelpcamp/internal/database/models"
	"yelpcamp/internal/validation"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CampgroundServiceInterface defines the interface for campground service
type CampgroundServiceInterface interface {
	GetAll(ctx context.Context) ([]models.Campground, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Campground, error)
	GetWithReviews(ctx context.Context, id uuid.UUID) (*CampgroundDetail, error)
	Create(ctx context.Context, in *validation.CampgroundInput) (*models.Campground, error)
	Update(ctx context.Context, id uuid.UUID, in *validation.CampgroundInput) (*models.Campground, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReviewServiceInterface defines the interface for review service
type ReviewServiceInterface interface {
	Create(ctx context.Context, campgroundID uuid.UUID, in *validation.ReviewInput) (*models.Review, error)
	Delete(ctx context.Context, campgroundID, reviewID uuid.UUID) error
}
