package repository

import (
	"context"

	"yelpcamp/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CampgroundRepositoryInterface defines the interface for campground repository operations
type CampgroundRepositoryInterface interface {
	Create(ctx context.Context, campground *models.Campground) error
	GetAll(ctx context.Context) ([]models.Campground, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Campground, error)
	Update(ctx context.Context, id uuid.UUID, update models.CampgroundUpdate) (*models.Campground, error)
	AddReview(ctx context.Context, id, reviewID uuid.UUID) error
	RemoveReview(ctx context.Context, id, reviewID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) (int64, error)
}

// ReviewRepositoryInterface defines the interface for review repository operations
type ReviewRepositoryInterface interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// Transactor runs fn against repositories bound to a single unit of work.
// Backends without multi-record transactions run fn directly.
type Transactor interface {
	WithTx(ctx context.Context, fn func(repos Repositories) error) error
}

// Repositories groups the repositories that share one store connection
type Repositories struct {
	Campgrounds CampgroundRepositoryInterface
	Reviews     ReviewRepositoryInterface
}

// PassThrough is a Transactor that runs fn on the same repositories
type PassThrough struct {
	Repos Repositories
}

// WithTx calls fn with the wrapped repositories
func (p PassThrough) WithTx(ctx context.Context, fn func(repos Repositories) error) error {
	return fn(p.Repos)
}
