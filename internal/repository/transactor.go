package repository

import (
	"context"

	"gorm.io/gorm"
)

// GormTransactor runs units of work inside a SQL transaction
type GormTransactor struct {
	db *gorm.DB
}

// Ensure GormTransactor implements Transactor
var _ Transactor = (*GormTransactor)(nil)

// NewGormTransactor creates a transactor over db
func NewGormTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{db: db}
}

// WithTx commits when fn returns nil and rolls back otherwise
func (t *GormTransactor) WithTx(ctx context.Context, fn func(repos Repositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(Repositories{
			Campgrounds: NewCampgroundRepository(tx),
			Reviews:     NewReviewRepository(tx),
		})
	})
}

// NewGormRepositories builds repositories over db
func NewGormRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Campgrounds: NewCampgroundRepository(db),
		Reviews:     NewReviewRepository(db),
	}
}
