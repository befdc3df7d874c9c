// Package mongostore implements the repositories on MongoDB. Campgrounds keep
// their review ids inline in a "reviews" array, reviews live in their own
// collection.
package mongostore

import (
	"yelpcamp/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

// NewRepositories builds repositories over db
func NewRepositories(db *mongo.Database) repository.Repositories {
	return repository.Repositories{
		Campgrounds: NewCampgroundRepository(db),
		Reviews:     NewReviewRepository(db),
	}
}
