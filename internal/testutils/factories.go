package testutils

import (
	"fmt"
	"sync/atomic"

	"yelpcamp/internal/database/models"

	"github.com/google/uuid"
)

var seq atomic.Int64

// CampgroundFactory provides methods to create test Campground data
type CampgroundFactory struct{}

// NewCampgroundFactory creates a new CampgroundFactory
func NewCampgroundFactory() *CampgroundFactory {
	return &CampgroundFactory{}
}

// Create creates a test Campground with default values. The ID is left
// unset so the store assigns one.
func (f *CampgroundFactory) Create() *models.Campground {
	n := seq.Add(1)
	price := 15.0
	return &models.Campground{
		Title:       fmt.Sprintf("Test Campground %d", n),
		Price:       &price,
		Image:       "https://example.com/camp.jpg",
		Description: "A quiet spot by the lake",
		Location:    "Austin, Texas",
		Reviews:     []uuid.UUID{},
	}
}

// WithTitle sets a custom title for the campground
func (f *CampgroundFactory) WithTitle(title string) *models.Campground {
	c := f.Create()
	c.Title = title
	return c
}

// WithoutPrice creates a campground with no price
func (f *CampgroundFactory) WithoutPrice() *models.Campground {
	c := f.Create()
	c.Price = nil
	return c
}

// ReviewFactory provides methods to create test Review data
type ReviewFactory struct{}

// NewReviewFactory creates a new ReviewFactory
func NewReviewFactory() *ReviewFactory {
	return &ReviewFactory{}
}

// Create creates a test Review with default values
func (f *ReviewFactory) Create() *models.Review {
	return &models.Review{
		Body:   fmt.Sprintf("Great stay #%d", seq.Add(1)),
		Rating: 4,
	}
}

// WithRating creates a review with the given rating
func (f *ReviewFactory) WithRating(rating float64) *models.Review {
	r := f.Create()
	r.Rating = rating
	return r
}

// FactorySet groups all factories for convenience
type FactorySet struct {
	Campground *CampgroundFactory
	Review     *ReviewFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Campground: NewCampgroundFactory(),
		Review:     NewReviewFactory(),
	}
}
