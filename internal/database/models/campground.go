package models

import "github.com/google/uuid"

// Campground is a listing. Reviews holds the ids of the reviews it owns,
// in submission order.
type Campground struct {
	BaseModel
	Title       string      `json:"title" gorm:"not null"`
	Price       *float64    `json:"price,omitempty"`
	Image       string      `json:"image"`
	Description string      `json:"description" gorm:"type:text"`
	Location    string      `json:"location"`
	Reviews     []uuid.UUID `json:"reviews" gorm:"column:reviews;type:text;serializer:json"`
}

// TableName returns the table name for Campground
func (Campground) TableName() string {
	return "campgrounds"
}

// HasReview reports whether id is in the review list
func (c *Campground) HasReview(id uuid.UUID) bool {
	for _, r := range c.Reviews {
		if r == id {
			return true
		}
	}
	return false
}

// CampgroundUpdate lists the fields the update route may change
type CampgroundUpdate struct {
	Title    string
	Location string
	Price    *float64
}

// Apply copies the updatable fields onto c
func (u CampgroundUpdate) Apply(c *Campground) {
	c.Title = u.Title
	c.Location = u.Location
	c.Price = u.Price
}
