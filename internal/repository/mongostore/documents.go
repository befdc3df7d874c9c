package mongostore

import (
	"fmt"
	"time"

	"yelpcamp/internal/database/models"

	"github.com/google/uuid"
)

// Collection names
const (
	CampgroundCollection = "campgrounds"
	ReviewCollection     = "reviews"
)

type campgroundDocument struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	Price       *float64  `bson:"price"`
	Image       string    `bson:"image,omitempty"`
	Description string    `bson:"description,omitempty"`
	Location    string    `bson:"location,omitempty"`
	Reviews     []string  `bson:"reviews"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

type reviewDocument struct {
	ID        string    `bson:"_id"`
	Body      string    `bson:"body"`
	Rating    float64   `bson:"rating"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func toCampgroundDocument(c *models.Campground) campgroundDocument {
	return campgroundDocument{
		ID:          c.ID.String(),
		Title:       c.Title,
		Price:       c.Price,
		Image:       c.Image,
		Description: c.Description,
		Location:    c.Location,
		Reviews:     idStrings(c.Reviews),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (d campgroundDocument) toModel() (*models.Campground, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("decode campground id %q: %w", d.ID, err)
	}
	reviews, err := parseIDs(d.Reviews)
	if err != nil {
		return nil, fmt.Errorf("decode reviews of campground %s: %w", d.ID, err)
	}
	return &models.Campground{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
		Title:       d.Title,
		Price:       d.Price,
		Image:       d.Image,
		Description: d.Description,
		Location:    d.Location,
		Reviews:     reviews,
	}, nil
}

func toReviewDocument(r *models.Review) reviewDocument {
	return reviewDocument{
		ID:        r.ID.String(),
		Body:      r.Body,
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (d reviewDocument) toModel() (*models.Review, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("decode review id %q: %w", d.ID, err)
	}
	return &models.Review{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
		Body:   d.Body,
		Rating: d.Rating,
	}, nil
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// stamp assigns an id and audit timestamps to a new record
func stamp(base *models.BaseModel, now time.Time) {
	// BSON dates keep millisecond precision
	base.Stamp(now.UTC().Truncate(time.Millisecond))
}
