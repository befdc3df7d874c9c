package dynamostore

import (
	"fmt"
	"time"

	"yelpcamp/internal/database/models"

	"github.com/google/uuid"
)

type campgroundItem struct {
	ID          string    `dynamodbav:"id"`
	Title       string    `dynamodbav:"title"`
	Price       *float64  `dynamodbav:"price,omitempty"`
	Image       string    `dynamodbav:"image,omitempty"`
	Description string    `dynamodbav:"description,omitempty"`
	Location    string    `dynamodbav:"location,omitempty"`
	Reviews     []string  `dynamodbav:"reviews"`
	CreatedAt   time.Time `dynamodbav:"created_at"`
	UpdatedAt   time.Time `dynamodbav:"updated_at"`
}

type reviewItem struct {
	ID        string    `dynamodbav:"id"`
	Body      string    `dynamodbav:"body"`
	Rating    float64   `dynamodbav:"rating"`
	CreatedAt time.Time `dynamodbav:"created_at"`
	UpdatedAt time.Time `dynamodbav:"updated_at"`
}

func toCampgroundItem(c *models.Campground) campgroundItem {
	reviews := make([]string, len(c.Reviews))
	for i, id := range c.Reviews {
		reviews[i] = id.String()
	}
	return campgroundItem{
		ID:          c.ID.String(),
		Title:       c.Title,
		Price:       c.Price,
		Image:       c.Image,
		Description: c.Description,
		Location:    c.Location,
		Reviews:     reviews,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (it campgroundItem) toModel() (*models.Campground, error) {
	id, err := uuid.Parse(it.ID)
	if err != nil {
		return nil, fmt.Errorf("decode campground id %q: %w", it.ID, err)
	}
	reviews := make([]uuid.UUID, 0, len(it.Reviews))
	for _, s := range it.Reviews {
		rid, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("decode review id %q of campground %s: %w", s, it.ID, err)
		}
		reviews = append(reviews, rid)
	}
	return &models.Campground{
		BaseModel:   models.BaseModel{ID: id, CreatedAt: it.CreatedAt, UpdatedAt: it.UpdatedAt},
		Title:       it.Title,
		Price:       it.Price,
		Image:       it.Image,
		Description: it.Description,
		Location:    it.Location,
		Reviews:     reviews,
	}, nil
}

func toReviewItem(r *models.Review) reviewItem {
	return reviewItem{
		ID:        r.ID.String(),
		Body:      r.Body,
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (it reviewItem) toModel() (*models.Review, error) {
	id, err := uuid.Parse(it.ID)
	if err != nil {
		return nil, fmt.Errorf("decode review id %q: %w", it.ID, err)
	}
	return &models.Review{
		BaseModel: models.BaseModel{ID: id, CreatedAt: it.CreatedAt, UpdatedAt: it.UpdatedAt},
		Body:      it.Body,
		Rating:    it.Rating,
	}, nil
}

