package repository

import (
	"testing"

	"yelpcamp/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func review(id uuid.UUID, body string) models.Review {
	return models.Review{BaseModel: models.BaseModel{ID: id}, Body: body, Rating: 4}
}

func TestOrderReviews(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	fetched := []models.Review{review(c, "c"), review(a, "a")}

	ordered := OrderReviews(fetched, []uuid.UUID{a, b, c})

	assert.Len(t, ordered, 2)
	assert.Equal(t, "a", ordered[0].Body)
	assert.Equal(t, "c", ordered[1].Body)
}

func TestOrderReviews_Empty(t *testing.T) {
	assert.Empty(t, OrderReviews(nil, nil))
	assert.NotNil(t, OrderReviews(nil, nil))
}

func TestRemoveID(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	assert.Equal(t, []uuid.UUID{b}, RemoveID([]uuid.UUID{a, b, a}, a))
	assert.Equal(t, []uuid.UUID{a, b}, RemoveID([]uuid.UUID{a, b}, uuid.New()))
	assert.Empty(t, RemoveID(nil, a))
}
