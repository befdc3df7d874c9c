package repository

import (
	"yelpcamp/internal/database/models"

	"github.com/google/uuid"
)

// OrderReviews arranges reviews in the order of ids. Ids without a matching
// review are skipped; duplicates in ids yield the review once per occurrence.
func OrderReviews(reviews []models.Review, ids []uuid.UUID) []models.Review {
	byID := make(map[uuid.UUID]models.Review, len(reviews))
	for _, r := range reviews {
		byID[r.ID] = r
	}
	ordered := make([]models.Review, 0, len(ids))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			ordered = append(ordered, r)
		}
	}
	return ordered
}

// RemoveID returns ids without any occurrence of id
func RemoveID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	kept := make([]uuid.UUID, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	return kept
}
