package mongostore

import (
	"context"
	"errors"
	"time"

	"yelpcamp/internal/database/models"
	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReviewRepository stores reviews as MongoDB documents
type ReviewRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// Ensure ReviewRepository implements repository.ReviewRepositoryInterface
var _ repository.ReviewRepositoryInterface = (*ReviewRepository)(nil)

// NewReviewRepository creates a review repository over db
func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{coll: db.Collection(ReviewCollection), now: time.Now}
}

// Create inserts a new review document
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	stamp(&review.BaseModel, r.now())
	_, err := r.coll.InsertOne(ctx, toReviewDocument(review))
	return err
}

// GetByID retrieves a review by its UUID
func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	var doc reviewDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrReviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toModel()
}

// GetByIDs retrieves reviews by a set of UUIDs, preserving the order of ids
func (r *ReviewRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Review, error) {
	if len(ids) == 0 {
		return []models.Review{}, nil
	}
	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": idStrings(ids)}})
	if err != nil {
		return nil, err
	}
	var docs []reviewDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	reviews := make([]models.Review, 0, len(docs))
	for _, d := range docs {
		rv, err := d.toModel()
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, *rv)
	}
	return repository.OrderReviews(reviews, ids), nil
}

// Delete removes a review by ID
func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrReviewNotFound
	}
	return nil
}

// DeleteByIDs removes every review whose id is in ids
func (r *ReviewRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": idStrings(ids)}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteAll removes every review
func (r *ReviewRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the number of stored reviews
func (r *ReviewRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}
