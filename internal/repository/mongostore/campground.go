package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yelpcamp/internal/database/models"
	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CampgroundRepository stores campgrounds as MongoDB documents
type CampgroundRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// Ensure CampgroundRepository implements repository.CampgroundRepositoryInterface
var _ repository.CampgroundRepositoryInterface = (*CampgroundRepository)(nil)

// NewCampgroundRepository creates a campground repository over db
func NewCampgroundRepository(db *mongo.Database) *CampgroundRepository {
	return &CampgroundRepository{coll: db.Collection(CampgroundCollection), now: time.Now}
}

// Create inserts a new campground document
func (r *CampgroundRepository) Create(ctx context.Context, campground *models.Campground) error {
	stamp(&campground.BaseModel, r.now())
	if campground.Reviews == nil {
		campground.Reviews = []uuid.UUID{}
	}
	_, err := r.coll.InsertOne(ctx, toCampgroundDocument(campground))
	return err
}

// GetAll retrieves every campground, oldest first
func (r *CampgroundRepository) GetAll(ctx context.Context) ([]models.Campground, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []campgroundDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	campgrounds := make([]models.Campground, 0, len(docs))
	for _, d := range docs {
		c, err := d.toModel()
		if err != nil {
			return nil, err
		}
		campgrounds = append(campgrounds, *c)
	}
	return campgrounds, nil
}

// GetByID retrieves a campground by its UUID
func (r *CampgroundRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Campground, error) {
	var doc campgroundDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrCampgroundNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toModel()
}

// Update changes title, location and price only
func (r *CampgroundRepository) Update(ctx context.Context, id uuid.UUID, update models.CampgroundUpdate) (*models.Campground, error) {
	var doc campgroundDocument
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id.String()},
		bson.M{"$set": bson.M{
			"title":      update.Title,
			"location":   update.Location,
			"price":      update.Price,
			"updated_at": r.now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrCampgroundNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toModel()
}

// AddReview pushes reviewID onto the review list
func (r *CampgroundRepository) AddReview(ctx context.Context, id, reviewID uuid.UUID) error {
	return r.updateReviews(ctx, id, bson.M{
		"$push": bson.M{"reviews": reviewID.String()},
		"$set":  bson.M{"updated_at": r.now().UTC()},
	})
}

// RemoveReview pulls reviewID from the review list
func (r *CampgroundRepository) RemoveReview(ctx context.Context, id, reviewID uuid.UUID) error {
	return r.updateReviews(ctx, id, bson.M{
		"$pull": bson.M{"reviews": reviewID.String()},
		"$set":  bson.M{"updated_at": r.now().UTC()},
	})
}

func (r *CampgroundRepository) updateReviews(ctx context.Context, id uuid.UUID, update bson.M) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id.String()}, update)
	if err != nil {
		return fmt.Errorf("update review list: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrCampgroundNotFound
	}
	return nil
}

// Delete removes a campground by ID
func (r *CampgroundRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrCampgroundNotFound
	}
	return nil
}

// DeleteAll removes every campground
func (r *CampgroundRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
