package dynamostore

import (
	"context"
	"fmt"
	"time"

	"yelpcamp/internal/database/models"
	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ReviewRepository stores reviews as DynamoDB items
type ReviewRepository struct {
	client *dynamodb.Client
	table  string
	now    func() time.Time
}

// Ensure ReviewRepository implements repository.ReviewRepositoryInterface
var _ repository.ReviewRepositoryInterface = (*ReviewRepository)(nil)

// NewReviewRepository creates a review repository over table
func NewReviewRepository(client *dynamodb.Client, table string) *ReviewRepository {
	return &ReviewRepository{client: client, table: table, now: time.Now}
}

// Create puts a new review item
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	review.Stamp(r.now().UTC())
	item, err := attributevalue.MarshalMap(toReviewItem(review))
	if err != nil {
		return fmt.Errorf("marshal review: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	return err
}

// GetByID retrieves a review by its UUID
func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            idKey(id.String()),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, apperrors.ErrReviewNotFound
	}
	var item reviewItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("unmarshal review: %w", err)
	}
	return item.toModel()
}

// GetByIDs retrieves reviews by a set of UUIDs, preserving the order of ids
func (r *ReviewRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Review, error) {
	if len(ids) == 0 {
		return []models.Review{}, nil
	}

	unique := make([]string, 0, len(ids))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id.String())
		}
	}

	var reviews []models.Review
	for start := 0; start < len(unique); start += batchGetLimit {
		end := min(start+batchGetLimit, len(unique))
		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range unique[start:end] {
			keys = append(keys, idKey(id))
		}
		pending := map[string]types.KeysAndAttributes{
			r.table: {Keys: keys, ConsistentRead: aws.Bool(true)},
		}
		for len(pending) > 0 {
			out, err := r.client.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: pending})
			if err != nil {
				return nil, fmt.Errorf("batch get reviews: %w", err)
			}
			var items []reviewItem
			if err := attributevalue.UnmarshalListOfMaps(out.Responses[r.table], &items); err != nil {
				return nil, fmt.Errorf("unmarshal reviews: %w", err)
			}
			for _, it := range items {
				rv, err := it.toModel()
				if err != nil {
					return nil, err
				}
				reviews = append(reviews, *rv)
			}
			pending = out.UnprocessedKeys
		}
	}
	return repository.OrderReviews(reviews, ids), nil
}

// Delete removes a review by ID
func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	out, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.table),
		Key:          idKey(id.String()),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return err
	}
	if len(out.Attributes) == 0 {
		return apperrors.ErrReviewNotFound
	}
	return nil
}

// DeleteByIDs removes the reviews whose ids are in ids and reports how many
// of them existed.
func (r *ReviewRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	existing, err := r.GetByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}
	keys := make([]string, 0, len(existing))
	for _, rv := range existing {
		keys = append(keys, rv.ID.String())
	}
	if err := deleteKeys(ctx, r.client, r.table, keys); err != nil {
		return 0, err
	}
	return int64(len(keys)), nil
}

// DeleteAll removes every review
func (r *ReviewRepository) DeleteAll(ctx context.Context) (int64, error) {
	ids, err := scanIDs(ctx, r.client, r.table)
	if err != nil {
		return 0, err
	}
	if err := deleteKeys(ctx, r.client, r.table, ids); err != nil {
		return 0, err
	}
	return int64(len(ids)), nil
}

// Count returns the number of stored reviews
func (r *ReviewRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	p := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
		Select:    types.SelectCount,
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int64(page.Count)
	}
	return total, nil
}
