package dynamostore

import (
	"context"
	"fmt"
	"sort"
	"strconv"
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

// CampgroundRepository stores campgrounds as DynamoDB items
type CampgroundRepository struct {
	client *dynamodb.Client
	table  string
	now    func() time.Time
}

// Ensure CampgroundRepository implements repository.CampgroundRepositoryInterface
var _ repository.CampgroundRepositoryInterface = (*CampgroundRepository)(nil)

// NewCampgroundRepository creates a campground repository over table
func NewCampgroundRepository(client *dynamodb.Client, table string) *CampgroundRepository {
	return &CampgroundRepository{client: client, table: table, now: time.Now}
}

// Create puts a new campground item
func (r *CampgroundRepository) Create(ctx context.Context, campground *models.Campground) error {
	campground.Stamp(r.now().UTC())
	if campground.Reviews == nil {
		campground.Reviews = []uuid.UUID{}
	}
	item, err := attributevalue.MarshalMap(toCampgroundItem(campground))
	if err != nil {
		return fmt.Errorf("marshal campground: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	return err
}

// GetAll retrieves every campground, oldest first
func (r *CampgroundRepository) GetAll(ctx context.Context) ([]models.Campground, error) {
	raw, err := scanAll(ctx, r.client, &dynamodb.ScanInput{TableName: aws.String(r.table)})
	if err != nil {
		return nil, fmt.Errorf("scan campgrounds: %w", err)
	}
	var items []campgroundItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, fmt.Errorf("unmarshal campgrounds: %w", err)
	}
	campgrounds := make([]models.Campground, 0, len(items))
	for _, it := range items {
		c, err := it.toModel()
		if err != nil {
			return nil, err
		}
		campgrounds = append(campgrounds, *c)
	}
	sort.SliceStable(campgrounds, func(i, j int) bool {
		return campgrounds[i].CreatedAt.Before(campgrounds[j].CreatedAt)
	})
	return campgrounds, nil
}

// GetByID retrieves a campground by its UUID
func (r *CampgroundRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Campground, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            idKey(id.String()),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, apperrors.ErrCampgroundNotFound
	}
	var item campgroundItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("unmarshal campground: %w", err)
	}
	return item.toModel()
}

// Update changes title, location and price only
func (r *CampgroundRepository) Update(ctx context.Context, id uuid.UUID, update models.CampgroundUpdate) (*models.Campground, error) {
	now, err := attributevalue.Marshal(r.now().UTC())
	if err != nil {
		return nil, err
	}
	names := map[string]string{
		"#title":      "title",
		"#location":   "location",
		"#price":      "price",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":title":      &types.AttributeValueMemberS{Value: update.Title},
		":location":   &types.AttributeValueMemberS{Value: update.Location},
		":updated_at": now,
	}
	expr := "SET #title = :title, #location = :location, #updated_at = :updated_at"
	if update.Price != nil {
		values[":price"] = &types.AttributeValueMemberN{Value: strconv.FormatFloat(*update.Price, 'f', -1, 64)}
		expr += ", #price = :price"
	} else {
		expr += " REMOVE #price"
	}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       idKey(id.String()),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(id)"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if isConditionFailed(err) {
		return nil, apperrors.ErrCampgroundNotFound
	}
	if err != nil {
		return nil, err
	}
	var item campgroundItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &item); err != nil {
		return nil, fmt.Errorf("unmarshal campground: %w", err)
	}
	return item.toModel()
}

// AddReview appends reviewID to the review list
func (r *CampgroundRepository) AddReview(ctx context.Context, id, reviewID uuid.UUID) error {
	now, err := attributevalue.Marshal(r.now().UTC())
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.table),
		Key:                 idKey(id.String()),
		UpdateExpression:    aws.String("SET #reviews = list_append(if_not_exists(#reviews, :empty), :r), #updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeNames: map[string]string{
			"#reviews":    "reviews",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":r": &types.AttributeValueMemberL{Value: []types.AttributeValue{
				&types.AttributeValueMemberS{Value: reviewID.String()},
			}},
			":now": now,
		},
	})
	if isConditionFailed(err) {
		return apperrors.ErrCampgroundNotFound
	}
	return err
}

// RemoveReview drops reviewID from the review list. Every occurrence is
// removed; the condition guards against a concurrent rewrite of the list.
func (r *CampgroundRepository) RemoveReview(ctx context.Context, id, reviewID uuid.UUID) error {
	for {
		campground, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		idx := -1
		for i, rid := range campground.Reviews {
			if rid == reviewID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil
		}

		path := fmt.Sprintf("#reviews[%d]", idx)
		_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:                aws.String(r.table),
			Key:                      idKey(id.String()),
			UpdateExpression:         aws.String("REMOVE " + path),
			ConditionExpression:      aws.String(path + " = :r"),
			ExpressionAttributeNames: map[string]string{"#reviews": "reviews"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":r": &types.AttributeValueMemberS{Value: reviewID.String()},
			},
		})
		if isConditionFailed(err) {
			continue
		}
		if err != nil {
			return err
		}
	}
}

// Delete removes a campground by ID
func (r *CampgroundRepository) Delete(ctx context.Context, id uuid.UUID) error {
	out, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.table),
		Key:          idKey(id.String()),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return err
	}
	if len(out.Attributes) == 0 {
		return apperrors.ErrCampgroundNotFound
	}
	return nil
}

// DeleteAll removes every campground
func (r *CampgroundRepository) DeleteAll(ctx context.Context) (int64, error) {
	ids, err := scanIDs(ctx, r.client, r.table)
	if err != nil {
		return 0, err
	}
	if err := deleteKeys(ctx, r.client, r.table, ids); err != nil {
		return 0, err
	}
	return int64(len(ids)), nil
}
