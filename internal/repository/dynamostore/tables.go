// Package dynamostore implements the repositories on DynamoDB. Each entity
// gets its own table keyed by the string form of its UUID.
package dynamostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yelpcamp/internal/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	batchGetLimit   = 100
	batchWriteLimit = 25
)

// Tables names the DynamoDB tables used by the store
type Tables struct {
	Campgrounds string
	Reviews     string
}

// TableNames derives table names from prefix
func TableNames(prefix string) Tables {
	return Tables{
		Campgrounds: prefix + "-campgrounds",
		Reviews:     prefix + "-reviews",
	}
}

// EnsureTables creates any missing table and waits until it is active
func EnsureTables(ctx context.Context, client *dynamodb.Client, tables Tables) error {
	for _, name := range []string{tables.Campgrounds, tables.Reviews} {
		_, err := client.CreateTable(ctx, &dynamodb.CreateTableInput{
			TableName: aws.String(name),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
			BillingMode: types.BillingModePayPerRequest,
		})
		var inUse *types.ResourceInUseException
		if err != nil && !errors.As(err, &inUse) {
			return fmt.Errorf("create table %s: %w", name, err)
		}

		waiter := dynamodb.NewTableExistsWaiter(client)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)}, 2*time.Minute); err != nil {
			return fmt.Errorf("wait for table %s: %w", name, err)
		}
	}
	return nil
}

// NewRepositories builds repositories over client
func NewRepositories(client *dynamodb.Client, tables Tables) repository.Repositories {
	return repository.Repositories{
		Campgrounds: NewCampgroundRepository(client, tables.Campgrounds),
		Reviews:     NewReviewRepository(client, tables.Reviews),
	}
}

// Ping checks that both tables are reachable
func Ping(ctx context.Context, client *dynamodb.Client, tables Tables) error {
	for _, name := range []string{tables.Campgrounds, tables.Reviews} {
		if _, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)}); err != nil {
			return fmt.Errorf("describe table %s: %w", name, err)
		}
	}
	return nil
}

func isConditionFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}}
}

// scanAll reads every item of table and returns the raw attribute maps
func scanAll(ctx context.Context, client *dynamodb.Client, input *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewScanPaginator(client, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

// deleteKeys removes every id from table in batches
func deleteKeys(ctx context.Context, client *dynamodb.Client, table string, ids []string) error {
	for start := 0; start < len(ids); start += batchWriteLimit {
		end := min(start+batchWriteLimit, len(ids))
		reqs := make([]types.WriteRequest, 0, end-start)
		for _, id := range ids[start:end] {
			reqs = append(reqs, types.WriteRequest{DeleteRequest: &types.DeleteRequest{Key: idKey(id)}})
		}
		pending := map[string][]types.WriteRequest{table: reqs}
		for len(pending) > 0 {
			out, err := client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return fmt.Errorf("batch delete from %s: %w", table, err)
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}

// scanIDs lists every key in table
func scanIDs(ctx context.Context, client *dynamodb.Client, table string) ([]string, error) {
	items, err := scanAll(ctx, client, &dynamodb.ScanInput{
		TableName:            aws.String(table),
		ProjectionExpression: aws.String("id"),
	})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if v, ok := it["id"].(*types.AttributeValueMemberS); ok {
			ids = append(ids, v.Value)
		}
	}
	return ids, nil
}
