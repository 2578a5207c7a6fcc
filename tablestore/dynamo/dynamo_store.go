// Package dynamo provides a DynamoDB-backed tablestore.Store.
//
// Each record is a single item: the record name as partition key and the
// serialized hash function as a binary attribute. DynamoDB suits deployments
// that already coordinate state there and do not want a bucket just for a
// handful of small tables.
//
// Table schema:
//   - Partition key: name (string)
//
// Create the table with:
//
//	aws dynamodb create-table \
//	  --table-name tabhash-tables \
//	  --attribute-definitions AttributeName=name,AttributeType=S \
//	  --key-schema AttributeName=name,KeyType=HASH \
//	  --billing-mode PAY_PER_REQUEST
package dynamo

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/tabhash/tablestore"
)

const (
	nameAttr = "name"
	dataAttr = "data"
)

// Client is the subset of the DynamoDB API the store uses. *dynamodb.Client
// satisfies it; unit tests substitute a mock.
type Client interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Store implements tablestore.Store on a DynamoDB table.
type Store struct {
	client Client
	table  string
}

var _ tablestore.Store = (*Store)(nil)

// New creates a Store using credentials and region resolved from the
// environment.
func New(ctx context.Context, table string) (*Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewStore(dynamodb.NewFromConfig(cfg), table), nil
}

// NewStore creates a Store around an existing client.
func NewStore(client Client, table string) *Store {
	return &Store{client: client, table: table}
}

// Put writes a record. DynamoDB item writes are atomic, so a record is never
// observed half-replaced.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item: map[string]types.AttributeValue{
			nameAttr: &types.AttributeValueMemberS{Value: name},
			dataAttr: &types.AttributeValueMemberB{Value: data},
		},
	})
	return err
}

// Get returns the record stored under name.
func (s *Store) Get(ctx context.Context, name string) ([]byte, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.table),
		Key:            map[string]types.AttributeValue{nameAttr: &types.AttributeValueMemberS{Value: name}},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("%w: %s", tablestore.ErrNotFound, name)
	}

	attr, ok := out.Item[dataAttr].(*types.AttributeValueMemberB)
	if !ok {
		return nil, fmt.Errorf("record %q: missing %s attribute", name, dataAttr)
	}
	return attr.Value, nil
}

// Delete removes the record stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key:       map[string]types.AttributeValue{nameAttr: &types.AttributeValueMemberS{Value: name}},
	})
	return err
}

// List returns the names of all records with the given prefix, sorted.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	input := &dynamodb.ScanInput{
		TableName:                aws.String(s.table),
		ProjectionExpression:     aws.String("#n"),
		ExpressionAttributeNames: map[string]string{"#n": nameAttr},
	}
	if prefix != "" {
		input.FilterExpression = aws.String("begins_with(#n, :p)")
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":p": &types.AttributeValueMemberS{Value: prefix},
		}
	}

	var names []string
	paginator := dynamodb.NewScanPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			if attr, ok := item[nameAttr].(*types.AttributeValueMemberS); ok {
				names = append(names, attr.Value)
			}
		}
	}
	sort.Strings(names)

	return names, nil
}
