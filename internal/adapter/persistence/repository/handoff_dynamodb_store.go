package repository

import (
	"context"
	"fmt"
	"time"

	"sqv_cleaning/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultHandoffTableName = "handoff_sessions"

// DynamoAPI is the subset of the DynamoDB client the hand-off store uses.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

type handoffItem struct {
	ID        string `dynamodbav:"id"`
	Payload   string `dynamodbav:"payload"`
	ExpiresAt int64  `dynamodbav:"expires_at,omitempty"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// HandoffDynamoStore persists hand-off records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: expires_at (epoch seconds)
//
// DynamoDB deletes expired items lazily, so Get also checks expires_at.
type HandoffDynamoStore struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IHandoffStore = (*HandoffDynamoStore)(nil)

func NewHandoffDynamoStore(ddb DynamoAPI, tableName string) *HandoffDynamoStore {
	return &HandoffDynamoStore{
		ddb:       ddb,
		tableName: defaultString(tableName, defaultHandoffTableName),
		now:       time.Now,
	}
}

func (r *HandoffDynamoStore) Put(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	now := r.now().UTC()
	it := handoffItem{
		ID:        key,
		Payload:   string(data),
		UpdatedAt: now.Format(time.RFC3339Nano),
	}
	if exp := expiryFor(now, ttl); !exp.IsZero() {
		it.ExpiresAt = exp.Unix()
	}

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("dynamodb put handoff: %w", err)
	}
	return nil
}

func (r *HandoffDynamoStore) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("dynamodb get handoff: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it handoffItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	if it.ExpiresAt > 0 && expired(time.Unix(it.ExpiresAt, 0), r.now()) {
		return nil, nil
	}
	return []byte(it.Payload), nil
}
