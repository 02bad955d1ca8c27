package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/ManyRagDev/brincar-educando-2/internal/domain"
)

// DiaryRepo provides typed DynamoDB operations for the diary entries table.
type DiaryRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewDiaryRepo(client *dynamodb.Client, tableName string) *DiaryRepo {
	return &DiaryRepo{client: client, tableName: tableName}
}

func (r *DiaryRepo) Put(ctx context.Context, e *domain.DiaryEntry) error {
	item, err := attributevalue.MarshalMap(e)
	if err != nil {
		return fmt.Errorf("marshal diary entry: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *DiaryRepo) Get(ctx context.Context, entryID string) (*domain.DiaryEntry, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("entry_id", entryID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("diary entry not found: %w", domain.ErrNotFound)
	}
	var e domain.DiaryEntry
	if err := attributevalue.UnmarshalMap(out.Item, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// ListByChild queries the child_id-created_at GSI, newest entries first.
func (r *DiaryRepo) ListByChild(ctx context.Context, childID string) ([]domain.DiaryEntry, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("child_id-created_at-index"),
		KeyConditionExpression: aws.String("child_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: childID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	var entries []domain.DiaryEntry
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *DiaryRepo) HardDelete(ctx context.Context, entryID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("entry_id", entryID),
	})
	return err
}
