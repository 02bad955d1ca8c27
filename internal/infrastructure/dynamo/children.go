package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/ManyRagDev/brincar-educando-2/internal/domain"
)

// ChildRepo provides typed DynamoDB operations for the children table.
type ChildRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewChildRepo(client *dynamodb.Client, tableName string) *ChildRepo {
	return &ChildRepo{client: client, tableName: tableName}
}

func (r *ChildRepo) Put(ctx context.Context, c *domain.Child) error {
	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return fmt.Errorf("marshal child: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *ChildRepo) Get(ctx context.Context, childID string) (*domain.Child, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("child_id", childID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("child not found: %w", domain.ErrNotFound)
	}
	var c domain.Child
	if err := attributevalue.UnmarshalMap(out.Item, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// listByOwnerInput builds the owner_id GSI query. "enable" is a DynamoDB
// reserved word and must be aliased in the filter expression.
func listByOwnerInput(tableName, ownerID string) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:              aws.String(tableName),
		IndexName:              aws.String("owner_id-index"),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		FilterExpression:       aws.String("#en = :one"),
		ExpressionAttributeNames: map[string]string{
			"#en": "enable",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ownerID},
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
	}
}

// ListByOwner queries the owner_id GSI and filters out soft-deleted rows.
func (r *ChildRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Child, error) {
	out, err := r.client.Query(ctx, listByOwnerInput(r.tableName, ownerID))
	if err != nil {
		return nil, err
	}
	var children []domain.Child
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &children); err != nil {
		return nil, err
	}
	return children, nil
}

func (r *ChildRepo) Update(ctx context.Context, childID string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("child_id", childID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}

func (r *ChildRepo) SoftDelete(ctx context.Context, childID string) error {
	return r.Update(ctx, childID, map[string]interface{}{
		"enable":     0,
		"deleted_at": time.Now().UTC().Format(time.RFC3339),
	})
}
