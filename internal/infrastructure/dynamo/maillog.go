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

// MailLogRepo provides typed DynamoDB operations for the mail log table.
type MailLogRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewMailLogRepo(client *dynamodb.Client, tableName string) *MailLogRepo {
	return &MailLogRepo{client: client, tableName: tableName}
}

func (r *MailLogRepo) Put(ctx context.Context, e *domain.MailLogEntry) error {
	item, err := attributevalue.MarshalMap(e)
	if err != nil {
		return fmt.Errorf("marshal mail log entry: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// ListByTenant queries the tenant_tag GSI. Used by operators to inspect
// recent dispatches for one application.
func (r *MailLogRepo) ListByTenant(ctx context.Context, tenantTag string) ([]domain.MailLogEntry, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("tenant_tag-index"),
		KeyConditionExpression: aws.String("tenant_tag = :t"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t": &types.AttributeValueMemberS{Value: tenantTag},
		},
	})
	if err != nil {
		return nil, err
	}
	var entries []domain.MailLogEntry
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
