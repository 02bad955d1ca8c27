package dynamo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// "enable" is a DynamoDB reserved word; using it bare in an expression makes
// the server reject the whole query with a ValidationException.
func TestListByOwnerInput_AliasesReservedWord(t *testing.T) {
	input := listByOwnerInput("children", "owner-1")

	require.NotNil(t, input.FilterExpression)
	assert.Equal(t, "#en = :one", *input.FilterExpression)
	assert.NotContains(t, *input.FilterExpression, "enable")
	assert.Equal(t, map[string]string{"#en": "enable"}, input.ExpressionAttributeNames)
}

func TestListByOwnerInput_QueriesOwnerIndex(t *testing.T) {
	input := listByOwnerInput("children", "owner-1")

	require.NotNil(t, input.IndexName)
	assert.Equal(t, "owner_id-index", *input.IndexName)
	require.NotNil(t, input.KeyConditionExpression)
	assert.Equal(t, "owner_id = :oid", *input.KeyConditionExpression)
	_, ok := input.ExpressionAttributeValues[":oid"]
	assert.True(t, ok)
	_, ok = input.ExpressionAttributeValues[":one"]
	assert.True(t, ok)
}
