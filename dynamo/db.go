// Package dynamo persists registrations in a single DynamoDB table.
// Events live in the static catalog, so unlike a mutable-event setup there
// is no counter row to update transactionally: a registration is one
// conditional put, keyed so the condition doubles as duplicate detection.
package dynamo

import (
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type DB struct {
	dynamoClient *dynamodb.Client
	tableName    string
}

func NewDB(dynamoClient *dynamodb.Client, tableName string) *DB {
	return &DB{
		dynamoClient: dynamoClient,
		tableName:    tableName,
	}
}

func newItemConditional() expression.ConditionBuilder {
	return expression.Name("PK").AttributeNotExists().
		And(expression.Name("SK").AttributeNotExists())
}

func exprMustBuild(builder expression.Builder) expression.Expression {
	expr, err := builder.Build()
	if err != nil {
		panic("failed to build dynamo expression")
	}

	return expr
}
