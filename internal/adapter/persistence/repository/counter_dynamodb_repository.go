package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCountersTableName = "contadores"

// counterStore hands out numeric ids through an atomic ADD on the counters
// table.
//
// Table requirements:
//   - PK: nome (string)
type counterStore struct {
	ddb       DynamoDBAPI
	tableName string
}

func newCounterStore(ddb DynamoDBAPI) counterStore {
	return counterStore{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (s counterStore) next(ctx context.Context, name string) (int64, error) {
	out, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"nome": strAttr(name),
		},
		UpdateExpression: aws.String("ADD #valor :one"),
		ExpressionAttributeNames: map[string]string{
			"#valor": "valor",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": numAttr(1),
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	n, ok := out.Attributes["valor"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %s: missing value", name)
	}
	return strconv.ParseInt(n.Value, 10, 64)
}
