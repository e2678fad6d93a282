package repository

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	"cemiterio_api/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDBAPI is the part of *dynamodb.Client the stores use.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoDBAPI = (*dynamodb.Client)(nil)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mergeNames(maps ...map[string]string) map[string]string {
	out := map[string]string{}
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

func strAttr(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

func numAttr(v int64) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(v, 10)}
}

func gravesiteKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"id": numAttr(id)}
}

func contractKey(cpf string, gravesiteID int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"cpf":       strAttr(cpf),
		"id_tumulo": numAttr(gravesiteID),
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// Dates are stored as YYYY-MM-DD so string comparison orders them.
func formatDate(t time.Time) string {
	return t.UTC().Format(entities.DateLayout)
}

func parseDate(s string) time.Time {
	t, _ := time.Parse(entities.DateLayout, s)
	return t
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func queryAll(ctx context.Context, api DynamoDBAPI, in *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewQueryPaginator(api, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

func scanAll(ctx context.Context, api DynamoDBAPI, in *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewScanPaginator(api, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

// filterBuilder collects "#attr = :attr" clauses joined with AND.
type filterBuilder struct {
	expr   string
	names  map[string]string
	values map[string]types.AttributeValue
}

func newFilterBuilder() *filterBuilder {
	return &filterBuilder{names: map[string]string{}, values: map[string]types.AttributeValue{}}
}

func (b *filterBuilder) eq(attr string, v types.AttributeValue) *filterBuilder {
	if b.expr != "" {
		b.expr += " AND "
	}
	b.expr += "#" + attr + " = :" + attr
	b.names["#"+attr] = attr
	b.values[":"+attr] = v
	return b
}

func (b *filterBuilder) apply() (*string, map[string]string, map[string]types.AttributeValue) {
	if b.expr == "" {
		return nil, nil, nil
	}
	return aws.String(b.expr), b.names, b.values
}
