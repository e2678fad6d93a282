package repository

import (
	"context"
	"sort"

	"cemiterio_api/internal/domain/entities"
	"cemiterio_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDeceasedTableName = "falecidos"
	deceasedGravesiteIndex   = "id_tumulo-index"
	deceasedCPFIndex         = "cpf-index"
)

type deceasedItem struct {
	ID              string `dynamodbav:"id"`
	Nome            string `dynamodbav:"nome"`
	DataNascimento  string `dynamodbav:"data_nascimento"`
	DataFalecimento string `dynamodbav:"data_falecimento"`
	Motivo          string `dynamodbav:"motivo,omitempty"`
	CPF             string `dynamodbav:"cpf"`
	GravesiteID     int64  `dynamodbav:"id_tumulo"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// DeceasedDynamoRepository reads Deceased items.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: id_tumulo-index (PK: id_tumulo), cpf-index (PK: cpf)

type DeceasedDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IDeceasedRepository = (*DeceasedDynamoRepository)(nil)

func NewDeceasedDynamoRepository(ddb DynamoDBAPI) *DeceasedDynamoRepository {
	return &DeceasedDynamoRepository{
		ddb:       ddb,
		tableName: deceasedTable(),
	}
}

func deceasedTable() string {
	return getenvDefault("DECEASED_TABLE", defaultDeceasedTableName)
}

func (r *DeceasedDynamoRepository) GetByID(ctx context.Context, id string) (entities.Deceased, error) {
	it, found, err := getDeceasedItem(ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.Deceased{}, err
	}
	return fromDeceasedItem(it), nil
}

func (r *DeceasedDynamoRepository) List(ctx context.Context, filter entities.DeceasedFilter) ([]entities.Deceased, error) {
	var (
		raw []map[string]types.AttributeValue
		err error
	)
	switch {
	case filter.GravesiteID > 0:
		fb := newFilterBuilder()
		if filter.CPF != "" {
			fb.eq("cpf", strAttr(filter.CPF))
		}
		expr, names, values := fb.apply()
		raw, err = queryAll(ctx, r.ddb, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String(deceasedGravesiteIndex),
			KeyConditionExpression:    aws.String("#pk = :pk"),
			FilterExpression:          expr,
			ExpressionAttributeNames:  mergeNames(names, map[string]string{"#pk": "id_tumulo"}),
			ExpressionAttributeValues: mergeValues(values, map[string]types.AttributeValue{":pk": numAttr(filter.GravesiteID)}),
		})
	case filter.CPF != "":
		raw, err = queryAll(ctx, r.ddb, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String(deceasedCPFIndex),
			KeyConditionExpression:    aws.String("#pk = :pk"),
			ExpressionAttributeNames:  map[string]string{"#pk": "cpf"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":pk": strAttr(filter.CPF)},
		})
	default:
		raw, err = scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	}
	if err != nil {
		return nil, err
	}

	out := make([]entities.Deceased, 0, len(raw))
	for _, m := range raw {
		var it deceasedItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		out = append(out, fromDeceasedItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func getDeceasedItem(ctx context.Context, ddb DynamoDBAPI, table, id string) (deceasedItem, bool, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": strAttr(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return deceasedItem{}, false, err
	}
	if len(out.Item) == 0 {
		return deceasedItem{}, false, nil
	}
	var it deceasedItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return deceasedItem{}, false, err
	}
	return it, true, nil
}

func toDeceasedItem(d entities.Deceased) deceasedItem {
	return deceasedItem{
		ID:              d.ID,
		Nome:            d.Name,
		DataNascimento:  formatDate(d.BirthDate),
		DataFalecimento: formatDate(d.DeathDate),
		Motivo:          d.Cause,
		CPF:             d.CPF,
		GravesiteID:     d.GravesiteID,
		CreatedAt:       formatTime(d.CreatedAt),
	}
}

func fromDeceasedItem(it deceasedItem) entities.Deceased {
	return entities.Deceased{
		ID:          it.ID,
		Name:        it.Nome,
		BirthDate:   parseDate(it.DataNascimento),
		DeathDate:   parseDate(it.DataFalecimento),
		Cause:       it.Motivo,
		CPF:         it.CPF,
		GravesiteID: it.GravesiteID,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
