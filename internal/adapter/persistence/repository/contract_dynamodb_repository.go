package repository

import (
	"context"
	"sort"
	"time"

	"cemiterio_api/internal/domain/entities"
	"cemiterio_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultContractsTableName = "contratos"
	contractsGravesiteIndex   = "id_tumulo-index"
)

type contractItem struct {
	CPF            string `dynamodbav:"cpf"`
	GravesiteID    int64  `dynamodbav:"id_tumulo"`
	DataInicio     string `dynamodbav:"data_inicio"`
	PrazoVigencia  int    `dynamodbav:"prazo_vigencia"`
	DataVencimento string `dynamodbav:"data_vencimento"`
	Valor          string `dynamodbav:"valor"`
	Status         string `dynamodbav:"status"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// ContractDynamoRepository reads and edits Contract items. Puts and deletes
// happen inside OccupancyDynamoRepository transactions.
//
// Table requirements:
//   - PK: cpf (string), SK: id_tumulo (number)
//   - GSI: id_tumulo-index (PK: id_tumulo)

type ContractDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb DynamoDBAPI) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:       ddb,
		tableName: contractsTable(),
	}
}

func contractsTable() string {
	return getenvDefault("CONTRACTS_TABLE", defaultContractsTableName)
}

func (r *ContractDynamoRepository) GetByKey(ctx context.Context, cpf string, gravesiteID int64) (entities.Contract, error) {
	it, found, err := getContractItem(ctx, r.ddb, r.tableName, cpf, gravesiteID)
	if err != nil || !found {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) List(ctx context.Context, filter entities.ContractFilter) ([]entities.Contract, error) {
	fb := newFilterBuilder()
	if filter.Status != "" {
		fb.eq("status", strAttr(string(filter.Status)))
	}

	var (
		raw []map[string]types.AttributeValue
		err error
	)
	switch {
	case filter.CPF != "":
		keyExpr := "#pk = :pk"
		keyNames := map[string]string{"#pk": "cpf"}
		keyValues := map[string]types.AttributeValue{":pk": strAttr(filter.CPF)}
		if filter.GravesiteID > 0 {
			keyExpr += " AND #sk = :sk"
			keyNames["#sk"] = "id_tumulo"
			keyValues[":sk"] = numAttr(filter.GravesiteID)
		}
		expr, names, values := fb.apply()
		raw, err = queryAll(ctx, r.ddb, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			KeyConditionExpression:    aws.String(keyExpr),
			FilterExpression:          expr,
			ExpressionAttributeNames:  mergeNames(names, keyNames),
			ExpressionAttributeValues: mergeValues(values, keyValues),
		})
	case filter.GravesiteID > 0:
		expr, names, values := fb.apply()
		raw, err = queryAll(ctx, r.ddb, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String(contractsGravesiteIndex),
			KeyConditionExpression:    aws.String("#pk = :pk"),
			FilterExpression:          expr,
			ExpressionAttributeNames:  mergeNames(names, map[string]string{"#pk": "id_tumulo"}),
			ExpressionAttributeValues: mergeValues(values, map[string]types.AttributeValue{":pk": numAttr(filter.GravesiteID)}),
		})
	default:
		expr, names, values := fb.apply()
		raw, err = scanAll(ctx, r.ddb, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          expr,
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		})
	}
	if err != nil {
		return nil, err
	}

	out, err := unmarshalContracts(raw)
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].GravesiteID != out[j].GravesiteID {
			return out[i].GravesiteID < out[j].GravesiteID
		}
		return out[i].CPF < out[j].CPF
	})
	return out, nil
}

func (r *ContractDynamoRepository) ListExpiring(ctx context.Context, from, to time.Time) ([]entities.Contract, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#data_vencimento BETWEEN :from AND :to"),
		ExpressionAttributeNames: map[string]string{
			"#data_vencimento": "data_vencimento",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": strAttr(formatDate(from)),
			":to":   strAttr(formatDate(to)),
		},
	})
	if err != nil {
		return nil, err
	}
	out, err := unmarshalContracts(raw)
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EndDate.Before(out[j].EndDate) })
	return out, nil
}

// Update returns the zero value when the contract no longer exists.
func (r *ContractDynamoRepository) Update(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	it := toContractItem(c)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 contractKey(c.CPF, c.GravesiteID),
		ConditionExpression: aws.String("attribute_exists(#cpf)"),
		UpdateExpression: aws.String("SET #data_inicio = :data_inicio, #prazo_vigencia = :prazo_vigencia, " +
			"#data_vencimento = :data_vencimento, #valor = :valor, #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#cpf":             "cpf",
			"#data_inicio":     "data_inicio",
			"#prazo_vigencia":  "prazo_vigencia",
			"#data_vencimento": "data_vencimento",
			"#valor":           "valor",
			"#status":          "status",
			"#updated_at":      "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":data_inicio":     strAttr(it.DataInicio),
			":prazo_vigencia":  numAttr(int64(it.PrazoVigencia)),
			":data_vencimento": strAttr(it.DataVencimento),
			":valor":           strAttr(it.Valor),
			":status":          strAttr(it.Status),
			":updated_at":      strAttr(it.UpdatedAt),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Contract{}, nil
		}
		return entities.Contract{}, err
	}
	var updated contractItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &updated); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(updated), nil
}

func getContractItem(ctx context.Context, ddb DynamoDBAPI, table, cpf string, gravesiteID int64) (contractItem, bool, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            contractKey(cpf, gravesiteID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return contractItem{}, false, err
	}
	if len(out.Item) == 0 {
		return contractItem{}, false, nil
	}
	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return contractItem{}, false, err
	}
	return it, true, nil
}

func unmarshalContracts(raw []map[string]types.AttributeValue) ([]entities.Contract, error) {
	out := make([]entities.Contract, 0, len(raw))
	for _, m := range raw {
		var it contractItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		out = append(out, fromContractItem(it))
	}
	return out, nil
}

func mergeValues(maps ...map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := map[string]types.AttributeValue{}
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

func toContractItem(c entities.Contract) contractItem {
	return contractItem{
		CPF:            c.CPF,
		GravesiteID:    c.GravesiteID,
		DataInicio:     formatDate(c.StartDate),
		PrazoVigencia:  c.TermMonths,
		DataVencimento: formatDate(c.EndDate),
		Valor:          floatToString(c.Value),
		Status:         string(c.Status),
		CreatedAt:      formatTime(c.CreatedAt),
		UpdatedAt:      formatTime(c.UpdatedAt),
	}
}

func fromContractItem(it contractItem) entities.Contract {
	return entities.Contract{
		CPF:         it.CPF,
		GravesiteID: it.GravesiteID,
		StartDate:   parseDate(it.DataInicio),
		TermMonths:  it.PrazoVigencia,
		EndDate:     parseDate(it.DataVencimento),
		Value:       parseFloat(it.Valor),
		Status:      entities.ContractStatus(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
