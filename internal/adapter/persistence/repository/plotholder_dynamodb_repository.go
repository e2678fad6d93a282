package repository

import (
	"context"
	"errors"
	"sort"

	"cemiterio_api/internal/domain/entities"
	"cemiterio_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPlotholdersTableName = "titulares"

type plotholderItem struct {
	CPF            string `dynamodbav:"cpf"`
	Nome           string `dynamodbav:"nome"`
	Telefone       string `dynamodbav:"telefone,omitempty"`
	Email          string `dynamodbav:"email,omitempty"`
	Endereco       string `dynamodbav:"endereco,omitempty"`
	ReferenceCount int    `dynamodbav:"reference_count"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// PlotholderDynamoRepository persists Plotholder entities in DynamoDB.
//
// Table requirements:
//   - PK: cpf (string)
//
// reference_count counts the contracts and deceased records pointing at the
// CPF. The occupancy transactions keep it current, so Delete is a single
// conditional write.

type PlotholderDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPlotholderRepository = (*PlotholderDynamoRepository)(nil)

func NewPlotholderDynamoRepository(ddb DynamoDBAPI) *PlotholderDynamoRepository {
	return &PlotholderDynamoRepository{
		ddb:       ddb,
		tableName: plotholdersTable(),
	}
}

func plotholdersTable() string {
	return getenvDefault("PLOTHOLDERS_TABLE", defaultPlotholdersTableName)
}

func plotholderKey(cpf string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"cpf": strAttr(cpf)}
}

func (r *PlotholderDynamoRepository) Create(ctx context.Context, h entities.Plotholder) (entities.Plotholder, error) {
	av, err := attributevalue.MarshalMap(toPlotholderItem(h))
	if err != nil {
		return entities.Plotholder{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#cpf)"),
		ExpressionAttributeNames: map[string]string{
			"#cpf": "cpf",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Plotholder{}, entities.ErrPlotholderExists
		}
		return entities.Plotholder{}, err
	}
	return h, nil
}

func (r *PlotholderDynamoRepository) GetByCPF(ctx context.Context, cpf string) (entities.Plotholder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            plotholderKey(cpf),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Plotholder{}, err
	}
	if len(out.Item) == 0 {
		return entities.Plotholder{}, nil
	}
	var it plotholderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Plotholder{}, err
	}
	return fromPlotholderItem(it), nil
}

func (r *PlotholderDynamoRepository) List(ctx context.Context) ([]entities.Plotholder, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Plotholder, 0, len(raw))
	for _, m := range raw {
		var it plotholderItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		out = append(out, fromPlotholderItem(it))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].CPF < out[j].CPF
	})
	return out, nil
}

func (r *PlotholderDynamoRepository) Update(ctx context.Context, h entities.Plotholder) (entities.Plotholder, error) {
	it := toPlotholderItem(h)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 plotholderKey(h.CPF),
		ConditionExpression: aws.String("attribute_exists(#cpf)"),
		UpdateExpression:    aws.String("SET #nome = :nome, #telefone = :telefone, #email = :email, #endereco = :endereco, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#cpf":        "cpf",
			"#nome":       "nome",
			"#telefone":   "telefone",
			"#email":      "email",
			"#endereco":   "endereco",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":nome":       strAttr(it.Nome),
			":telefone":   strAttr(it.Telefone),
			":email":      strAttr(it.Email),
			":endereco":   strAttr(it.Endereco),
			":updated_at": strAttr(it.UpdatedAt),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Plotholder{}, nil
		}
		return entities.Plotholder{}, err
	}
	var updated plotholderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &updated); err != nil {
		return entities.Plotholder{}, err
	}
	return fromPlotholderItem(updated), nil
}

func (r *PlotholderDynamoRepository) Delete(ctx context.Context, cpf string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 plotholderKey(cpf),
		ConditionExpression: aws.String("attribute_exists(#cpf) AND (attribute_not_exists(#refs) OR #refs = :zero)"),
		ExpressionAttributeNames: map[string]string{
			"#cpf":  "cpf",
			"#refs": "reference_count",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero": numAttr(0),
		},
	})
	if err == nil {
		return nil
	}
	if !isConditionalCheckFailed(err) {
		return err
	}

	h, getErr := r.GetByCPF(ctx, cpf)
	if getErr != nil {
		return errors.Join(err, getErr)
	}
	if h.CPF == "" {
		return entities.ErrPlotholderNotFound
	}
	return entities.ErrPlotholderInUse
}

// plotholderRefUpdate adjusts reference_count inside an occupancy
// transaction. The item must exist.
func plotholderRefUpdate(table, cpf string, delta int64) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName:           aws.String(table),
			Key:                 plotholderKey(cpf),
			ConditionExpression: aws.String("attribute_exists(#cpf)"),
			UpdateExpression:    aws.String("ADD #refs :delta"),
			ExpressionAttributeNames: map[string]string{
				"#cpf":  "cpf",
				"#refs": "reference_count",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":delta": numAttr(delta),
			},
		},
	}
}

func toPlotholderItem(h entities.Plotholder) plotholderItem {
	return plotholderItem{
		CPF:       h.CPF,
		Nome:      h.Name,
		Telefone:  h.Phone,
		Email:     h.Email,
		Endereco:  h.Address,
		CreatedAt: formatTime(h.CreatedAt),
		UpdatedAt: formatTime(h.UpdatedAt),
	}
}

func fromPlotholderItem(it plotholderItem) entities.Plotholder {
	return entities.Plotholder{
		CPF:       it.CPF,
		Name:      it.Nome,
		Phone:     it.Telefone,
		Email:     it.Email,
		Address:   it.Endereco,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
