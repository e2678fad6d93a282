package repository

import (
	"context"
	"errors"
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
	defaultGravesitesTableName = "tumulos"
	gravesiteCounterName       = "tumulos"
)

type gravesiteItem struct {
	ID            int64  `dynamodbav:"id"`
	Status        string `dynamodbav:"status"`
	Tipo          string `dynamodbav:"tipo"`
	Capacidade    int    `dynamodbav:"capacidade"`
	Ocupacao      int    `dynamodbav:"ocupacao"`
	Quadra        string `dynamodbav:"quadra"`
	Setor         string `dynamodbav:"setor"`
	Numero        string `dynamodbav:"numero"`
	Version       int64  `dynamodbav:"version"`
	ContractCount int    `dynamodbav:"contract_count"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// GravesiteDynamoRepository persists Gravesite entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//
// Location is flattened into the item, so a patch touching it is a single
// conditional write. version guards every write; contract_count mirrors the
// number of contratos items pointing at the gravesite.

type GravesiteDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	counters  counterStore
}

var _ interfaces.IGravesiteRepository = (*GravesiteDynamoRepository)(nil)

func NewGravesiteDynamoRepository(ddb DynamoDBAPI) *GravesiteDynamoRepository {
	return &GravesiteDynamoRepository{
		ddb:       ddb,
		tableName: gravesitesTable(),
		counters:  newCounterStore(ddb),
	}
}

func gravesitesTable() string {
	return getenvDefault("GRAVESITES_TABLE", defaultGravesitesTableName)
}

func (r *GravesiteDynamoRepository) Create(ctx context.Context, g entities.Gravesite) (entities.Gravesite, error) {
	id, err := r.counters.next(ctx, gravesiteCounterName)
	if err != nil {
		return entities.Gravesite{}, err
	}
	g.ID = id

	av, err := attributevalue.MarshalMap(toGravesiteItem(g, 1, 0))
	if err != nil {
		return entities.Gravesite{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Gravesite{}, err
	}
	return g, nil
}

func (r *GravesiteDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Gravesite, error) {
	it, found, err := getGravesiteItem(ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.Gravesite{}, err
	}
	return fromGravesiteItem(it), nil
}

func (r *GravesiteDynamoRepository) List(ctx context.Context, filter entities.GravesiteFilter) ([]entities.Gravesite, error) {
	fb := newFilterBuilder()
	if filter.Status != "" {
		fb.eq("status", strAttr(string(filter.Status)))
	}
	if filter.Type != "" {
		fb.eq("tipo", strAttr(filter.Type))
	}
	if filter.Quadra != "" {
		fb.eq("quadra", strAttr(filter.Quadra))
	}
	expr, names, values := fb.apply()

	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          expr,
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.Gravesite, 0, len(raw))
	for _, m := range raw {
		var it gravesiteItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		out = append(out, fromGravesiteItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Update merges patch over the stored item and writes it back guarded by
// version. Lost races are retried with a fresh read.
func (r *GravesiteDynamoRepository) Update(ctx context.Context, id int64, patch entities.GravesitePatch) (entities.Gravesite, error) {
	var updated entities.Gravesite
	err := withRetry(ctx, "update-gravesite", func() error {
		it, found, err := getGravesiteItem(ctx, r.ddb, r.tableName, id)
		if err != nil {
			return err
		}
		if !found {
			return entities.ErrGravesiteNotFound
		}

		next, err := fromGravesiteItem(it).ApplyPatch(patch, it.ContractCount)
		if err != nil {
			return err
		}
		next.UpdatedAt = time.Now().UTC()

		_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:           aws.String(r.tableName),
			Key:                 gravesiteKey(id),
			ConditionExpression: aws.String("#version = :version"),
			UpdateExpression: aws.String("SET #status = :status, #tipo = :tipo, #capacidade = :capacidade, " +
				"#quadra = :quadra, #setor = :setor, #numero = :numero, #updated_at = :updated_at, #version = #version + :one"),
			ExpressionAttributeNames: map[string]string{
				"#version":    "version",
				"#status":     "status",
				"#tipo":       "tipo",
				"#capacidade": "capacidade",
				"#quadra":     "quadra",
				"#setor":      "setor",
				"#numero":     "numero",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":version":    numAttr(it.Version),
				":status":     strAttr(string(next.Status)),
				":tipo":       strAttr(next.Type),
				":capacidade": numAttr(int64(next.Capacity)),
				":quadra":     strAttr(next.Location.Quadra),
				":setor":      strAttr(next.Location.Setor),
				":numero":     strAttr(next.Location.Numero),
				":updated_at": strAttr(formatTime(next.UpdatedAt)),
				":one":        numAttr(1),
			},
		})
		if err != nil {
			if isConditionalCheckFailed(err) {
				return errRetry
			}
			return err
		}
		updated = next
		return nil
	})
	if err != nil {
		return entities.Gravesite{}, err
	}
	return updated, nil
}

// Delete is conditioned on no occupants and no contracts.
func (r *GravesiteDynamoRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 gravesiteKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #ocupacao = :zero AND #contract_count = :zero"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#ocupacao":       "ocupacao",
			"#contract_count": "contract_count",
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

	_, found, getErr := getGravesiteItem(ctx, r.ddb, r.tableName, id)
	if getErr != nil {
		return errors.Join(err, getErr)
	}
	if !found {
		return entities.ErrGravesiteNotFound
	}
	return entities.ErrGravesiteInUse
}

func getGravesiteItem(ctx context.Context, ddb DynamoDBAPI, table string, id int64) (gravesiteItem, bool, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            gravesiteKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return gravesiteItem{}, false, err
	}
	if len(out.Item) == 0 {
		return gravesiteItem{}, false, nil
	}
	var it gravesiteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return gravesiteItem{}, false, err
	}
	return it, true, nil
}

func toGravesiteItem(g entities.Gravesite, version int64, contracts int) gravesiteItem {
	return gravesiteItem{
		ID:            g.ID,
		Status:        string(g.Status),
		Tipo:          g.Type,
		Capacidade:    g.Capacity,
		Ocupacao:      g.Occupancy,
		Quadra:        g.Location.Quadra,
		Setor:         g.Location.Setor,
		Numero:        g.Location.Numero,
		Version:       version,
		ContractCount: contracts,
		CreatedAt:     formatTime(g.CreatedAt),
		UpdatedAt:     formatTime(g.UpdatedAt),
	}
}

func fromGravesiteItem(it gravesiteItem) entities.Gravesite {
	return entities.Gravesite{
		ID:        it.ID,
		Status:    entities.GravesiteStatus(it.Status),
		Type:      it.Tipo,
		Capacity:  it.Capacidade,
		Occupancy: it.Ocupacao,
		Location: entities.Location{
			Quadra: it.Quadra,
			Setor:  it.Setor,
			Numero: it.Numero,
		},
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
