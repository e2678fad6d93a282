package repository

import (
	"context"
	"time"

	"cemiterio_api/internal/domain/entities"
	"cemiterio_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// OccupancyDynamoRepository applies contract and deceased writes together
// with the gravesite mutation they imply.
//
// Each operation reads the gravesite, computes the next state with the
// entities rules and commits one TransactWriteItems call whose first item is
// the gravesite update guarded by version. A lost race cancels the whole
// transaction and is retried with a fresh read.

type OccupancyDynamoRepository struct {
	ddb              DynamoDBAPI
	gravesitesTable  string
	contractsTable   string
	deceasedTable    string
	plotholdersTable string
}

var _ interfaces.IOccupancyRepository = (*OccupancyDynamoRepository)(nil)

func NewOccupancyDynamoRepository(ddb DynamoDBAPI) *OccupancyDynamoRepository {
	return &OccupancyDynamoRepository{
		ddb:              ddb,
		gravesitesTable:  gravesitesTable(),
		contractsTable:   contractsTable(),
		deceasedTable:    deceasedTable(),
		plotholdersTable: plotholdersTable(),
	}
}

func (r *OccupancyDynamoRepository) Reserve(ctx context.Context, c entities.Contract) (entities.Contract, entities.Gravesite, error) {
	var g entities.Gravesite
	err := withRetry(ctx, "reserve", func() error {
		it, found, err := getGravesiteItem(ctx, r.ddb, r.gravesitesTable, c.GravesiteID)
		if err != nil {
			return err
		}
		if !found {
			return entities.ErrGravesiteNotFound
		}
		next, err := fromGravesiteItem(it).AfterReservation(it.ContractCount)
		if err != nil {
			return err
		}
		next.UpdatedAt = c.UpdatedAt

		contract, err := attributevalue.MarshalMap(toContractItem(c))
		if err != nil {
			return err
		}

		_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: []types.TransactWriteItem{
				r.gravesiteWrite(it, next, 1),
				plotholderRefUpdate(r.plotholdersTable, c.CPF, 1),
				{
					Put: &types.Put{
						TableName:           aws.String(r.contractsTable),
						Item:                contract,
						ConditionExpression: aws.String("attribute_not_exists(#cpf)"),
						ExpressionAttributeNames: map[string]string{
							"#cpf": "cpf",
						},
					},
				},
			},
		})
		if err != nil {
			return classifyCancellation(err, map[int]error{
				1: entities.ErrPlotholderNotFound,
				2: entities.ErrDuplicateContract,
			})
		}
		g = next
		return nil
	})
	if err != nil {
		return entities.Contract{}, entities.Gravesite{}, err
	}
	return c, g, nil
}

func (r *OccupancyDynamoRepository) Inter(ctx context.Context, d entities.Deceased) (entities.Deceased, entities.Gravesite, error) {
	var g entities.Gravesite
	err := withRetry(ctx, "inter", func() error {
		it, found, err := getGravesiteItem(ctx, r.ddb, r.gravesitesTable, d.GravesiteID)
		if err != nil {
			return err
		}
		if !found {
			return entities.ErrGravesiteNotFound
		}
		contract, found, err := getContractItem(ctx, r.ddb, r.contractsTable, d.CPF, d.GravesiteID)
		if err != nil {
			return err
		}
		if !found {
			return entities.ErrContractNotFound
		}
		if entities.ContractStatus(contract.Status) != entities.ContractStatusAtivo {
			return entities.ErrNoActiveContract
		}

		next, err := fromGravesiteItem(it).AfterBurial()
		if err != nil {
			return err
		}
		next.UpdatedAt = d.CreatedAt

		record, err := attributevalue.MarshalMap(toDeceasedItem(d))
		if err != nil {
			return err
		}

		_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: []types.TransactWriteItem{
				r.gravesiteWrite(it, next, 0),
				{
					ConditionCheck: &types.ConditionCheck{
						TableName:           aws.String(r.contractsTable),
						Key:                 contractKey(d.CPF, d.GravesiteID),
						ConditionExpression: aws.String("#status = :ativo"),
						ExpressionAttributeNames: map[string]string{
							"#status": "status",
						},
						ExpressionAttributeValues: map[string]types.AttributeValue{
							":ativo": strAttr(string(entities.ContractStatusAtivo)),
						},
					},
				},
				{
					Put: &types.Put{
						TableName:           aws.String(r.deceasedTable),
						Item:                record,
						ConditionExpression: aws.String("attribute_not_exists(#id)"),
						ExpressionAttributeNames: map[string]string{
							"#id": "id",
						},
					},
				},
				plotholderRefUpdate(r.plotholdersTable, d.CPF, 1),
			},
		})
		if err != nil {
			return classifyCancellation(err, map[int]error{
				2: entities.ErrInvariantViolation,
				3: entities.ErrPlotholderNotFound,
			})
		}
		g = next
		return nil
	})
	if err != nil {
		return entities.Deceased{}, entities.Gravesite{}, err
	}
	return d, g, nil
}

func (r *OccupancyDynamoRepository) Release(ctx context.Context, cpf string, gravesiteID int64) (entities.Gravesite, error) {
	var g entities.Gravesite
	err := withRetry(ctx, "release", func() error {
		it, found, err := getGravesiteItem(ctx, r.ddb, r.gravesitesTable, gravesiteID)
		if err != nil {
			return err
		}
		if !found {
			return entities.ErrContractNotFound
		}
		if _, found, err := getContractItem(ctx, r.ddb, r.contractsTable, cpf, gravesiteID); err != nil {
			return err
		} else if !found {
			return entities.ErrContractNotFound
		}

		remaining := it.ContractCount - 1
		if remaining < 0 {
			remaining = 0
		}
		next := fromGravesiteItem(it).AfterRelease(remaining)
		next.UpdatedAt = time.Now().UTC()

		_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: []types.TransactWriteItem{
				r.gravesiteWrite(it, next, -1),
				{
					Delete: &types.Delete{
						TableName:           aws.String(r.contractsTable),
						Key:                 contractKey(cpf, gravesiteID),
						ConditionExpression: aws.String("attribute_exists(#cpf)"),
						ExpressionAttributeNames: map[string]string{
							"#cpf": "cpf",
						},
					},
				},
				plotholderRefUpdate(r.plotholdersTable, cpf, -1),
			},
		})
		if err != nil {
			return classifyCancellation(err, map[int]error{
				2: entities.ErrInvariantViolation,
			})
		}
		g = next
		return nil
	})
	if err != nil {
		return entities.Gravesite{}, err
	}
	return g, nil
}

func (r *OccupancyDynamoRepository) Exhume(ctx context.Context, deceasedID string) (entities.Deceased, entities.Gravesite, error) {
	var (
		d entities.Deceased
		g entities.Gravesite
	)
	err := withRetry(ctx, "exhume", func() error {
		rec, found, err := getDeceasedItem(ctx, r.ddb, r.deceasedTable, deceasedID)
		if err != nil {
			return err
		}
		if !found {
			return entities.ErrDeceasedNotFound
		}
		it, found, err := getGravesiteItem(ctx, r.ddb, r.gravesitesTable, rec.GravesiteID)
		if err != nil {
			return err
		}
		if !found {
			return entities.ErrInvariantViolation
		}

		next, err := fromGravesiteItem(it).AfterExhumation(it.ContractCount)
		if err != nil {
			return err
		}
		next.UpdatedAt = time.Now().UTC()

		_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: []types.TransactWriteItem{
				r.gravesiteWrite(it, next, 0),
				{
					Delete: &types.Delete{
						TableName:           aws.String(r.deceasedTable),
						Key:                 map[string]types.AttributeValue{"id": strAttr(deceasedID)},
						ConditionExpression: aws.String("attribute_exists(#id)"),
						ExpressionAttributeNames: map[string]string{
							"#id": "id",
						},
					},
				},
				plotholderRefUpdate(r.plotholdersTable, rec.CPF, -1),
			},
		})
		if err != nil {
			return classifyCancellation(err, map[int]error{
				2: entities.ErrInvariantViolation,
			})
		}
		d = fromDeceasedItem(rec)
		g = next
		return nil
	})
	if err != nil {
		return entities.Deceased{}, entities.Gravesite{}, err
	}
	return d, g, nil
}

// gravesiteWrite persists next over the item read as current. The version
// condition fails if anyone wrote the gravesite since that read.
func (r *OccupancyDynamoRepository) gravesiteWrite(current gravesiteItem, next entities.Gravesite, contractDelta int64) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName:           aws.String(r.gravesitesTable),
			Key:                 gravesiteKey(current.ID),
			ConditionExpression: aws.String("#version = :version AND #ocupacao <= #capacidade"),
			UpdateExpression: aws.String("SET #status = :status, #ocupacao = :ocupacao, #updated_at = :updated_at, " +
				"#version = #version + :one ADD #contract_count :contract_delta"),
			ExpressionAttributeNames: map[string]string{
				"#version":        "version",
				"#status":         "status",
				"#ocupacao":       "ocupacao",
				"#capacidade":     "capacidade",
				"#updated_at":     "updated_at",
				"#contract_count": "contract_count",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":version":        numAttr(current.Version),
				":status":         strAttr(string(next.Status)),
				":ocupacao":       numAttr(int64(next.Occupancy)),
				":updated_at":     strAttr(formatTime(next.UpdatedAt)),
				":one":            numAttr(1),
				":contract_delta": numAttr(contractDelta),
			},
		},
	}
}
