package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"cemiterio_api/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func storedContract(cpf string, gravesiteID int64, end string) contractItem {
	return contractItem{
		CPF:            cpf,
		GravesiteID:    gravesiteID,
		DataInicio:     "2024-01-01",
		PrazoVigencia:  12,
		DataVencimento: end,
		Valor:          "1200",
		Status:         string(entities.ContractStatusAtivo),
	}
}

func TestContractDynamo_ListAccessPath(t *testing.T) {
	t.Run("cpf queries the table key", func(t *testing.T) {
		fake := newFakeDynamo()
		fake.addRow(t, defaultContractsTableName, storedContract("111", 3, "2025-01-01"))
		fake.addRow(t, defaultContractsTableName, storedContract("111", 1, "2025-01-01"))
		repo := NewContractDynamoRepository(fake)

		out, err := repo.List(context.Background(), entities.ContractFilter{CPF: "111"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fake.queries) != 1 || len(fake.scans) != 0 {
			t.Fatalf("expected one query, got %d queries %d scans", len(fake.queries), len(fake.scans))
		}
		q := fake.queries[0]
		if q.IndexName != nil || aws.ToString(q.KeyConditionExpression) != "#pk = :pk" || q.FilterExpression != nil {
			t.Fatalf("unexpected query: %+v", q)
		}
		if len(out) != 2 || out[0].GravesiteID != 1 || out[1].GravesiteID != 3 {
			t.Fatalf("expected results sorted by gravesite, got %+v", out)
		}
	})

	t.Run("cpf and gravesite use the sort key", func(t *testing.T) {
		fake := newFakeDynamo()
		repo := NewContractDynamoRepository(fake)

		_, err := repo.List(context.Background(), entities.ContractFilter{CPF: "111", GravesiteID: 3, Status: entities.ContractStatusReservado})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		q := fake.queries[0]
		if aws.ToString(q.KeyConditionExpression) != "#pk = :pk AND #sk = :sk" {
			t.Fatalf("unexpected key condition %q", aws.ToString(q.KeyConditionExpression))
		}
		if aws.ToString(q.FilterExpression) != "#status = :status" {
			t.Fatalf("unexpected filter %q", aws.ToString(q.FilterExpression))
		}
		if sk, ok := q.ExpressionAttributeValues[":sk"].(*types.AttributeValueMemberN); !ok || sk.Value != "3" {
			t.Fatalf("unexpected sort key value: %+v", q.ExpressionAttributeValues[":sk"])
		}
	})

	t.Run("gravesite alone queries the index", func(t *testing.T) {
		fake := newFakeDynamo()
		repo := NewContractDynamoRepository(fake)

		if _, err := repo.List(context.Background(), entities.ContractFilter{GravesiteID: 3}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		q := fake.queries[0]
		if aws.ToString(q.IndexName) != contractsGravesiteIndex || q.ExpressionAttributeNames["#pk"] != "id_tumulo" {
			t.Fatalf("unexpected query: %+v", q)
		}
	})

	t.Run("no key scans", func(t *testing.T) {
		fake := newFakeDynamo()
		repo := NewContractDynamoRepository(fake)

		if _, err := repo.List(context.Background(), entities.ContractFilter{Status: entities.ContractStatusAtivo}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fake.queries) != 0 || len(fake.scans) != 1 {
			t.Fatalf("expected one scan, got %d queries %d scans", len(fake.queries), len(fake.scans))
		}
		if aws.ToString(fake.scans[0].FilterExpression) != "#status = :status" {
			t.Fatalf("unexpected filter %q", aws.ToString(fake.scans[0].FilterExpression))
		}
	})
}

func TestContractDynamo_ListExpiringWindow(t *testing.T) {
	fake := newFakeDynamo()
	fake.addRow(t, defaultContractsTableName, storedContract("222", 2, "2024-06-20"))
	fake.addRow(t, defaultContractsTableName, storedContract("111", 1, "2024-06-05"))
	repo := NewContractDynamoRepository(fake)

	from := time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)
	to := time.Date(2024, 7, 1, 15, 0, 0, 0, time.UTC)
	out, err := repo.ListExpiring(context.Background(), from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := fake.scans[0]
	if aws.ToString(s.FilterExpression) != "#data_vencimento BETWEEN :from AND :to" {
		t.Fatalf("unexpected filter %q", aws.ToString(s.FilterExpression))
	}
	lo, _ := s.ExpressionAttributeValues[":from"].(*types.AttributeValueMemberS)
	hi, _ := s.ExpressionAttributeValues[":to"].(*types.AttributeValueMemberS)
	if lo == nil || hi == nil || lo.Value != "2024-06-01" || hi.Value != "2024-07-01" {
		t.Fatalf("unexpected window: %+v", s.ExpressionAttributeValues)
	}
	if len(out) != 2 || out[0].CPF != "111" || out[1].CPF != "222" {
		t.Fatalf("expected results sorted by end date, got %+v", out)
	}
}

func TestContractDynamo_Update(t *testing.T) {
	c := entities.Contract{
		CPF:         "111",
		GravesiteID: 1,
		StartDate:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		TermMonths:  24,
		EndDate:     time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Value:       2000,
		Status:      entities.ContractStatusAtivo,
	}

	t.Run("returns the stored item", func(t *testing.T) {
		fake := newFakeDynamo()
		fake.updateFn = func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			av, err := attributevalue.MarshalMap(toContractItem(c))
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			return &dynamodb.UpdateItemOutput{Attributes: av}, nil
		}
		repo := NewContractDynamoRepository(fake)

		got, err := repo.Update(context.Background(), c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TermMonths != 24 || got.Value != 2000 || !got.EndDate.Equal(c.EndDate) {
			t.Fatalf("unexpected contract: %+v", got)
		}
		in := fake.updates[0]
		if aws.ToString(in.ConditionExpression) != "attribute_exists(#cpf)" || in.ReturnValues != types.ReturnValueAllNew {
			t.Fatalf("unexpected update input: %+v", in)
		}
	})

	t.Run("failed condition reads as missing", func(t *testing.T) {
		fake := newFakeDynamo()
		fake.updateFn = func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, conditionFailed()
		}
		repo := NewContractDynamoRepository(fake)

		got, err := repo.Update(context.Background(), c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.CPF != "" {
			t.Fatalf("expected zero contract, got %+v", got)
		}
	})

	t.Run("other failures pass through", func(t *testing.T) {
		boom := errors.New("throttled")
		fake := newFakeDynamo()
		fake.updateFn = func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, boom
		}
		repo := NewContractDynamoRepository(fake)

		if _, err := repo.Update(context.Background(), c); !errors.Is(err, boom) {
			t.Fatalf("expected driver error, got %v", err)
		}
	})
}
