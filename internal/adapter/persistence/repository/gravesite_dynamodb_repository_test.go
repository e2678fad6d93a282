package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"cemiterio_api/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestGravesiteDynamo_DeleteClassification(t *testing.T) {
	ccf := &types.ConditionalCheckFailedException{Message: aws.String("condition failed")}

	t.Run("in use", func(t *testing.T) {
		fake := newFakeDynamo()
		fake.put(t, defaultGravesitesTableName, storedGravesite(entities.GravesiteStatusReservado, 1, 2, 1))
		fake.deleteFn = func(*dynamodb.DeleteItemInput) error { return ccf }
		repo := NewGravesiteDynamoRepository(fake)

		if err := repo.Delete(context.Background(), 1); !errors.Is(err, entities.ErrGravesiteInUse) {
			t.Fatalf("expected ErrGravesiteInUse, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		fake := newFakeDynamo()
		fake.deleteFn = func(*dynamodb.DeleteItemInput) error { return ccf }
		repo := NewGravesiteDynamoRepository(fake)

		if err := repo.Delete(context.Background(), 1); !errors.Is(err, entities.ErrGravesiteNotFound) {
			t.Fatalf("expected ErrGravesiteNotFound, got %v", err)
		}
	})
}

func TestContractItem_DatesSortAsStrings(t *testing.T) {
	c := entities.Contract{
		CPF:         "111",
		GravesiteID: 9,
		StartDate:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		TermMonths:  12,
		EndDate:     time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		Value:       1500.5,
		Status:      entities.ContractStatusAtivo,
	}
	it := toContractItem(c)
	if it.DataInicio != "2024-01-31" || it.DataVencimento != "2025-01-31" || it.Valor != "1500.5" {
		t.Fatalf("unexpected item: %+v", it)
	}
	back := fromContractItem(it)
	if !back.EndDate.Equal(c.EndDate) || back.Value != c.Value || back.Status != c.Status {
		t.Fatalf("unexpected contract: %+v", back)
	}
}
