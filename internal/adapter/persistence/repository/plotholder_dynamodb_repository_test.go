package repository

import (
	"context"
	"errors"
	"testing"

	"cemiterio_api/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestPlotholderDynamo_Delete(t *testing.T) {
	t.Run("conditions on zero references", func(t *testing.T) {
		fake := newFakeDynamo()
		repo := NewPlotholderDynamoRepository(fake)

		if err := repo.Delete(context.Background(), "111"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		in := fake.deletes[0]
		if aws.ToString(in.ConditionExpression) != "attribute_exists(#cpf) AND (attribute_not_exists(#refs) OR #refs = :zero)" {
			t.Fatalf("unexpected condition %q", aws.ToString(in.ConditionExpression))
		}
		if in.ExpressionAttributeNames["#refs"] != "reference_count" {
			t.Fatalf("unexpected names: %+v", in.ExpressionAttributeNames)
		}
		if zero, ok := in.ExpressionAttributeValues[":zero"].(*types.AttributeValueMemberN); !ok || zero.Value != "0" {
			t.Fatalf("unexpected values: %+v", in.ExpressionAttributeValues)
		}
	})

	t.Run("referenced holder is in use", func(t *testing.T) {
		fake := newFakeDynamo()
		fake.put(t, defaultPlotholdersTableName, plotholderItem{CPF: "111", Nome: "Ana", ReferenceCount: 2})
		fake.deleteFn = func(*dynamodb.DeleteItemInput) error { return conditionFailed() }
		repo := NewPlotholderDynamoRepository(fake)

		if err := repo.Delete(context.Background(), "111"); !errors.Is(err, entities.ErrPlotholderInUse) {
			t.Fatalf("expected ErrPlotholderInUse, got %v", err)
		}
	})

	t.Run("missing holder is not found", func(t *testing.T) {
		fake := newFakeDynamo()
		fake.deleteFn = func(*dynamodb.DeleteItemInput) error { return conditionFailed() }
		repo := NewPlotholderDynamoRepository(fake)

		if err := repo.Delete(context.Background(), "111"); !errors.Is(err, entities.ErrPlotholderNotFound) {
			t.Fatalf("expected ErrPlotholderNotFound, got %v", err)
		}
	})

	t.Run("driver failure is not classified", func(t *testing.T) {
		boom := errors.New("throttled")
		fake := newFakeDynamo()
		fake.deleteFn = func(*dynamodb.DeleteItemInput) error { return boom }
		repo := NewPlotholderDynamoRepository(fake)

		if err := repo.Delete(context.Background(), "111"); !errors.Is(err, boom) {
			t.Fatalf("expected driver error, got %v", err)
		}
		if fake.gets[defaultPlotholdersTableName] != 0 {
			t.Fatalf("expected no re-read, got %d", fake.gets[defaultPlotholdersTableName])
		}
	})
}

func TestPlotholderDynamo_ListSortsByName(t *testing.T) {
	fake := newFakeDynamo()
	fake.addRow(t, defaultPlotholdersTableName, plotholderItem{CPF: "222", Nome: "Bruno"})
	fake.addRow(t, defaultPlotholdersTableName, plotholderItem{CPF: "111", Nome: "Ana"})
	repo := NewPlotholderDynamoRepository(fake)

	out, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 || out[0].Name != "Ana" || out[1].Name != "Bruno" {
		t.Fatalf("unexpected order: %+v", out)
	}
}

func TestPlotholderDynamo_UpdateMissing(t *testing.T) {
	fake := newFakeDynamo()
	fake.updateFn = func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
		return nil, conditionFailed()
	}
	repo := NewPlotholderDynamoRepository(fake)

	got, err := repo.Update(context.Background(), entities.Plotholder{CPF: "111", Name: "Ana"})
	if err != nil || got.CPF != "" {
		t.Fatalf("expected zero value, got %+v %v", got, err)
	}
}
