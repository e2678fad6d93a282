package repository

import (
	"context"
	"testing"

	"cemiterio_api/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
)

func storedDeceased(id, cpf string, gravesiteID int64, createdAt string) deceasedItem {
	return deceasedItem{
		ID:              id,
		Nome:            "Falecido " + id,
		DataNascimento:  "1950-01-01",
		DataFalecimento: "2024-02-01",
		CPF:             cpf,
		GravesiteID:     gravesiteID,
		CreatedAt:       createdAt,
	}
}

func TestDeceasedDynamo_ListAccessPath(t *testing.T) {
	t.Run("gravesite queries its index and filters by cpf", func(t *testing.T) {
		fake := newFakeDynamo()
		fake.addRow(t, defaultDeceasedTableName, storedDeceased("b", "111", 4, "2024-03-02T10:00:00Z"))
		fake.addRow(t, defaultDeceasedTableName, storedDeceased("a", "111", 4, "2024-03-01T10:00:00Z"))
		repo := NewDeceasedDynamoRepository(fake)

		out, err := repo.List(context.Background(), entities.DeceasedFilter{GravesiteID: 4, CPF: "111"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		q := fake.queries[0]
		if aws.ToString(q.IndexName) != deceasedGravesiteIndex || aws.ToString(q.FilterExpression) != "#cpf = :cpf" {
			t.Fatalf("unexpected query: %+v", q)
		}
		if len(out) != 2 || out[0].ID != "a" || out[1].ID != "b" {
			t.Fatalf("expected results in burial order, got %+v", out)
		}
	})

	t.Run("cpf alone queries the cpf index", func(t *testing.T) {
		fake := newFakeDynamo()
		repo := NewDeceasedDynamoRepository(fake)

		if _, err := repo.List(context.Background(), entities.DeceasedFilter{CPF: "111"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		q := fake.queries[0]
		if aws.ToString(q.IndexName) != deceasedCPFIndex || q.FilterExpression != nil || q.ExpressionAttributeNames["#pk"] != "cpf" {
			t.Fatalf("unexpected query: %+v", q)
		}
	})

	t.Run("no filter scans", func(t *testing.T) {
		fake := newFakeDynamo()
		fake.addRow(t, defaultDeceasedTableName, storedDeceased("a", "111", 4, "2024-03-01T10:00:00Z"))
		repo := NewDeceasedDynamoRepository(fake)

		out, err := repo.List(context.Background(), entities.DeceasedFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fake.queries) != 0 || len(fake.scans) != 1 || len(out) != 1 {
			t.Fatalf("expected one scan returning one item, got %d queries %d scans %d items", len(fake.queries), len(fake.scans), len(out))
		}
	})
}

func TestDeceasedDynamo_GetByID(t *testing.T) {
	fake := newFakeDynamo()
	repo := NewDeceasedDynamoRepository(fake)

	missing, err := repo.GetByID(context.Background(), "x")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero value, got %+v %v", missing, err)
	}

	fake.put(t, defaultDeceasedTableName, storedDeceased("x", "111", 4, "2024-03-01T10:00:00Z"))
	got, err := repo.GetByID(context.Background(), "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "x" || got.GravesiteID != 4 || got.DeathDate.Format(entities.DateLayout) != "2024-02-01" {
		t.Fatalf("unexpected deceased: %+v", got)
	}
}
