package entities

import (
	"errors"
	"testing"
	"time"
)

func TestValidateContractTransition(t *testing.T) {
	if err := ValidateContractTransition(ContractStatusReservado, ContractStatusAtivo); err != nil {
		t.Fatalf("reservado -> ativo: %v", err)
	}
	if err := ValidateContractTransition(ContractStatusAtivo, ContractStatusReservado); err != nil {
		t.Fatalf("ativo -> reservado: %v", err)
	}
	if err := ValidateContractTransition(ContractStatusAtivo, "cancelado"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if err := ValidateContractTransition("", ContractStatusAtivo); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestCheckContractUniqueness(t *testing.T) {
	existing := []Contract{{CPF: "111", GravesiteID: 1}, {CPF: "222", GravesiteID: 2}}
	if err := CheckContractUniqueness("111", 1, existing); !errors.Is(err, ErrDuplicateContract) {
		t.Fatalf("expected ErrDuplicateContract, got %v", err)
	}
	if err := CheckContractUniqueness("111", 2, existing); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestContract_ApplyTerms(t *testing.T) {
	start := time.Date(2024, 1, 31, 15, 0, 0, 0, time.UTC)
	c := Contract{StartDate: DateOnly(start), TermMonths: 12, Value: 100}
	c.EndDate = ContractEndDate(c.StartDate, c.TermMonths)

	months := 24
	value := 250.0
	next := c.ApplyTerms(ContractTermsPatch{TermMonths: &months, Value: &value})
	if next.Value != 250 || next.TermMonths != 24 {
		t.Fatalf("unexpected terms: %+v", next)
	}
	want := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	if !next.EndDate.Equal(want) {
		t.Fatalf("expected end %s, got %s", want, next.EndDate)
	}
	if !c.EndDate.Equal(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("original contract must not change: %+v", c)
	}
}

func TestNormalizeCPF(t *testing.T) {
	if got := NormalizeCPF(" 123.456.789-09 "); got != "12345678909" {
		t.Fatalf("unexpected cpf %q", got)
	}
}
