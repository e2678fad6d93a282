package usecase

import (
	"errors"
	"strings"

	"cemiterio_api/internal/domain/entities"
)

var (
	ErrInvalidCPF           = errors.New("invalid cpf")
	ErrInvalidGravesiteID   = errors.New("invalid gravesite id")
	ErrInvalidDeceasedID    = errors.New("invalid deceased id")
	ErrInvalidName          = errors.New("invalid name")
	ErrInvalidDates         = errors.New("invalid dates")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidContractTerm  = errors.New("invalid contract term")
	ErrInvalidContractValue = errors.New("invalid contract value")
	ErrInvalidDays          = errors.New("invalid days window")
	ErrEmptyPatch           = errors.New("nothing to update")
)

// normalizeCPF returns the digits-only CPF or ErrInvalidCPF.
// Length is enforced at the HTTP boundary.
func normalizeCPF(cpf string) (string, error) {
	n := entities.NormalizeCPF(cpf)
	if n == "" {
		return "", ErrInvalidCPF
	}
	for _, r := range n {
		if r < '0' || r > '9' {
			return "", ErrInvalidCPF
		}
	}
	return n, nil
}

func validateGravesiteID(id int64) error {
	if id <= 0 {
		return ErrInvalidGravesiteID
	}
	return nil
}

func requireName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidName
	}
	return name, nil
}
