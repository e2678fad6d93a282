package usecase

import (
	"context"
	"time"

	"cemiterio_api/internal/domain/entities"
	"cemiterio_api/internal/usecase/interfaces"
)

const maxExpiringWindowDays = 3650

// IContractUseCase exposes contract reads and edits that keep the gravesite
// untouched. Creation and cancellation belong to IOccupancyUseCase.

type IContractUseCase interface {
	GetByKey(ctx context.Context, cpf string, gravesiteID int64) (entities.Contract, error)
	List(ctx context.Context, filter entities.ContractFilter) ([]entities.Contract, error)
	ListExpiring(ctx context.Context, days int) ([]entities.Contract, error)
	ChangeStatus(ctx context.Context, cpf string, gravesiteID int64, status entities.ContractStatus) (entities.Contract, error)
	UpdateTerms(ctx context.Context, cpf string, gravesiteID int64, patch entities.ContractTermsPatch) (entities.Contract, error)
}

type ContractUseCase struct {
	repo interfaces.IContractRepository
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(repo interfaces.IContractRepository) *ContractUseCase {
	return &ContractUseCase{repo: repo}
}

func (u *ContractUseCase) GetByKey(ctx context.Context, cpf string, gravesiteID int64) (entities.Contract, error) {
	cpf, err := normalizeCPF(cpf)
	if err != nil {
		return entities.Contract{}, err
	}
	if err := validateGravesiteID(gravesiteID); err != nil {
		return entities.Contract{}, err
	}

	c, err := u.repo.GetByKey(ctx, cpf, gravesiteID)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.CPF == "" {
		return entities.Contract{}, entities.ErrContractNotFound
	}
	return c, nil
}

func (u *ContractUseCase) List(ctx context.Context, filter entities.ContractFilter) ([]entities.Contract, error) {
	if filter.CPF != "" {
		cpf, err := normalizeCPF(filter.CPF)
		if err != nil {
			return nil, err
		}
		filter.CPF = cpf
	}
	if filter.GravesiteID < 0 {
		return nil, ErrInvalidGravesiteID
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	return u.repo.List(ctx, filter)
}

// ListExpiring returns contracts whose end date falls within [today, today+days].
func (u *ContractUseCase) ListExpiring(ctx context.Context, days int) ([]entities.Contract, error) {
	if days <= 0 || days > maxExpiringWindowDays {
		return nil, ErrInvalidDays
	}
	from := entities.DateOnly(time.Now().UTC())
	to := from.AddDate(0, 0, days)
	return u.repo.ListExpiring(ctx, from, to)
}

func (u *ContractUseCase) ChangeStatus(ctx context.Context, cpf string, gravesiteID int64, status entities.ContractStatus) (entities.Contract, error) {
	if !status.Valid() {
		return entities.Contract{}, ErrInvalidStatus
	}
	current, err := u.GetByKey(ctx, cpf, gravesiteID)
	if err != nil {
		return entities.Contract{}, err
	}
	if err := entities.ValidateContractTransition(current.Status, status); err != nil {
		return entities.Contract{}, err
	}
	if current.Status == status {
		return current, nil
	}

	current.Status = status
	current.UpdatedAt = time.Now().UTC()
	return u.save(ctx, current)
}

func (u *ContractUseCase) UpdateTerms(ctx context.Context, cpf string, gravesiteID int64, patch entities.ContractTermsPatch) (entities.Contract, error) {
	if patch.IsEmpty() {
		return entities.Contract{}, ErrEmptyPatch
	}
	if patch.TermMonths != nil && *patch.TermMonths <= 0 {
		return entities.Contract{}, ErrInvalidContractTerm
	}
	if patch.Value != nil && *patch.Value <= 0 {
		return entities.Contract{}, ErrInvalidContractValue
	}
	if patch.StartDate != nil && patch.StartDate.IsZero() {
		return entities.Contract{}, ErrInvalidDates
	}

	current, err := u.GetByKey(ctx, cpf, gravesiteID)
	if err != nil {
		return entities.Contract{}, err
	}
	next := current.ApplyTerms(patch)
	next.UpdatedAt = time.Now().UTC()
	return u.save(ctx, next)
}

func (u *ContractUseCase) save(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Contract{}, err
	}
	if updated.CPF == "" {
		return entities.Contract{}, entities.ErrContractNotFound
	}
	return updated, nil
}
