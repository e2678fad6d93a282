package usecase

import (
	"context"

	"cemiterio_api/internal/domain/entities"
	"cemiterio_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type IDeceasedUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Deceased, error)
	List(ctx context.Context, filter entities.DeceasedFilter) ([]entities.Deceased, error)
}

type DeceasedUseCase struct {
	repo interfaces.IDeceasedRepository
}

var _ IDeceasedUseCase = (*DeceasedUseCase)(nil)

func NewDeceasedUseCase(repo interfaces.IDeceasedRepository) *DeceasedUseCase {
	return &DeceasedUseCase{repo: repo}
}

func (u *DeceasedUseCase) GetByID(ctx context.Context, id string) (entities.Deceased, error) {
	if _, err := uuid.Parse(id); err != nil {
		return entities.Deceased{}, ErrInvalidDeceasedID
	}
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Deceased{}, err
	}
	if d.ID == "" {
		return entities.Deceased{}, entities.ErrDeceasedNotFound
	}
	return d, nil
}

func (u *DeceasedUseCase) List(ctx context.Context, filter entities.DeceasedFilter) ([]entities.Deceased, error) {
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
	return u.repo.List(ctx, filter)
}
