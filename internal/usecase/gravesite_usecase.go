package usecase

import (
	"context"
	"strings"
	"time"

	"cemiterio_api/internal/domain/entities"
	"cemiterio_api/internal/usecase/interfaces"
)

type IGravesiteUseCase interface {
	Create(ctx context.Context, tipo string, capacity int, loc entities.Location) (entities.Gravesite, error)
	GetByID(ctx context.Context, id int64) (entities.Gravesite, error)
	List(ctx context.Context, filter entities.GravesiteFilter) ([]entities.Gravesite, error)
	Delete(ctx context.Context, id int64) error
}

type GravesiteUseCase struct {
	repo interfaces.IGravesiteRepository
}

var _ IGravesiteUseCase = (*GravesiteUseCase)(nil)

func NewGravesiteUseCase(repo interfaces.IGravesiteRepository) *GravesiteUseCase {
	return &GravesiteUseCase{repo: repo}
}

func (u *GravesiteUseCase) Create(ctx context.Context, tipo string, capacity int, loc entities.Location) (entities.Gravesite, error) {
	if capacity <= 0 {
		return entities.Gravesite{}, entities.ErrInvalidCapacity
	}
	loc = entities.Location{
		Quadra: strings.TrimSpace(loc.Quadra),
		Setor:  strings.TrimSpace(loc.Setor),
		Numero: strings.TrimSpace(loc.Numero),
	}
	g := entities.NewGravesite(tipo, capacity, loc, time.Now().UTC())
	return u.repo.Create(ctx, g)
}

func (u *GravesiteUseCase) GetByID(ctx context.Context, id int64) (entities.Gravesite, error) {
	if err := validateGravesiteID(id); err != nil {
		return entities.Gravesite{}, err
	}
	g, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Gravesite{}, err
	}
	if g.ID == 0 {
		return entities.Gravesite{}, entities.ErrGravesiteNotFound
	}
	return g, nil
}

func (u *GravesiteUseCase) List(ctx context.Context, filter entities.GravesiteFilter) ([]entities.Gravesite, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	filter.Type = strings.TrimSpace(filter.Type)
	filter.Quadra = strings.TrimSpace(filter.Quadra)
	return u.repo.List(ctx, filter)
}

// Delete refuses gravesites that still have occupants or contracts.
func (u *GravesiteUseCase) Delete(ctx context.Context, id int64) error {
	if err := validateGravesiteID(id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}
