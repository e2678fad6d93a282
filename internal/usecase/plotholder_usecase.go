package usecase

import (
	"context"
	"strings"
	"time"

	"cemiterio_api/internal/domain/entities"
	"cemiterio_api/internal/usecase/interfaces"
)

type IPlotholderUseCase interface {
	Create(ctx context.Context, h entities.Plotholder) (entities.Plotholder, error)
	GetByCPF(ctx context.Context, cpf string) (entities.Plotholder, error)
	List(ctx context.Context) ([]entities.Plotholder, error)
	Update(ctx context.Context, cpf string, patch entities.PlotholderPatch) (entities.Plotholder, error)
	Delete(ctx context.Context, cpf string) error
}

type PlotholderUseCase struct {
	repo interfaces.IPlotholderRepository
}

var _ IPlotholderUseCase = (*PlotholderUseCase)(nil)

func NewPlotholderUseCase(repo interfaces.IPlotholderRepository) *PlotholderUseCase {
	return &PlotholderUseCase{repo: repo}
}

func (u *PlotholderUseCase) Create(ctx context.Context, h entities.Plotholder) (entities.Plotholder, error) {
	cpf, err := normalizeCPF(h.CPF)
	if err != nil {
		return entities.Plotholder{}, err
	}
	name, err := requireName(h.Name)
	if err != nil {
		return entities.Plotholder{}, err
	}

	now := time.Now().UTC()
	h.CPF = cpf
	h.Name = name
	h.Phone = strings.TrimSpace(h.Phone)
	h.Email = strings.TrimSpace(h.Email)
	h.Address = strings.TrimSpace(h.Address)
	h.CreatedAt = now
	h.UpdatedAt = now
	return u.repo.Create(ctx, h)
}

func (u *PlotholderUseCase) GetByCPF(ctx context.Context, cpf string) (entities.Plotholder, error) {
	cpf, err := normalizeCPF(cpf)
	if err != nil {
		return entities.Plotholder{}, err
	}
	h, err := u.repo.GetByCPF(ctx, cpf)
	if err != nil {
		return entities.Plotholder{}, err
	}
	if h.CPF == "" {
		return entities.Plotholder{}, entities.ErrPlotholderNotFound
	}
	return h, nil
}

func (u *PlotholderUseCase) List(ctx context.Context) ([]entities.Plotholder, error) {
	return u.repo.List(ctx)
}

func (u *PlotholderUseCase) Update(ctx context.Context, cpf string, patch entities.PlotholderPatch) (entities.Plotholder, error) {
	if patch.IsEmpty() {
		return entities.Plotholder{}, ErrEmptyPatch
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return entities.Plotholder{}, ErrInvalidName
	}

	current, err := u.GetByCPF(ctx, cpf)
	if err != nil {
		return entities.Plotholder{}, err
	}
	next := current.ApplyPatch(patch)
	next.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, next)
	if err != nil {
		return entities.Plotholder{}, err
	}
	if updated.CPF == "" {
		return entities.Plotholder{}, entities.ErrPlotholderNotFound
	}
	return updated, nil
}

// Delete is refused while contracts or deceased records reference the CPF.
func (u *PlotholderUseCase) Delete(ctx context.Context, cpf string) error {
	cpf, err := normalizeCPF(cpf)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, cpf)
}
