package interfaces

import (
	"cemiterio_api/internal/domain/entities"
	"context"
)

// IPlotholderRepository abstracts persistence for Plotholder.
//
// Delete must refuse (entities.ErrPlotholderInUse) while contracts or
// deceased records reference the CPF.

type IPlotholderRepository interface {
	Create(ctx context.Context, h entities.Plotholder) (entities.Plotholder, error)
	GetByCPF(ctx context.Context, cpf string) (entities.Plotholder, error)
	List(ctx context.Context) ([]entities.Plotholder, error)
	Update(ctx context.Context, h entities.Plotholder) (entities.Plotholder, error)
	Delete(ctx context.Context, cpf string) error
}
