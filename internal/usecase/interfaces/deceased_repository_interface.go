package interfaces

import (
	"cemiterio_api/internal/domain/entities"
	"context"
)

type IDeceasedRepository interface {
	GetByID(ctx context.Context, id string) (entities.Deceased, error)
	List(ctx context.Context, filter entities.DeceasedFilter) ([]entities.Deceased, error)
}
