package interfaces

import (
	"cemiterio_api/internal/domain/entities"
	"context"
)

// IGravesiteRepository abstracts persistence for Gravesite.
//
// Read methods return the zero value when nothing matches.
// Update merges the patch under the gravesite invariants and writes the
// gravesite and its location atomically.

type IGravesiteRepository interface {
	Create(ctx context.Context, g entities.Gravesite) (entities.Gravesite, error)
	GetByID(ctx context.Context, id int64) (entities.Gravesite, error)
	List(ctx context.Context, filter entities.GravesiteFilter) ([]entities.Gravesite, error)
	Update(ctx context.Context, id int64, patch entities.GravesitePatch) (entities.Gravesite, error)
	Delete(ctx context.Context, id int64) error
}
