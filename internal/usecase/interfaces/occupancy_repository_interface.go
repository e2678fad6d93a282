package interfaces

import (
	"cemiterio_api/internal/domain/entities"
	"context"
)

// IOccupancyRepository is the only writer of gravesite occupancy and status
// as a side effect of contracts and deceased records.
//
// Every method applies the record write and the gravesite mutation as one
// atomic unit: both are persisted or neither is.
//   - Reserve: insert contract; vazio -> reservado. Fails on a full gravesite.
//   - Inter: insert deceased; occupancy+1, cheio at capacity. Never exceeds
//     capacity, even under concurrent calls.
//   - Release: delete contract; status re-derived (vazio only when no
//     occupants and no contracts remain).
//   - Exhume: delete deceased; occupancy-1, status re-derived.

type IOccupancyRepository interface {
	Reserve(ctx context.Context, c entities.Contract) (entities.Contract, entities.Gravesite, error)
	Inter(ctx context.Context, d entities.Deceased) (entities.Deceased, entities.Gravesite, error)
	Release(ctx context.Context, cpf string, gravesiteID int64) (entities.Gravesite, error)
	Exhume(ctx context.Context, deceasedID string) (entities.Deceased, entities.Gravesite, error)
}
