package interfaces

import (
	"context"
	"time"

	"cemiterio_api/internal/domain/entities"
)

// IContractRepository abstracts persistence for Contract reads and edits that
// do not touch gravesite occupancy. Creation and cancellation go through
// IOccupancyRepository.

type IContractRepository interface {
	GetByKey(ctx context.Context, cpf string, gravesiteID int64) (entities.Contract, error)
	List(ctx context.Context, filter entities.ContractFilter) ([]entities.Contract, error)
	ListExpiring(ctx context.Context, from, to time.Time) ([]entities.Contract, error)
	Update(ctx context.Context, c entities.Contract) (entities.Contract, error)
}
