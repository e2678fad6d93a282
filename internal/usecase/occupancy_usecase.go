package usecase

import (
	"context"
	"log"
	"time"

	"cemiterio_api/internal/domain/entities"
	"cemiterio_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IOccupancyUseCase is the single authority for gravesite occupancy and
// status changes caused by contracts and deceased records.
//
//   - ReserveGravesite: new contract; vazio -> reservado
//   - RecordDeath: new deceased record; occupancy+1, cheio at capacity
//   - ReleaseGravesite: contract cancellation; vazio when nothing is left
//   - RemoveDeceased: exhumation/transfer; occupancy-1, cheio -> reservado
//   - UpdateGravesiteFields: admin merge-edit under the gravesite invariants

type IOccupancyUseCase interface {
	ReserveGravesite(ctx context.Context, c entities.Contract) (entities.Contract, entities.Gravesite, error)
	RecordDeath(ctx context.Context, d entities.Deceased) (entities.Deceased, entities.Gravesite, error)
	ReleaseGravesite(ctx context.Context, cpf string, gravesiteID int64) (entities.Gravesite, error)
	RemoveDeceased(ctx context.Context, deceasedID string) (entities.Deceased, entities.Gravesite, error)
	UpdateGravesiteFields(ctx context.Context, gravesiteID int64, patch entities.GravesitePatch) (entities.Gravesite, error)
}

type OccupancyUseCase struct {
	repo          interfaces.IOccupancyRepository
	gravesiteRepo interfaces.IGravesiteRepository
}

var _ IOccupancyUseCase = (*OccupancyUseCase)(nil)

func NewOccupancyUseCase(repo interfaces.IOccupancyRepository, gravesiteRepo interfaces.IGravesiteRepository) *OccupancyUseCase {
	return &OccupancyUseCase{repo: repo, gravesiteRepo: gravesiteRepo}
}

func (u *OccupancyUseCase) ReserveGravesite(ctx context.Context, c entities.Contract) (entities.Contract, entities.Gravesite, error) {
	cpf, err := normalizeCPF(c.CPF)
	if err != nil {
		return entities.Contract{}, entities.Gravesite{}, err
	}
	if err := validateGravesiteID(c.GravesiteID); err != nil {
		return entities.Contract{}, entities.Gravesite{}, err
	}
	if c.StartDate.IsZero() {
		return entities.Contract{}, entities.Gravesite{}, ErrInvalidDates
	}
	if c.TermMonths <= 0 {
		return entities.Contract{}, entities.Gravesite{}, ErrInvalidContractTerm
	}
	if c.Value <= 0 {
		return entities.Contract{}, entities.Gravesite{}, ErrInvalidContractValue
	}
	if !c.Status.Valid() {
		return entities.Contract{}, entities.Gravesite{}, ErrInvalidStatus
	}

	now := time.Now().UTC()
	c.CPF = cpf
	c.StartDate = entities.DateOnly(c.StartDate)
	c.EndDate = entities.ContractEndDate(c.StartDate, c.TermMonths)
	c.CreatedAt = now
	c.UpdatedAt = now

	log.Printf("[occupancy][usecase] reserve start id_tumulo=%d cpf=%s status=%s", c.GravesiteID, c.CPF, c.Status)
	created, g, err := u.repo.Reserve(ctx, c)
	if err != nil {
		log.Printf("[occupancy][usecase] reserve failed id_tumulo=%d cpf=%s err=%v", c.GravesiteID, c.CPF, err)
		return entities.Contract{}, entities.Gravesite{}, err
	}
	log.Printf("[occupancy][usecase] reserve success id_tumulo=%d cpf=%s gravesite_status=%s", g.ID, created.CPF, g.Status)
	return created, g, nil
}

func (u *OccupancyUseCase) RecordDeath(ctx context.Context, d entities.Deceased) (entities.Deceased, entities.Gravesite, error) {
	cpf, err := normalizeCPF(d.CPF)
	if err != nil {
		return entities.Deceased{}, entities.Gravesite{}, err
	}
	if err := validateGravesiteID(d.GravesiteID); err != nil {
		return entities.Deceased{}, entities.Gravesite{}, err
	}
	name, err := requireName(d.Name)
	if err != nil {
		return entities.Deceased{}, entities.Gravesite{}, err
	}
	if err := validateLifeDates(d.BirthDate, d.DeathDate, time.Now().UTC()); err != nil {
		return entities.Deceased{}, entities.Gravesite{}, err
	}

	d.ID = uuid.NewString()
	d.CPF = cpf
	d.Name = name
	d.BirthDate = entities.DateOnly(d.BirthDate)
	d.DeathDate = entities.DateOnly(d.DeathDate)
	d.CreatedAt = time.Now().UTC()

	log.Printf("[occupancy][usecase] record-death start id_tumulo=%d cpf=%s deceased_id=%s", d.GravesiteID, d.CPF, d.ID)
	created, g, err := u.repo.Inter(ctx, d)
	if err != nil {
		log.Printf("[occupancy][usecase] record-death failed id_tumulo=%d cpf=%s err=%v", d.GravesiteID, d.CPF, err)
		return entities.Deceased{}, entities.Gravesite{}, err
	}
	log.Printf("[occupancy][usecase] record-death success id_tumulo=%d deceased_id=%s ocupacao=%d/%d status=%s", g.ID, created.ID, g.Occupancy, g.Capacity, g.Status)
	return created, g, nil
}

func (u *OccupancyUseCase) ReleaseGravesite(ctx context.Context, cpf string, gravesiteID int64) (entities.Gravesite, error) {
	cpf, err := normalizeCPF(cpf)
	if err != nil {
		return entities.Gravesite{}, err
	}
	if err := validateGravesiteID(gravesiteID); err != nil {
		return entities.Gravesite{}, err
	}

	log.Printf("[occupancy][usecase] release start id_tumulo=%d cpf=%s", gravesiteID, cpf)
	g, err := u.repo.Release(ctx, cpf, gravesiteID)
	if err != nil {
		log.Printf("[occupancy][usecase] release failed id_tumulo=%d cpf=%s err=%v", gravesiteID, cpf, err)
		return entities.Gravesite{}, err
	}
	log.Printf("[occupancy][usecase] release success id_tumulo=%d status=%s", g.ID, g.Status)
	return g, nil
}

func (u *OccupancyUseCase) RemoveDeceased(ctx context.Context, deceasedID string) (entities.Deceased, entities.Gravesite, error) {
	if _, err := uuid.Parse(deceasedID); err != nil {
		return entities.Deceased{}, entities.Gravesite{}, ErrInvalidDeceasedID
	}

	log.Printf("[occupancy][usecase] exhume start deceased_id=%s", deceasedID)
	d, g, err := u.repo.Exhume(ctx, deceasedID)
	if err != nil {
		log.Printf("[occupancy][usecase] exhume failed deceased_id=%s err=%v", deceasedID, err)
		return entities.Deceased{}, entities.Gravesite{}, err
	}
	log.Printf("[occupancy][usecase] exhume success deceased_id=%s id_tumulo=%d ocupacao=%d/%d status=%s", d.ID, g.ID, g.Occupancy, g.Capacity, g.Status)
	return d, g, nil
}

func (u *OccupancyUseCase) UpdateGravesiteFields(ctx context.Context, gravesiteID int64, patch entities.GravesitePatch) (entities.Gravesite, error) {
	if err := validateGravesiteID(gravesiteID); err != nil {
		return entities.Gravesite{}, err
	}
	if patch.IsEmpty() {
		return entities.Gravesite{}, ErrEmptyPatch
	}
	if patch.Capacity != nil && *patch.Capacity <= 0 {
		return entities.Gravesite{}, entities.ErrInvalidCapacity
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return entities.Gravesite{}, ErrInvalidStatus
	}

	log.Printf("[occupancy][usecase] update-gravesite start id_tumulo=%d", gravesiteID)
	g, err := u.gravesiteRepo.Update(ctx, gravesiteID, patch)
	if err != nil {
		log.Printf("[occupancy][usecase] update-gravesite failed id_tumulo=%d err=%v", gravesiteID, err)
		return entities.Gravesite{}, err
	}
	log.Printf("[occupancy][usecase] update-gravesite success id_tumulo=%d ocupacao=%d/%d status=%s", g.ID, g.Occupancy, g.Capacity, g.Status)
	return g, nil
}

func validateLifeDates(birth, death, now time.Time) error {
	if birth.IsZero() || death.IsZero() {
		return ErrInvalidDates
	}
	if entities.DateOnly(death).Before(entities.DateOnly(birth)) {
		return ErrInvalidDates
	}
	if entities.DateOnly(death).After(entities.DateOnly(now)) {
		return ErrInvalidDates
	}
	return nil
}
