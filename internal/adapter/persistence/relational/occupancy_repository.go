package relational

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"cemiterio_api/internal/domain/entities"
	"cemiterio_api/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// OccupancyRepository applies contract and deceased writes together with the
// gravesite mutation they imply, in one database transaction each.
//
// Every method takes the gravesite row lock with its first statement:
//   - Inter: conditional increment WHERE ocupacao < capacidade
//   - Reserve: conditional status flip WHERE status <> 'cheio'
//   - Release, Exhume: versao bump, then status re-derived from fresh counts
//
// Reserve and Inter also hold the plot-holder row shared until commit, and
// contratos/falecidos carry foreign keys to titulares.
//
// Zero affected rows on a conditional statement is classified by re-reading.
type OccupancyRepository struct {
	db *gorm.DB
}

var _ interfaces.IOccupancyRepository = (*OccupancyRepository)(nil)

func NewOccupancyRepository(db *gorm.DB) *OccupancyRepository {
	return &OccupancyRepository{db: db}
}

func (r *OccupancyRepository) Reserve(ctx context.Context, c entities.Contract) (entities.Contract, entities.Gravesite, error) {
	var g entities.Gravesite
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&gravesiteModel{}).
			Where("id = ? AND status <> ? AND ocupacao < capacidade", c.GravesiteID, string(entities.GravesiteStatusCheio)).
			Updates(map[string]any{
				"status":     string(entities.GravesiteStatusReservado),
				"versao":     gorm.Expr("versao + 1"),
				"updated_at": c.UpdatedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			if _, err := loadGravesite(tx, c.GravesiteID); err != nil {
				return err
			}
			return entities.ErrGravesiteFull
		}

		if err := lockPlotholder(tx, c.CPF, "SHARE"); err != nil {
			return err
		}

		m := toContractModel(c)
		if err := tx.Create(&m).Error; err != nil {
			switch {
			case errors.Is(err, gorm.ErrDuplicatedKey):
				return entities.ErrDuplicateContract
			case errors.Is(err, gorm.ErrForeignKeyViolated):
				return entities.ErrPlotholderNotFound
			}
			return err
		}

		var err error
		g, err = loadGravesite(tx, c.GravesiteID)
		return err
	})
	if err != nil {
		return entities.Contract{}, entities.Gravesite{}, classify("reserve", err)
	}
	return c, g, nil
}

func (r *OccupancyRepository) Inter(ctx context.Context, d entities.Deceased) (entities.Deceased, entities.Gravesite, error) {
	var g entities.Gravesite
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&gravesiteModel{}).
			Where("id = ? AND ocupacao < capacidade", d.GravesiteID).
			Updates(map[string]any{
				"ocupacao": gorm.Expr("ocupacao + 1"),
				"status": gorm.Expr("CASE WHEN ocupacao + 1 >= capacidade THEN ? ELSE ? END",
					string(entities.GravesiteStatusCheio), string(entities.GravesiteStatusReservado)),
				"versao":     gorm.Expr("versao + 1"),
				"updated_at": d.CreatedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			if _, err := loadGravesite(tx, d.GravesiteID); err != nil {
				return err
			}
			if err := requireActiveContract(tx, d.CPF, d.GravesiteID); err != nil {
				return err
			}
			return entities.ErrCapacityExceeded
		}

		if err := requireActiveContract(tx, d.CPF, d.GravesiteID); err != nil {
			return err
		}
		if err := lockPlotholder(tx, d.CPF, "SHARE"); err != nil {
			return err
		}

		m := toDeceasedModel(d)
		if err := tx.Create(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return entities.ErrPlotholderNotFound
			}
			return err
		}

		var err error
		g, err = loadGravesite(tx, d.GravesiteID)
		return err
	})
	if err != nil {
		return entities.Deceased{}, entities.Gravesite{}, classify("inter", err)
	}
	return d, g, nil
}

func (r *OccupancyRepository) Release(ctx context.Context, cpf string, gravesiteID int64) (entities.Gravesite, error) {
	var g entities.Gravesite
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := lockGravesite(tx, gravesiteID)
		if err != nil {
			return err
		}
		if !ok {
			return entities.ErrContractNotFound
		}

		res := tx.Where("cpf = ? AND id_tumulo = ?", cpf, gravesiteID).Delete(&contractModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return entities.ErrContractNotFound
		}

		remaining, err := countContracts(tx, gravesiteID)
		if err != nil {
			return err
		}
		current, err := loadGravesite(tx, gravesiteID)
		if err != nil {
			return err
		}
		g = current.AfterRelease(remaining)
		g.UpdatedAt = time.Now().UTC()
		return saveGravesiteState(tx, g)
	})
	if err != nil {
		return entities.Gravesite{}, classify("release", err)
	}
	return g, nil
}

func (r *OccupancyRepository) Exhume(ctx context.Context, deceasedID string) (entities.Deceased, entities.Gravesite, error) {
	var (
		d entities.Deceased
		g entities.Gravesite
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m deceasedModel
		if err := tx.Where("id = ?", deceasedID).Take(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entities.ErrDeceasedNotFound
			}
			return err
		}
		d = fromDeceasedModel(m)

		ok, err := lockGravesite(tx, d.GravesiteID)
		if err != nil {
			return err
		}
		if !ok {
			return entities.ErrInvariantViolation
		}

		res := tx.Where("id = ?", deceasedID).Delete(&deceasedModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return entities.ErrDeceasedNotFound
		}

		contracts, err := countContracts(tx, d.GravesiteID)
		if err != nil {
			return err
		}
		current, err := loadGravesite(tx, d.GravesiteID)
		if err != nil {
			return err
		}
		g, err = current.AfterExhumation(contracts)
		if err != nil {
			return err
		}
		g.UpdatedAt = time.Now().UTC()
		return saveGravesiteState(tx, g)
	})
	if err != nil {
		return entities.Deceased{}, entities.Gravesite{}, classify("exhume", err)
	}
	return d, g, nil
}

func requireActiveContract(tx *gorm.DB, cpf string, gravesiteID int64) error {
	var c contractModel
	err := tx.Select("status").Where("cpf = ? AND id_tumulo = ?", cpf, gravesiteID).Take(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.ErrContractNotFound
		}
		return err
	}
	if entities.ContractStatus(c.Status) != entities.ContractStatusAtivo {
		return entities.ErrNoActiveContract
	}
	return nil
}

var domainErrors = []error{
	entities.ErrGravesiteNotFound,
	entities.ErrContractNotFound,
	entities.ErrPlotholderNotFound,
	entities.ErrDeceasedNotFound,
	entities.ErrGravesiteFull,
	entities.ErrCapacityExceeded,
	entities.ErrDuplicateContract,
	entities.ErrNoActiveContract,
	entities.ErrInvariantViolation,
}

// classify passes domain errors through and wraps driver failures.
func classify(op string, err error) error {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return err
		}
	}
	log.Printf("[occupancy][relational] %s failed err=%v", op, err)
	return fmt.Errorf("%s: %w", op, err)
}
