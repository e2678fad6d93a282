package relational

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cemiterio_api/internal/domain/entities"
	"cemiterio_api/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// GravesiteRepository persists gravesites in tumulos + localizacoes.
type GravesiteRepository struct {
	db *gorm.DB
}

var _ interfaces.IGravesiteRepository = (*GravesiteRepository)(nil)

func NewGravesiteRepository(db *gorm.DB) *GravesiteRepository {
	return &GravesiteRepository{db: db}
}

func (r *GravesiteRepository) Create(ctx context.Context, g entities.Gravesite) (entities.Gravesite, error) {
	m := toGravesiteModel(g)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Gravesite{}, fmt.Errorf("create gravesite: %w", err)
	}
	g.ID = m.ID
	return g, nil
}

func (r *GravesiteRepository) GetByID(ctx context.Context, id int64) (entities.Gravesite, error) {
	g, err := loadGravesite(r.db.WithContext(ctx), id)
	if errors.Is(err, entities.ErrGravesiteNotFound) {
		return entities.Gravesite{}, nil
	}
	return g, err
}

func (r *GravesiteRepository) List(ctx context.Context, filter entities.GravesiteFilter) ([]entities.Gravesite, error) {
	q := r.db.WithContext(ctx).Model(&gravesiteModel{}).Preload("Localizacao")
	if filter.Status != "" {
		q = q.Where("tumulos.status = ?", string(filter.Status))
	}
	if filter.Type != "" {
		q = q.Where("tumulos.tipo = ?", filter.Type)
	}
	if filter.Quadra != "" {
		q = q.Joins("JOIN localizacoes ON localizacoes.id_tumulo = tumulos.id").
			Where("localizacoes.quadra = ?", filter.Quadra)
	}

	var rows []gravesiteModel
	if err := q.Order("tumulos.id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list gravesites: %w", err)
	}
	out := make([]entities.Gravesite, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromGravesiteModel(m))
	}
	return out, nil
}

// Update merges patch under the gravesite invariants. The gravesite row and
// its location are written in one transaction.
func (r *GravesiteRepository) Update(ctx context.Context, id int64, patch entities.GravesitePatch) (entities.Gravesite, error) {
	var updated entities.Gravesite
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := lockGravesite(tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return entities.ErrGravesiteNotFound
		}
		current, err := loadGravesite(tx, id)
		if err != nil {
			return err
		}
		contracts, err := countContracts(tx, id)
		if err != nil {
			return err
		}

		next, err := current.ApplyPatch(patch, contracts)
		if err != nil {
			return err
		}
		next.UpdatedAt = time.Now().UTC()
		if err := saveGravesiteState(tx, next); err != nil {
			return err
		}
		if patch.TouchesLocation() {
			if err := upsertLocation(tx, id, next.Location); err != nil {
				return err
			}
		}
		updated = next
		return nil
	})
	if err != nil {
		return entities.Gravesite{}, err
	}
	return updated, nil
}

// Delete refuses gravesites with occupants or contracts.
func (r *GravesiteRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := lockGravesite(tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return entities.ErrGravesiteNotFound
		}
		current, err := loadGravesite(tx, id)
		if err != nil {
			return err
		}
		contracts, err := countContracts(tx, id)
		if err != nil {
			return err
		}
		if current.Occupancy > 0 || contracts > 0 {
			return entities.ErrGravesiteInUse
		}

		if err := tx.Where("id_tumulo = ?", id).Delete(&locationModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&gravesiteModel{}).Error
	})
}
