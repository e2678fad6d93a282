package relational

import (
	"context"
	"errors"
	"fmt"

	"cemiterio_api/internal/domain/entities"
	"cemiterio_api/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type DeceasedRepository struct {
	db *gorm.DB
}

var _ interfaces.IDeceasedRepository = (*DeceasedRepository)(nil)

func NewDeceasedRepository(db *gorm.DB) *DeceasedRepository {
	return &DeceasedRepository{db: db}
}

func (r *DeceasedRepository) GetByID(ctx context.Context, id string) (entities.Deceased, error) {
	var m deceasedModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Deceased{}, nil
		}
		return entities.Deceased{}, fmt.Errorf("get deceased: %w", err)
	}
	return fromDeceasedModel(m), nil
}

func (r *DeceasedRepository) List(ctx context.Context, filter entities.DeceasedFilter) ([]entities.Deceased, error) {
	q := r.db.WithContext(ctx).Model(&deceasedModel{})
	if filter.GravesiteID > 0 {
		q = q.Where("id_tumulo = ?", filter.GravesiteID)
	}
	if filter.CPF != "" {
		q = q.Where("cpf = ?", filter.CPF)
	}

	var rows []deceasedModel
	if err := q.Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list deceased: %w", err)
	}
	out := make([]entities.Deceased, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromDeceasedModel(m))
	}
	return out, nil
}
