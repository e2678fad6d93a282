package relational

import (
	"context"
	"errors"
	"fmt"

	"cemiterio_api/internal/domain/entities"
	"cemiterio_api/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type PlotholderRepository struct {
	db *gorm.DB
}

var _ interfaces.IPlotholderRepository = (*PlotholderRepository)(nil)

func NewPlotholderRepository(db *gorm.DB) *PlotholderRepository {
	return &PlotholderRepository{db: db}
}

func (r *PlotholderRepository) Create(ctx context.Context, h entities.Plotholder) (entities.Plotholder, error) {
	m := toPlotholderModel(h)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entities.Plotholder{}, entities.ErrPlotholderExists
		}
		return entities.Plotholder{}, fmt.Errorf("create plot-holder: %w", err)
	}
	return h, nil
}

func (r *PlotholderRepository) GetByCPF(ctx context.Context, cpf string) (entities.Plotholder, error) {
	var m plotholderModel
	if err := r.db.WithContext(ctx).Where("cpf = ?", cpf).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Plotholder{}, nil
		}
		return entities.Plotholder{}, fmt.Errorf("get plot-holder: %w", err)
	}
	return fromPlotholderModel(m), nil
}

func (r *PlotholderRepository) List(ctx context.Context) ([]entities.Plotholder, error) {
	var rows []plotholderModel
	if err := r.db.WithContext(ctx).Order("nome, cpf").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list plot-holders: %w", err)
	}
	out := make([]entities.Plotholder, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromPlotholderModel(m))
	}
	return out, nil
}

func (r *PlotholderRepository) Update(ctx context.Context, h entities.Plotholder) (entities.Plotholder, error) {
	res := r.db.WithContext(ctx).Model(&plotholderModel{}).
		Where("cpf = ?", h.CPF).
		Updates(map[string]any{
			"nome":       h.Name,
			"telefone":   h.Phone,
			"email":      h.Email,
			"endereco":   h.Address,
			"updated_at": h.UpdatedAt,
		})
	if res.Error != nil {
		return entities.Plotholder{}, fmt.Errorf("update plot-holder: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.Plotholder{}, nil
	}
	return r.GetByCPF(ctx, h.CPF)
}

// Delete locks the holder row before counting references, so a concurrent
// Reserve or Inter either commits first and is counted or sees the row gone.
// The foreign keys from contratos and falecidos back this up.
func (r *PlotholderRepository) Delete(ctx context.Context, cpf string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockPlotholder(tx, cpf, "UPDATE"); err != nil {
			return err
		}

		var contracts, deceased int64
		if err := tx.Model(&contractModel{}).Where("cpf = ?", cpf).Count(&contracts).Error; err != nil {
			return err
		}
		if err := tx.Model(&deceasedModel{}).Where("cpf = ?", cpf).Count(&deceased).Error; err != nil {
			return err
		}
		if contracts > 0 || deceased > 0 {
			return entities.ErrPlotholderInUse
		}

		res := tx.Where("cpf = ?", cpf).Delete(&plotholderModel{})
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
				return entities.ErrPlotholderInUse
			}
			return res.Error
		}
		if res.RowsAffected == 0 {
			return entities.ErrPlotholderNotFound
		}
		return nil
	})
}
