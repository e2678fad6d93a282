package relational

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cemiterio_api/internal/domain/entities"
	"cemiterio_api/internal/usecase/interfaces"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContractRepository reads and edits contratos rows. Inserts and deletes go
// through OccupancyRepository.
type ContractRepository struct {
	db *gorm.DB
}

var _ interfaces.IContractRepository = (*ContractRepository)(nil)

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) GetByKey(ctx context.Context, cpf string, gravesiteID int64) (entities.Contract, error) {
	var m contractModel
	err := r.db.WithContext(ctx).
		Where("cpf = ? AND id_tumulo = ?", cpf, gravesiteID).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Contract{}, nil
		}
		return entities.Contract{}, fmt.Errorf("get contract: %w", err)
	}
	return fromContractModel(m), nil
}

func (r *ContractRepository) List(ctx context.Context, filter entities.ContractFilter) ([]entities.Contract, error) {
	q := r.db.WithContext(ctx).Model(&contractModel{})
	if filter.CPF != "" {
		q = q.Where("cpf = ?", filter.CPF)
	}
	if filter.GravesiteID > 0 {
		q = q.Where("id_tumulo = ?", filter.GravesiteID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}

	var rows []contractModel
	if err := q.Order("id_tumulo, cpf").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	return fromContractModels(rows), nil
}

func (r *ContractRepository) ListExpiring(ctx context.Context, from, to time.Time) ([]entities.Contract, error) {
	var rows []contractModel
	err := r.db.WithContext(ctx).
		Where("data_vencimento >= ? AND data_vencimento <= ?", datatypes.Date(from), datatypes.Date(to)).
		Order("data_vencimento, id_tumulo, cpf").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list expiring contracts: %w", err)
	}
	return fromContractModels(rows), nil
}

// Update writes status and terms. Returns the zero value when the row is gone.
func (r *ContractRepository) Update(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	m := toContractModel(c)
	res := r.db.WithContext(ctx).Model(&contractModel{}).
		Where("cpf = ? AND id_tumulo = ?", c.CPF, c.GravesiteID).
		Updates(map[string]any{
			"data_inicio":     m.DataInicio,
			"prazo_vigencia":  m.PrazoVigencia,
			"data_vencimento": m.DataVencimento,
			"valor":           m.Valor,
			"status":          m.Status,
			"updated_at":      c.UpdatedAt,
		})
	if res.Error != nil {
		return entities.Contract{}, fmt.Errorf("update contract: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.Contract{}, nil
	}
	return r.GetByKey(ctx, c.CPF, c.GravesiteID)
}

func fromContractModels(rows []contractModel) []entities.Contract {
	out := make([]entities.Contract, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromContractModel(m))
	}
	return out
}
