package relational

import (
	"context"
	"testing"
	"time"

	"cemiterio_api/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPlotholderRepository(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.holder(t, "111")

	_, err := f.holders.Create(ctx, entities.Plotholder{CPF: "111", Name: "Outro"})
	assert.ErrorIs(t, err, entities.ErrPlotholderExists)

	h, err := f.holders.GetByCPF(ctx, "111")
	require.NoError(t, err)
	h.Phone = "11999990000"
	h.UpdatedAt = time.Now().UTC()
	updated, err := f.holders.Update(ctx, h)
	require.NoError(t, err)
	assert.Equal(t, "11999990000", updated.Phone)

	list, err := f.holders.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	missing, err := f.holders.GetByCPF(ctx, "999")
	require.NoError(t, err)
	assert.Empty(t, missing.CPF)
}

func TestPlotholderRepository_DeleteChecksReferences(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	g := f.gravesite(t, 2)
	f.holder(t, "111")
	_, _, err := f.occupancy.Reserve(ctx, contractFor("111", g.ID, entities.ContractStatusAtivo))
	require.NoError(t, err)
	_, _, err = f.occupancy.Inter(ctx, deceasedFor("d1", "111", g.ID))
	require.NoError(t, err)

	assert.ErrorIs(t, f.holders.Delete(ctx, "111"), entities.ErrPlotholderInUse)

	_, err = f.occupancy.Release(ctx, "111", g.ID)
	require.NoError(t, err)
	assert.ErrorIs(t, f.holders.Delete(ctx, "111"), entities.ErrPlotholderInUse, "deceased records still reference the cpf")

	_, _, err = f.occupancy.Exhume(ctx, "d1")
	require.NoError(t, err)
	require.NoError(t, f.holders.Delete(ctx, "111"))
	assert.ErrorIs(t, f.holders.Delete(ctx, "111"), entities.ErrPlotholderNotFound)
}

func TestPlotholderRepository_ForeignKeysRefuseOrphans(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	g := f.gravesite(t, 2)
	f.holder(t, "111")
	_, _, err := f.occupancy.Reserve(ctx, contractFor("111", g.ID, entities.ContractStatusAtivo))
	require.NoError(t, err)

	err = f.db.Exec("DELETE FROM titulares WHERE cpf = ?", "111").Error
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)

	m := toContractModel(contractFor("999", g.ID, entities.ContractStatusAtivo))
	assert.ErrorIs(t, f.db.Create(&m).Error, gorm.ErrForeignKeyViolated)

	holder, err := f.holders.GetByCPF(ctx, "111")
	require.NoError(t, err)
	assert.Equal(t, "111", holder.CPF)
}
