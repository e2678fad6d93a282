package relational

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"cemiterio_api/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOccupancy_ScenarioWalkthrough(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	g := f.gravesite(t, 2)
	f.holder(t, "111")

	// A: first contract reserves the empty gravesite.
	_, after, err := f.occupancy.Reserve(ctx, contractFor("111", g.ID, entities.ContractStatusAtivo))
	require.NoError(t, err)
	assert.Equal(t, entities.GravesiteStatusReservado, after.Status)
	assert.Equal(t, 0, after.Occupancy)

	// B: first burial.
	_, after, err = f.occupancy.Inter(ctx, deceasedFor("d1", "111", g.ID))
	require.NoError(t, err)
	assert.Equal(t, 1, after.Occupancy)
	assert.Equal(t, entities.GravesiteStatusReservado, after.Status)

	// C: second burial fills it.
	_, after, err = f.occupancy.Inter(ctx, deceasedFor("d2", "111", g.ID))
	require.NoError(t, err)
	assert.Equal(t, 2, after.Occupancy)
	assert.Equal(t, entities.GravesiteStatusCheio, after.Status)

	// D: third burial is rejected.
	_, _, err = f.occupancy.Inter(ctx, deceasedFor("d3", "111", g.ID))
	assert.ErrorIs(t, err, entities.ErrCapacityExceeded)
	assert.Equal(t, 2, f.reload(t, g.ID).Occupancy)

	// E: no new contract on a full gravesite.
	f.holder(t, "222")
	_, _, err = f.occupancy.Reserve(ctx, contractFor("222", g.ID, entities.ContractStatusAtivo))
	assert.ErrorIs(t, err, entities.ErrGravesiteFull)

	stored, err := f.deceased.List(ctx, entities.DeceasedFilter{GravesiteID: g.ID})
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestOccupancy_Reserve(t *testing.T) {
	ctx := context.Background()

	t.Run("gravesite not found", func(t *testing.T) {
		f := newFixture(t)
		f.holder(t, "111")
		_, _, err := f.occupancy.Reserve(ctx, contractFor("111", 404, entities.ContractStatusAtivo))
		assert.ErrorIs(t, err, entities.ErrGravesiteNotFound)
	})

	t.Run("plot-holder not found leaves gravesite empty", func(t *testing.T) {
		f := newFixture(t)
		g := f.gravesite(t, 2)
		_, _, err := f.occupancy.Reserve(ctx, contractFor("999", g.ID, entities.ContractStatusAtivo))
		assert.ErrorIs(t, err, entities.ErrPlotholderNotFound)
		assert.Equal(t, entities.GravesiteStatusVazio, f.reload(t, g.ID).Status)
	})

	t.Run("duplicate contract", func(t *testing.T) {
		f := newFixture(t)
		g := f.gravesite(t, 2)
		f.holder(t, "111")
		_, _, err := f.occupancy.Reserve(ctx, contractFor("111", g.ID, entities.ContractStatusAtivo))
		require.NoError(t, err)

		_, _, err = f.occupancy.Reserve(ctx, contractFor("111", g.ID, entities.ContractStatusReservado))
		assert.ErrorIs(t, err, entities.ErrDuplicateContract)

		list, err := f.contracts.List(ctx, entities.ContractFilter{GravesiteID: g.ID})
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("second plot-holder shares the gravesite", func(t *testing.T) {
		f := newFixture(t)
		g := f.gravesite(t, 3)
		f.holder(t, "111")
		f.holder(t, "222")
		_, _, err := f.occupancy.Reserve(ctx, contractFor("111", g.ID, entities.ContractStatusAtivo))
		require.NoError(t, err)
		_, after, err := f.occupancy.Reserve(ctx, contractFor("222", g.ID, entities.ContractStatusAtivo))
		require.NoError(t, err)
		assert.Equal(t, entities.GravesiteStatusReservado, after.Status)
	})

	t.Run("dates survive the round trip", func(t *testing.T) {
		f := newFixture(t)
		g := f.gravesite(t, 1)
		f.holder(t, "111")
		c := contractFor("111", g.ID, entities.ContractStatusReservado)
		_, _, err := f.occupancy.Reserve(ctx, c)
		require.NoError(t, err)

		got, err := f.contracts.GetByKey(ctx, "111", g.ID)
		require.NoError(t, err)
		assert.True(t, got.StartDate.Equal(c.StartDate), "start %s vs %s", got.StartDate, c.StartDate)
		assert.True(t, got.EndDate.Equal(c.EndDate), "end %s vs %s", got.EndDate, c.EndDate)
		assert.Equal(t, entities.ContractStatusReservado, got.Status)
	})
}

func TestOccupancy_InterAuthorization(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	g := f.gravesite(t, 2)
	f.holder(t, "111")

	_, _, err := f.occupancy.Inter(ctx, deceasedFor("d0", "111", g.ID))
	assert.ErrorIs(t, err, entities.ErrContractNotFound)

	_, _, err = f.occupancy.Reserve(ctx, contractFor("111", g.ID, entities.ContractStatusReservado))
	require.NoError(t, err)

	_, _, err = f.occupancy.Inter(ctx, deceasedFor("d1", "111", g.ID))
	assert.ErrorIs(t, err, entities.ErrNoActiveContract)

	after := f.reload(t, g.ID)
	assert.Equal(t, 0, after.Occupancy)
	assert.Equal(t, entities.GravesiteStatusReservado, after.Status)

	_, _, err = f.occupancy.Inter(ctx, deceasedFor("d2", "111", 404))
	assert.ErrorIs(t, err, entities.ErrGravesiteNotFound)
}

// Callers race on separate connections. sqlite serializes the write
// transactions, so the bound is held by the conditional increment each
// transaction runs against the latest committed ocupacao.
func TestOccupancy_ConcurrentInterNeverExceedsCapacity(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		capacity, callers int
	}{
		{1, 2},
		{3, 10},
	} {
		t.Run(fmt.Sprintf("capacity=%d callers=%d", tc.capacity, tc.callers), func(t *testing.T) {
			f := newFixture(t)
			g := f.gravesite(t, tc.capacity)
			f.holder(t, "111")
			_, _, err := f.occupancy.Reserve(ctx, contractFor("111", g.ID, entities.ContractStatusAtivo))
			require.NoError(t, err)

			var (
				wg       sync.WaitGroup
				mu       sync.Mutex
				ok       int
				exceeded int
			)
			for i := 0; i < tc.callers; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					_, _, err := f.occupancy.Inter(ctx, deceasedFor(fmt.Sprintf("c%d", i), "111", g.ID))
					mu.Lock()
					defer mu.Unlock()
					switch {
					case err == nil:
						ok++
					case errors.Is(err, entities.ErrCapacityExceeded):
						exceeded++
					default:
						t.Errorf("unexpected error: %v", err)
					}
				}(i)
			}
			wg.Wait()

			assert.Equal(t, tc.capacity, ok)
			assert.Equal(t, tc.callers-tc.capacity, exceeded)

			after := f.reload(t, g.ID)
			assert.Equal(t, tc.capacity, after.Occupancy)
			assert.Equal(t, entities.GravesiteStatusCheio, after.Status)

			stored, err := f.deceased.List(ctx, entities.DeceasedFilter{GravesiteID: g.ID})
			require.NoError(t, err)
			assert.Len(t, stored, tc.capacity)
		})
	}
}

func failInsertsInto(t *testing.T, db *gorm.DB, table string) {
	t.Helper()
	name := "test:fail_" + table
	err := db.Callback().Create().Before("gorm:create").Register(name, func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			_ = tx.AddError(errors.New("injected write failure"))
		}
	})
	require.NoError(t, err)
}

func TestOccupancy_FailedInsertRollsBackGravesite(t *testing.T) {
	ctx := context.Background()

	t.Run("inter", func(t *testing.T) {
		f := newFixture(t)
		g := f.gravesite(t, 2)
		f.holder(t, "111")
		_, _, err := f.occupancy.Reserve(ctx, contractFor("111", g.ID, entities.ContractStatusAtivo))
		require.NoError(t, err)

		failInsertsInto(t, f.db, "falecidos")
		_, _, err = f.occupancy.Inter(ctx, deceasedFor("d1", "111", g.ID))
		require.Error(t, err)

		after := f.reload(t, g.ID)
		assert.Equal(t, 0, after.Occupancy)
		assert.Equal(t, entities.GravesiteStatusReservado, after.Status)
	})

	t.Run("reserve", func(t *testing.T) {
		f := newFixture(t)
		g := f.gravesite(t, 2)
		f.holder(t, "111")

		failInsertsInto(t, f.db, "contratos")
		_, _, err := f.occupancy.Reserve(ctx, contractFor("111", g.ID, entities.ContractStatusAtivo))
		require.Error(t, err)

		assert.Equal(t, entities.GravesiteStatusVazio, f.reload(t, g.ID).Status)
	})
}

func TestOccupancy_ReserveWhenHolderDeletedMidway(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	g := f.gravesite(t, 2)
	f.holder(t, "111")

	err := f.db.Callback().Create().Before("gorm:create").Register("test:drop_holder", func(tx *gorm.DB) {
		if tx.Statement.Table == "contratos" {
			_, err := tx.Statement.ConnPool.ExecContext(tx.Statement.Context, "DELETE FROM titulares WHERE cpf = ?", "111")
			require.NoError(t, err)
		}
	})
	require.NoError(t, err)

	_, _, err = f.occupancy.Reserve(ctx, contractFor("111", g.ID, entities.ContractStatusAtivo))
	assert.ErrorIs(t, err, entities.ErrPlotholderNotFound)

	var contracts int64
	require.NoError(t, f.db.Model(&contractModel{}).Count(&contracts).Error)
	assert.Zero(t, contracts, "no orphan contract")
	assert.Equal(t, entities.GravesiteStatusVazio, f.reload(t, g.ID).Status)
}

func TestOccupancy_Release(t *testing.T) {
	ctx := context.Background()

	t.Run("last contract empties the gravesite", func(t *testing.T) {
		f := newFixture(t)
		g := f.gravesite(t, 2)
		f.holder(t, "111")
		_, _, err := f.occupancy.Reserve(ctx, contractFor("111", g.ID, entities.ContractStatusAtivo))
		require.NoError(t, err)

		after, err := f.occupancy.Release(ctx, "111", g.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.GravesiteStatusVazio, after.Status)
		assert.Equal(t, entities.GravesiteStatusVazio, f.reload(t, g.ID).Status)
	})

	t.Run("other contracts keep it reserved", func(t *testing.T) {
		f := newFixture(t)
		g := f.gravesite(t, 2)
		f.holder(t, "111")
		f.holder(t, "222")
		_, _, err := f.occupancy.Reserve(ctx, contractFor("111", g.ID, entities.ContractStatusAtivo))
		require.NoError(t, err)
		_, _, err = f.occupancy.Reserve(ctx, contractFor("222", g.ID, entities.ContractStatusAtivo))
		require.NoError(t, err)

		after, err := f.occupancy.Release(ctx, "111", g.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.GravesiteStatusReservado, after.Status)
	})

	t.Run("occupants keep it reserved", func(t *testing.T) {
		f := newFixture(t)
		g := f.gravesite(t, 2)
		f.holder(t, "111")
		_, _, err := f.occupancy.Reserve(ctx, contractFor("111", g.ID, entities.ContractStatusAtivo))
		require.NoError(t, err)
		_, _, err = f.occupancy.Inter(ctx, deceasedFor("d1", "111", g.ID))
		require.NoError(t, err)

		after, err := f.occupancy.Release(ctx, "111", g.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.GravesiteStatusReservado, after.Status)
		assert.Equal(t, 1, after.Occupancy)
	})

	t.Run("unknown contract", func(t *testing.T) {
		f := newFixture(t)
		g := f.gravesite(t, 2)
		_, err := f.occupancy.Release(ctx, "111", g.ID)
		assert.ErrorIs(t, err, entities.ErrContractNotFound)
		_, err = f.occupancy.Release(ctx, "111", 404)
		assert.ErrorIs(t, err, entities.ErrContractNotFound)
	})
}

func TestOccupancy_Exhume(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	g := f.gravesite(t, 1)
	f.holder(t, "111")
	_, _, err := f.occupancy.Reserve(ctx, contractFor("111", g.ID, entities.ContractStatusAtivo))
	require.NoError(t, err)
	_, full, err := f.occupancy.Inter(ctx, deceasedFor("d1", "111", g.ID))
	require.NoError(t, err)
	require.Equal(t, entities.GravesiteStatusCheio, full.Status)

	d, after, err := f.occupancy.Exhume(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "d1", d.ID)
	assert.Equal(t, 0, after.Occupancy)
	assert.Equal(t, entities.GravesiteStatusReservado, after.Status)

	_, _, err = f.occupancy.Exhume(ctx, "d1")
	assert.ErrorIs(t, err, entities.ErrDeceasedNotFound)

	_, err = f.occupancy.Release(ctx, "111", g.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.GravesiteStatusVazio, f.reload(t, g.ID).Status)
}
