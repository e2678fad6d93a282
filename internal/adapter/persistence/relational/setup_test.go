package relational

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"cemiterio_api/internal/domain/entities"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a file-backed sqlite database so that concurrent tests
// run on separate connections. Transactions begin IMMEDIATE and wait on
// busy_timeout; foreign keys are enforced.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "cemiterio.db") +
		"?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate&_journal_mode=WAL"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(8)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))
	return db
}

type fixture struct {
	db         *gorm.DB
	gravesites *GravesiteRepository
	contracts  *ContractRepository
	deceased   *DeceasedRepository
	holders    *PlotholderRepository
	occupancy  *OccupancyRepository
}

func newFixture(t *testing.T) fixture {
	db := setupTestDB(t)
	return fixture{
		db:         db,
		gravesites: NewGravesiteRepository(db),
		contracts:  NewContractRepository(db),
		deceased:   NewDeceasedRepository(db),
		holders:    NewPlotholderRepository(db),
		occupancy:  NewOccupancyRepository(db),
	}
}

func (f fixture) gravesite(t *testing.T, capacity int) entities.Gravesite {
	t.Helper()
	g, err := f.gravesites.Create(context.Background(),
		entities.NewGravesite("jazigo", capacity, entities.Location{Quadra: "A", Setor: "1", Numero: "10"}, time.Now().UTC()))
	require.NoError(t, err)
	require.NotZero(t, g.ID)
	return g
}

func (f fixture) holder(t *testing.T, cpf string) {
	t.Helper()
	now := time.Now().UTC()
	_, err := f.holders.Create(context.Background(), entities.Plotholder{CPF: cpf, Name: "Titular " + cpf, CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)
}

func contractFor(cpf string, gravesiteID int64, status entities.ContractStatus) entities.Contract {
	start := entities.DateOnly(time.Now().UTC())
	now := time.Now().UTC()
	return entities.Contract{
		CPF:         cpf,
		GravesiteID: gravesiteID,
		StartDate:   start,
		TermMonths:  12,
		EndDate:     entities.ContractEndDate(start, 12),
		Value:       1200,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func deceasedFor(id, cpf string, gravesiteID int64) entities.Deceased {
	return entities.Deceased{
		ID:          id,
		Name:        "Falecido " + id,
		BirthDate:   time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC),
		DeathDate:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		CPF:         cpf,
		GravesiteID: gravesiteID,
		CreatedAt:   time.Now().UTC(),
	}
}

func (f fixture) reload(t *testing.T, id int64) entities.Gravesite {
	t.Helper()
	g, err := f.gravesites.GetByID(context.Background(), id)
	require.NoError(t, err)
	return g
}
