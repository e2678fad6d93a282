package routes

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"cemiterio_api/internal/adapter/persistence/relational"
	"cemiterio_api/internal/adapter/persistence/repository"
	"cemiterio_api/internal/infrastructure/database"
	"cemiterio_api/internal/usecase/interfaces"

	"gorm.io/gorm"
)

const (
	StoragePostgres = "postgres"
	StorageDynamoDB = "dynamodb"
)

type repositories struct {
	driver      string
	gravesites  interfaces.IGravesiteRepository
	contracts   interfaces.IContractRepository
	deceased    interfaces.IDeceasedRepository
	plotholders interfaces.IPlotholderRepository
	occupancy   interfaces.IOccupancyRepository
}

// buildRepositories opens the configured store. An empty driver means
// postgres.
func buildRepositories(ctx context.Context, driver string) (repositories, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", StoragePostgres:
		db, err := database.ConnectPostgres()
		if err != nil {
			return repositories{}, err
		}
		if autoMigrateEnabled() {
			if err := relational.AutoMigrate(db); err != nil {
				return repositories{}, fmt.Errorf("auto migrate: %w", err)
			}
			log.Printf("[database][postgres] schema migrated")
		}
		return relationalRepositories(db), nil

	case StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return repositories{}, err
		}
		return dynamoRepositories(ddb), nil

	default:
		return repositories{}, fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}
}

func relationalRepositories(db *gorm.DB) repositories {
	return repositories{
		driver:      StoragePostgres,
		gravesites:  relational.NewGravesiteRepository(db),
		contracts:   relational.NewContractRepository(db),
		deceased:    relational.NewDeceasedRepository(db),
		plotholders: relational.NewPlotholderRepository(db),
		occupancy:   relational.NewOccupancyRepository(db),
	}
}

func dynamoRepositories(ddb repository.DynamoDBAPI) repositories {
	return repositories{
		driver:      StorageDynamoDB,
		gravesites:  repository.NewGravesiteDynamoRepository(ddb),
		contracts:   repository.NewContractDynamoRepository(ddb),
		deceased:    repository.NewDeceasedDynamoRepository(ddb),
		plotholders: repository.NewPlotholderDynamoRepository(ddb),
		occupancy:   repository.NewOccupancyDynamoRepository(ddb),
	}
}

func autoMigrateEnabled() bool {
	v, err := strconv.ParseBool(getenvDefault("DB_AUTO_MIGRATE", "false"))
	return err == nil && v
}
