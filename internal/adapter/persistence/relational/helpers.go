package relational

import (
	"errors"

	"cemiterio_api/internal/domain/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockGravesite bumps versao so the row stays locked until tx ends. Later
// statements in tx then observe every change committed before the lock.
func lockGravesite(tx *gorm.DB, id int64) (bool, error) {
	res := tx.Model(&gravesiteModel{}).
		Where("id = ?", id).
		UpdateColumn("versao", gorm.Expr("versao + 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// lockPlotholder holds the titulares row for the rest of tx. Writers that
// reference a holder take it with "SHARE"; Delete takes it with "UPDATE", so
// the reference count Delete reads cannot change before it commits.
func lockPlotholder(tx *gorm.DB, cpf, strength string) error {
	var m plotholderModel
	err := tx.Clauses(clause.Locking{Strength: strength}).
		Select("cpf").
		Where("cpf = ?", cpf).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.ErrPlotholderNotFound
	}
	return err
}

func loadGravesite(tx *gorm.DB, id int64) (entities.Gravesite, error) {
	var m gravesiteModel
	err := tx.Preload("Localizacao").Where("id = ?", id).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Gravesite{}, entities.ErrGravesiteNotFound
		}
		return entities.Gravesite{}, err
	}
	return fromGravesiteModel(m), nil
}

func countContracts(tx *gorm.DB, gravesiteID int64) (int, error) {
	var n int64
	err := tx.Model(&contractModel{}).Where("id_tumulo = ?", gravesiteID).Count(&n).Error
	return int(n), err
}

// saveGravesiteState writes the fields the occupancy rules own.
func saveGravesiteState(tx *gorm.DB, g entities.Gravesite) error {
	return tx.Model(&gravesiteModel{}).
		Where("id = ?", g.ID).
		Updates(map[string]any{
			"status":     string(g.Status),
			"tipo":       g.Type,
			"capacidade": g.Capacity,
			"ocupacao":   g.Occupancy,
			"updated_at": g.UpdatedAt,
		}).Error
}

func upsertLocation(tx *gorm.DB, id int64, loc entities.Location) error {
	m := locationModel{GravesiteID: id, Quadra: loc.Quadra, Setor: loc.Setor, Numero: loc.Numero}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id_tumulo"}},
		DoUpdates: clause.AssignmentColumns([]string{"quadra", "setor", "numero"}),
	}).Create(&m).Error
}
