package utils

import (
	"gorm.io/gorm"

	models "courtside/models/postgres"
	"courtside/services/store"
)

// PlayerExists confirms a player row is present before a dependent
// lookup, so list endpoints can 404 instead of returning an empty slice
// for an id that was never there.
func PlayerExists(db *gorm.DB, id uint) error {
	var count int64
	err := db.Model(&models.Player{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return &store.NotFoundError{Entity: "Player", ID: id}
	}
	return nil
}

func GameExists(db *gorm.DB, id uint) error {
	var count int64
	err := db.Model(&models.Game{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return &store.NotFoundError{Entity: "Game", ID: id}
	}
	return nil
}
