package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"yardflow/internal/model"
)

// NewMySQL returns a connected GORM DB instance.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the rental schema. The motorcycle foreign key on
// locacoes is RESTRICT, so a motorcycle cannot be deleted while rentals
// reference it.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Motorcycle{},
		&model.User{},
		&model.Rental{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
