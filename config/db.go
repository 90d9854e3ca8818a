package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ayushfaujdar/oodio-solutions/models"
)

// InitDB connects to Postgres and migrates the three collections. Error
// translation is on so unique-constraint violations surface as
// gorm.ErrDuplicatedKey.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.PortfolioItem{},
		&models.Category{},
		&models.ContactSubmission{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}
