package config

import (
	"fmt"

	"github.com/emberhollow/storefront/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB opens the Postgres connection and migrates the catalog tables.
// Only called when a database-backed catalog or cart storage is configured.
func InitDB(cfg *Config) error {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}
	DB = db

	if err := DB.AutoMigrate(&models.Product{}, &models.Scent{}); err != nil {
		return fmt.Errorf("failed to migrate catalog tables: %v", err)
	}
	return nil
}
