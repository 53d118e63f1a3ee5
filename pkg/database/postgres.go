package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/photoshare/photoshare-backend/internal/models"
)

func NewDatabase(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// RunMigrations creates the tables and seeds the SchemaInfo row the /test
// endpoints report.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Photo{},
		&models.SchemaInfo{},
	); err != nil {
		return err
	}

	var count int64
	if err := db.Model(&models.SchemaInfo{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		info := models.SchemaInfo{Version: 1, LoadDateTime: time.Now()}
		if err := db.Create(&info).Error; err != nil {
			return err
		}
	}

	return nil
}
