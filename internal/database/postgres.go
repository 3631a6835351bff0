package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/joscor34/k-nearest-music-example/internal/config"
	"github.com/joscor34/k-nearest-music-example/internal/models"
)

var DB *gorm.DB

// ConnectDB opens the optional catalog store. The server runs fine without
// it; callers treat a connection failure as "persistence disabled".
func ConnectDB() error {
	cfg := config.GlobalConfig

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)

	logLevel := logger.Warn
	if cfg.Env == "development" {
		logLevel = logger.Info
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connected")
	return nil
}

func AutoMigrate() error {
	if err := DB.AutoMigrate(&models.Song{}); err != nil {
		return fmt.Errorf("failed to migrate %T: %w", &models.Song{}, err)
	}
	return nil
}

// SaveCatalog replaces any stored catalog with the given one. Called once at
// startup after generation; the catalog never changes afterwards.
func SaveCatalog(songs []models.Song) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.Song{}).Error; err != nil {
			return err
		}
		return tx.CreateInBatches(&songs, 100).Error
	})
}

// LoadCatalog returns the stored catalog in generation order, or false when
// no catalog of the wanted size is stored.
func LoadCatalog(wantSize int) ([]models.Song, bool, error) {
	var count int64
	if err := DB.Model(&models.Song{}).Count(&count).Error; err != nil {
		return nil, false, err
	}
	if count != int64(wantSize) {
		return nil, false, nil
	}

	var songs []models.Song
	if err := DB.Order("position ASC").Find(&songs).Error; err != nil {
		return nil, false, err
	}
	return songs, true, nil
}
