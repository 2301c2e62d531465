package config

import (
	"fmt"
	"log"
	"os"

	"autohub/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB connects to postgres and migrates the catalog schema.
func InitDB() *gorm.DB {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			envOr("DB_HOST", "localhost"),
			envOr("DB_PORT", "5432"),
			envOr("DB_USER", "postgres"),
			envOr("DB_PASSWORD", "postgres"),
			envOr("DB_NAME", "autohub"),
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.Accessory{},
		&models.Product{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

// UploadDir is where uploaded listing images are stored and served from.
func UploadDir() string {
	return envOr("UPLOAD_DIR", "./uploads")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
