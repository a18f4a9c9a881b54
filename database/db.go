package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"cursohub/internal/http-api/models"
)

// OpenGorm opens the postgres database through GORM. The container database
// can take a few seconds to accept connections, so retry before giving up.
func OpenGorm(dsn string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for i := 0; i < 5; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			return db, nil
		}
		log.Printf("database connection attempt %d failed, retrying... (%v)", i+1, err)
		time.Sleep(2 * time.Second)
	}

	return nil, fmt.Errorf("could not connect to database after retries: %w", err)
}

// AutoMigrate creates/updates the schema for every model the API uses.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Lesson{},
		&models.Progress{},
		&models.Resource{},
		&models.CheckoutSession{},
	)
}
