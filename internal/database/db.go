package database

import (
	"log"

	"parts-backend/internal/config"
	"parts-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to the database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	log.Println("Database connection established. Migration complete.")
}

// Migrate runs the schema migration for every model. Exported so tests can
// prepare a database the same way the server does.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UploadLog{},
		&models.Part{},
		&models.PriceHistory{},
		&models.ItemFirstSeen{},
		&models.AuditLog{},
	)
}
