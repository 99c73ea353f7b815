package database

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mdasifmahmuddev/banglabaari-server/config"
	"github.com/mdasifmahmuddev/banglabaari-server/models"
)

// Connect opens the gorm client used for the lifetime of the process. There is
// no package-level handle; main owns the client and passes it down.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxIdleTime(45 * time.Second)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.CartItem{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Admin{},
	)
}
