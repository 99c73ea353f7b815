package database

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mdasifmahmuddev/banglabaari-server/config"
	"github.com/mdasifmahmuddev/banglabaari-server/models"
	"github.com/mdasifmahmuddev/banglabaari-server/utils"
)

// EnsureAdmin makes sure exactly one back-office account exists for the
// configured username, creating it on first start. With ADMIN_RESET_PASSWORD
// set it also rewrites the stored hash from the environment, which replaces
// the old out-of-band credential-repair script.
func EnsureAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return errors.New("ADMIN_USERNAME and ADMIN_PASSWORD are required")
	}

	var admin models.Admin
	err := db.Where("username = ?", cfg.AdminUsername).First(&admin).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin = models.Admin{
			Username: cfg.AdminUsername,
			Password: string(hash),
			Email:    "admin@banglabaari.com",
			Role:     "superadmin",
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		utils.Logger.Info("initial admin created", zap.String("username", admin.Username))
		return nil
	case err != nil:
		return err
	}

	if cfg.AdminResetPassword {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if err := db.Model(&admin).Update("password", string(hash)).Error; err != nil {
			return err
		}
		utils.Logger.Info("admin password reset from environment", zap.String("username", admin.Username))
	}
	return nil
}
