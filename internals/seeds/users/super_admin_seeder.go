// file: internals/seeds/users/super_admin_seeder.go
package users

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"fitnezz_backend/internals/configs"
	"fitnezz_backend/internals/constants"
	authService "fitnezz_backend/internals/features/users/auth/service"
	userModel "fitnezz_backend/internals/features/users/users/model"
)

// EnsureSuperAdmin creates the initial super-admin account on first
// boot. Idempotent: when one already exists nothing happens.
func EnsureSuperAdmin(db *gorm.DB) error {
	var existing userModel.UserModel
	err := db.First(&existing, "user_role = ?", constants.RoleSuperAdmin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("super-admin lookup: %w", err)
	}

	email := configs.GetEnv("SUPER_ADMIN_EMAIL", "admin@fitnezz.com")
	password := configs.GetEnv("SUPER_ADMIN_PASSWORD", "password")
	name := configs.GetEnv("SUPER_ADMIN_NAME", "Super Admin")

	hashed, err := authService.HashPassword(password)
	if err != nil {
		return fmt.Errorf("super-admin password hash: %w", err)
	}

	admin := userModel.UserModel{
		UserName:     name,
		UserEmail:    email,
		UserPassword: hashed,
		UserRole:     constants.RoleSuperAdmin,
		UserIsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("super-admin create: %w", err)
	}

	log.Printf("✅ super-admin seeded: %s", email)
	return nil
}
