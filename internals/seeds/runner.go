package seeds

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coachdesk_backend/internals/configs"
	"coachdesk_backend/internals/constants"
	authService "coachdesk_backend/internals/features/users/auth/service"
	userModel "coachdesk_backend/internals/features/users/user/model"
)

// RunAllSeeds bootstraps the minimum rows a fresh deployment needs. Every
// seed is idempotent; running twice is a no-op.
func RunAllSeeds(db *gorm.DB) {
	seedBootstrapAdmin(db)
}

// seedBootstrapAdmin creates the first admin login from SEED_ADMIN_EMAIL /
// SEED_ADMIN_PASSWORD. Without it a fresh install has no one who can call
// the provisioning endpoint.
func seedBootstrapAdmin(db *gorm.DB) {
	email := configs.GetEnv("SEED_ADMIN_EMAIL")
	password := configs.GetEnv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("[INFO] seed: SEED_ADMIN_EMAIL/PASSWORD not set, skipping admin bootstrap")
		return
	}

	var existing userModel.UserModel
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("[INFO] seed: admin %s already exists, skipping", email)
		return
	}

	hashed, err := authService.HashPassword(password)
	if err != nil {
		log.Printf("[ERROR] seed: hash admin password: %v", err)
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		user := userModel.UserModel{
			ID:       uuid.New(),
			Email:    email,
			Password: hashed,
			FullName: "Administrator",
			IsActive: true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := userModel.UserProfileModel{UserID: user.ID, FullName: user.FullName}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		return tx.Create(&userModel.UserRoleModel{
			UserID: user.ID,
			Role:   constants.RoleAdmin,
		}).Error
	})
	if err != nil {
		log.Printf("[ERROR] seed: create bootstrap admin: %v", err)
		return
	}
	log.Printf("[SUCCESS] seed: bootstrap admin %s created", email)
}
