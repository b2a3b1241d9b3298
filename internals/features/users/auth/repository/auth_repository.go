package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "coachdesk_backend/internals/features/users/auth/model"
	userModel "coachdesk_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByGoogleID(db *gorm.DB, googleID string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("google_id = ?", googleID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindRoleByUserID(db *gorm.DB, userID uuid.UUID) (string, error) {
	var role string
	err := db.Model(&userModel.UserRoleModel{}).
		Select("role").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Limit(1).
		Scan(&role).Error
	return role, err
}

func AttachGoogleID(db *gorm.DB, userID uuid.UUID, googleID string) error {
	return db.Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Update("google_id", googleID).Error
}

/* ====================== REFRESH TOKEN ====================== */

func CreateRefreshToken(db *gorm.DB, token *authModel.RefreshTokenModel) error {
	return db.Create(token).Error
}

func activeRefreshToken(db *gorm.DB, hash []byte) *gorm.DB {
	return db.Where("token = ? AND expires_at > ?", hash, time.Now().UTC())
}

func expiredRefreshTokens(db *gorm.DB) *gorm.DB {
	return db.Where("expires_at <= ?", time.Now().UTC())
}

// FindRefreshTokenByHash only returns tokens that have not expired yet;
// an expired row is indistinguishable from a missing one to the caller.
func FindRefreshTokenByHash(db *gorm.DB, hash []byte) (*authModel.RefreshTokenModel, error) {
	var rt authModel.RefreshTokenModel
	if err := activeRefreshToken(db, hash).First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func DeleteRefreshTokenByHash(db *gorm.DB, hash []byte) error {
	return db.Where("token = ?", hash).Delete(&authModel.RefreshTokenModel{}).Error
}

func CleanupExpiredRefreshTokens(db *gorm.DB) (int64, error) {
	res := expiredRefreshTokens(db).Delete(&authModel.RefreshTokenModel{})
	return res.RowsAffected, res.Error
}

/* ====================== BLACKLIST TOKEN ====================== */

func BlacklistToken(db *gorm.DB, token string, ttl time.Duration) error {
	return db.Create(&authModel.TokenBlacklistModel{
		Token:     token,
		ExpiredAt: time.Now().UTC().Add(ttl),
	}).Error
}

func CleanupExpiredBlacklist(db *gorm.DB) (int64, error) {
	res := db.Exec(`DELETE FROM token_blacklist WHERE expired_at <= ?`, time.Now().UTC())
	return res.RowsAffected, res.Error
}
