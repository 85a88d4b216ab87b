// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "kintai_backend/internals/features/users/auth/model"
	userModel "kintai_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByEmailOrUsername(db *gorm.DB, identifier string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("email = ? OR user_name = ?", identifier, identifier).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmailOrUsernameLight(db *gorm.DB, identifier string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Select("id", "password", "is_active").
		Where("email = ? OR user_name = ?", identifier, identifier).
		First(&user).Error; err != nil {
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

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

func UpdateUserPassword(db *gorm.DB, userID uuid.UUID, newPassword string) error {
	return db.Model(&userModel.UserModel{}).Where("id = ?", userID).Update("password", newPassword).Error
}

func UpdateUserMetadata(db *gorm.DB, userID uuid.UUID, metadata []byte) error {
	return db.Model(&userModel.UserModel{}).Where("id = ?", userID).Update("user_metadata", metadata).Error
}

/* ====================== REFRESH TOKEN ====================== */

func CreateRefreshToken(db *gorm.DB, token *authModel.RefreshTokenModel) error {
	return db.Create(token).Error
}

func FindRefreshTokenByHash(db *gorm.DB, tokenHash []byte) (*authModel.RefreshTokenModel, error) {
	var rt authModel.RefreshTokenModel
	if err := db.Where("token_hash = ? AND revoked_at IS NULL", tokenHash).First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func DeleteRefreshTokensByUser(db *gorm.DB, userID uuid.UUID) error {
	return db.Where("user_id = ?", userID).Delete(&authModel.RefreshTokenModel{}).Error
}

/* ====================== BLACKLIST TOKEN ====================== */

func BlacklistToken(db *gorm.DB, token string, ttl time.Duration) error {
	return db.Create(&authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: time.Now().UTC().Add(ttl),
	}).Error
}
