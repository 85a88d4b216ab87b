package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authHelper "kintai_backend/internals/features/users/auth/helper"
	authRepo "kintai_backend/internals/features/users/auth/repository"
	helper "kintai_backend/internals/helpers"
)

// ========================== CHANGE PASSWORD ==========================
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	// Ambil user_id dari Locals dengan aman
	v := c.Locals("user_id")
	userIDStr, ok := v.(string)
	if !ok || userIDStr == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}

	if err := authHelper.ValidateNewPassword(input.NewPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	// Ambil user
	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	// Cek password lama
	if err := authHelper.CheckPasswordHash(user.Password, input.CurrentPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "現在のパスワードが正しくありません")
	}

	// Hash password baru
	newHash, err := authHelper.HashPassword(input.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash new password")
	}

	// Update password
	if err := authRepo.UpdateUserPassword(db, userID, newHash); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonUpdated(c, "パスワードを変更しました", nil)
}
