package controller

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authRepo "kintai_backend/internals/features/users/auth/repository"
	"kintai_backend/internals/features/users/auth/service"
	helpers "kintai_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Me(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in context")
	}

	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid UUID format")
	}

	user, err := authRepo.FindUserByID(ac.DB, userUUID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	user.Password = ""

	return helpers.JsonOK(c, "", fiber.Map{
		"id":            user.ID,
		"user_name":     user.UserName,
		"email":         user.Email,
		"user_metadata": user.UserMetadata,
		"created_at":    user.CreatedAt,
	})
}

// UpdateProfile menyimpan metadata profil (display name dsb.) ke kolom jsonb
func (ac *AuthController) UpdateProfile(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in context")
	}
	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid UUID format")
	}

	var req struct {
		Name string `json:"name" validate:"required,max=100"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	meta, err := json.Marshal(fiber.Map{"name": req.Name})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to encode metadata")
	}

	if err := authRepo.UpdateUserMetadata(ac.DB, userUUID, meta); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update profil")
	}

	return helpers.JsonUpdated(c, "プロフィールを更新しました", nil)
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return service.LoginGoogle(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.DB, c)
}

func (pc *AuthController) ChangePassword(c *fiber.Ctx) error {
	return service.ChangePassword(pc.DB, c)
}

func (rc *AuthController) RefreshToken(c *fiber.Ctx) error {
	return service.RefreshToken(rc.DB, c)
}
