// file: internals/features/users/auth/route/auth_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kintai_backend/internals/features/users/auth/controller"
	rateLimiter "kintai_backend/internals/middlewares"
	authMiddleware "kintai_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// rate limiter global
	app.Use(rateLimiter.GlobalRateLimiter())

	// ==========================
	// PUBLIC
	// Base: /api/auth
	// ==========================
	baseAuth := app.Group("/api/auth")

	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/login-google", rateLimiter.LoginRateLimiter(), authController.LoginGoogle)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/refresh-token", authController.RefreshToken)

	// ==========================
	// PROTECTED
	// ==========================
	protectedAuth := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))

	protectedAuth.Post("/logout", authController.Logout)
	protectedAuth.Post("/change-password", authController.ChangePassword)
	protectedAuth.Put("/update-profile", authController.UpdateProfile)
	protectedAuth.Get("/me", authController.Me)
}
