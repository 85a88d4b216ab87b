// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kintai_backend/internals/configs"
	authModel "kintai_backend/internals/features/users/auth/model"
)

func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Ambil Authorization (atau cookie)
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// 2) Cek blacklist (sekali per request)
		if c.Locals("token_checked") == nil {
			var existing authModel.TokenBlacklist
			if err := db.Where("token = ? AND deleted_at IS NULL", tokenString).First(&existing).Error; err == nil {
				log.Println("[WARNING] Token ditemukan di blacklist")
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] DB error saat cek blacklist:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
		}

		// 3) Parse & verifikasi JWT
		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		// 4) Validasi exp (dengan sedikit leeway utk clock skew)
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		// 5) Ambil user_id
		userID, err := extractUserID(claims)
		if err != nil {
			log.Println("[ERROR] user_id:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		c.Locals("user_id", userID.String())
		c.Locals("access_token", tokenString)

		if userName, ok := claims["user_name"].(string); ok {
			c.Locals("user_name", userName)
		}

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "" {
			return parts[1], nil
		}
		return "", errors.New("Unauthorized - Invalid Authorization header")
	}
	// fallback ke cookie HttpOnly
	if cookie := c.Cookies("access_token"); cookie != "" {
		return cookie, nil
	}
	return "", errors.New("Unauthorized - Missing token")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("invalid exp claim type")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	for _, key := range []string{"id", "sub"} {
		if raw, ok := claims[key].(string); ok && raw != "" {
			return uuid.Parse(raw)
		}
	}
	return uuid.Nil, errors.New("user id claim not found")
}
