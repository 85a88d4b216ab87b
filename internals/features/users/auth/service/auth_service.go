package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/json"
	"log"
	"os"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kintai_backend/internals/configs"
	authHelper "kintai_backend/internals/features/users/auth/helper"
	authModel "kintai_backend/internals/features/users/auth/model"
	authRepo "kintai_backend/internals/features/users/auth/repository"
	userModel "kintai_backend/internals/features/users/user/model"
	helpers "kintai_backend/internals/helpers"
)

/* ==========================
   Const & Types
========================== */

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

/* ==========================
   Small Helpers
========================== */

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_REFRESH_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}
	return secret, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

func displayNameFromMetadata(meta datatypes.JSON) string {
	if len(meta) == 0 {
		return ""
	}
	var parsed struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(meta, &parsed); err != nil {
		return ""
	}
	return parsed.Name
}

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input userModel.UserModel
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := authHelper.ValidateRegisterInput(input.UserName, input.Email, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := input.Validate(); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Hash password
	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	input.Password = passwordHash

	// Create user
	if err := authRepo.CreateUser(db, &input); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helpers.JsonError(c, fiber.StatusBadRequest, "このメールアドレスは既に登録されています")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helpers.JsonCreated(c, "登録が完了しました", nil)
}

/* ==========================
   LOGIN (username/email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Identifier = strings.TrimSpace(input.Identifier)

	if err := authHelper.ValidateLoginInput(input.Identifier, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Minimal user
	userLight, err := authRepo.FindUserByEmailOrUsernameLight(db, input.Identifier)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "メールアドレスまたはパスワードが正しくありません")
	}
	if !userLight.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "アカウントが無効化されています。管理者にお問い合わせください。")
	}
	if err := authHelper.CheckPasswordHash(userLight.Password, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "メールアドレスまたはパスワードが正しくありません")
	}

	// Full user
	userFull, err := authRepo.FindUserByID(db, userLight.ID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	return issueTokens(c, db, *userFull)
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	// Verifikasi token Google
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	// Cari by google_id
	user, err := authRepo.FindUserByGoogleID(db, googleID)
	if err != nil {
		// User belum ada -> buat baru
		meta, _ := json.Marshal(fiber.Map{"name": name})
		randomPwd, hashErr := authHelper.HashPassword(uuid.NewString())
		if hashErr != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to provision user")
		}
		newUser := userModel.UserModel{
			UserName:     name,
			Email:        email,
			Password:     randomPwd,
			GoogleID:     &googleID,
			UserMetadata: datatypes.JSON(meta),
		}
		if err := authRepo.CreateUser(db, &newUser); err != nil {
			low := strings.ToLower(err.Error())
			if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
				return helpers.JsonError(c, fiber.StatusBadRequest, "このメールアドレスは既に登録されています")
			}
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
		}
		user = &newUser
	}

	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "アカウントが無効化されています。管理者にお問い合わせください。")
	}

	return issueTokens(c, db, *user)
}

/* ==========================
   ISSUE TOKENS + Response
========================== */

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": userID.String(),
		"id":  userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func buildAccessClaims(user userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":       "access",
		"sub":       user.ID.String(),
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
}

func issueTokens(c *fiber.Ctx, db *gorm.DB, user userModel.UserModel) error {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := nowUTC()

	accessClaims := buildAccessClaims(user, now)
	refreshClaims := buildRefreshClaims(user.ID, now)

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(jwtSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(refreshSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	// Simpan refresh token (hashed)
	tokenHash := computeRefreshHash(refreshToken, refreshSecret)
	ua, ip := c.Get("User-Agent"), c.IP()
	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshTokenModel{
		UserID:    user.ID,
		Token:     tokenHash,
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(ua),
		IP:        strptr(ip),
	}); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}

	setAuthCookies(c, accessToken, refreshToken, now)

	return helpers.JsonOK(c, "ログインしました", fiber.Map{
		"user": fiber.Map{
			"id":           user.ID,
			"user_name":    user.UserName,
			"email":        user.Email,
			"display_name": displayNameFromMetadata(user.UserMetadata),
		},
		"access_token": accessToken,
	})
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTLDefault),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(refreshTTLDefault),
	})
}

/* ==========================
   REFRESH TOKEN
========================== */

func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken == "" {
		var input struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := c.BodyParser(&input); err == nil {
			refreshToken = input.RefreshToken
		}
	}
	if refreshToken == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Missing refresh token")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(refreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(refreshSecret), nil
	}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	// Harus masih tercatat di DB (belum revoked)
	tokenHash := computeRefreshHash(refreshToken, refreshSecret)
	stored, err := authRepo.FindRefreshTokenByHash(db, tokenHash)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token revoked or unknown")
	}
	if nowUTC().After(stored.ExpiresAt) {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token expired")
	}

	user, err := authRepo.FindUserByID(db, stored.UserID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "アカウントが無効化されています。管理者にお問い合わせください。")
	}

	return issueTokens(c, db, *user)
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	// Blacklist access token yang sedang dipakai
	if tokenString, ok := c.Locals("access_token").(string); ok && tokenString != "" {
		if err := authRepo.BlacklistToken(db, tokenString, accessTTLDefault); err != nil {
			log.Printf("[WARN] blacklist token gagal: %v", err)
		}
	}

	// Hapus seluruh refresh token milik user
	if userIDStr, ok := c.Locals("user_id").(string); ok {
		if userID, err := uuid.Parse(userIDStr); err == nil {
			if err := authRepo.DeleteRefreshTokensByUser(db, userID); err != nil {
				log.Printf("[WARN] hapus refresh token gagal: %v", err)
			}
		}
	}

	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expired, Path: "/", HTTPOnly: true, Secure: true, SameSite: "None"})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expired, Path: "/", HTTPOnly: true, Secure: true, SameSite: "None"})

	return helpers.JsonOK(c, "ログアウトしました", nil)
}
