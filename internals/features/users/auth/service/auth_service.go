// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"padelku_backend/internals/configs"
	authModel "padelku_backend/internals/features/users/auth/model"
	userModel "padelku_backend/internals/features/users/user/model"
	helper "padelku_backend/internals/helpers"
)

var validate = validator.New()

// ========================== REGISTER ==========================
// POST /api/auth/register
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req struct {
		UserName string `json:"user_name" validate:"required,min=3,max=50"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := db.Model(&userModel.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check email")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(req.UserName),
		Email:    email,
		Password: hashed,
		IsActive: true,
	}

	// A fresh profile row is created alongside the account so the settings
	// screen always has something to load.
	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&userModel.UserProfileModel{
			ProfileUserID: user.ID,
		}).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	return helper.JsonCreated(c, "Account created", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
	})
}

// ========================== LOGIN ==========================
// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	err := db.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(req.Email))).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !CheckPassword(user.Password, req.Password)) {
		// Same message either way; do not leak which part failed
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account deactivated")
	}

	access, err := issueTokenPair(db, c, user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	return helper.JsonOK(c, "Logged in", fiber.Map{
		"access_token": access,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
		},
	})
}

// ========================== LOGIN GOOGLE ==========================
// POST /api/auth/login-google
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var req struct {
		IDToken string `json:"id_token" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if configs.GoogleClientID == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Google login is not configured")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	if email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Google token has no email")
	}

	var user userModel.UserModel
	err = db.First(&user, "email = ?", email).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// First Google sign-in creates the account. Password stays a random
		// bcrypt hash that can never be matched.
		placeholder, herr := HashPassword(uuidPlaceholder())
		if herr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
		}
		name := strings.TrimSpace(claimSet.Name)
		if name == "" {
			name = strings.Split(email, "@")[0]
		}
		user = userModel.UserModel{
			UserName: name,
			Email:    email,
			Password: placeholder,
			GoogleID: &claimSet.Sub,
			IsActive: true,
		}
		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			return tx.Create(&userModel.UserProfileModel{ProfileUserID: user.ID}).Error
		}); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
		}
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	default:
		if user.GoogleID == nil {
			if err := db.Model(&user).Update("google_id", claimSet.Sub).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
			}
		}
	}

	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account deactivated")
	}

	access, err := issueTokenPair(db, c, user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	return helper.JsonOK(c, "Logged in", fiber.Map{
		"access_token": access,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
		},
	})
}

// ========================== LOGOUT ==========================
// POST /api/u/auth/logout
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	// Blacklist the current access token until it would have expired anyway
	auth := strings.TrimSpace(c.Get("Authorization"))
	fields := strings.Fields(auth)
	if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		tokenString := fields[1]
		expiredAt := time.Now().Add(accessTTL)
		if claims := parseClaimsUnverified(tokenString); claims != nil {
			if exp, ok := claims["exp"].(float64); ok {
				expiredAt = time.Unix(int64(exp), 0)
			}
		}
		_ = db.Create(&authModel.TokenBlacklist{
			Token:     tokenString,
			ExpiredAt: expiredAt,
		}).Error
	}

	// Revoke the refresh token and clear the cookie
	if refreshCookie := strings.TrimSpace(c.Cookies("refresh_token")); refreshCookie != "" {
		if secret, err := getRefreshSecret(); err == nil {
			_ = db.Delete(&authModel.RefreshTokenModel{}, "token = ?", computeRefreshHash(refreshCookie, secret)).Error
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})

	return helper.JsonOK(c, "Logged out", nil)
}

func uuidPlaceholder() string {
	return uuid.NewString() + uuid.NewString()
}

func parseClaimsUnverified(tokenString string) jwt.MapClaims {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil
	}
	return claims
}
