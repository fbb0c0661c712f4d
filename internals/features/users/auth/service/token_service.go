package service

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "tpims_backend/internals/features/users/auth/model"
	authRepo "tpims_backend/internals/features/users/auth/repository"
	helpers "tpims_backend/internals/helpers"
)

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	// CSRF required for the cookie-based endpoint
	if err := helpers.CheckCSRFCookieHeader(c); err != nil {
		return helpers.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Missing refresh token")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	// the hash must still be live in the DB
	hash := computeRefreshHash(refreshCookie, refreshSecret)
	known, err := authRepo.RefreshTokenHashExists(db, hash)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !known {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unknown refresh token")
	}

	userFull, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !userFull.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Account deactivated")
	}

	// ROTATE: drop the old token before issuing a replacement
	if err := authRepo.DeleteRefreshTokenByHash(db, hash); err != nil {
		log.Printf("[WARN] refresh rotation: delete old hash failed: %v", err)
	}

	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	now := nowUTC()

	newAccess, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(*userFull, now)).
		SignedString([]byte(jwtSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create access token")
	}
	newRefresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(userFull.ID.String(), now)).
		SignedString([]byte(refreshSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create refresh token")
	}

	if err := createRefreshTokenFast(db, &authModel.RefreshTokenModel{
		UserID:    userFull.ID,
		Token:     computeRefreshHash(newRefresh, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to store refresh token")
	}

	setAuthCookies(c, newAccess, newRefresh, now)

	return helpers.JsonOK(c, "Token refreshed", fiber.Map{
		"access_token": newAccess,
	})
}

// CSRF seeds the double-submit cookie so the SPA can echo it back in
// the X-CSRF-Token header.
// GET /api/auth/csrf
func CSRF(c *fiber.Ctx) error {
	token := randomString(48)
	c.Cookie(&fiber.Cookie{
		Name:     "csrf_token",
		Value:    token,
		HTTPOnly: false,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  nowUTC().Add(24 * time.Hour),
	})
	return helpers.JsonOK(c, "CSRF token issued", fiber.Map{"csrf_token": token})
}
