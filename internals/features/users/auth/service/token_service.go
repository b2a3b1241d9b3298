package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"coachdesk_backend/internals/configs"
)

const (
	AccessTTLDefault  = 24 * time.Hour
	RefreshTTLDefault = 7 * 24 * time.Hour
)

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET is not set")
	}
	return secret, nil
}

// SignAccessToken issues the HS256 access token with identity + role claims.
func SignAccessToken(userID uuid.UUID, email, fullName, role string, ttl time.Duration) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":        userID.String(),
		"email":     email,
		"full_name": fullName,
		"role":      role,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// SignRefreshToken issues an opaque-ish refresh JWT; only its HMAC is stored.
func SignRefreshToken(userID uuid.UUID, ttl time.Duration) (string, error) {
	secret, err := getRefreshSecret()
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":  userID.String(),
		"typ": "refresh",
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseRefreshToken verifies signature + expiry and returns the user id.
func ParseRefreshToken(token string) (uuid.UUID, error) {
	secret, err := getRefreshSecret()
	if err != nil {
		return uuid.Nil, err
	}
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}); err != nil {
		return uuid.Nil, err
	}
	raw, _ := claims["id"].(string)
	return uuid.Parse(raw)
}

// ComputeRefreshHash is what gets persisted instead of the raw token.
func ComputeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

// RefreshHash hashes with the configured refresh secret.
func RefreshHash(token string) ([]byte, error) {
	secret, err := getRefreshSecret()
	if err != nil {
		return nil, err
	}
	return ComputeRefreshHash(token, secret), nil
}
