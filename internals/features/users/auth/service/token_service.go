package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"fitnezz_backend/internals/configs"
	userModel "fitnezz_backend/internals/features/users/users/model"
)

const AccessTokenTTL = 24 * time.Hour

// GenerateAccessToken issues the signed JWT the auth middleware expects:
// sub = user id, role = role name.
func GenerateAccessToken(u *userModel.UserModel) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", errors.New("JWT secret is not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  u.UserID.String(),
		"role": u.UserRole,
		"iat":  now.Unix(),
		"exp":  now.Add(AccessTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
