package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"fitnezz_backend/internals/configs"
	userModel "fitnezz_backend/internals/features/users/users/model"
)

func TestGenerateAccessTokenRoundTrip(t *testing.T) {
	configs.JWTSecret = "test-secret"

	user := &userModel.UserModel{
		UserID:   uuid.New(),
		UserRole: "trainer",
	}
	tokenStr, err := GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	parsed, err := jwt.Parse(tokenStr, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("parse back: %v", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		t.Fatal("token did not validate")
	}
	if claims["sub"] != user.UserID.String() {
		t.Errorf("sub claim = %v, want %s", claims["sub"], user.UserID)
	}
	if claims["role"] != "trainer" {
		t.Errorf("role claim = %v, want trainer", claims["role"])
	}
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct horse" {
		t.Fatal("password stored in plain text")
	}
	if !CheckPassword(hash, "correct horse") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}
