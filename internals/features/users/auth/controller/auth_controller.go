// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "fitnezz_backend/internals/features/users/auth/dto"
	svc "fitnezz_backend/internals/features/users/auth/service"
	userModel "fitnezz_backend/internals/features/users/users/model"
	helper "fitnezz_backend/internals/helpers"
)

/* =======================================================================
   Controller
======================================================================= */

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =======================================================================
   Handlers
======================================================================= */

// POST /api/auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.Validate(); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	hashed, err := svc.HashPassword(req.UserPassword)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	m := req.ToModel()
	m.UserPassword = hashed

	if err := h.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.Error(c, fiber.StatusConflict, "Email or matric number already registered")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "register failed: "+err.Error())
	}

	log.Printf("[INFO] new student registered: %s", m.UserEmail)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registration successful", dto.FromUserModel(m))
}

// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	err := h.DB.WithContext(c.Context()).
		First(&user, "user_email = ?", strings.ToLower(strings.TrimSpace(req.UserEmail))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	if !svc.CheckPassword(user.UserPassword, req.UserPassword) {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := svc.GenerateAccessToken(&user)
	if err != nil {
		log.Printf("[ERROR] token issue failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	// cookie for browser clients, token in the body for API clients
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(svc.AccessTokenTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
	})

	return helper.Success(c, "Login successful", dto.LoginResponse{
		AccessToken: token,
		User:        dto.FromUserModel(&user),
	})
}

// POST /api/auth/logout
func (h *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
	})
	return helper.Success(c, "Logged out", nil)
}

// GET /api/u/me
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user userModel.UserModel
	if err := h.DB.WithContext(c.Context()).
		First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "user not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", dto.FromUserModel(&user))
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "23505")
}
