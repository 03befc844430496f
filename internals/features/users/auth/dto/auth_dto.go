package dto

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	userModel "fitnezz_backend/internals/features/users/users/model"
)

/* ===================== Requests ===================== */

// Student email pattern: firstname.matricno@bouesti.edu.ng
var studentEmailPattern = regexp.MustCompile(`^[a-z]+\.[0-9]+@bouesti\.edu\.ng$`)

// Staff email pattern: firstname.lastname@bouesti.edu.ng
var staffEmailPattern = regexp.MustCompile(`^[a-z]+\.[a-z]+@bouesti\.edu\.ng$`)

type RegisterRequest struct {
	UserName     string `json:"user_name" validate:"required,min=3,max=120"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8"`
	UserMatricNo string `json:"user_matric_no" validate:"required,min=2,max=50"`
}

// Validate applies the institutional email rule on top of the struct
// tags. Self-registration is for students only, staff accounts are
// created by the super-admin.
func (r *RegisterRequest) Validate() error {
	email := strings.ToLower(strings.TrimSpace(r.UserEmail))
	if !studentEmailPattern.MatchString(email) {
		return errors.New("user_email must be a valid BOUESTI student email (firstname.matricno@bouesti.edu.ng)")
	}
	return nil
}

// ValidateStaffEmail is used by the super-admin staff creation flow.
func ValidateStaffEmail(email string) error {
	if !staffEmailPattern.MatchString(strings.ToLower(strings.TrimSpace(email))) {
		return errors.New("user_email must be a valid BOUESTI staff email (firstname.lastname@bouesti.edu.ng)")
	}
	return nil
}

func (r *RegisterRequest) ToModel() *userModel.UserModel {
	matric := strings.TrimSpace(r.UserMatricNo)
	return &userModel.UserModel{
		UserName:     strings.TrimSpace(r.UserName),
		UserEmail:    strings.ToLower(strings.TrimSpace(r.UserEmail)),
		UserPassword: r.UserPassword, // hashed by the controller
		UserRole:     "student",
		UserMatricNo: &matric,
		UserIsActive: true,
	}
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

/* ===================== Responses ===================== */

type UserResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	UserName     string    `json:"user_name"`
	UserEmail    string    `json:"user_email"`
	UserRole     string    `json:"user_role"`
	UserMatricNo *string   `json:"user_matric_no,omitempty"`
	CreatedAt    time.Time `json:"user_created_at"`
}

func FromUserModel(u *userModel.UserModel) UserResponse {
	return UserResponse{
		UserID:       u.UserID,
		UserName:     u.UserName,
		UserEmail:    u.UserEmail,
		UserRole:     u.UserRole,
		UserMatricNo: u.UserMatricNo,
		CreatedAt:    u.CreatedAt,
	}
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}
