package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitnezz_backend/internals/constants"
)

/* ===================== Model ===================== */

type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName     string    `gorm:"column:user_name;size:120;not null" json:"user_name"`
	UserEmail    string    `gorm:"column:user_email;size:255;uniqueIndex;not null" json:"user_email"`
	UserPassword string    `gorm:"column:user_password;not null" json:"-"`
	UserRole     string    `gorm:"column:user_role;type:varchar(20);not null;default:'student'" json:"user_role"`

	// institutional identifier, students only
	UserMatricNo *string `gorm:"column:user_matric_no;size:50;uniqueIndex" json:"user_matric_no,omitempty"`

	UserIsActive bool `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	CreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

/* ===================== Helpers ===================== */

func (u *UserModel) IsSuperAdmin() bool { return u.UserRole == constants.RoleSuperAdmin }
func (u *UserModel) IsAdmin() bool      { return u.UserRole == constants.RoleAdmin }
func (u *UserModel) IsTrainer() bool    { return u.UserRole == constants.RoleTrainer }
func (u *UserModel) IsStudent() bool    { return u.UserRole == constants.RoleStudent }
