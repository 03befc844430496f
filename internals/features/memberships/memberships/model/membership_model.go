package model

import (
	"time"

	"github.com/google/uuid"
)

/* ===================== Enums (string) ===================== */

const (
	MembershipStatusActive  = "active"
	MembershipStatusExpired = "expired"
)

/* ===================== Model ===================== */

type MembershipModel struct {
	MembershipID     uuid.UUID `gorm:"column:membership_id;type:uuid;default:gen_random_uuid();primaryKey" json:"membership_id"`
	MembershipUserID uuid.UUID `gorm:"column:membership_user_id;type:uuid;not null;index" json:"membership_user_id"`

	MembershipStartDate time.Time `gorm:"column:membership_start_date;type:timestamptz;not null" json:"membership_start_date"`
	MembershipEndDate   time.Time `gorm:"column:membership_end_date;type:timestamptz;not null" json:"membership_end_date"`
	MembershipStatus    string    `gorm:"column:membership_status;type:varchar(20);not null;default:'active'" json:"membership_status"`

	CreatedAt time.Time `gorm:"column:membership_created_at;autoCreateTime" json:"membership_created_at"`
	UpdatedAt time.Time `gorm:"column:membership_updated_at;autoUpdateTime" json:"membership_updated_at"`
}

func (MembershipModel) TableName() string { return "memberships" }

/* ===================== Helpers ===================== */

// IsValid is the single source of truth for membership validity.
// The stored status flips to stale implicitly once the end date passes,
// no background job updates it, so the stored field alone is never trusted.
func (m *MembershipModel) IsValid(now time.Time) bool {
	return m.MembershipStatus == MembershipStatusActive && !m.MembershipEndDate.Before(now)
}
