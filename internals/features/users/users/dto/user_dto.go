// file: internals/features/users/users/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	membershipModel "fitnezz_backend/internals/features/memberships/memberships/model"
	userModel "fitnezz_backend/internals/features/users/users/model"
)

/* ===================== Requests ===================== */

type CreateStaffRequest struct {
	UserName     string `json:"user_name" validate:"required,min=3,max=120"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8"`
	UserRole     string `json:"user_role" validate:"required,oneof=admin trainer"`
}

type UpdateUserStatusRequest struct {
	UserIsActive *bool `json:"user_is_active" validate:"required"`
}

/* ===================== Responses ===================== */

// StudentListItem is the admin student listing row: the account plus a
// small membership/payment summary so the list page needs one call.
type StudentListItem struct {
	UserID           uuid.UUID  `json:"user_id"`
	UserName         string     `json:"user_name"`
	UserEmail        string     `json:"user_email"`
	UserMatricNo     *string    `json:"user_matric_no,omitempty"`
	UserIsActive     bool       `json:"user_is_active"`
	MembershipStatus string     `json:"membership_status"` // active | expired | none
	MembershipEnd    *time.Time `json:"membership_end_date,omitempty"`
	TotalPaid        float64    `json:"total_paid"`
	CreatedAt        time.Time  `json:"user_created_at"`
}

type UserDetailResponse struct {
	UserID       uuid.UUID            `json:"user_id"`
	UserName     string               `json:"user_name"`
	UserEmail    string               `json:"user_email"`
	UserRole     string               `json:"user_role"`
	UserMatricNo *string              `json:"user_matric_no,omitempty"`
	UserIsActive bool                 `json:"user_is_active"`
	CreatedAt    time.Time            `json:"user_created_at"`
	Memberships  []MembershipSummary  `json:"memberships"`
}

type MembershipSummary struct {
	MembershipID uuid.UUID `json:"membership_id"`
	StartDate    time.Time `json:"membership_start_date"`
	EndDate      time.Time `json:"membership_end_date"`
	Status       string    `json:"membership_status"`
	Valid        bool      `json:"membership_valid"`
}

func FromMembershipModel(m *membershipModel.MembershipModel, now time.Time) MembershipSummary {
	return MembershipSummary{
		MembershipID: m.MembershipID,
		StartDate:    m.MembershipStartDate,
		EndDate:      m.MembershipEndDate,
		Status:       m.MembershipStatus,
		Valid:        m.IsValid(now),
	}
}

func ToUserDetail(u *userModel.UserModel, memberships []membershipModel.MembershipModel, now time.Time) UserDetailResponse {
	out := UserDetailResponse{
		UserID:       u.UserID,
		UserName:     u.UserName,
		UserEmail:    u.UserEmail,
		UserRole:     u.UserRole,
		UserMatricNo: u.UserMatricNo,
		UserIsActive: u.UserIsActive,
		CreatedAt:    u.CreatedAt,
		Memberships:  make([]MembershipSummary, 0, len(memberships)),
	}
	for i := range memberships {
		out.Memberships = append(out.Memberships, FromMembershipModel(&memberships[i], now))
	}
	return out
}
