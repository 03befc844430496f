// file: internals/features/memberships/memberships/dto/membership_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	membershipModel "fitnezz_backend/internals/features/memberships/memberships/model"
)

type MembershipResponse struct {
	MembershipID uuid.UUID `json:"membership_id"`
	UserID       uuid.UUID `json:"membership_user_id"`
	StartDate    time.Time `json:"membership_start_date"`
	EndDate      time.Time `json:"membership_end_date"`
	Status       string    `json:"membership_status"`
	Valid        bool      `json:"membership_valid"`
	DaysLeft     int       `json:"membership_days_left"`
}

func FromModel(m *membershipModel.MembershipModel, now time.Time) MembershipResponse {
	daysLeft := 0
	if m.IsValid(now) {
		daysLeft = int(m.MembershipEndDate.Sub(now).Hours() / 24)
	}
	return MembershipResponse{
		MembershipID: m.MembershipID,
		UserID:       m.MembershipUserID,
		StartDate:    m.MembershipStartDate,
		EndDate:      m.MembershipEndDate,
		Status:       m.MembershipStatus,
		Valid:        m.IsValid(now),
		DaysLeft:     daysLeft,
	}
}
