// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	paymentModel "fitnezz_backend/internals/features/finance/payments/model"
)

/* ===================== Requests ===================== */

// Amount is in naira. The gateway speaks kobo, the controller converts.
type InitializePaymentRequest struct {
	Amount float64 `json:"amount" validate:"required,gte=20000"`
}

/* ===================== Responses ===================== */

type InitializePaymentResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type PaymentResponse struct {
	PaymentID uuid.UUID `json:"payment_id"`
	UserID    uuid.UUID `json:"payment_user_id"`
	Amount    float64   `json:"payment_amount"`
	Status    string    `json:"payment_status"`
	Reference string    `json:"payment_reference"`
	Date      time.Time `json:"payment_date"`
}

func FromModel(p *paymentModel.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID: p.PaymentID,
		UserID:    p.PaymentUserID,
		Amount:    p.PaymentAmount,
		Status:    p.PaymentStatus,
		Reference: p.PaymentReference,
		Date:      p.PaymentDate,
	}
}

type MembershipGrant struct {
	MembershipID uuid.UUID `json:"membership_id"`
	StartDate    time.Time `json:"membership_start_date"`
	EndDate      time.Time `json:"membership_end_date"`
	Status       string    `json:"membership_status"`
}

type VerifyPaymentResponse struct {
	Months     int             `json:"months"`
	Payment    PaymentResponse `json:"payment"`
	Membership MembershipGrant `json:"membership"`
}
