package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ===================== Enums (string) ===================== */

const (
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
	PaymentStatusPending = "pending"
)

/* ===================== Model ===================== */

// One row per gateway attempt, failed attempts included.
// Rows are never mutated by the reconciliation flow.
type PaymentModel struct {
	PaymentID     uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentUserID uuid.UUID `gorm:"column:payment_user_id;type:uuid;not null;index" json:"payment_user_id"`

	// major currency units (gateway reports subunits, converted on write)
	PaymentAmount float64 `gorm:"column:payment_amount;type:numeric(12,2);not null" json:"payment_amount"`

	PaymentStatus    string    `gorm:"column:payment_status;type:varchar(20);not null;default:'pending'" json:"payment_status"`
	PaymentReference string    `gorm:"column:payment_reference;size:120;uniqueIndex;not null" json:"payment_reference"`
	PaymentDate      time.Time `gorm:"column:payment_date;type:timestamptz;not null" json:"payment_date"`

	// raw gateway response snapshot, kept for audits
	PaymentMeta datatypes.JSONMap `gorm:"column:payment_meta;type:jsonb" json:"payment_meta,omitempty"`

	CreatedAt time.Time `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	UpdatedAt time.Time `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
}

func (PaymentModel) TableName() string { return "payments" }

/* ===================== Helpers ===================== */

func (p *PaymentModel) IsPaid() bool   { return p.PaymentStatus == PaymentStatusPaid }
func (p *PaymentModel) IsFailed() bool { return p.PaymentStatus == PaymentStatusFailed }
