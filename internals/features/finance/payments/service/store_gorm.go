package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	paymentModel "fitnezz_backend/internals/features/finance/payments/model"
	membershipModel "fitnezz_backend/internals/features/memberships/memberships/model"
)

/* =========================================================
   GORM-backed ReconcileStore
========================================================= */

type GormReconcileStore struct {
	DB *gorm.DB
}

func NewGormReconcileStore(db *gorm.DB) *GormReconcileStore {
	return &GormReconcileStore{DB: db}
}

func (s *GormReconcileStore) HasActiveMembership(ctx context.Context, userID uuid.UUID, now time.Time) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&membershipModel.MembershipModel{}).
		Where("membership_user_id = ? AND membership_status = ? AND membership_end_date >= ?",
			userID, membershipModel.MembershipStatusActive, now).
		Count(&count).Error
	return count > 0, err
}

func (s *GormReconcileStore) ReferenceUsed(ctx context.Context, reference string) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&paymentModel.PaymentModel{}).
		Where("payment_reference = ?", reference).
		Count(&count).Error
	return count > 0, err
}

func (s *GormReconcileStore) RecordFailedPayment(ctx context.Context, p *paymentModel.PaymentModel) error {
	err := s.DB.WithContext(ctx).Create(p).Error
	if isDuplicateKey(err) {
		// failed-attempt audit row already written by a concurrent callback
		return nil
	}
	return err
}

// GrantMembership re-runs the duplicate checks and writes both rows in a
// single transaction. The user row is locked first so two reconcile
// calls for the same user serialize on it, which closes the
// check-then-insert race on memberships.
func (s *GormReconcileStore) GrantMembership(ctx context.Context, p *paymentModel.PaymentModel, m *membershipModel.MembershipModel) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lock struct {
			UserID uuid.UUID `gorm:"column:user_id"`
		}
		if err := tx.Table("users").
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("user_id").
			Where("user_id = ?", m.MembershipUserID).
			Take(&lock).Error; err != nil {
			return err
		}

		var active int64
		if err := tx.Model(&membershipModel.MembershipModel{}).
			Where("membership_user_id = ? AND membership_status = ? AND membership_end_date >= ?",
				m.MembershipUserID, membershipModel.MembershipStatusActive, m.MembershipStartDate).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return ErrDuplicateActiveMembership
		}

		if err := tx.Create(p).Error; err != nil {
			if isDuplicateKey(err) {
				return ErrReferenceAlreadyUsed
			}
			return err
		}

		return tx.Create(m).Error
	})
}

// isDuplicateKey: Postgres unique violation (SQLSTATE 23505), string
// fallback so it works wrapped by either lib/pq or pgx.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "23505")
}
