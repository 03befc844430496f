package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	membershipModel "fitnezz_backend/internals/features/memberships/memberships/model"
	paymentModel "fitnezz_backend/internals/features/finance/payments/model"
)

/* =========================================================
   Amount → duration mapping
========================================================= */

// Amounts from the gateway arrive in the smallest currency subunit
// (kobo). 100 subunits = 1 major unit, two-decimal currency.
const (
	SubunitsPerMajor = 100

	// MinimumAmountSubunits is the hard floor: below it no payment or
	// membership row is written, the attempt is simply rejected.
	MinimumAmountSubunits int64 = 20000 * SubunitsPerMajor

	// StepAmountSubunits buys one extra month above the minimum.
	StepAmountSubunits int64 = 10000 * SubunitsPerMajor

	// MaxMembershipMonths caps the duration a single payment can grant.
	MaxMembershipMonths = 12
)

// MonthsForAmount maps a subunit amount at or above the minimum to a
// membership duration: months = floor((major - 20000) / 10000) + 1.
// Integer division on subunits is exact for the floor here because the
// caller guarantees amountSubunits >= MinimumAmountSubunits.
func MonthsForAmount(amountSubunits int64) int {
	return int((amountSubunits-MinimumAmountSubunits)/StepAmountSubunits) + 1
}

/* =========================================================
   Collaborator interfaces
========================================================= */

// Gateway is the verify half of the payment gateway. The production
// implementation is PaystackClient.
type Gateway interface {
	VerifyTransaction(ctx context.Context, reference string) (*VerifyResult, error)
}

// ReconcileStore is the persistence surface reconciliation needs.
// GrantMembership must run its re-checks and both inserts in one
// transaction.
type ReconcileStore interface {
	HasActiveMembership(ctx context.Context, userID uuid.UUID, now time.Time) (bool, error)
	ReferenceUsed(ctx context.Context, reference string) (bool, error)
	RecordFailedPayment(ctx context.Context, p *paymentModel.PaymentModel) error
	GrantMembership(ctx context.Context, p *paymentModel.PaymentModel, m *membershipModel.MembershipModel) error
}

/* =========================================================
   Reconciliation service
========================================================= */

// ReconcileResult reports a granted membership.
type ReconcileResult struct {
	Months     int
	Payment    *paymentModel.PaymentModel
	Membership *membershipModel.MembershipModel
}

type ReconcileService struct {
	store   ReconcileStore
	gateway Gateway
	clock   Clock
}

func NewReconcileService(store ReconcileStore, gateway Gateway, clock Clock) *ReconcileService {
	if clock == nil {
		clock = SystemClock()
	}
	return &ReconcileService{store: store, gateway: gateway, clock: clock}
}

// Reconcile verifies a gateway transaction reference and converts the
// paid amount into a membership, exactly once per reference.
//
// Check order is part of the contract:
//  1. duplicate active membership, checked BEFORE contacting the gateway, so a
//     double-charged callback can never stack memberships;
//  2. replayed reference;
//  3. gateway verification (failure recorded as a failed payment row);
//  4. amount floor, then duration cap;
//  5. transactional payment + membership insert.
func (s *ReconcileService) Reconcile(ctx context.Context, userID uuid.UUID, reference string) (*ReconcileResult, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, ErrNoReference
	}

	now := s.clock.Now()

	has, err := s.store.HasActiveMembership(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	if has {
		return nil, ErrDuplicateActiveMembership
	}

	used, err := s.store.ReferenceUsed(ctx, reference)
	if err != nil {
		return nil, err
	}
	if used {
		return nil, ErrReferenceAlreadyUsed
	}

	verified, err := s.gateway.VerifyTransaction(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	if !verified.Success {
		failed := &paymentModel.PaymentModel{
			PaymentUserID:    userID,
			PaymentAmount:    float64(verified.AmountSubunits) / SubunitsPerMajor,
			PaymentStatus:    paymentModel.PaymentStatusFailed,
			PaymentReference: reference,
			PaymentDate:      now,
			PaymentMeta:      verified.Raw,
		}
		if err := s.store.RecordFailedPayment(ctx, failed); err != nil {
			return nil, err
		}
		return nil, ErrPaymentNotSuccessful
	}

	if verified.AmountSubunits < MinimumAmountSubunits {
		return nil, ErrInsufficientAmount
	}

	months := MonthsForAmount(verified.AmountSubunits)
	if months > MaxMembershipMonths {
		return nil, ErrDurationExceeded
	}

	payment := &paymentModel.PaymentModel{
		PaymentUserID:    userID,
		PaymentAmount:    float64(verified.AmountSubunits) / SubunitsPerMajor,
		PaymentStatus:    paymentModel.PaymentStatusPaid,
		PaymentReference: reference,
		PaymentDate:      now,
		PaymentMeta:      verified.Raw,
	}
	membership := &membershipModel.MembershipModel{
		MembershipUserID:    userID,
		MembershipStartDate: now,
		MembershipEndDate:   now.AddDate(0, months, 0), // calendar months
		MembershipStatus:    membershipModel.MembershipStatusActive,
	}

	if err := s.store.GrantMembership(ctx, payment, membership); err != nil {
		return nil, err
	}

	return &ReconcileResult{Months: months, Payment: payment, Membership: membership}, nil
}
