package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	paymentModel "fitnezz_backend/internals/features/finance/payments/model"
	membershipModel "fitnezz_backend/internals/features/memberships/memberships/model"
)

/* =========================================================
   Fakes
========================================================= */

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeStore struct {
	memberships []membershipModel.MembershipModel
	payments    []paymentModel.PaymentModel
}

func (s *fakeStore) HasActiveMembership(_ context.Context, userID uuid.UUID, now time.Time) (bool, error) {
	for i := range s.memberships {
		m := &s.memberships[i]
		if m.MembershipUserID == userID && m.IsValid(now) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) ReferenceUsed(_ context.Context, reference string) (bool, error) {
	for i := range s.payments {
		if s.payments[i].PaymentReference == reference {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) RecordFailedPayment(_ context.Context, p *paymentModel.PaymentModel) error {
	s.payments = append(s.payments, *p)
	return nil
}

func (s *fakeStore) GrantMembership(_ context.Context, p *paymentModel.PaymentModel, m *membershipModel.MembershipModel) error {
	for i := range s.payments {
		if s.payments[i].PaymentReference == p.PaymentReference {
			return ErrReferenceAlreadyUsed
		}
	}
	s.payments = append(s.payments, *p)
	s.memberships = append(s.memberships, *m)
	return nil
}

type fakeGateway struct {
	result *VerifyResult
	err    error
	calls  int
}

func (g *fakeGateway) VerifyTransaction(_ context.Context, _ string) (*VerifyResult, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.result, nil
}

func successGateway(amountSubunits int64) *fakeGateway {
	return &fakeGateway{result: &VerifyResult{
		Success:        true,
		GatewayStatus:  "success",
		AmountSubunits: amountSubunits,
	}}
}

var testNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func newTestService(store *fakeStore, gw *fakeGateway) *ReconcileService {
	return NewReconcileService(store, gw, fixedClock{now: testNow})
}

/* =========================================================
   Amount → duration
========================================================= */

func TestMonthsForAmount(t *testing.T) {
	cases := []struct {
		major  int64
		months int
	}{
		{20000, 1},
		{25000, 1},
		{29999, 1},
		{30000, 2},
		{39999, 2},
		{40000, 3},
		{45000, 3},
		{130000, 12},
	}
	for _, tc := range cases {
		got := MonthsForAmount(tc.major * SubunitsPerMajor)
		if got != tc.months {
			t.Errorf("MonthsForAmount(%d major) = %d, want %d", tc.major, got, tc.months)
		}
	}
}

func TestReconcileInsufficientAmount(t *testing.T) {
	for _, major := range []int64{1, 5000, 19999} {
		store := &fakeStore{}
		svc := newTestService(store, successGateway(major*SubunitsPerMajor))

		_, err := svc.Reconcile(context.Background(), uuid.New(), "ref-low")
		if !errors.Is(err, ErrInsufficientAmount) {
			t.Fatalf("amount %d: got err %v, want ErrInsufficientAmount", major, err)
		}
		if len(store.payments) != 0 || len(store.memberships) != 0 {
			t.Fatalf("amount %d: rejected payment must write no rows", major)
		}
	}
}

func TestReconcileDurationExceeded(t *testing.T) {
	// 140000 major → floor(120000/10000)+1 = 13 months
	store := &fakeStore{}
	svc := newTestService(store, successGateway(140000*SubunitsPerMajor))

	_, err := svc.Reconcile(context.Background(), uuid.New(), "ref-big")
	if !errors.Is(err, ErrDurationExceeded) {
		t.Fatalf("got err %v, want ErrDurationExceeded", err)
	}
	if len(store.memberships) != 0 {
		t.Fatal("DurationExceeded must not create a membership")
	}
}

func TestReconcileGrantsMembership(t *testing.T) {
	store := &fakeStore{}
	gw := successGateway(45000 * SubunitsPerMajor)
	svc := newTestService(store, gw)
	userID := uuid.New()

	res, err := svc.Reconcile(context.Background(), userID, "ref-ok")
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if res.Months != 3 {
		t.Errorf("months = %d, want 3", res.Months)
	}
	if len(store.payments) != 1 || len(store.memberships) != 1 {
		t.Fatalf("want one payment and one membership, got %d/%d", len(store.payments), len(store.memberships))
	}

	p := store.payments[0]
	if p.PaymentStatus != paymentModel.PaymentStatusPaid {
		t.Errorf("payment status = %s, want paid", p.PaymentStatus)
	}
	if p.PaymentAmount != 45000 {
		t.Errorf("payment amount = %v, want 45000 major units", p.PaymentAmount)
	}
	if p.PaymentReference != "ref-ok" {
		t.Errorf("payment reference = %s", p.PaymentReference)
	}

	m := store.memberships[0]
	if !m.MembershipStartDate.Equal(testNow) {
		t.Errorf("start = %v, want %v", m.MembershipStartDate, testNow)
	}
	wantEnd := testNow.AddDate(0, 3, 0) // calendar months, not 90 days
	if !m.MembershipEndDate.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", m.MembershipEndDate, wantEnd)
	}
	if !m.IsValid(testNow) {
		t.Error("granted membership must be valid at grant time")
	}
}

/* =========================================================
   Guards
========================================================= */

func TestReconcileDuplicateMembershipSkipsGateway(t *testing.T) {
	userID := uuid.New()
	store := &fakeStore{
		memberships: []membershipModel.MembershipModel{{
			MembershipUserID:    userID,
			MembershipStartDate: testNow.AddDate(0, -1, 0),
			MembershipEndDate:   testNow.AddDate(0, 1, 0),
			MembershipStatus:    membershipModel.MembershipStatusActive,
		}},
	}
	gw := successGateway(45000 * SubunitsPerMajor)
	svc := newTestService(store, gw)

	_, err := svc.Reconcile(context.Background(), userID, "ref-dup")
	if !errors.Is(err, ErrDuplicateActiveMembership) {
		t.Fatalf("got err %v, want ErrDuplicateActiveMembership", err)
	}
	if gw.calls != 0 {
		t.Fatalf("gateway called %d times, the duplicate check must short-circuit before it", gw.calls)
	}
}

func TestReconcileExpiredMembershipDoesNotBlock(t *testing.T) {
	// stored status still says active but the end date already passed
	userID := uuid.New()
	store := &fakeStore{
		memberships: []membershipModel.MembershipModel{{
			MembershipUserID:    userID,
			MembershipStartDate: testNow.AddDate(0, -13, 0),
			MembershipEndDate:   testNow.AddDate(0, -1, 0),
			MembershipStatus:    membershipModel.MembershipStatusActive,
		}},
	}
	svc := newTestService(store, successGateway(20000*SubunitsPerMajor))

	res, err := svc.Reconcile(context.Background(), userID, "ref-renew")
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if res.Months != 1 {
		t.Errorf("months = %d, want 1", res.Months)
	}
}

func TestReconcileEmptyReference(t *testing.T) {
	svc := newTestService(&fakeStore{}, successGateway(20000*SubunitsPerMajor))
	if _, err := svc.Reconcile(context.Background(), uuid.New(), "  "); !errors.Is(err, ErrNoReference) {
		t.Fatalf("got err %v, want ErrNoReference", err)
	}
}

func TestReconcileReplayedReference(t *testing.T) {
	userID := uuid.New()
	store := &fakeStore{}
	svc := newTestService(store, successGateway(20000*SubunitsPerMajor))

	if _, err := svc.Reconcile(context.Background(), userID, "ref-replay"); err != nil {
		t.Fatalf("first Reconcile failed: %v", err)
	}

	// same reference again for another user with no membership
	_, err := svc.Reconcile(context.Background(), uuid.New(), "ref-replay")
	if !errors.Is(err, ErrReferenceAlreadyUsed) {
		t.Fatalf("got err %v, want ErrReferenceAlreadyUsed", err)
	}
	if len(store.memberships) != 1 {
		t.Fatalf("replay granted a second membership: %d rows", len(store.memberships))
	}
}

func TestReconcileFailedVerificationWritesAuditRow(t *testing.T) {
	store := &fakeStore{}
	gw := &fakeGateway{result: &VerifyResult{
		Success:        false,
		GatewayStatus:  "abandoned",
		AmountSubunits: 25000 * SubunitsPerMajor,
	}}
	svc := newTestService(store, gw)

	_, err := svc.Reconcile(context.Background(), uuid.New(), "ref-failed")
	if !errors.Is(err, ErrPaymentNotSuccessful) {
		t.Fatalf("got err %v, want ErrPaymentNotSuccessful", err)
	}
	if len(store.payments) != 1 {
		t.Fatalf("failed verification must still write a payment audit row")
	}
	p := store.payments[0]
	if p.PaymentStatus != paymentModel.PaymentStatusFailed {
		t.Errorf("audit row status = %s, want failed", p.PaymentStatus)
	}
	if p.PaymentAmount != 25000 {
		t.Errorf("audit row amount = %v, want 25000 (gateway amount / 100)", p.PaymentAmount)
	}
	if len(store.memberships) != 0 {
		t.Error("failed verification must not create a membership")
	}
}

func TestReconcileGatewayUnavailable(t *testing.T) {
	store := &fakeStore{}
	gw := &fakeGateway{err: errors.New("dial tcp: i/o timeout")}
	svc := newTestService(store, gw)

	_, err := svc.Reconcile(context.Background(), uuid.New(), "ref-timeout")
	if !errors.Is(err, ErrGatewayUnavailable) {
		t.Fatalf("got err %v, want ErrGatewayUnavailable", err)
	}
	if len(store.payments) != 0 {
		t.Error("transport failure must not write payment rows, there is nothing trustworthy to record")
	}
}
