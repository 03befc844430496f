package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	classModel "fitnezz_backend/internals/features/classes/classes/model"
	"fitnezz_backend/internals/features/classes/registrations/model"
)

/* =========================================================
   Collaborator interfaces
========================================================= */

// Clock lets tests pin "now".
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }

// ClassTx is the view of one class inside an admission transaction.
// The backing row is locked for the duration, so the count-then-insert
// sequence cannot race a concurrent enroll for the last seat.
type ClassTx interface {
	// Class returns the locked class row, or nil when it does not exist.
	Class() (*classModel.FitnessClassModel, error)
	RegistrationCount() (int64, error)
	HasRegistration(studentID uuid.UUID) (bool, error)
	CreateRegistration(reg *model.ClassRegistrationModel) error
}

// AdmissionStore is the persistence surface admission needs.
type AdmissionStore interface {
	MembershipValid(ctx context.Context, studentID uuid.UUID, now time.Time) (bool, error)
	WithClass(ctx context.Context, classID uuid.UUID, fn func(tx ClassTx) error) error
	DeleteRegistration(ctx context.Context, studentID, classID uuid.UUID) (bool, error)
}

/* =========================================================
   Admission service
========================================================= */

// EnrollResult reports the outcome of an admitted enroll call.
// AlreadyRegistered is informational, not an error: enrolling twice is
// an idempotent no-op from the caller's perspective.
type EnrollResult struct {
	AlreadyRegistered bool
	Registration      *model.ClassRegistrationModel
}

type AdmissionService struct {
	store AdmissionStore
	clock Clock
}

func NewAdmissionService(store AdmissionStore, clock Clock) *AdmissionService {
	if clock == nil {
		clock = SystemClock()
	}
	return &AdmissionService{store: store, clock: clock}
}

// Enroll decides whether a registration may be created and creates it
// if so. Check order is part of the contract:
// membership → class eligibility → capacity → duplicate.
func (s *AdmissionService) Enroll(ctx context.Context, studentID, classID uuid.UUID) (*EnrollResult, error) {
	now := s.clock.Now()

	valid, err := s.store.MembershipValid(ctx, studentID, now)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, ErrMembershipExpired
	}

	var result *EnrollResult
	err = s.store.WithClass(ctx, classID, func(tx ClassTx) error {
		class, err := tx.Class()
		if err != nil {
			return err
		}
		if class == nil || !class.IsOpenAt(now) {
			return ErrClassNotEligible
		}

		count, err := tx.RegistrationCount()
		if err != nil {
			return err
		}
		if count >= int64(class.FitnessClassCapacity) {
			return ErrClassFull
		}

		exists, err := tx.HasRegistration(studentID)
		if err != nil {
			return err
		}
		if exists {
			result = &EnrollResult{AlreadyRegistered: true}
			return nil
		}

		reg := &model.ClassRegistrationModel{
			ClassRegistrationClassID:   classID,
			ClassRegistrationStudentID: studentID,
			ClassRegistrationStatus:    model.RegistrationStatusBooked,
		}
		if err := tx.CreateRegistration(reg); err != nil {
			return err
		}
		result = &EnrollResult{Registration: reg}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Cancel deletes the student's own registration for the class. There is
// no waitlist, so nothing beyond the delete happens; a later Enroll for
// the same pair starts from a clean slate.
func (s *AdmissionService) Cancel(ctx context.Context, studentID, classID uuid.UUID) error {
	found, err := s.store.DeleteRegistration(ctx, studentID, classID)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotRegistered
	}
	return nil
}
