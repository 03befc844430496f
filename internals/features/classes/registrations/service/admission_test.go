package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	classModel "fitnezz_backend/internals/features/classes/classes/model"
	membershipModel "fitnezz_backend/internals/features/memberships/memberships/model"
	"fitnezz_backend/internals/features/classes/registrations/model"
)

/* =========================================================
   Fakes
========================================================= */

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeAdmissionStore struct {
	memberships   []membershipModel.MembershipModel
	classes       map[uuid.UUID]*classModel.FitnessClassModel
	registrations []model.ClassRegistrationModel
}

func newFakeAdmissionStore() *fakeAdmissionStore {
	return &fakeAdmissionStore{classes: make(map[uuid.UUID]*classModel.FitnessClassModel)}
}

func (s *fakeAdmissionStore) MembershipValid(_ context.Context, studentID uuid.UUID, now time.Time) (bool, error) {
	for i := range s.memberships {
		m := &s.memberships[i]
		if m.MembershipUserID == studentID && m.IsValid(now) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeAdmissionStore) WithClass(_ context.Context, classID uuid.UUID, fn func(tx ClassTx) error) error {
	return fn(&fakeClassTx{store: s, classID: classID})
}

func (s *fakeAdmissionStore) DeleteRegistration(_ context.Context, studentID, classID uuid.UUID) (bool, error) {
	for i := range s.registrations {
		r := s.registrations[i]
		if r.ClassRegistrationClassID == classID && r.ClassRegistrationStudentID == studentID {
			s.registrations = append(s.registrations[:i], s.registrations[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeClassTx struct {
	store   *fakeAdmissionStore
	classID uuid.UUID
}

func (t *fakeClassTx) Class() (*classModel.FitnessClassModel, error) {
	return t.store.classes[t.classID], nil
}

func (t *fakeClassTx) RegistrationCount() (int64, error) {
	var n int64
	for _, r := range t.store.registrations {
		if r.ClassRegistrationClassID == t.classID {
			n++
		}
	}
	return n, nil
}

func (t *fakeClassTx) HasRegistration(studentID uuid.UUID) (bool, error) {
	for _, r := range t.store.registrations {
		if r.ClassRegistrationClassID == t.classID && r.ClassRegistrationStudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

func (t *fakeClassTx) CreateRegistration(reg *model.ClassRegistrationModel) error {
	t.store.registrations = append(t.store.registrations, *reg)
	return nil
}

/* =========================================================
   Fixtures
========================================================= */

var testNow = time.Date(2025, time.March, 10, 18, 0, 0, 0, time.UTC)

func validMembership(studentID uuid.UUID) membershipModel.MembershipModel {
	return membershipModel.MembershipModel{
		MembershipUserID:    studentID,
		MembershipStartDate: testNow.AddDate(0, -1, 0),
		MembershipEndDate:   testNow.AddDate(0, 2, 0),
		MembershipStatus:    membershipModel.MembershipStatusActive,
	}
}

func openClass(capacity int) *classModel.FitnessClassModel {
	return &classModel.FitnessClassModel{
		FitnessClassID:           uuid.New(),
		FitnessClassTitle:        "Evening HIIT",
		FitnessClassTrainerID:    uuid.New(),
		FitnessClassScheduleTime: testNow.Add(48 * time.Hour),
		FitnessClassCapacity:     capacity,
		FitnessClassStatus:       classModel.FitnessClassStatusActive,
	}
}

func fillClass(store *fakeAdmissionStore, classID uuid.UUID, n int) {
	for i := 0; i < n; i++ {
		store.registrations = append(store.registrations, model.ClassRegistrationModel{
			ClassRegistrationClassID:   classID,
			ClassRegistrationStudentID: uuid.New(),
			ClassRegistrationStatus:    model.RegistrationStatusBooked,
		})
	}
}

func newService(store *fakeAdmissionStore) *AdmissionService {
	return NewAdmissionService(store, fixedClock{now: testNow})
}

/* =========================================================
   Enroll
========================================================= */

func TestEnrollCreatesBookedRegistration(t *testing.T) {
	store := newFakeAdmissionStore()
	student := uuid.New()
	store.memberships = append(store.memberships, validMembership(student))
	class := openClass(10)
	store.classes[class.FitnessClassID] = class

	res, err := newService(store).Enroll(context.Background(), student, class.FitnessClassID)
	if err != nil {
		t.Fatalf("Enroll failed: %v", err)
	}
	if res.AlreadyRegistered {
		t.Fatal("first enroll must not report AlreadyRegistered")
	}
	if res.Registration == nil || res.Registration.ClassRegistrationStatus != model.RegistrationStatusBooked {
		t.Fatalf("want booked registration, got %+v", res.Registration)
	}
}

func TestEnrollWithoutValidMembership(t *testing.T) {
	store := newFakeAdmissionStore()
	student := uuid.New()
	class := openClass(1)
	store.classes[class.FitnessClassID] = class
	// class is also full: membership must still be reported first
	fillClass(store, class.FitnessClassID, 1)

	_, err := newService(store).Enroll(context.Background(), student, class.FitnessClassID)
	if !errors.Is(err, ErrMembershipExpired) {
		t.Fatalf("got err %v, want ErrMembershipExpired (membership precedes capacity)", err)
	}
}

func TestEnrollExpiredMembership(t *testing.T) {
	store := newFakeAdmissionStore()
	student := uuid.New()
	expired := validMembership(student)
	expired.MembershipEndDate = testNow.AddDate(0, 0, -1)
	store.memberships = append(store.memberships, expired)
	class := openClass(10)
	store.classes[class.FitnessClassID] = class

	_, err := newService(store).Enroll(context.Background(), student, class.FitnessClassID)
	if !errors.Is(err, ErrMembershipExpired) {
		t.Fatalf("got err %v, want ErrMembershipExpired", err)
	}
}

func TestEnrollClassNotEligible(t *testing.T) {
	student := uuid.New()

	cases := map[string]func(*classModel.FitnessClassModel){
		"cancelled": func(c *classModel.FitnessClassModel) {
			c.FitnessClassStatus = classModel.FitnessClassStatusCancelled
		},
		"completed": func(c *classModel.FitnessClassModel) {
			c.FitnessClassStatus = classModel.FitnessClassStatusCompleted
		},
		"in the past": func(c *classModel.FitnessClassModel) {
			c.FitnessClassScheduleTime = testNow.Add(-1 * time.Hour)
		},
	}

	for name, mutate := range cases {
		store := newFakeAdmissionStore()
		store.memberships = append(store.memberships, validMembership(student))
		class := openClass(10)
		mutate(class)
		store.classes[class.FitnessClassID] = class

		_, err := newService(store).Enroll(context.Background(), student, class.FitnessClassID)
		if !errors.Is(err, ErrClassNotEligible) {
			t.Errorf("%s class: got err %v, want ErrClassNotEligible", name, err)
		}
	}
}

func TestEnrollUnknownClass(t *testing.T) {
	store := newFakeAdmissionStore()
	student := uuid.New()
	store.memberships = append(store.memberships, validMembership(student))

	_, err := newService(store).Enroll(context.Background(), student, uuid.New())
	if !errors.Is(err, ErrClassNotEligible) {
		t.Fatalf("got err %v, want ErrClassNotEligible", err)
	}
}

func TestEnrollClassFull(t *testing.T) {
	store := newFakeAdmissionStore()
	student := uuid.New()
	store.memberships = append(store.memberships, validMembership(student))
	class := openClass(10)
	store.classes[class.FitnessClassID] = class
	fillClass(store, class.FitnessClassID, 10)

	_, err := newService(store).Enroll(context.Background(), student, class.FitnessClassID)
	if !errors.Is(err, ErrClassFull) {
		t.Fatalf("got err %v, want ErrClassFull", err)
	}
}

func TestEnrollTwiceIsIdempotent(t *testing.T) {
	store := newFakeAdmissionStore()
	student := uuid.New()
	store.memberships = append(store.memberships, validMembership(student))
	class := openClass(10)
	store.classes[class.FitnessClassID] = class

	svc := newService(store)

	first, err := svc.Enroll(context.Background(), student, class.FitnessClassID)
	if err != nil || first.AlreadyRegistered {
		t.Fatalf("first enroll: res=%+v err=%v", first, err)
	}

	second, err := svc.Enroll(context.Background(), student, class.FitnessClassID)
	if err != nil {
		t.Fatalf("second enroll returned error %v, AlreadyRegistered is not an error", err)
	}
	if !second.AlreadyRegistered {
		t.Fatal("second enroll must report AlreadyRegistered")
	}
	if len(store.registrations) != 1 {
		t.Fatalf("want a single registration row, got %d", len(store.registrations))
	}
}

/* =========================================================
   Cancel
========================================================= */

func TestCancelThenEnrollSucceedsAgain(t *testing.T) {
	store := newFakeAdmissionStore()
	student := uuid.New()
	store.memberships = append(store.memberships, validMembership(student))
	class := openClass(10)
	store.classes[class.FitnessClassID] = class

	svc := newService(store)

	if _, err := svc.Enroll(context.Background(), student, class.FitnessClassID); err != nil {
		t.Fatalf("enroll failed: %v", err)
	}
	if err := svc.Cancel(context.Background(), student, class.FitnessClassID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	res, err := svc.Enroll(context.Background(), student, class.FitnessClassID)
	if err != nil {
		t.Fatalf("re-enroll after cancel failed: %v", err)
	}
	if res.AlreadyRegistered {
		t.Fatal("re-enroll after cancel must create a fresh registration")
	}
}

func TestCancelWithoutRegistration(t *testing.T) {
	store := newFakeAdmissionStore()
	student := uuid.New()
	class := openClass(10)
	store.classes[class.FitnessClassID] = class

	err := newService(store).Cancel(context.Background(), student, class.FitnessClassID)
	if !errors.Is(err, ErrNotRegistered) {
		t.Fatalf("got err %v, want ErrNotRegistered", err)
	}
}
