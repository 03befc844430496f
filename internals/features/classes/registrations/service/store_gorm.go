package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	classModel "fitnezz_backend/internals/features/classes/classes/model"
	membershipModel "fitnezz_backend/internals/features/memberships/memberships/model"
	"fitnezz_backend/internals/features/classes/registrations/model"
)

/* =========================================================
   GORM-backed AdmissionStore
========================================================= */

type GormAdmissionStore struct {
	DB *gorm.DB
}

func NewGormAdmissionStore(db *gorm.DB) *GormAdmissionStore {
	return &GormAdmissionStore{DB: db}
}

func (s *GormAdmissionStore) MembershipValid(ctx context.Context, studentID uuid.UUID, now time.Time) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&membershipModel.MembershipModel{}).
		Where("membership_user_id = ? AND membership_status = ? AND membership_end_date >= ?",
			studentID, membershipModel.MembershipStatusActive, now).
		Count(&count).Error
	return count > 0, err
}

// WithClass runs fn inside a transaction with the class row locked
// (SELECT ... FOR UPDATE). Concurrent enrolls for the same class queue
// up on the lock, so the capacity count fn sees cannot go stale before
// its insert commits.
func (s *GormAdmissionStore) WithClass(ctx context.Context, classID uuid.UUID, fn func(tx ClassTx) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormClassTx{tx: tx, classID: classID})
	})
}

func (s *GormAdmissionStore) DeleteRegistration(ctx context.Context, studentID, classID uuid.UUID) (bool, error) {
	res := s.DB.WithContext(ctx).
		Where("class_registration_class_id = ? AND class_registration_student_id = ?", classID, studentID).
		Delete(&model.ClassRegistrationModel{})
	return res.RowsAffected > 0, res.Error
}

type gormClassTx struct {
	tx      *gorm.DB
	classID uuid.UUID
}

func (t *gormClassTx) Class() (*classModel.FitnessClassModel, error) {
	var class classModel.FitnessClassModel
	err := t.tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&class, "fitness_class_id = ?", t.classID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (t *gormClassTx) RegistrationCount() (int64, error) {
	var count int64
	err := t.tx.Model(&model.ClassRegistrationModel{}).
		Where("class_registration_class_id = ?", t.classID).
		Count(&count).Error
	return count, err
}

func (t *gormClassTx) HasRegistration(studentID uuid.UUID) (bool, error) {
	var count int64
	err := t.tx.Model(&model.ClassRegistrationModel{}).
		Where("class_registration_class_id = ? AND class_registration_student_id = ?", t.classID, studentID).
		Count(&count).Error
	return count > 0, err
}

func (t *gormClassTx) CreateRegistration(reg *model.ClassRegistrationModel) error {
	return t.tx.Create(reg).Error
}
