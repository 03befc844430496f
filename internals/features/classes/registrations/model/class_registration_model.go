package model

import (
	"time"

	"github.com/google/uuid"
)

/* ===================== Enums (string) ===================== */

const (
	RegistrationStatusBooked   = "booked"
	RegistrationStatusAttended = "attended"
	RegistrationStatusAbsent   = "absent"
)

/* ===================== Model ===================== */

// A student holds at most one registration per class
// (unique pair class_id + student_id). Cancellation hard-deletes the row
// so the student can enroll again later.
type ClassRegistrationModel struct {
	ClassRegistrationID uuid.UUID `gorm:"column:class_registration_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_registration_id"`

	ClassRegistrationClassID   uuid.UUID `gorm:"column:class_registration_class_id;type:uuid;not null;uniqueIndex:uq_class_registrations_class_student,priority:1" json:"class_registration_class_id"`
	ClassRegistrationStudentID uuid.UUID `gorm:"column:class_registration_student_id;type:uuid;not null;uniqueIndex:uq_class_registrations_class_student,priority:2" json:"class_registration_student_id"`

	ClassRegistrationStatus string `gorm:"column:class_registration_status;type:varchar(20);not null;default:'booked'" json:"class_registration_status"`

	// trainer notes, filled in after the session
	ClassRegistrationProgress    *string `gorm:"column:class_registration_progress;type:text" json:"class_registration_progress,omitempty"`
	ClassRegistrationComment     *string `gorm:"column:class_registration_comment;type:text" json:"class_registration_comment,omitempty"`
	ClassRegistrationWorkoutDiet *string `gorm:"column:class_registration_workout_diet;type:text" json:"class_registration_workout_diet,omitempty"`

	CreatedAt time.Time `gorm:"column:class_registration_created_at;autoCreateTime" json:"class_registration_created_at"`
	UpdatedAt time.Time `gorm:"column:class_registration_updated_at;autoUpdateTime" json:"class_registration_updated_at"`
}

func (ClassRegistrationModel) TableName() string { return "class_registrations" }
