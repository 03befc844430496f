package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	FitnessClassStatusActive    = "active"
	FitnessClassStatusCancelled = "cancelled"
	FitnessClassStatusCompleted = "completed"
)

/* ===================== Model ===================== */

type FitnessClassModel struct {
	FitnessClassID uuid.UUID `gorm:"column:fitness_class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fitness_class_id"`

	FitnessClassTitle       string  `gorm:"column:fitness_class_title;size:255;not null" json:"fitness_class_title"`
	FitnessClassDescription *string `gorm:"column:fitness_class_description;type:text" json:"fitness_class_description,omitempty"`

	FitnessClassTrainerID    uuid.UUID `gorm:"column:fitness_class_trainer_id;type:uuid;not null;index" json:"fitness_class_trainer_id"`
	FitnessClassScheduleTime time.Time `gorm:"column:fitness_class_schedule_time;type:timestamptz;not null" json:"fitness_class_schedule_time"`
	FitnessClassCapacity     int       `gorm:"column:fitness_class_capacity;not null;check:fitness_class_capacity > 0" json:"fitness_class_capacity"`
	FitnessClassStatus       string    `gorm:"column:fitness_class_status;type:varchar(20);not null;default:'active'" json:"fitness_class_status"`

	CreatedAt time.Time      `gorm:"column:fitness_class_created_at;autoCreateTime" json:"fitness_class_created_at"`
	UpdatedAt time.Time      `gorm:"column:fitness_class_updated_at;autoUpdateTime" json:"fitness_class_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:fitness_class_deleted_at;index" json:"fitness_class_deleted_at,omitempty"`
}

func (FitnessClassModel) TableName() string { return "fitness_classes" }

/* ===================== Helpers ===================== */

// IsOpenAt reports whether the class can still take registrations:
// active status and a schedule time in the future. Cancelled, completed
// and past classes are all closed.
func (f *FitnessClassModel) IsOpenAt(now time.Time) bool {
	return f.FitnessClassStatus == FitnessClassStatusActive && f.FitnessClassScheduleTime.After(now)
}

func (f *FitnessClassModel) IsOwnedBy(trainerID uuid.UUID) bool {
	return f.FitnessClassTrainerID == trainerID
}
