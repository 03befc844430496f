// file: internals/features/classes/classes/dto/fitness_class_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	classModel "fitnezz_backend/internals/features/classes/classes/model"
)

/* ===================== Requests ===================== */

type CreateFitnessClassRequest struct {
	Title        string    `json:"fitness_class_title" validate:"required,min=3,max=255"`
	Description  *string   `json:"fitness_class_description" validate:"omitempty,max=2000"`
	TrainerID    *string   `json:"fitness_class_trainer_id" validate:"omitempty,uuid4"`
	ScheduleTime time.Time `json:"fitness_class_schedule_time" validate:"required"`
	Capacity     int       `json:"fitness_class_capacity" validate:"required,gt=0,lte=500"`
}

type UpdateFitnessClassRequest struct {
	Title        *string    `json:"fitness_class_title" validate:"omitempty,min=3,max=255"`
	Description  *string    `json:"fitness_class_description" validate:"omitempty,max=2000"`
	ScheduleTime *time.Time `json:"fitness_class_schedule_time"`
	Capacity     *int       `json:"fitness_class_capacity" validate:"omitempty,gt=0,lte=500"`
	Status       *string    `json:"fitness_class_status" validate:"omitempty,oneof=active cancelled completed"`
}

/* ===================== Responses ===================== */

type FitnessClassResponse struct {
	FitnessClassID uuid.UUID  `json:"fitness_class_id"`
	Title          string     `json:"fitness_class_title"`
	Description    *string    `json:"fitness_class_description,omitempty"`
	TrainerID      uuid.UUID  `json:"fitness_class_trainer_id"`
	TrainerName    string     `json:"fitness_class_trainer_name,omitempty"`
	ScheduleTime   time.Time  `json:"fitness_class_schedule_time"`
	Capacity       int        `json:"fitness_class_capacity"`
	Status         string     `json:"fitness_class_status"`
	Registered     int64      `json:"fitness_class_registered"`
	SlotsLeft      int64      `json:"fitness_class_slots_left"`
	CreatedAt      time.Time  `json:"fitness_class_created_at"`
}

func FromModel(f *classModel.FitnessClassModel, registered int64) FitnessClassResponse {
	slots := int64(f.FitnessClassCapacity) - registered
	if slots < 0 {
		slots = 0
	}
	return FitnessClassResponse{
		FitnessClassID: f.FitnessClassID,
		Title:          f.FitnessClassTitle,
		Description:    f.FitnessClassDescription,
		TrainerID:      f.FitnessClassTrainerID,
		ScheduleTime:   f.FitnessClassScheduleTime,
		Capacity:       f.FitnessClassCapacity,
		Status:         f.FitnessClassStatus,
		Registered:     registered,
		SlotsLeft:      slots,
		CreatedAt:      f.CreatedAt,
	}
}
