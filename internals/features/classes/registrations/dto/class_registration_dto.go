// file: internals/features/classes/registrations/dto/class_registration_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	registrationModel "fitnezz_backend/internals/features/classes/registrations/model"
)

/* ===================== Requests ===================== */

type UpdateAttendanceRequest struct {
	Status string `json:"class_registration_status" validate:"required,oneof=attended absent"`
}

type UpdateProgressRequest struct {
	Progress    *string `json:"class_registration_progress" validate:"omitempty,max=2000"`
	Comment     *string `json:"class_registration_comment" validate:"omitempty,max=2000"`
	WorkoutDiet *string `json:"class_registration_workout_diet" validate:"omitempty,max=2000"`
}

/* ===================== Responses ===================== */

type RegistrationResponse struct {
	ClassRegistrationID uuid.UUID `json:"class_registration_id"`
	ClassID             uuid.UUID `json:"class_registration_class_id"`
	StudentID           uuid.UUID `json:"class_registration_student_id"`
	Status              string    `json:"class_registration_status"`
	Progress            *string   `json:"class_registration_progress,omitempty"`
	Comment             *string   `json:"class_registration_comment,omitempty"`
	WorkoutDiet         *string   `json:"class_registration_workout_diet,omitempty"`
	CreatedAt           time.Time `json:"class_registration_created_at"`
}

func FromModel(r *registrationModel.ClassRegistrationModel) RegistrationResponse {
	return RegistrationResponse{
		ClassRegistrationID: r.ClassRegistrationID,
		ClassID:             r.ClassRegistrationClassID,
		StudentID:           r.ClassRegistrationStudentID,
		Status:              r.ClassRegistrationStatus,
		Progress:            r.ClassRegistrationProgress,
		Comment:             r.ClassRegistrationComment,
		WorkoutDiet:         r.ClassRegistrationWorkoutDiet,
		CreatedAt:           r.CreatedAt,
	}
}

// ParticipantRow joins the registration with the student account for
// the trainer's participant list.
type ParticipantRow struct {
	ClassRegistrationID uuid.UUID `json:"class_registration_id"`
	StudentID           uuid.UUID `json:"student_id"`
	StudentName         string    `json:"student_name"`
	StudentEmail        string    `json:"student_email"`
	StudentMatricNo     *string   `json:"student_matric_no,omitempty"`
	Status              string    `json:"class_registration_status"`
	Progress            *string   `json:"class_registration_progress,omitempty"`
	Comment             *string   `json:"class_registration_comment,omitempty"`
	RegisteredAt        time.Time `json:"registered_at"`
}
