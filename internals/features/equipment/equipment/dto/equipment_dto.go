// file: internals/features/equipment/equipment/dto/equipment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	equipmentModel "fitnezz_backend/internals/features/equipment/equipment/model"
)

/* ===================== Requests ===================== */

type CreateEquipmentRequest struct {
	Name                string     `json:"equipment_name" validate:"required,min=2,max=255"`
	Description         *string    `json:"equipment_description" validate:"omitempty,max=2000"`
	Status              *string    `json:"equipment_status" validate:"omitempty,oneof=available in-use maintenance retired"`
	MaintenanceSchedule *time.Time `json:"equipment_maintenance_schedule"`
	MaintenanceNotes    *string    `json:"equipment_maintenance_notes" validate:"omitempty,max=2000"`
}

type UpdateEquipmentRequest struct {
	Name                *string    `json:"equipment_name" validate:"omitempty,min=2,max=255"`
	Description         *string    `json:"equipment_description" validate:"omitempty,max=2000"`
	Status              *string    `json:"equipment_status" validate:"omitempty,oneof=available in-use maintenance retired"`
	MaintenanceSchedule *time.Time `json:"equipment_maintenance_schedule"`
	MaintenanceNotes    *string    `json:"equipment_maintenance_notes" validate:"omitempty,max=2000"`
}

/* ===================== Responses ===================== */

type EquipmentResponse struct {
	EquipmentID         uuid.UUID  `json:"equipment_id"`
	Name                string     `json:"equipment_name"`
	Description         *string    `json:"equipment_description,omitempty"`
	Status              string     `json:"equipment_status"`
	MaintenanceSchedule *time.Time `json:"equipment_maintenance_schedule,omitempty"`
	MaintenanceNotes    *string    `json:"equipment_maintenance_notes,omitempty"`
	CreatedAt           time.Time  `json:"equipment_created_at"`
	UpdatedAt           time.Time  `json:"equipment_updated_at"`
}

func FromModel(e *equipmentModel.EquipmentModel) EquipmentResponse {
	return EquipmentResponse{
		EquipmentID:         e.EquipmentID,
		Name:                e.EquipmentName,
		Description:         e.EquipmentDescription,
		Status:              e.EquipmentStatus,
		MaintenanceSchedule: e.EquipmentMaintenanceSchedule,
		MaintenanceNotes:    e.EquipmentMaintenanceNotes,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}
