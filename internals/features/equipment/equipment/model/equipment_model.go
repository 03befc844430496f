package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	EquipmentStatusAvailable   = "available"
	EquipmentStatusInUse       = "in-use"
	EquipmentStatusMaintenance = "maintenance"
	EquipmentStatusRetired     = "retired"
)

/* ===================== Model ===================== */

type EquipmentModel struct {
	EquipmentID uuid.UUID `gorm:"column:equipment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"equipment_id"`

	EquipmentName        string  `gorm:"column:equipment_name;size:255;not null" json:"equipment_name"`
	EquipmentDescription *string `gorm:"column:equipment_description;type:text" json:"equipment_description,omitempty"`
	EquipmentStatus      string  `gorm:"column:equipment_status;type:varchar(20);not null;default:'available'" json:"equipment_status"`

	EquipmentMaintenanceSchedule *time.Time `gorm:"column:equipment_maintenance_schedule;type:date" json:"equipment_maintenance_schedule,omitempty"`
	EquipmentMaintenanceNotes    *string    `gorm:"column:equipment_maintenance_notes;type:text" json:"equipment_maintenance_notes,omitempty"`

	CreatedAt time.Time      `gorm:"column:equipment_created_at;autoCreateTime" json:"equipment_created_at"`
	UpdatedAt time.Time      `gorm:"column:equipment_updated_at;autoUpdateTime" json:"equipment_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:equipment_deleted_at;index" json:"equipment_deleted_at,omitempty"`
}

func (EquipmentModel) TableName() string { return "equipment" }
