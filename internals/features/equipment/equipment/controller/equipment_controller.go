// file: internals/features/equipment/equipment/controller/equipment_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	equipmentDTO "fitnezz_backend/internals/features/equipment/equipment/dto"
	equipmentModel "fitnezz_backend/internals/features/equipment/equipment/model"
	helper "fitnezz_backend/internals/helpers"
)

type EquipmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEquipmentController(db *gorm.DB) *EquipmentController {
	return &EquipmentController{DB: db, Validator: validator.New()}
}

// GET /api/a/equipment?status=&page=&per_page=
func (h *EquipmentController) ListEquipment(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.Context()).Model(&equipmentModel.EquipmentModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("equipment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var items []equipmentModel.EquipmentModel
	if err := q.Order("equipment_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]equipmentDTO.EquipmentResponse, 0, len(items))
	for i := range items {
		out = append(out, equipmentDTO.FromModel(&items[i]))
	}

	return helper.Success(c, "OK", fiber.Map{
		"equipment":  out,
		"pagination": helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit),
	})
}

// GET /api/a/equipment/:id
func (h *EquipmentController) GetEquipment(c *fiber.Ctx) error {
	item, fail := h.find(c)
	if fail != nil {
		return fail
	}
	return helper.Success(c, "OK", equipmentDTO.FromModel(item))
}

// POST /api/a/equipment
func (h *EquipmentController) CreateEquipment(c *fiber.Ctx) error {
	var req equipmentDTO.CreateEquipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	item := equipmentModel.EquipmentModel{
		EquipmentName:                strings.TrimSpace(req.Name),
		EquipmentDescription:         req.Description,
		EquipmentStatus:              equipmentModel.EquipmentStatusAvailable,
		EquipmentMaintenanceSchedule: req.MaintenanceSchedule,
		EquipmentMaintenanceNotes:    req.MaintenanceNotes,
	}
	if req.Status != nil {
		item.EquipmentStatus = *req.Status
	}

	if err := h.DB.WithContext(c.Context()).Create(&item).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Equipment created", equipmentDTO.FromModel(&item))
}

// PUT /api/a/equipment/:id
func (h *EquipmentController) UpdateEquipment(c *fiber.Ctx) error {
	item, fail := h.find(c)
	if fail != nil {
		return fail
	}

	var req equipmentDTO.UpdateEquipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["equipment_name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		updates["equipment_description"] = *req.Description
	}
	if req.Status != nil {
		updates["equipment_status"] = *req.Status
	}
	if req.MaintenanceSchedule != nil {
		updates["equipment_maintenance_schedule"] = *req.MaintenanceSchedule
	}
	if req.MaintenanceNotes != nil {
		updates["equipment_maintenance_notes"] = *req.MaintenanceNotes
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "nothing to update")
	}

	if err := h.DB.WithContext(c.Context()).
		Model(item).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Equipment updated", equipmentDTO.FromModel(item))
}

// DELETE /api/a/equipment/:id
func (h *EquipmentController) DeleteEquipment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid equipment id")
	}

	res := h.DB.WithContext(c.Context()).
		Delete(&equipmentModel.EquipmentModel{}, "equipment_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "equipment not found")
	}
	return helper.Success(c, "Equipment deleted", nil)
}

func (h *EquipmentController) find(c *fiber.Ctx) (*equipmentModel.EquipmentModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "invalid equipment id")
	}

	var item equipmentModel.EquipmentModel
	if err := h.DB.WithContext(c.Context()).
		First(&item, "equipment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "equipment not found")
		}
		return nil, helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return &item, nil
}
