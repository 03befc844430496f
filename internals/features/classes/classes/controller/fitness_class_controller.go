// file: internals/features/classes/classes/controller/fitness_class_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitnezz_backend/internals/constants"
	classDTO "fitnezz_backend/internals/features/classes/classes/dto"
	classModel "fitnezz_backend/internals/features/classes/classes/model"
	registrationModel "fitnezz_backend/internals/features/classes/registrations/model"
	userModel "fitnezz_backend/internals/features/users/users/model"
	helper "fitnezz_backend/internals/helpers"
)

type FitnessClassController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFitnessClassController(db *gorm.DB) *FitnessClassController {
	return &FitnessClassController{DB: db, Validator: validator.New()}
}

/* =======================================================================
   Listing (role filtered)
======================================================================= */

// GET /api/u/classes
//
// Trainers see their own classes, students see open classes they have
// not registered in yet, admins and the super-admin see everything.
func (h *FitnessClassController) ListClasses(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := h.DB.WithContext(c.Context()).Model(&classModel.FitnessClassModel{})

	switch role {
	case constants.RoleTrainer:
		q = q.Where("fitness_class_trainer_id = ?", userID)
	case constants.RoleStudent:
		q = q.Where("fitness_class_status = ? AND fitness_class_schedule_time > ?",
			classModel.FitnessClassStatusActive, time.Now()).
			Where("fitness_class_id NOT IN (?)",
				h.DB.Model(&registrationModel.ClassRegistrationModel{}).
					Select("class_registration_class_id").
					Where("class_registration_student_id = ?", userID))
	default:
		// admin and super-admin: no filter
	}

	var classes []classModel.FitnessClassModel
	if err := q.Order("fitness_class_schedule_time ASC").Find(&classes).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	counts, err := h.registrationCounts(c, classes)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]classDTO.FitnessClassResponse, 0, len(classes))
	for i := range classes {
		out = append(out, classDTO.FromModel(&classes[i], counts[classes[i].FitnessClassID]))
	}
	return helper.Success(c, "OK", out)
}

// GET /api/u/classes/:id
func (h *FitnessClassController) GetClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid class id")
	}

	var class classModel.FitnessClassModel
	if err := h.DB.WithContext(c.Context()).
		First(&class, "fitness_class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "class not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var registered int64
	if err := h.DB.WithContext(c.Context()).
		Model(&registrationModel.ClassRegistrationModel{}).
		Where("class_registration_class_id = ?", id).
		Count(&registered).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := classDTO.FromModel(&class, registered)
	if name, err := h.trainerName(c, class.FitnessClassTrainerID); err == nil {
		resp.TrainerName = name
	}
	return helper.Success(c, "OK", resp)
}

/* =======================================================================
   CRUD (super-admin / owning trainer)
======================================================================= */

// POST /api/u/classes
//
// Trainers create classes for themselves. The super-admin may create on
// behalf of any trainer by passing fitness_class_trainer_id.
func (h *FitnessClassController) CreateClass(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req classDTO.CreateFitnessClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !req.ScheduleTime.After(time.Now()) {
		return helper.Error(c, fiber.StatusBadRequest, "fitness_class_schedule_time must be in the future")
	}

	trainerID := userID
	if role == constants.RoleSuperAdmin {
		if req.TrainerID == nil {
			return helper.Error(c, fiber.StatusBadRequest, "fitness_class_trainer_id is required for super-admin")
		}
		trainerID, err = uuid.Parse(*req.TrainerID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "invalid fitness_class_trainer_id")
		}
		var trainer userModel.UserModel
		if err := h.DB.WithContext(c.Context()).
			First(&trainer, "user_id = ? AND user_role = ?", trainerID, constants.RoleTrainer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Error(c, fiber.StatusBadRequest, "trainer not found")
			}
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	class := classModel.FitnessClassModel{
		FitnessClassTitle:        strings.TrimSpace(req.Title),
		FitnessClassDescription:  req.Description,
		FitnessClassTrainerID:    trainerID,
		FitnessClassScheduleTime: req.ScheduleTime,
		FitnessClassCapacity:     req.Capacity,
		FitnessClassStatus:       classModel.FitnessClassStatusActive,
	}
	if err := h.DB.WithContext(c.Context()).Create(&class).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	log.Printf("[INFO] class created: %s (trainer=%s)", class.FitnessClassTitle, trainerID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Class created", classDTO.FromModel(&class, 0))
}

// PUT /api/u/classes/:id
func (h *FitnessClassController) UpdateClass(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid class id")
	}

	var req classDTO.UpdateFitnessClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var class classModel.FitnessClassModel
	if err := h.DB.WithContext(c.Context()).
		First(&class, "fitness_class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "class not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	// only the owning trainer or the super-admin may edit
	if role != constants.RoleSuperAdmin && !class.IsOwnedBy(userID) {
		return helper.Error(c, fiber.StatusForbidden, "You may only edit your own classes")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["fitness_class_title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		updates["fitness_class_description"] = *req.Description
	}
	if req.ScheduleTime != nil {
		updates["fitness_class_schedule_time"] = *req.ScheduleTime
	}
	if req.Capacity != nil {
		var registered int64
		if err := h.DB.WithContext(c.Context()).
			Model(&registrationModel.ClassRegistrationModel{}).
			Where("class_registration_class_id = ?", id).
			Count(&registered).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		if int64(*req.Capacity) < registered {
			return helper.Error(c, fiber.StatusConflict, "capacity cannot be lower than current registrations")
		}
		updates["fitness_class_capacity"] = *req.Capacity
	}
	if req.Status != nil {
		updates["fitness_class_status"] = *req.Status
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "nothing to update")
	}

	if err := h.DB.WithContext(c.Context()).
		Model(&class).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Class updated", classDTO.FromModel(&class, 0))
}

// DELETE /api/u/classes/:id (super-admin only, enforced at the route)
func (h *FitnessClassController) DeleteClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid class id")
	}

	res := h.DB.WithContext(c.Context()).
		Delete(&classModel.FitnessClassModel{}, "fitness_class_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "class not found")
	}

	log.Printf("[INFO] class deleted: %s", id)
	return helper.Success(c, "Class deleted", nil)
}

/* ===================== internals ===================== */

func (h *FitnessClassController) registrationCounts(c *fiber.Ctx, classes []classModel.FitnessClassModel) (map[uuid.UUID]int64, error) {
	counts := map[uuid.UUID]int64{}
	if len(classes) == 0 {
		return counts, nil
	}
	ids := make([]uuid.UUID, 0, len(classes))
	for i := range classes {
		ids = append(ids, classes[i].FitnessClassID)
	}

	type row struct {
		ClassRegistrationClassID uuid.UUID
		Total                    int64
	}
	var rows []row
	err := h.DB.WithContext(c.Context()).
		Model(&registrationModel.ClassRegistrationModel{}).
		Select("class_registration_class_id, COUNT(*) AS total").
		Where("class_registration_class_id IN ?", ids).
		Group("class_registration_class_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.ClassRegistrationClassID] = r.Total
	}
	return counts, nil
}

func (h *FitnessClassController) trainerName(c *fiber.Ctx, trainerID uuid.UUID) (string, error) {
	var trainer userModel.UserModel
	if err := h.DB.WithContext(c.Context()).
		Select("user_name").
		First(&trainer, "user_id = ?", trainerID).Error; err != nil {
		return "", err
	}
	return trainer.UserName, nil
}
