// file: internals/features/classes/registrations/controller/class_registration_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"fitnezz_backend/internals/constants"
	classModel "fitnezz_backend/internals/features/classes/classes/model"
	registrationDTO "fitnezz_backend/internals/features/classes/registrations/dto"
	registrationModel "fitnezz_backend/internals/features/classes/registrations/model"
	svc "fitnezz_backend/internals/features/classes/registrations/service"
	helper "fitnezz_backend/internals/helpers"
)

type ClassRegistrationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Admission *svc.AdmissionService
}

func NewClassRegistrationController(db *gorm.DB) *ClassRegistrationController {
	return &ClassRegistrationController{
		DB:        db,
		Validator: validator.New(),
		Admission: svc.NewAdmissionService(svc.NewGormAdmissionStore(db), nil),
	}
}

/* =======================================================================
   Student endpoints
======================================================================= */

// POST /api/u/classes/:id/register
func (h *ClassRegistrationController) Enroll(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid class id")
	}

	result, err := h.Admission.Enroll(c.Context(), studentID, classID)
	if err != nil {
		return h.mapAdmissionError(c, err)
	}

	if result.AlreadyRegistered {
		return helper.Success(c, "You are already registered for this class", nil)
	}

	log.Printf("[INFO] enrollment: student=%s class=%s", studentID, classID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registered for class",
		registrationDTO.FromModel(result.Registration))
}

// DELETE /api/u/classes/:id/register
func (h *ClassRegistrationController) Cancel(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid class id")
	}

	if err := h.Admission.Cancel(c.Context(), studentID, classID); err != nil {
		if errors.Is(err, svc.ErrNotRegistered) {
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Registration cancelled", nil)
}

// GET /api/u/registrations/me
func (h *ClassRegistrationController) ListMyRegistrations(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var regs []registrationModel.ClassRegistrationModel
	if err := h.DB.WithContext(c.Context()).
		Where("class_registration_student_id = ?", studentID).
		Order("class_registration_created_at DESC").
		Find(&regs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]registrationDTO.RegistrationResponse, 0, len(regs))
	for i := range regs {
		out = append(out, registrationDTO.FromModel(&regs[i]))
	}
	return helper.Success(c, "OK", out)
}

/* =======================================================================
   Trainer/admin endpoints
======================================================================= */

// GET /api/a/classes/:id/participants?status=booked,attended
//
// Trainers only see their own classes, admins see any.
func (h *ClassRegistrationController) ListParticipants(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid class id")
	}
	if err := h.guardClassAccess(c, classID); err != nil {
		return err
	}

	statuses := []string{
		registrationModel.RegistrationStatusBooked,
		registrationModel.RegistrationStatusAttended,
		registrationModel.RegistrationStatusAbsent,
	}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		statuses = statuses[:0]
		for _, s := range strings.Split(raw, ",") {
			statuses = append(statuses, strings.TrimSpace(s))
		}
	}

	var rows []registrationDTO.ParticipantRow
	err = h.DB.WithContext(c.Context()).Raw(`
		SELECT r.class_registration_id,
		       u.user_id       AS student_id,
		       u.user_name     AS student_name,
		       u.user_email    AS student_email,
		       u.user_matric_no AS student_matric_no,
		       r.class_registration_status  AS status,
		       r.class_registration_progress AS progress,
		       r.class_registration_comment  AS comment,
		       r.class_registration_created_at AS registered_at
		FROM class_registrations r
		JOIN users u ON u.user_id = r.class_registration_student_id
		WHERE r.class_registration_class_id = ?
		  AND r.class_registration_status = ANY(?)
		ORDER BY u.user_name ASC
	`, classID, pq.Array(statuses)).Scan(&rows).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", rows)
}

// PUT /api/a/registrations/:id/attendance
func (h *ClassRegistrationController) UpdateAttendance(c *fiber.Ctx) error {
	reg, fail := h.loadRegistrationForTrainer(c)
	if fail != nil {
		return fail
	}

	var req registrationDTO.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := h.DB.WithContext(c.Context()).
		Model(reg).
		Update("class_registration_status", req.Status).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Attendance updated", registrationDTO.FromModel(reg))
}

// PUT /api/a/registrations/:id/progress
func (h *ClassRegistrationController) UpdateProgress(c *fiber.Ctx) error {
	reg, fail := h.loadRegistrationForTrainer(c)
	if fail != nil {
		return fail
	}

	var req registrationDTO.UpdateProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Progress != nil {
		updates["class_registration_progress"] = *req.Progress
	}
	if req.Comment != nil {
		updates["class_registration_comment"] = *req.Comment
	}
	if req.WorkoutDiet != nil {
		updates["class_registration_workout_diet"] = *req.WorkoutDiet
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "nothing to update")
	}

	if err := h.DB.WithContext(c.Context()).
		Model(reg).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Progress notes updated", registrationDTO.FromModel(reg))
}

/* ===================== internals ===================== */

func (h *ClassRegistrationController) mapAdmissionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, svc.ErrMembershipExpired):
		return helper.Error(c, fiber.StatusForbidden, "You need an active membership to register for classes")
	case errors.Is(err, svc.ErrClassNotEligible):
		return helper.Error(c, fiber.StatusConflict, "This class is not open for registration")
	case errors.Is(err, svc.ErrClassFull):
		return helper.Error(c, fiber.StatusConflict, "This class is already full")
	default:
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
}

// guardClassAccess allows admins through and trainers only for classes
// they own.
func (h *ClassRegistrationController) guardClassAccess(c *fiber.Ctx, classID uuid.UUID) error {
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if role != constants.RoleTrainer {
		return nil
	}

	trainerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var class classModel.FitnessClassModel
	if err := h.DB.WithContext(c.Context()).
		First(&class, "fitness_class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "class not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if !class.IsOwnedBy(trainerID) {
		return helper.Error(c, fiber.StatusForbidden, "You may only view participants of your own classes")
	}
	return nil
}

// loadRegistrationForTrainer resolves :id and enforces the ownership
// guard through the registration's class.
func (h *ClassRegistrationController) loadRegistrationForTrainer(c *fiber.Ctx) (*registrationModel.ClassRegistrationModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "invalid registration id")
	}

	var reg registrationModel.ClassRegistrationModel
	if err := h.DB.WithContext(c.Context()).
		First(&reg, "class_registration_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "registration not found")
		}
		return nil, helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if fail := h.guardClassAccess(c, reg.ClassRegistrationClassID); fail != nil {
		return nil, fail
	}
	return &reg, nil
}
