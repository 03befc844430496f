// file: internals/features/home/dashboard/controller/dashboard_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitnezz_backend/internals/constants"
	classModel "fitnezz_backend/internals/features/classes/classes/model"
	registrationModel "fitnezz_backend/internals/features/classes/registrations/model"
	equipmentModel "fitnezz_backend/internals/features/equipment/equipment/model"
	paymentModel "fitnezz_backend/internals/features/finance/payments/model"
	membershipModel "fitnezz_backend/internals/features/memberships/memberships/model"
	userModel "fitnezz_backend/internals/features/users/users/model"
	helper "fitnezz_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/u/dashboard/student
func (h *DashboardController) StudentDashboard(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	now := time.Now()

	membershipValid := false
	var membershipEnd *time.Time
	var m membershipModel.MembershipModel
	err = h.DB.WithContext(c.Context()).
		Where("membership_user_id = ?", userID).
		Order("membership_end_date DESC").
		First(&m).Error
	switch {
	case err == nil:
		membershipValid = m.IsValid(now)
		end := m.MembershipEndDate
		membershipEnd = &end
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no membership yet
	default:
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	type upcoming struct {
		FitnessClassID    string    `json:"fitness_class_id"`
		FitnessClassTitle string    `json:"fitness_class_title"`
		ScheduleTime      time.Time `json:"fitness_class_schedule_time"`
		Status            string    `json:"class_registration_status"`
	}
	var classes []upcoming
	if err := h.DB.WithContext(c.Context()).Raw(`
		SELECT f.fitness_class_id,
		       f.fitness_class_title,
		       f.fitness_class_schedule_time AS schedule_time,
		       r.class_registration_status   AS status
		FROM class_registrations r
		JOIN fitness_classes f ON f.fitness_class_id = r.class_registration_class_id
		WHERE r.class_registration_student_id = ?
		  AND f.fitness_class_schedule_time > ?
		  AND f.fitness_class_deleted_at IS NULL
		ORDER BY f.fitness_class_schedule_time ASC
		LIMIT 10
	`, userID, now).Scan(&classes).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"membership_valid":    membershipValid,
		"membership_end_date": membershipEnd,
		"upcoming_classes":    classes,
	})
}

// GET /api/u/dashboard/trainer
func (h *DashboardController) TrainerDashboard(c *fiber.Ctx) error {
	trainerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	type classRow struct {
		FitnessClassID    string    `json:"fitness_class_id"`
		FitnessClassTitle string    `json:"fitness_class_title"`
		ScheduleTime      time.Time `json:"fitness_class_schedule_time"`
		Capacity          int       `json:"fitness_class_capacity"`
		Status            string    `json:"fitness_class_status"`
		Participants      int64     `json:"participants"`
	}
	var rows []classRow
	if err := h.DB.WithContext(c.Context()).Raw(`
		SELECT f.fitness_class_id,
		       f.fitness_class_title,
		       f.fitness_class_schedule_time AS schedule_time,
		       f.fitness_class_capacity      AS capacity,
		       f.fitness_class_status        AS status,
		       COUNT(r.class_registration_id) AS participants
		FROM fitness_classes f
		LEFT JOIN class_registrations r ON r.class_registration_class_id = f.fitness_class_id
		WHERE f.fitness_class_trainer_id = ?
		  AND f.fitness_class_deleted_at IS NULL
		GROUP BY f.fitness_class_id
		ORDER BY f.fitness_class_schedule_time DESC
	`, trainerID).Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"classes":       rows,
		"total_classes": len(rows),
	})
}

// GET /api/a/dashboard
func (h *DashboardController) AdminDashboard(c *fiber.Ctx) error {
	ctx := c.Context()
	now := time.Now()

	var totalStudents int64
	if err := h.DB.WithContext(ctx).Model(&userModel.UserModel{}).
		Where("user_role = ?", constants.RoleStudent).
		Count(&totalStudents).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var activeMemberships int64
	if err := h.DB.WithContext(ctx).Model(&membershipModel.MembershipModel{}).
		Where("membership_status = ? AND membership_end_date >= ?",
			membershipModel.MembershipStatusActive, now).
		Count(&activeMemberships).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var totalClasses int64
	if err := h.DB.WithContext(ctx).Model(&classModel.FitnessClassModel{}).
		Count(&totalClasses).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var totalRegistrations int64
	if err := h.DB.WithContext(ctx).Model(&registrationModel.ClassRegistrationModel{}).
		Count(&totalRegistrations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var totalEquipment int64
	if err := h.DB.WithContext(ctx).Model(&equipmentModel.EquipmentModel{}).
		Count(&totalEquipment).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var revenue float64
	if err := h.DB.WithContext(ctx).Model(&paymentModel.PaymentModel{}).
		Where("payment_status = ?", paymentModel.PaymentStatusPaid).
		Select("COALESCE(SUM(payment_amount), 0)").
		Scan(&revenue).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"total_students":      totalStudents,
		"active_memberships":  activeMemberships,
		"total_classes":       totalClasses,
		"total_registrations": totalRegistrations,
		"total_equipment":     totalEquipment,
		"total_revenue":       revenue,
	})
}
