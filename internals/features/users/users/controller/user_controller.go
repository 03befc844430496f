// file: internals/features/users/users/controller/user_controller.go
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
	authDTO "fitnezz_backend/internals/features/users/auth/dto"
	authService "fitnezz_backend/internals/features/users/auth/service"
	membershipModel "fitnezz_backend/internals/features/memberships/memberships/model"
	paymentModel "fitnezz_backend/internals/features/finance/payments/model"
	userDTO "fitnezz_backend/internals/features/users/users/dto"
	userModel "fitnezz_backend/internals/features/users/users/model"
	helper "fitnezz_backend/internals/helpers"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validator: validator.New()}
}

/* =======================================================================
   Admin: student listing with membership & payment summary
======================================================================= */

// GET /api/a/users/students?search=&page=&per_page=
func (h *UserController) ListStudents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.Context()).
		Model(&userModel.UserModel{}).
		Where("user_role = ?", constants.RoleStudent)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(user_name) LIKE ? OR LOWER(user_email) LIKE ? OR LOWER(COALESCE(user_matric_no, '')) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var students []userModel.UserModel
	if err := q.Order("user_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	ids := make([]uuid.UUID, 0, len(students))
	for i := range students {
		ids = append(ids, students[i].UserID)
	}

	// Latest membership per student.
	latest := map[uuid.UUID]membershipModel.MembershipModel{}
	if len(ids) > 0 {
		var memberships []membershipModel.MembershipModel
		if err := h.DB.WithContext(c.Context()).
			Where("membership_user_id IN ?", ids).
			Order("membership_end_date DESC").
			Find(&memberships).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		for i := range memberships {
			m := memberships[i]
			if _, ok := latest[m.MembershipUserID]; !ok {
				latest[m.MembershipUserID] = m
			}
		}
	}

	// Lifetime paid total per student.
	totals := map[uuid.UUID]float64{}
	if len(ids) > 0 {
		type row struct {
			PaymentUserID uuid.UUID
			Total         float64
		}
		var rows []row
		if err := h.DB.WithContext(c.Context()).
			Model(&paymentModel.PaymentModel{}).
			Select("payment_user_id, COALESCE(SUM(payment_amount), 0) AS total").
			Where("payment_user_id IN ? AND payment_status = ?", ids, paymentModel.PaymentStatusPaid).
			Group("payment_user_id").
			Scan(&rows).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		for _, r := range rows {
			totals[r.PaymentUserID] = r.Total
		}
	}

	now := time.Now()
	items := make([]userDTO.StudentListItem, 0, len(students))
	for i := range students {
		u := students[i]
		item := userDTO.StudentListItem{
			UserID:           u.UserID,
			UserName:         u.UserName,
			UserEmail:        u.UserEmail,
			UserMatricNo:     u.UserMatricNo,
			UserIsActive:     u.UserIsActive,
			MembershipStatus: "none",
			TotalPaid:        totals[u.UserID],
			CreatedAt:        u.CreatedAt,
		}
		if m, ok := latest[u.UserID]; ok {
			end := m.MembershipEndDate
			item.MembershipEnd = &end
			if m.IsValid(now) {
				item.MembershipStatus = membershipModel.MembershipStatusActive
			} else {
				item.MembershipStatus = membershipModel.MembershipStatusExpired
			}
		}
		items = append(items, item)
	}

	return helper.Success(c, "OK", fiber.Map{
		"students":   items,
		"pagination": helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit),
	})
}

/* =======================================================================
   Admin: user detail, activate/deactivate
======================================================================= */

// GET /api/a/users/:id
func (h *UserController) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid user id")
	}

	var user userModel.UserModel
	if err := h.DB.WithContext(c.Context()).
		First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "user not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var memberships []membershipModel.MembershipModel
	if err := h.DB.WithContext(c.Context()).
		Where("membership_user_id = ?", id).
		Order("membership_end_date DESC").
		Find(&memberships).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", userDTO.ToUserDetail(&user, memberships, time.Now()))
}

// PATCH /api/a/users/:id/status
func (h *UserController) UpdateUserStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid user id")
	}

	var req userDTO.UpdateUserStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := h.DB.WithContext(c.Context()).
		First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "user not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if user.IsSuperAdmin() {
		return helper.Error(c, fiber.StatusForbidden, "super-admin account cannot be deactivated")
	}

	if err := h.DB.WithContext(c.Context()).
		Model(&user).
		Update("user_is_active", *req.UserIsActive).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	log.Printf("[INFO] user %s active=%v", user.UserEmail, *req.UserIsActive)
	return helper.Success(c, "User status updated", authDTO.FromUserModel(&user))
}

/* =======================================================================
   Super-admin: staff accounts
======================================================================= */

// POST /api/a/users/staff
func (h *UserController) CreateStaff(c *fiber.Ctx) error {
	var req userDTO.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := authDTO.ValidateStaffEmail(req.UserEmail); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	hashed, err := authService.HashPassword(req.UserPassword)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	staff := userModel.UserModel{
		UserName:     strings.TrimSpace(req.UserName),
		UserEmail:    strings.ToLower(strings.TrimSpace(req.UserEmail)),
		UserPassword: hashed,
		UserRole:     req.UserRole,
		UserIsActive: true,
	}

	if err := h.DB.WithContext(c.Context()).Create(&staff).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate key") ||
			strings.Contains(strings.ToLower(err.Error()), "unique constraint") {
			return helper.Error(c, fiber.StatusConflict, "Email already registered")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	log.Printf("[INFO] staff account created: %s (%s)", staff.UserEmail, staff.UserRole)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Staff account created", authDTO.FromUserModel(&staff))
}
