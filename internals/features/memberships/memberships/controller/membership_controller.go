// file: internals/features/memberships/memberships/controller/membership_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	membershipDTO "fitnezz_backend/internals/features/memberships/memberships/dto"
	membershipModel "fitnezz_backend/internals/features/memberships/memberships/model"
	helper "fitnezz_backend/internals/helpers"
)

type MembershipController struct {
	DB *gorm.DB
}

func NewMembershipController(db *gorm.DB) *MembershipController {
	return &MembershipController{DB: db}
}

// GET /api/u/memberships/me
//
// Returns the caller's most recent membership. Validity is computed on
// read, nothing flips rows to expired in the background.
func (h *MembershipController) GetMyMembership(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m membershipModel.MembershipModel
	err = h.DB.WithContext(c.Context()).
		Where("membership_user_id = ?", userID).
		Order("membership_end_date DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Success(c, "No membership yet", fiber.Map{
				"membership": nil,
				"valid":      false,
			})
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := membershipDTO.FromModel(&m, time.Now())
	return helper.Success(c, "OK", fiber.Map{
		"membership": resp,
		"valid":      resp.Valid,
	})
}

// GET /api/u/memberships/history
func (h *MembershipController) GetMyMembershipHistory(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var memberships []membershipModel.MembershipModel
	if err := h.DB.WithContext(c.Context()).
		Where("membership_user_id = ?", userID).
		Order("membership_end_date DESC").
		Find(&memberships).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	now := time.Now()
	out := make([]membershipDTO.MembershipResponse, 0, len(memberships))
	for i := range memberships {
		out = append(out, membershipDTO.FromModel(&memberships[i], now))
	}
	return helper.Success(c, "OK", out)
}

// GET /api/a/memberships?status=&page=&per_page=
func (h *MembershipController) ListMemberships(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	now := time.Now()

	q := h.DB.WithContext(c.Context()).Model(&membershipModel.MembershipModel{})

	switch c.Query("status") {
	case membershipModel.MembershipStatusActive:
		q = q.Where("membership_status = ? AND membership_end_date >= ?", membershipModel.MembershipStatusActive, now)
	case membershipModel.MembershipStatusExpired:
		q = q.Where("membership_status = ? OR membership_end_date < ?", membershipModel.MembershipStatusExpired, now)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var memberships []membershipModel.MembershipModel
	if err := q.Order("membership_end_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&memberships).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]membershipDTO.MembershipResponse, 0, len(memberships))
	for i := range memberships {
		out = append(out, membershipDTO.FromModel(&memberships[i], now))
	}

	return helper.Success(c, "OK", fiber.Map{
		"memberships": out,
		"pagination":  helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit),
	})
}
