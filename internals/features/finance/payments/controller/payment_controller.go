// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitnezz_backend/internals/configs"
	paymentDTO "fitnezz_backend/internals/features/finance/payments/dto"
	paymentModel "fitnezz_backend/internals/features/finance/payments/model"
	svc "fitnezz_backend/internals/features/finance/payments/service"
	userModel "fitnezz_backend/internals/features/users/users/model"
	helper "fitnezz_backend/internals/helpers"
)

type PaymentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Gateway   *svc.PaystackClient
	Reconcile *svc.ReconcileService
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	gateway := svc.NewPaystackClient(configs.PaystackBaseURL, configs.PaystackSecretKey)
	store := svc.NewGormReconcileStore(db)
	return &PaymentController{
		DB:        db,
		Validator: validator.New(),
		Gateway:   gateway,
		Reconcile: svc.NewReconcileService(store, gateway, nil),
	}
}

/* =======================================================================
   Member endpoints
======================================================================= */

// POST /api/u/payments/initialize
func (h *PaymentController) InitializePayment(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req paymentDTO.InitializePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := h.DB.WithContext(c.Context()).
		First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	// Reject before charging, same rule reconciliation enforces later.
	store := svc.NewGormReconcileStore(h.DB)
	has, err := store.HasActiveMembership(c.Context(), userID, time.Now())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if has {
		return helper.Error(c, fiber.StatusConflict, "You already have an active membership")
	}

	amountSubunits := int64(req.Amount * svc.SubunitsPerMajor)
	init, err := h.Gateway.InitializeTransaction(
		c.Context(),
		user.UserEmail,
		amountSubunits,
		configs.PaystackCallbackURL,
		map[string]interface{}{"user_id": userID.String()},
	)
	if err != nil {
		log.Printf("[ERROR] paystack initialize failed for %s: %v", user.UserEmail, err)
		return helper.Error(c, fiber.StatusBadGateway, "payment gateway unavailable")
	}

	return helper.Success(c, "Payment initialized", paymentDTO.InitializePaymentResponse{
		AuthorizationURL: init.AuthorizationURL,
		AccessCode:       init.AccessCode,
		Reference:        init.Reference,
	})
}

// GET /api/u/payments/verify?reference=...
//
// Verifies the reference with the gateway and grants the membership.
// This is the only path that creates memberships.
func (h *PaymentController) VerifyPayment(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	result, err := h.Reconcile.Reconcile(c.Context(), userID, c.Query("reference"))
	if err != nil {
		return h.mapReconcileError(c, err)
	}

	log.Printf("[INFO] membership granted: user=%s months=%d ref=%s",
		userID, result.Months, result.Payment.PaymentReference)

	return helper.Success(c,
		fmt.Sprintf("Payment verified, membership active for %d month(s)", result.Months),
		paymentDTO.VerifyPaymentResponse{
			Months:  result.Months,
			Payment: paymentDTO.FromModel(result.Payment),
			Membership: paymentDTO.MembershipGrant{
				MembershipID: result.Membership.MembershipID,
				StartDate:    result.Membership.MembershipStartDate,
				EndDate:      result.Membership.MembershipEndDate,
				Status:       result.Membership.MembershipStatus,
			},
		})
}

// GET /api/u/payments/me
func (h *PaymentController) ListMyPayments(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var payments []paymentModel.PaymentModel
	if err := h.DB.WithContext(c.Context()).
		Where("payment_user_id = ?", userID).
		Order("payment_date DESC").
		Find(&payments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]paymentDTO.PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, paymentDTO.FromModel(&payments[i]))
	}
	return helper.Success(c, "OK", out)
}

/* =======================================================================
   Admin endpoints
======================================================================= */

// GET /api/a/payments?status=&user_id=&page=&per_page=
func (h *PaymentController) ListPayments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.Context()).Model(&paymentModel.PaymentModel{})

	if status := c.Query("status"); status != "" {
		q = q.Where("payment_status = ?", status)
	}
	if raw := c.Query("user_id"); raw != "" {
		uid, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "invalid user_id filter")
		}
		q = q.Where("payment_user_id = ?", uid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var payments []paymentModel.PaymentModel
	if err := q.Order("payment_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&payments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]paymentDTO.PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, paymentDTO.FromModel(&payments[i]))
	}

	return helper.Success(c, "OK", fiber.Map{
		"payments":   out,
		"pagination": helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit),
	})
}

/* ===================== internals ===================== */

func (h *PaymentController) mapReconcileError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, svc.ErrNoReference):
		return helper.Error(c, fiber.StatusBadRequest, "reference query parameter is required")
	case errors.Is(err, svc.ErrDuplicateActiveMembership):
		return helper.Error(c, fiber.StatusConflict, "You already have an active membership")
	case errors.Is(err, svc.ErrReferenceAlreadyUsed):
		return helper.Error(c, fiber.StatusConflict, "This payment reference has already been used")
	case errors.Is(err, svc.ErrPaymentNotSuccessful):
		return helper.Error(c, fiber.StatusPaymentRequired, "Payment was not successful")
	case errors.Is(err, svc.ErrInsufficientAmount):
		return helper.Error(c, fiber.StatusBadRequest, "Amount paid is below the minimum membership fee")
	case errors.Is(err, svc.ErrDurationExceeded):
		return helper.Error(c, fiber.StatusBadRequest, "Amount paid exceeds the maximum membership duration")
	case errors.Is(err, svc.ErrGatewayUnavailable):
		log.Printf("[ERROR] paystack verify failed: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, "payment gateway unavailable, try again later")
	default:
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
}
