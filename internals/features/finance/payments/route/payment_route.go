// file: internals/features/finance/payments/route/payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitnezz_backend/internals/constants"
	paymentController "fitnezz_backend/internals/features/finance/payments/controller"
	"fitnezz_backend/internals/middlewares/auth"
)

// PaymentUserRoutes mounts the member payment flow under /api/u.
func PaymentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	payments := user.Group("/payments",
		auth.OnlyRoles(constants.RoleErrorStudent("membership payments"), constants.StudentOnly...),
	)
	payments.Post("/initialize", ctrl.InitializePayment)
	payments.Get("/verify", ctrl.VerifyPayment)
	payments.Get("/me", ctrl.ListMyPayments)
}

// PaymentAdminRoutes mounts the finance listing under /api/a.
func PaymentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	payments := admin.Group("/payments",
		auth.OnlyRoles(constants.RoleErrorAdmin("payment administration"), constants.AdminAndAbove...),
	)
	payments.Get("/", ctrl.ListPayments)
}
