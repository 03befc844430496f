// file: internals/route/details/finance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentRoute "fitnezz_backend/internals/features/finance/payments/route"
	membershipRoute "fitnezz_backend/internals/features/memberships/memberships/route"
)

// FinanceRoutes mounts the payment flow and membership views.
func FinanceRoutes(user fiber.Router, admin fiber.Router, db *gorm.DB) {
	paymentRoute.PaymentUserRoutes(user, db)
	paymentRoute.PaymentAdminRoutes(admin, db)

	membershipRoute.MembershipUserRoutes(user, db)
	membershipRoute.MembershipAdminRoutes(admin, db)
}
