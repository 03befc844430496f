// file: internals/route/details/home_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardRoute "fitnezz_backend/internals/features/home/dashboard/route"
)

func HomeRoutes(user fiber.Router, admin fiber.Router, db *gorm.DB) {
	dashboardRoute.DashboardUserRoutes(user, db)
	dashboardRoute.DashboardAdminRoutes(admin, db)
}
