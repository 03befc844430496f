// file: internals/features/home/dashboard/route/dashboard_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitnezz_backend/internals/constants"
	dashboardController "fitnezz_backend/internals/features/home/dashboard/controller"
	"fitnezz_backend/internals/middlewares/auth"
)

// DashboardUserRoutes mounts the per-role dashboards under /api/u.
func DashboardUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := dashboardController.NewDashboardController(db)

	dashboard := user.Group("/dashboard")
	dashboard.Get("/student",
		auth.OnlyRoles(constants.RoleErrorStudent("the student dashboard"), constants.StudentOnly...),
		ctrl.StudentDashboard,
	)
	dashboard.Get("/trainer",
		auth.OnlyRoles(constants.RoleErrorTrainer("the trainer dashboard"), constants.RoleTrainer),
		ctrl.TrainerDashboard,
	)
}

// DashboardAdminRoutes mounts the admin summary under /api/a.
func DashboardAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := dashboardController.NewDashboardController(db)

	admin.Get("/dashboard",
		auth.OnlyRoles(constants.RoleErrorAdmin("the admin dashboard"), constants.AdminAndAbove...),
		ctrl.AdminDashboard,
	)
}
