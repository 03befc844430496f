// file: internals/features/users/users/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitnezz_backend/internals/constants"
	userController "fitnezz_backend/internals/features/users/users/controller"
	"fitnezz_backend/internals/middlewares/auth"
)

// UserAdminRoutes mounts the user administration endpoints under /api/a.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := admin.Group("/users",
		auth.OnlyRoles(constants.RoleErrorAdmin("manage users"), constants.AdminAndAbove...),
	)
	users.Get("/students", ctrl.ListStudents)
	users.Get("/:id", ctrl.GetUser)
	users.Patch("/:id/status", ctrl.UpdateUserStatus)

	users.Post("/staff",
		auth.OnlyRoles(constants.RoleErrorSuperAdmin("create staff accounts"), constants.RoleSuperAdmin),
		ctrl.CreateStaff,
	)
}
