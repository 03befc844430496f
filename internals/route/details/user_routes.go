// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "fitnezz_backend/internals/features/users/auth/route"
	userRoute "fitnezz_backend/internals/features/users/users/route"
)

// UserRoutes mounts the profile endpoint for signed-in users and the
// user administration endpoints for admins.
func UserRoutes(user fiber.Router, admin fiber.Router, db *gorm.DB) {
	authRoute.AuthPrivateRoutes(user, db)
	userRoute.UserAdminRoutes(admin, db)
}
