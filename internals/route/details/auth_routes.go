// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "fitnezz_backend/internals/features/users/auth/route"
)

// AuthRoutes mounts register/login/logout on the public /api group.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	authRoute.AuthPublicRoutes(api, db)
}
