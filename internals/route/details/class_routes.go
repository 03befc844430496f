// file: internals/route/details/class_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "fitnezz_backend/internals/features/classes/classes/route"
	registrationRoute "fitnezz_backend/internals/features/classes/registrations/route"
)

// ClassRoutes mounts the class catalog, CRUD and enrollment endpoints.
func ClassRoutes(user fiber.Router, admin fiber.Router, db *gorm.DB) {
	classRoute.FitnessClassRoutes(user, db)

	registrationRoute.RegistrationUserRoutes(user, db)
	registrationRoute.RegistrationAdminRoutes(admin, db)
}
