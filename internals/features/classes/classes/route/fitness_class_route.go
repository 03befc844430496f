// file: internals/features/classes/classes/route/fitness_class_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitnezz_backend/internals/constants"
	classController "fitnezz_backend/internals/features/classes/classes/controller"
	"fitnezz_backend/internals/middlewares/auth"
)

// FitnessClassRoutes mounts the class catalog and CRUD under /api/u.
// Listing is open to every signed-in role, mutations follow the class
// policy: create by trainer or super-admin, update by the owning
// trainer or super-admin, delete by super-admin only.
func FitnessClassRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := classController.NewFitnessClassController(db)

	classes := user.Group("/classes")
	classes.Get("/", ctrl.ListClasses)
	classes.Get("/:id", ctrl.GetClass)

	classes.Post("/",
		auth.OnlyRoles(constants.RoleErrorTrainer("class creation"),
			constants.RoleTrainer, constants.RoleSuperAdmin),
		ctrl.CreateClass,
	)
	classes.Put("/:id",
		auth.OnlyRoles(constants.RoleErrorTrainer("class editing"),
			constants.RoleTrainer, constants.RoleSuperAdmin),
		ctrl.UpdateClass,
	)
	classes.Delete("/:id",
		auth.OnlyRoles(constants.RoleErrorSuperAdmin("class deletion"), constants.RoleSuperAdmin),
		ctrl.DeleteClass,
	)
}
