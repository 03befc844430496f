// file: internals/features/equipment/equipment/route/equipment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitnezz_backend/internals/constants"
	equipmentController "fitnezz_backend/internals/features/equipment/equipment/controller"
	"fitnezz_backend/internals/middlewares/auth"
)

// EquipmentAdminRoutes mounts the equipment inventory under /api/a.
func EquipmentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := equipmentController.NewEquipmentController(db)

	equipment := admin.Group("/equipment",
		auth.OnlyRoles(constants.RoleErrorAdmin("equipment management"), constants.AdminAndAbove...),
	)
	equipment.Get("/", ctrl.ListEquipment)
	equipment.Get("/:id", ctrl.GetEquipment)
	equipment.Post("/", ctrl.CreateEquipment)
	equipment.Put("/:id", ctrl.UpdateEquipment)
	equipment.Delete("/:id", ctrl.DeleteEquipment)
}
