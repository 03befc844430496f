// file: internals/route/details/equipment_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	equipmentRoute "fitnezz_backend/internals/features/equipment/equipment/route"
)

func EquipmentRoutes(admin fiber.Router, db *gorm.DB) {
	equipmentRoute.EquipmentAdminRoutes(admin, db)
}
