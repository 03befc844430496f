// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitnezz_backend/internals/middlewares/auth"
	routeDetails "fitnezz_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	api := app.Group("/api")
	routeDetails.AuthRoutes(api, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group (/api/u)...")
	user := app.Group("/api/u", auth.AuthMiddleware(db))

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (/api/a)...")
	admin := app.Group("/api/a", auth.AuthMiddleware(db))

	routeDetails.UserRoutes(user, admin, db)
	routeDetails.FinanceRoutes(user, admin, db)
	routeDetails.ClassRoutes(user, admin, db)
	routeDetails.EquipmentRoutes(admin, db)
	routeDetails.HomeRoutes(user, admin, db)

	log.Println("✅ All routes registered")
}
