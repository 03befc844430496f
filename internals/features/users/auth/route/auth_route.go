// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "fitnezz_backend/internals/features/users/auth/controller"
	"fitnezz_backend/internals/middlewares"
)

// AuthPublicRoutes mounts the unauthenticated auth endpoints.
func AuthPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/register", ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/logout", ctrl.Logout)
}

// AuthPrivateRoutes mounts the endpoints that need a valid token.
func AuthPrivateRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	api.Get("/me", ctrl.Me)
}
