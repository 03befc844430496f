package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMW "fitnezz_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware stack, order matters:
// recovery first so panics in everything below are caught.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMW.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
