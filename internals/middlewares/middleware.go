package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "haskenrayuwa_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain
func SetupMiddlewares(app *fiber.App) {
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(RecoveryMiddleware())
	app.Use(GlobalRateLimiter())
}
