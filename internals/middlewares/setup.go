package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "padelku_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware stack (order matters:
// recovery first so the logger still sees panicking requests).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
