package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"egitimportal_backend/internals/middlewares/logger"
)

// SetupMiddlewares: tüm global middleware'ler tek yerden
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
