// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "egitimportal_backend/internals/features/users/auth/controller"
	middlewares "egitimportal_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db, nil)

	api := app.Group("/api/auth")
	api.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	api.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	api.Post("/logout", ctl.Logout)
}
