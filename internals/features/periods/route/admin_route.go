// file: internals/features/periods/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"egitimportal_backend/internals/constants"
	periodCtl "egitimportal_backend/internals/features/periods/controller"
	authMiddleware "egitimportal_backend/internals/middlewares/auth"
)

func PeriodAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := periodCtl.NewPeriodController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("dönem yönetimi"),
			constants.AdminOnly...,
		),
	)

	base.Post("/periods", ctl.Create)
	base.Get("/periods", ctl.List)
	base.Patch("/periods/:id", ctl.Patch)
	base.Patch("/periods/:id/set-active", ctl.SetActive)
	base.Patch("/periods/:id/archive", ctl.Archive)
}

// PeriodUserRoutes: aktif dönem herkes tarafından okunabilir
func PeriodUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := periodCtl.NewPeriodController(db, nil)
	api.Get("/periods/active", ctl.Active)
	api.Get("/periods", ctl.List)
}
