// file: internals/features/reports/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"egitimportal_backend/internals/constants"
	reportCtl "egitimportal_backend/internals/features/reports/controller"
	authMiddleware "egitimportal_backend/internals/middlewares/auth"
)

func ReportAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := reportCtl.NewReportController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRoles(
			constants.RoleErrorStaff("haftalık rapor"),
			constants.StaffRoles...,
		),
	)

	base.Put("/reports/weekly", ctl.Submit)
	base.Get("/reports/weekly", ctl.List)
}
