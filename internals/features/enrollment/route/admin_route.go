// file: internals/features/enrollment/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"egitimportal_backend/internals/constants"
	enrollmentCtl "egitimportal_backend/internals/features/enrollment/controller"
	authMiddleware "egitimportal_backend/internals/middlewares/auth"
)

func EnrollmentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := enrollmentCtl.NewEnrollmentController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("kayıt entegrasyonu"),
			constants.AdminOnly...,
		),
	)
	base.Post("/enrollment/jobs", ctl.Enqueue)
	base.Get("/enrollment/jobs", ctl.List)
	base.Post("/enrollment/jobs/:id/retry", ctl.Retry)
}
