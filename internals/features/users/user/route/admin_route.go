// file: internals/features/users/user/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"egitimportal_backend/internals/constants"
	userCtl "egitimportal_backend/internals/features/users/user/controller"
	authMiddleware "egitimportal_backend/internals/middlewares/auth"
)

func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := userCtl.NewUserController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRoles(
			constants.RoleErrorStaff("kullanıcı yönetimi"),
			constants.StaffRoles...,
		),
	)

	base.Get("/users", ctl.List)
	base.Get("/users/:id", ctl.Detail)
	base.Post("/users", ctl.Create)
	base.Patch("/users/:id", ctl.Patch)
	base.Patch("/users/:id/tutor", ctl.AssignTutor)
}
