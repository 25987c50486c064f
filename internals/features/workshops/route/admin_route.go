// file: internals/features/workshops/route/admin_route.go
package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"egitimportal_backend/internals/constants"
	workshopCtl "egitimportal_backend/internals/features/workshops/controller"
	helperOSS "egitimportal_backend/internals/helpers/oss"
	authMiddleware "egitimportal_backend/internals/middlewares/auth"
)

func newController(db *gorm.DB) *workshopCtl.WorkshopController {
	oss, err := helperOSS.NewClientFromEnv()
	if err != nil {
		log.Printf("[WORKSHOP] OSS devre dışı: %v", err)
		oss = nil
	}
	return workshopCtl.NewWorkshopController(db, nil, oss)
}

func WorkshopAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := newController(db)

	base := api.Group("",
		authMiddleware.OnlyRoles(
			constants.RoleErrorStaff("atölye yönetimi"),
			constants.StaffRoles...,
		),
	)

	base.Post("/workshops", ctl.Create)
	base.Patch("/workshops/:id", ctl.Patch)
	base.Put("/workshops/:id/image", ctl.UploadImage)
}

func WorkshopUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := newController(db)
	api.Get("/workshops", ctl.List)
	api.Get("/workshops/:id", ctl.Detail)
	api.Post("/workshops/:id/register", ctl.Register)
	api.Delete("/workshops/:id/register", ctl.Unregister)
}
