// file: internals/features/donations/route/donation_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"egitimportal_backend/internals/constants"
	donationCtl "egitimportal_backend/internals/features/donations/controller"
	authMiddleware "egitimportal_backend/internals/middlewares/auth"
)

// DonationPublicRoutes: midtrans bildirimi auth gerektirmez
func DonationPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := donationCtl.NewDonationController(db, nil)
	api.Post("/donations/notification", ctl.Notification)
}

func DonationUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := donationCtl.NewDonationController(db, nil)
	api.Post("/donations", ctl.Create)
}

func DonationAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := donationCtl.NewDonationController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("bağış yönetimi"),
			constants.AdminOnly...,
		),
	)
	base.Get("/donations", ctl.List)
}
