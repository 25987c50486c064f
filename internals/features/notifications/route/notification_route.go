// file: internals/features/notifications/route/notification_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"egitimportal_backend/internals/constants"
	notificationCtl "egitimportal_backend/internals/features/notifications/controller"
	authMiddleware "egitimportal_backend/internals/middlewares/auth"
)

func NotificationAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := notificationCtl.NewNotificationController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("bildirim yönetimi"),
			constants.AdminOnly...,
		),
	)
	base.Post("/notifications/broadcast", ctl.Broadcast)
}

func NotificationUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := notificationCtl.NewNotificationController(db, nil)
	api.Get("/notifications/me", ctl.MyNotifications)
	api.Patch("/notifications/read-all", ctl.MarkAllRead)
	api.Patch("/notifications/:id/read", ctl.MarkRead)
}
