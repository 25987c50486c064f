// file: internals/features/meetings/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"egitimportal_backend/internals/constants"
	meetingCtl "egitimportal_backend/internals/features/meetings/controller"
	authMiddleware "egitimportal_backend/internals/middlewares/auth"
)

// MeetingAdminRoutes: kurul üyeleri + admin
func MeetingAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := meetingCtl.NewMeetingController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRoles(
			constants.RoleErrorBoard("toplantı yönetimi"),
			constants.BoardAndAdmin...,
		),
	)

	base.Post("/meetings", ctl.Create)
	base.Get("/meetings", ctl.List)
	base.Get("/meetings/:id", ctl.Detail)
	base.Post("/meetings/:id/decisions", ctl.AddDecision)
	base.Patch("/meetings/decisions/:decision_id/status", ctl.SetDecisionStatus)
	base.Post("/meetings/:id/attendees", ctl.SetAttendee)
}
