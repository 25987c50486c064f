// file: internals/features/attendance/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"egitimportal_backend/internals/constants"
	attendanceCtl "egitimportal_backend/internals/features/attendance/controller"
	authMiddleware "egitimportal_backend/internals/middlewares/auth"
)

func AttendanceAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := attendanceCtl.NewAttendanceController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRoles(
			constants.RoleErrorStaff("yoklama"),
			constants.StaffRoles...,
		),
	)

	base.Post("/attendance/sessions", ctl.CreateSession)
	base.Get("/attendance/sessions", ctl.ListSessions)
	base.Post("/attendance/sessions/:session_id/records", ctl.Mark)
	base.Get("/attendance/sessions/:session_id/records", ctl.SessionRecords)
}

func AttendanceUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := attendanceCtl.NewAttendanceController(db, nil)
	api.Get("/attendance/me", ctl.MyRecords)
}
