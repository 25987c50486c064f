// file: internals/features/syllabus/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"egitimportal_backend/internals/constants"
	syllabusCtl "egitimportal_backend/internals/features/syllabus/controller"
	authMiddleware "egitimportal_backend/internals/middlewares/auth"
)

func SyllabusAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := syllabusCtl.NewSyllabusController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRoles(
			constants.RoleErrorStaff("müfredat yönetimi"),
			constants.StaffRoles...,
		),
	)

	base.Post("/syllabus/topics", ctl.CreateTopic)
	base.Delete("/syllabus/topics/:id", ctl.DeleteTopic)
	base.Put("/syllabus/topics/:id/progress", ctl.MarkProgress)
	base.Get("/syllabus/students/:student_id/progress", ctl.StudentProgress)
}

func SyllabusUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := syllabusCtl.NewSyllabusController(db, nil)
	api.Get("/syllabus/topics", ctl.ListTopics)
	api.Get("/syllabus/progress/me", ctl.MyProgress)
}
