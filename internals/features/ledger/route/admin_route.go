// file: internals/features/ledger/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"egitimportal_backend/internals/constants"
	ledgerCtl "egitimportal_backend/internals/features/ledger/controller"
	authMiddleware "egitimportal_backend/internals/middlewares/auth"
)

// LedgerAdminRoutes: puan/deneyim yazma yolları personel, geri alma sadece admin.
func LedgerAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := ledgerCtl.NewLedgerController(db, nil)
	rbCtl := ledgerCtl.NewRollbackController(db, nil)

	staff := api.Group("",
		authMiddleware.OnlyRoles(
			constants.RoleErrorStaff("puan işlemleri"),
			constants.StaffRoles...,
		),
	)
	staff.Post("/ledger/points", ctl.AwardPoints)
	staff.Post("/ledger/experience", ctl.GrantExperience)
	staff.Get("/ledger/students/:student_id/points", ctl.PointsHistory)
	staff.Get("/ledger/students/:student_id/experience", ctl.ExperienceHistory)
	staff.Get("/ledger/students/:student_id/balance", ctl.Balance)

	admin := api.Group("",
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("işlem geri alma"),
			constants.AdminOnly...,
		),
	)
	admin.Post("/ledger/rollback", rbCtl.Rollback)
	admin.Get("/ledger/rollbacks", rbCtl.List)
}

// LedgerUserRoutes: öğrencinin kendi defterini okuması
func LedgerUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := ledgerCtl.NewLedgerController(db, nil)
	api.Get("/ledger/points/me", ctl.MyPointsHistory)
	api.Get("/ledger/experience/me", ctl.MyExperienceHistory)
	api.Get("/ledger/balance/me", ctl.MyBalance)
}
