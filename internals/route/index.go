// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "egitimportal_backend/internals/features/attendance/route"
	donationRoute "egitimportal_backend/internals/features/donations/route"
	enrollmentRoute "egitimportal_backend/internals/features/enrollment/route"
	ledgerRoute "egitimportal_backend/internals/features/ledger/route"
	meetingRoute "egitimportal_backend/internals/features/meetings/route"
	notificationRoute "egitimportal_backend/internals/features/notifications/route"
	periodRoute "egitimportal_backend/internals/features/periods/route"
	reportRoute "egitimportal_backend/internals/features/reports/route"
	storeRoute "egitimportal_backend/internals/features/store/route"
	syllabusRoute "egitimportal_backend/internals/features/syllabus/route"
	workshopRoute "egitimportal_backend/internals/features/workshops/route"

	authRoute "egitimportal_backend/internals/features/users/auth/route"
	userRoute "egitimportal_backend/internals/features/users/user/route"

	authMiddleware "egitimportal_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	// Oturum gerektirmeyen uçlar: auth + ödeme sağlayıcı webhook'u
	log.Println("[ROUTE] public grupları kuruluyor...")
	authRoute.AuthRoutes(app, db)

	public := app.Group("/api")
	donationRoute.DonationPublicRoutes(public, db)

	// ===================== USER (/api/u) =====================
	// Oturumlu her rol: self-service uçlar
	log.Println("[ROUTE] /api/u grubu kuruluyor...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	periodRoute.PeriodUserRoutes(user, db)
	ledgerRoute.LedgerUserRoutes(user, db)
	attendanceRoute.AttendanceUserRoutes(user, db)
	workshopRoute.WorkshopUserRoutes(user, db)
	syllabusRoute.SyllabusUserRoutes(user, db)
	storeRoute.StoreUserRoutes(user, db)
	donationRoute.DonationUserRoutes(user, db)
	notificationRoute.NotificationUserRoutes(user, db)

	// ===================== ADMIN / STAFF (/api/a) =====================
	// Rol kontrolü her feature'ın kendi route dosyasında (OnlyRoles)
	log.Println("[ROUTE] /api/a grubu kuruluyor...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db))

	periodRoute.PeriodAdminRoutes(admin, db)
	ledgerRoute.LedgerAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)
	meetingRoute.MeetingAdminRoutes(admin, db)
	workshopRoute.WorkshopAdminRoutes(admin, db)
	syllabusRoute.SyllabusAdminRoutes(admin, db)
	reportRoute.ReportAdminRoutes(admin, db)
	storeRoute.StoreAdminRoutes(admin, db)
	donationRoute.DonationAdminRoutes(admin, db)
	notificationRoute.NotificationAdminRoutes(admin, db)
	enrollmentRoute.EnrollmentAdminRoutes(admin, db)

	log.Println("[ROUTE] tüm rotalar hazır")
}
