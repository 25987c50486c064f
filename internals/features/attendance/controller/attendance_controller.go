// file: internals/features/attendance/controller/attendance_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "egitimportal_backend/internals/features/attendance/dto"
	model "egitimportal_backend/internals/features/attendance/model"
	periodService "egitimportal_backend/internals/features/periods/service"
	userModel "egitimportal_backend/internals/features/users/user/model"
	helper "egitimportal_backend/internals/helpers"
	helperAuth "egitimportal_backend/internals/helpers/auth"
)

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttendanceController(db *gorm.DB, v *validator.Validate) *AttendanceController {
	if v == nil {
		v = validator.New()
	}
	return &AttendanceController{DB: db, Validator: v}
}

/* ============================================
   SESSIONS (staff)
============================================ */

// POST /api/a/attendance/sessions
func (ctl *AttendanceController) CreateSession(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c, "yoklama"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	openedBy, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var p dto.SessionCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}
	p.Normalize()

	// Oturum aktif döneme bağlanır
	period, err := periodService.RequireActivePeriod(ctl.DB, orgID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	ent := p.ToModel(orgID, period.PeriodID, openedBy)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Yoklama oturumu oluşturulamadı")
	}
	return helper.JsonCreated(c, "Yoklama oturumu açıldı", dto.FromSession(ent))
}

// GET /api/a/attendance/sessions
func (ctl *AttendanceController) ListSessions(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c, "yoklama"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.Model(&model.AttendanceSessionModel{}).
		Where("attendance_session_org_id = ?", orgID)
	if pid := c.Query("period_id"); pid != "" {
		q = q.Where("attendance_session_period_id = ?", pid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Kayıt sayısı alınamadı")
	}

	var list []model.AttendanceSessionModel
	if err := q.Order("attendance_session_date DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Oturumlar alınamadı")
	}
	return helper.JsonList(c, "ok", dto.FromSessions(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

/* ============================================
   MARK (staff)
   POST /api/a/attendance/sessions/:session_id/records
============================================ */

func (ctl *AttendanceController) Mark(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c, "yoklama"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	markedBy, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	sessionID, err := helperAuth.ParseUUIDParam(c, "session_id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var p dto.MarkAttendanceDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}

	var session model.AttendanceSessionModel
	if err := ctl.DB.
		Where("attendance_session_org_id = ? AND attendance_session_id = ?", orgID, sessionID).
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Yoklama oturumu bulunamadı")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Oturum alınamadı")
	}

	var student userModel.UserModel
	if err := ctl.DB.
		Where("user_org_id = ? AND user_id = ?", orgID, p.StudentID).
		First(&student).Error; err != nil || !student.IsStudent() {
		return helper.JsonError(c, fiber.StatusNotFound, "Öğrenci bulunamadı")
	}

	// Aynı oturumda ikinci işaretleme → Conflict
	var cnt int64
	if err := ctl.DB.Model(&model.AttendanceRecordModel{}).
		Where("attendance_record_session_id = ? AND attendance_record_student_id = ?", sessionID, p.StudentID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Yoklama kontrol edilemedi")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Bu öğrenci için yoklama zaten işaretlendi")
	}

	ent := model.AttendanceRecordModel{
		AttendanceRecordOrgID:     orgID,
		AttendanceRecordSessionID: sessionID,
		AttendanceRecordStudentID: p.StudentID,
		AttendanceRecordStatus:    p.Status,
		AttendanceRecordMarkedBy:  markedBy,
		AttendanceRecordNote:      p.Note,
	}
	if err := ctl.DB.Create(&ent).Error; err != nil {
		// unique index yarış durumunda son savunma
		return helper.JsonError(c, fiber.StatusConflict, "Bu öğrenci için yoklama zaten işaretlendi")
	}
	return helper.JsonCreated(c, "Yoklama işaretlendi", dto.FromRecord(ent))
}

/* ============================================
   RECORDS
============================================ */

// GET /api/a/attendance/sessions/:session_id/records (staff)
func (ctl *AttendanceController) SessionRecords(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c, "yoklama"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	sessionID, err := helperAuth.ParseUUIDParam(c, "session_id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var list []model.AttendanceRecordModel
	if err := ctl.DB.
		Where("attendance_record_org_id = ? AND attendance_record_session_id = ?", orgID, sessionID).
		Order("attendance_record_created_at ASC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Yoklama kayıtları alınamadı")
	}
	return helper.JsonOK(c, "ok", dto.FromRecords(list))
}

// GET /api/u/attendance/me — öğrencinin kendi yoklama geçmişi
func (ctl *AttendanceController) MyRecords(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.Model(&model.AttendanceRecordModel{}).
		Where("attendance_record_org_id = ? AND attendance_record_student_id = ?", orgID, userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Kayıt sayısı alınamadı")
	}

	var list []model.AttendanceRecordModel
	if err := q.Order("attendance_record_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Yoklama kayıtları alınamadı")
	}
	return helper.JsonList(c, "ok", dto.FromRecords(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}
