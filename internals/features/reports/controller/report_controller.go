// file: internals/features/reports/controller/report_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	periodService "egitimportal_backend/internals/features/periods/service"
	dto "egitimportal_backend/internals/features/reports/dto"
	model "egitimportal_backend/internals/features/reports/model"
	helper "egitimportal_backend/internals/helpers"
	helperAuth "egitimportal_backend/internals/helpers/auth"
)

type ReportController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewReportController(db *gorm.DB, v *validator.Validate) *ReportController {
	if v == nil {
		v = validator.New()
	}
	return &ReportController{DB: db, Validator: v}
}

/* ============================================
   SUBMIT (staff, upsert per tutor+week)
   PUT /api/a/reports/weekly
============================================ */

func (ctl *ReportController) Submit(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c, "haftalık rapor"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	tutorID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var p dto.ReportSubmitDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}
	p.Normalize()

	period, err := periodService.RequireActivePeriod(ctl.DB, orgID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	year, week := p.ResolveWeek(time.Now())

	// Aynı tutor + hafta tek satır: varsa güncelle, yoksa oluştur
	var ent model.WeeklyReportModel
	err = ctl.DB.
		Where("weekly_report_tutor_id = ? AND weekly_report_year = ? AND weekly_report_week = ?",
			tutorID, year, week).
		First(&ent).Error
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		ent = model.WeeklyReportModel{
			WeeklyReportOrgID:   orgID,
			WeeklyReportTutorID: tutorID,
			WeeklyReportYear:    year,
			WeeklyReportWeek:    week,
		}
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Rapor kontrol edilemedi")
	}

	ent.WeeklyReportPeriodID = period.PeriodID
	ent.WeeklyReportContent = p.Content
	ent.WeeklyReportMetrics = p.Metrics
	ent.WeeklyReportSubmittedAt = time.Now()

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Rapor kaydedilemedi")
	}
	return helper.JsonUpdated(c, "Haftalık rapor kaydedildi", dto.FromModel(ent))
}

/* ============================================
   LIST
============================================ */

// GET /api/a/reports/weekly (admin: tümü; tutor: kendi raporları)
func (ctl *ReportController) List(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c, "haftalık rapor"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.Model(&model.WeeklyReportModel{}).
		Where("weekly_report_org_id = ?", orgID)

	// Admin dışındaki kadro sadece kendi raporlarını görür
	if err := helperAuth.EnsureAdmin(c, "haftalık rapor"); err != nil {
		q = q.Where("weekly_report_tutor_id = ?", userID)
	} else if tid := c.Query("tutor_id"); tid != "" {
		q = q.Where("weekly_report_tutor_id = ?", tid)
	}
	if pid := c.Query("period_id"); pid != "" {
		q = q.Where("weekly_report_period_id = ?", pid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Kayıt sayısı alınamadı")
	}

	var list []model.WeeklyReportModel
	if err := q.Order("weekly_report_year DESC, weekly_report_week DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Raporlar alınamadı")
	}
	return helper.JsonList(c, "ok", dto.FromModels(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}
