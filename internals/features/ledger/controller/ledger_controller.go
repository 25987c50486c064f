// file: internals/features/ledger/controller/ledger_controller.go
package controller

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "egitimportal_backend/internals/features/ledger/dto"
	model "egitimportal_backend/internals/features/ledger/model"
	service "egitimportal_backend/internals/features/ledger/service"
	notificationModel "egitimportal_backend/internals/features/notifications/model"
	notificationService "egitimportal_backend/internals/features/notifications/service"
	periodService "egitimportal_backend/internals/features/periods/service"
	helper "egitimportal_backend/internals/helpers"
	helperAuth "egitimportal_backend/internals/helpers/auth"
)

/* ============================================
   Controller
============================================ */

type LedgerController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLedgerController(db *gorm.DB, v *validator.Validate) *LedgerController {
	if v == nil {
		v = validator.New()
	}
	return &LedgerController{DB: db, Validator: v}
}

/* ============================================
   AWARD / DEDUCT POINTS (staff)
   POST /api/a/ledger/points
============================================ */

func (ctl *LedgerController) AwardPoints(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c, "puan işlemleri"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	actorID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var p dto.AwardPointsDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}
	p.Normalize()

	res, err := service.AwardPoints(ctl.DB, service.AwardPointsInput{
		OrgID:     orgID,
		StudentID: p.StudentID,
		ActorID:   actorID,
		ActorRole: helperAuth.GetUserRole(c),
		Points:    p.Points,
		Reason:    p.Reason,
	})
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	title := "Puan kazandınız"
	if p.Points < 0 {
		title = "Puan düşüldü"
	}
	notificationService.Notify(ctl.DB, orgID, p.StudentID, notificationModel.KindPoints,
		title, fmt.Sprintf("%+d puan: %s", p.Points, p.Reason))

	return helper.JsonCreated(c, "Puan işlemi kaydedildi", fiber.Map{
		"transaction": dto.FromPointsTx(res.Transaction),
		"new_balance": res.NewBalance,
	})
}

/* ============================================
   GRANT EXPERIENCE (staff)
   POST /api/a/ledger/experience
============================================ */

func (ctl *LedgerController) GrantExperience(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c, "deneyim işlemleri"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	actorID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var p dto.GrantExperienceDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}
	p.Normalize()

	res, err := service.GrantExperience(ctl.DB, service.GrantExperienceInput{
		OrgID:     orgID,
		StudentID: p.StudentID,
		ActorID:   actorID,
		ActorRole: helperAuth.GetUserRole(c),
		Amount:    p.Amount,
		Reason:    p.Reason,
	})
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	notificationService.Notify(ctl.DB, orgID, p.StudentID, notificationModel.KindPoints,
		"Deneyim puanı", fmt.Sprintf("%+d deneyim: %s", p.Amount, p.Reason))

	return helper.JsonCreated(c, "Deneyim işlemi kaydedildi", fiber.Map{
		"transaction": dto.FromExperienceTx(res.Transaction),
		"new_balance": res.NewBalance,
	})
}

/* ============================================
   HISTORY & BALANCE
============================================ */

// GET /api/a/ledger/students/:student_id/points (staff)
func (ctl *LedgerController) PointsHistory(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c, "puan geçmişi"); err != nil {
		return helper.JsonAppError(c, err)
	}
	studentID, err := helperAuth.ParseUUIDParam(c, "student_id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return ctl.pointsHistory(c, studentID)
}

// GET /api/u/ledger/points/me — öğrencinin kendi geçmişi
func (ctl *LedgerController) MyPointsHistory(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return ctl.pointsHistory(c, userID)
}

func (ctl *LedgerController) pointsHistory(c *fiber.Ctx, studentID uuid.UUID) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.Model(&model.PointsTransactionModel{}).
		Where("points_tx_org_id = ? AND points_tx_student_id = ?", orgID, studentID)
	if pid := c.Query("period_id"); pid != "" {
		periodID, perr := uuid.Parse(pid)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "period_id geçersiz")
		}
		q = q.Where("points_tx_period_id = ?", periodID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Kayıt sayısı alınamadı")
	}

	var list []model.PointsTransactionModel
	if err := q.Order("points_tx_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Puan geçmişi alınamadı")
	}
	return helper.JsonList(c, "ok", dto.FromPointsTxs(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// GET /api/a/ledger/students/:student_id/experience (staff)
func (ctl *LedgerController) ExperienceHistory(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c, "deneyim geçmişi"); err != nil {
		return helper.JsonAppError(c, err)
	}
	studentID, err := helperAuth.ParseUUIDParam(c, "student_id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return ctl.experienceHistory(c, studentID)
}

// GET /api/u/ledger/experience/me
func (ctl *LedgerController) MyExperienceHistory(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return ctl.experienceHistory(c, userID)
}

func (ctl *LedgerController) experienceHistory(c *fiber.Ctx, studentID uuid.UUID) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.Model(&model.ExperienceTransactionModel{}).
		Where("experience_tx_org_id = ? AND experience_tx_student_id = ?", orgID, studentID)
	if pid := c.Query("period_id"); pid != "" {
		periodID, perr := uuid.Parse(pid)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "period_id geçersiz")
		}
		q = q.Where("experience_tx_period_id = ?", periodID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Kayıt sayısı alınamadı")
	}

	var list []model.ExperienceTransactionModel
	if err := q.Order("experience_tx_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Deneyim geçmişi alınamadı")
	}
	return helper.JsonList(c, "ok", dto.FromExperienceTxs(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// GET /api/a/ledger/students/:student_id/balance (staff)
func (ctl *LedgerController) Balance(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c, "bakiye görüntüleme"); err != nil {
		return helper.JsonAppError(c, err)
	}
	studentID, err := helperAuth.ParseUUIDParam(c, "student_id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return ctl.balance(c, studentID)
}

// GET /api/u/ledger/balance/me
func (ctl *LedgerController) MyBalance(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return ctl.balance(c, userID)
}

// balance: aktif dönem defter projeksiyonu
func (ctl *LedgerController) balance(c *fiber.Ctx, studentID uuid.UUID) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	period, err := periodService.RequireActivePeriod(ctl.DB, orgID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	points, err := service.CalculatePoints(ctl.DB, studentID, period.PeriodID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	experience, err := service.CalculateExperience(ctl.DB, studentID, period.PeriodID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"student_id": studentID,
		"period_id":  period.PeriodID,
		"points":     points,
		"experience": experience,
	})
}
