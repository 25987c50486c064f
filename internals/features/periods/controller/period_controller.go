// file: internals/features/periods/controller/period_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "egitimportal_backend/internals/features/periods/dto"
	model "egitimportal_backend/internals/features/periods/model"
	service "egitimportal_backend/internals/features/periods/service"
	helper "egitimportal_backend/internals/helpers"
	helperAuth "egitimportal_backend/internals/helpers/auth"
)

/* ============================================
   Controller
============================================ */

type PeriodController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPeriodController(db *gorm.DB, v *validator.Validate) *PeriodController {
	if v == nil {
		v = validator.New()
	}
	return &PeriodController{DB: db, Validator: v}
}

/* ============================================
   CREATE (admin only)
   POST /api/a/periods
============================================ */

func (ctl *PeriodController) Create(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c, "dönem yönetimi"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var p dto.PeriodCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}
	p.Normalize()

	if p.PeriodEndDate != nil && p.PeriodEndDate.Before(p.PeriodStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Bitiş tarihi başlangıçtan önce olamaz")
	}

	// İsim tekilliği (kurum bazında)
	var cnt int64
	if err := ctl.DB.Model(&model.PeriodModel{}).
		Where("period_org_id = ? AND period_name = ?", orgID, p.PeriodName).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Dönem adı kontrol edilemedi")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Bu dönem adı zaten kullanılıyor")
	}

	ent := p.ToModel(orgID)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Dönem oluşturulamadı")
	}
	return helper.JsonCreated(c, "Dönem oluşturuldu", dto.FromModel(ent))
}

/* ============================================
   LIST / DETAIL / ACTIVE
============================================ */

func (ctl *PeriodController) List(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.Model(&model.PeriodModel{}).Where("period_org_id = ?", orgID)
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		q = q.Where("period_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Kayıt sayısı alınamadı")
	}

	var list []model.PeriodModel
	if err := q.Order("period_start_date DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Dönemler alınamadı")
	}
	return helper.JsonList(c, "ok", dto.FromModels(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// GET /api/u/periods/active
func (ctl *PeriodController) Active(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	p, err := service.RequireActivePeriod(ctl.DB, orgID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(*p))
}

/* ============================================
   PATCH (admin only)
============================================ */

func (ctl *PeriodController) Patch(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c, "dönem yönetimi"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var ent model.PeriodModel
	if err := ctl.DB.
		Where("period_org_id = ? AND period_id = ?", orgID, id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Dönem bulunamadı")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Dönem alınamadı")
	}

	var p dto.PeriodUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Dönem güncellenemedi")
	}
	return helper.JsonUpdated(c, "Dönem güncellendi", dto.FromModel(ent))
}

/* ============================================
   SET ACTIVE / ARCHIVE (admin only)
============================================ */

// PATCH /api/a/periods/:id/set-active
func (ctl *PeriodController) SetActive(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c, "dönem yönetimi"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	p, err := service.SetActive(ctl.DB, orgID, id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Dönem aktifleştirildi", dto.FromModel(*p))
}

// PATCH /api/a/periods/:id/archive
func (ctl *PeriodController) Archive(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c, "dönem yönetimi"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	p, err := service.Archive(ctl.DB, orgID, id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Dönem arşivlendi", dto.FromModel(*p))
}
