// file: internals/features/workshops/controller/workshop_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	notificationModel "egitimportal_backend/internals/features/notifications/model"
	notificationService "egitimportal_backend/internals/features/notifications/service"
	periodService "egitimportal_backend/internals/features/periods/service"
	dto "egitimportal_backend/internals/features/workshops/dto"
	model "egitimportal_backend/internals/features/workshops/model"
	service "egitimportal_backend/internals/features/workshops/service"
	helper "egitimportal_backend/internals/helpers"
	helperAuth "egitimportal_backend/internals/helpers/auth"
	helperOSS "egitimportal_backend/internals/helpers/oss"
)

type WorkshopController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	OSS       *helperOSS.Client // nil ise görsel yükleme kapalı
}

func NewWorkshopController(db *gorm.DB, v *validator.Validate, oss *helperOSS.Client) *WorkshopController {
	if v == nil {
		v = validator.New()
	}
	return &WorkshopController{DB: db, Validator: v, OSS: oss}
}

/* ============================================
   CREATE / UPDATE (staff)
============================================ */

// POST /api/a/workshops
func (ctl *WorkshopController) Create(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c, "atölye yönetimi"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var p dto.WorkshopCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}
	p.Normalize()

	period, err := periodService.RequireActivePeriod(ctl.DB, orgID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	ent := p.ToModel(orgID, period.PeriodID)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Atölye oluşturulamadı")
	}
	return helper.JsonCreated(c, "Atölye oluşturuldu", dto.FromModel(ent, 0))
}

// PATCH /api/a/workshops/:id
func (ctl *WorkshopController) Patch(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c, "atölye yönetimi"); err != nil {
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

	ent, err := ctl.findWorkshop(orgID, id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var p dto.WorkshopUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}
	p.ApplyUpdates(ent)

	if err := ctl.DB.Save(ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Atölye güncellenemedi")
	}
	return helper.JsonUpdated(c, "Atölye güncellendi", dto.FromModel(*ent, ctl.registeredCount(id)))
}

/* ============================================
   IMAGE UPLOAD (staff)
   PUT /api/a/workshops/:id/image  (multipart "image")
============================================ */

func (ctl *WorkshopController) UploadImage(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c, "atölye yönetimi"); err != nil {
		return helper.JsonAppError(c, err)
	}
	if ctl.OSS == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Görsel depolama yapılandırılmamış")
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	ent, err := ctl.findWorkshop(orgID, id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Görsel dosyası gerekli (image)")
	}

	data, err := helper.ConvertToWebP(fh, helper.DefaultWebPOptions())
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	url, err := ctl.OSS.UploadBytes("workshops", ".webp", "image/webp", data)
	if err != nil {
		log.Printf("[WORKSHOP] görsel yüklenemedi id=%s err=%v", id, err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Görsel yüklenemedi")
	}

	// Replace: eski obje best-effort silinir
	if ent.WorkshopImageURL != nil && *ent.WorkshopImageURL != "" {
		ctl.OSS.DeleteByURL(*ent.WorkshopImageURL)
	}

	ent.WorkshopImageURL = &url
	if err := ctl.DB.Save(ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Atölye güncellenemedi")
	}
	return helper.JsonUpdated(c, "Görsel güncellendi", dto.FromModel(*ent, ctl.registeredCount(id)))
}

/* ============================================
   LIST / DETAIL
============================================ */

// GET /api/u/workshops
func (ctl *WorkshopController) List(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.Model(&model.WorkshopModel{}).Where("workshop_org_id = ?", orgID)
	if pid := c.Query("period_id"); pid != "" {
		q = q.Where("workshop_period_id = ?", pid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Kayıt sayısı alınamadı")
	}

	var list []model.WorkshopModel
	if err := q.Order("workshop_starts_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Atölyeler alınamadı")
	}

	out := make([]dto.WorkshopResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, dto.FromModel(it, ctl.registeredCount(it.WorkshopID)))
	}
	return helper.JsonList(c, "ok", out,
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// GET /api/u/workshops/:id
func (ctl *WorkshopController) Detail(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	ent, err := ctl.findWorkshop(orgID, id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(*ent, ctl.registeredCount(id)))
}

/* ============================================
   REGISTER / UNREGISTER (student self-service)
============================================ */

// POST /api/u/workshops/:id/register
func (ctl *WorkshopController) Register(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	reg, err := service.Register(ctl.DB, orgID, id, userID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	if ent, ferr := ctl.findWorkshop(orgID, id); ferr == nil {
		notificationService.Notify(ctl.DB, orgID, userID, notificationModel.KindWorkshop,
			"Atölye kaydınız alındı", ent.WorkshopTitle)
	}

	return helper.JsonCreated(c, "Atölye kaydı alındı", reg)
}

// DELETE /api/u/workshops/:id/register
func (ctl *WorkshopController) Unregister(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	if err := service.Unregister(ctl.DB, orgID, id, userID); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonDeleted(c, "Atölye kaydı silindi", nil)
}

/* ============================================
   helpers
============================================ */

func (ctl *WorkshopController) findWorkshop(orgID, id uuid.UUID) (*model.WorkshopModel, error) {
	var ent model.WorkshopModel
	if err := ctl.DB.
		Where("workshop_org_id = ? AND workshop_id = ?", orgID, id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("Atölye bulunamadı")
		}
		return nil, helper.ErrInternal("Atölye alınamadı", err)
	}
	return &ent, nil
}

func (ctl *WorkshopController) registeredCount(workshopID uuid.UUID) int64 {
	var cnt int64
	if err := ctl.DB.Model(&model.WorkshopRegistrationModel{}).
		Where("workshop_registration_workshop_id = ?", workshopID).
		Count(&cnt).Error; err != nil {
		log.Printf("[WORKSHOP] kayıt sayısı alınamadı id=%s err=%v", workshopID, err)
	}
	return cnt
}
