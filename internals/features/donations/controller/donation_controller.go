// file: internals/features/donations/controller/donation_controller.go
package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "egitimportal_backend/internals/features/donations/dto"
	model "egitimportal_backend/internals/features/donations/model"
	service "egitimportal_backend/internals/features/donations/service"
	helper "egitimportal_backend/internals/helpers"
	helperAuth "egitimportal_backend/internals/helpers/auth"
)

type DonationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDonationController(db *gorm.DB, v *validator.Validate) *DonationController {
	if v == nil {
		v = validator.New()
	}
	return &DonationController{DB: db, Validator: v}
}

/* ============================================
   CREATE + SNAP TOKEN
   POST /api/u/donations
============================================ */

func (ctl *DonationController) Create(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var p dto.DonationCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}
	p.Normalize()

	orderID := fmt.Sprintf("DON-%d-%s", time.Now().Unix(), uuid.NewString()[:8])
	ent := p.ToModel(orgID, orderID)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Bağış kaydı oluşturulamadı")
	}

	token, redirectURL, err := service.GenerateSnapToken(ent)
	if err != nil {
		log.Printf("[DONATION] snap token alınamadı order_id=%s err=%v", orderID, err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Ödeme sağlayıcıya ulaşılamadı")
	}

	return helper.JsonCreated(c, "Bağış kaydı oluşturuldu", fiber.Map{
		"donation":     dto.FromModel(ent),
		"snap_token":   token,
		"redirect_url": redirectURL,
	})
}

/* ============================================
   WEBHOOK (public; auth middleware bu yolu atlar)
   POST /api/donations/notification
============================================ */

func (ctl *DonationController) Notification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Webhook gövdesi çözümlenemedi")
	}
	if err := service.HandleDonationStatusWebhook(ctl.DB, body); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", nil)
}

/* ============================================
   LIST (admin)
   GET /api/a/donations
============================================ */

func (ctl *DonationController) List(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c, "bağış yönetimi"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.Model(&model.DonationModel{}).Where("donation_org_id = ?", orgID)
	if st := c.Query("status"); st != "" {
		q = q.Where("donation_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Kayıt sayısı alınamadı")
	}

	var list []model.DonationModel
	if err := q.Order("donation_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Bağışlar alınamadı")
	}
	return helper.JsonList(c, "ok", dto.FromModels(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}
