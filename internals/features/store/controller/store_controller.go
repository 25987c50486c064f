// file: internals/features/store/controller/store_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "egitimportal_backend/internals/features/store/dto"
	model "egitimportal_backend/internals/features/store/model"
	service "egitimportal_backend/internals/features/store/service"
	helper "egitimportal_backend/internals/helpers"
	helperAuth "egitimportal_backend/internals/helpers/auth"
	helperOSS "egitimportal_backend/internals/helpers/oss"
)

type StoreController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	OSS       *helperOSS.Client
}

func NewStoreController(db *gorm.DB, v *validator.Validate, oss *helperOSS.Client) *StoreController {
	if v == nil {
		v = validator.New()
	}
	return &StoreController{DB: db, Validator: v, OSS: oss}
}

/* ============================================
   ITEMS (admin)
============================================ */

// POST /api/a/store/items
func (ctl *StoreController) CreateItem(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c, "mağaza yönetimi"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var p dto.ItemCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}
	p.Normalize()

	ent := p.ToModel(orgID)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Ürün oluşturulamadı")
	}
	return helper.JsonCreated(c, "Ürün oluşturuldu", dto.FromItem(ent))
}

// PATCH /api/a/store/items/:id
func (ctl *StoreController) PatchItem(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c, "mağaza yönetimi"); err != nil {
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

	ent, err := ctl.findItem(orgID, id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var p dto.ItemUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}
	p.ApplyUpdates(ent)

	if err := ctl.DB.Save(ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Ürün güncellenemedi")
	}
	return helper.JsonUpdated(c, "Ürün güncellendi", dto.FromItem(*ent))
}

// PUT /api/a/store/items/:id/image (multipart "image", replace best-effort)
func (ctl *StoreController) UploadItemImage(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c, "mağaza yönetimi"); err != nil {
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

	ent, err := ctl.findItem(orgID, id)
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

	url, err := ctl.OSS.UploadBytes("store-items", ".webp", "image/webp", data)
	if err != nil {
		log.Printf("[STORE] görsel yüklenemedi id=%s err=%v", id, err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Görsel yüklenemedi")
	}

	if ent.StoreItemImageURL != nil && *ent.StoreItemImageURL != "" {
		ctl.OSS.DeleteByURL(*ent.StoreItemImageURL)
	}

	ent.StoreItemImageURL = &url
	if err := ctl.DB.Save(ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Ürün güncellenemedi")
	}
	return helper.JsonUpdated(c, "Görsel güncellendi", dto.FromItem(*ent))
}

// GET /api/u/store/items — öğrenciler sadece satıştakileri görür
func (ctl *StoreController) ListItems(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.Model(&model.StoreItemModel{}).
		Where("store_item_org_id = ? AND store_item_is_active = ?", orgID, true)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Kayıt sayısı alınamadı")
	}

	var list []model.StoreItemModel
	if err := q.Order("store_item_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Ürünler alınamadı")
	}
	return helper.JsonList(c, "ok", dto.FromItems(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

/* ============================================
   REDEEM / ORDERS
============================================ */

// POST /api/u/store/items/:id/redeem — öğrenci kendi puanıyla alır
func (ctl *StoreController) Redeem(c *fiber.Ctx) error {
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

	res, err := service.Redeem(ctl.DB, service.RedeemInput{
		OrgID:       orgID,
		ItemID:      id,
		StudentID:   userID,
		StudentRole: helperAuth.GetUserRole(c),
	})
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Sipariş alındı", fiber.Map{
		"order":       dto.FromOrder(res.Order),
		"new_balance": res.NewBalance,
	})
}

// GET /api/u/store/orders/me
func (ctl *StoreController) MyOrders(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var list []model.StoreOrderModel
	if err := ctl.DB.
		Where("store_order_org_id = ? AND store_order_student_id = ?", orgID, userID).
		Order("store_order_created_at DESC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Siparişler alınamadı")
	}
	return helper.JsonOK(c, "ok", dto.FromOrders(list))
}

// GET /api/a/store/orders (admin)
func (ctl *StoreController) ListOrders(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c, "mağaza yönetimi"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.Model(&model.StoreOrderModel{}).
		Where("store_order_org_id = ?", orgID)
	if st := c.Query("status"); st != "" {
		q = q.Where("store_order_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Kayıt sayısı alınamadı")
	}

	var list []model.StoreOrderModel
	if err := q.Order("store_order_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Siparişler alınamadı")
	}
	return helper.JsonList(c, "ok", dto.FromOrders(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// PATCH /api/a/store/orders/:id/status (admin)
func (ctl *StoreController) SetOrderStatus(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c, "mağaza yönetimi"); err != nil {
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

	var p dto.OrderStatusDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}

	var ent model.StoreOrderModel
	if err := ctl.DB.
		Where("store_order_org_id = ? AND store_order_id = ?", orgID, id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sipariş bulunamadı")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Sipariş alınamadı")
	}

	ent.StoreOrderStatus = p.Status
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Sipariş güncellenemedi")
	}
	return helper.JsonUpdated(c, "Sipariş durumu güncellendi", dto.FromOrder(ent))
}

func (ctl *StoreController) findItem(orgID, id uuid.UUID) (*model.StoreItemModel, error) {
	var ent model.StoreItemModel
	if err := ctl.DB.
		Where("store_item_org_id = ? AND store_item_id = ?", orgID, id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("Ürün bulunamadı")
		}
		return nil, helper.ErrInternal("Ürün alınamadı", err)
	}
	return &ent, nil
}
