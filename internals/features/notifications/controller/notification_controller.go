// file: internals/features/notifications/controller/notification_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "egitimportal_backend/internals/features/notifications/dto"
	model "egitimportal_backend/internals/features/notifications/model"
	service "egitimportal_backend/internals/features/notifications/service"
	userModel "egitimportal_backend/internals/features/users/user/model"
	helper "egitimportal_backend/internals/helpers"
	helperAuth "egitimportal_backend/internals/helpers/auth"

	"github.com/google/uuid"
)

type NotificationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewNotificationController(db *gorm.DB, v *validator.Validate) *NotificationController {
	if v == nil {
		v = validator.New()
	}
	return &NotificationController{DB: db, Validator: v}
}

/* ============================================
   BROADCAST (admin)
   POST /api/a/notifications/broadcast
============================================ */

func (ctl *NotificationController) Broadcast(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c, "bildirim yönetimi"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var p dto.BroadcastDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}
	p.Normalize()

	recipients := p.Recipients
	if len(recipients) == 0 {
		q := ctl.DB.Model(&userModel.UserModel{}).
			Where("user_org_id = ? AND user_is_active = ?", orgID, true)
		if p.Role != nil {
			q = q.Where("user_role = ?", *p.Role)
		}
		var ids []uuid.UUID
		if err := q.Pluck("user_id", &ids).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Alıcılar belirlenemedi")
		}
		recipients = ids
	}
	if len(recipients) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gönderilecek alıcı bulunamadı")
	}

	sent := service.Broadcast(ctl.DB, orgID, recipients, model.KindGeneral, p.Title, p.Body)
	return helper.JsonCreated(c, "Bildirim gönderildi", fiber.Map{"sent": sent})
}

/* ============================================
   LIST / MARK READ (self-service)
============================================ */

// GET /api/u/notifications/me
func (ctl *NotificationController) MyNotifications(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.Model(&model.NotificationModel{}).
		Where("notification_org_id = ? AND notification_recipient_id = ?", orgID, userID)
	if c.Query("unread") == "true" {
		q = q.Where("notification_read_at IS NULL")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Kayıt sayısı alınamadı")
	}

	var list []model.NotificationModel
	if err := q.Order("notification_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Bildirimler alınamadı")
	}
	return helper.JsonList(c, "ok", dto.FromModels(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// PATCH /api/u/notifications/:id/read
func (ctl *NotificationController) MarkRead(c *fiber.Ctx) error {
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

	res := ctl.DB.Model(&model.NotificationModel{}).
		Where("notification_org_id = ? AND notification_id = ? AND notification_recipient_id = ?", orgID, id, userID).
		Where("notification_read_at IS NULL").
		Update("notification_read_at", time.Now())
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Bildirim güncellenemedi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Okunmamış bildirim bulunamadı")
	}
	return helper.JsonUpdated(c, "Bildirim okundu", nil)
}

// PATCH /api/u/notifications/read-all
func (ctl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	res := ctl.DB.Model(&model.NotificationModel{}).
		Where("notification_org_id = ? AND notification_recipient_id = ?", orgID, userID).
		Where("notification_read_at IS NULL").
		Update("notification_read_at", time.Now())
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Bildirimler güncellenemedi")
	}
	return helper.JsonUpdated(c, "Tüm bildirimler okundu", fiber.Map{"updated": res.RowsAffected})
}
