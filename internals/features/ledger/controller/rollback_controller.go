// file: internals/features/ledger/controller/rollback_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "egitimportal_backend/internals/features/ledger/dto"
	model "egitimportal_backend/internals/features/ledger/model"
	service "egitimportal_backend/internals/features/ledger/service"
	notificationModel "egitimportal_backend/internals/features/notifications/model"
	notificationService "egitimportal_backend/internals/features/notifications/service"
	userDto "egitimportal_backend/internals/features/users/user/dto"
	helper "egitimportal_backend/internals/helpers"
	helperAuth "egitimportal_backend/internals/helpers/auth"
)

type RollbackController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewRollbackController(db *gorm.DB, v *validator.Validate) *RollbackController {
	if v == nil {
		v = validator.New()
	}
	return &RollbackController{DB: db, Validator: v}
}

/* ============================================
   ROLLBACK (admin only)
   POST /api/a/ledger/rollback
============================================ */

func (ctl *RollbackController) Rollback(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c, "işlem geri alma"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	adminID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var p dto.RollbackDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}
	p.Normalize()

	res, err := service.Rollback(ctl.DB, service.RollbackInput{
		OrgID:           orgID,
		TransactionID:   p.TransactionID,
		TransactionType: p.TransactionType,
		AdminID:         adminID,
		Reason:          p.Reason,
	})
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	notificationService.Notify(ctl.DB, orgID, res.Rollback.RollbackStudentID,
		notificationModel.KindRollback, "İşlem geri alındı", p.Reason)

	return helper.JsonCreated(c, "İşlem geri alındı", fiber.Map{
		"rollback": dto.FromRollback(res.Rollback),
		"student":  userDto.FromModel(res.Student),
	})
}

/* ============================================
   ROLLBACK LIST (admin only)
   GET /api/a/ledger/rollbacks
============================================ */

func (ctl *RollbackController) List(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c, "işlem geri alma"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.Model(&model.TransactionRollbackModel{}).
		Where("rollback_org_id = ?", orgID)
	if t := c.Query("type"); t != "" {
		q = q.Where("rollback_transaction_type = ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Kayıt sayısı alınamadı")
	}

	var list []model.TransactionRollbackModel
	if err := q.Order("rollback_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Geri alma kayıtları alınamadı")
	}

	out := make([]dto.RollbackResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, dto.FromRollback(it))
	}
	return helper.JsonList(c, "ok", out,
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}
