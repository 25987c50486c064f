// file: internals/features/store/service/store_service.go
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	ledgerService "egitimportal_backend/internals/features/ledger/service"
	"egitimportal_backend/internals/features/store/model"
	helper "egitimportal_backend/internals/helpers"
)

type RedeemInput struct {
	OrgID       uuid.UUID
	ItemID      uuid.UUID
	StudentID   uuid.UUID
	StudentRole string
}

type RedeemResult struct {
	Order      model.StoreOrderModel
	NewBalance int
}

// Redeem: stok düşümü, puan harcaması (ledger üzerinden) ve sipariş satırı
// tek transaction'da. Puan düşümü her zaman ledger servisinden geçer;
// başka hiçbir akış user_points'e dokunmaz.
func Redeem(db *gorm.DB, in RedeemInput) (*RedeemResult, error) {
	var out RedeemResult
	err := db.Transaction(func(tx *gorm.DB) error {
		var item model.StoreItemModel
		q := tx
		if tx.Dialector.Name() != "sqlite" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.
			Where("store_item_org_id = ? AND store_item_id = ?", in.OrgID, in.ItemID).
			First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.ErrNotFound("Ürün bulunamadı")
			}
			return helper.ErrInternal("Ürün alınamadı", err)
		}
		if !item.StoreItemIsActive {
			return helper.ErrValidation("Ürün satışta değil")
		}
		if item.StoreItemStock <= 0 {
			return helper.ErrConflict("Ürün stokta yok")
		}

		// Harcama defter üzerinden: bakiye yetmezse burada reddedilir
		res, err := ledgerService.AwardPoints(tx, ledgerService.AwardPointsInput{
			OrgID:     in.OrgID,
			StudentID: in.StudentID,
			ActorID:   in.StudentID,
			ActorRole: in.StudentRole,
			Points:    -item.StoreItemPrice,
			Reason:    fmt.Sprintf("Mağaza: %s", item.StoreItemName),
		})
		if err != nil {
			return err
		}

		if err := tx.Model(&model.StoreItemModel{}).
			Where("store_item_id = ?", item.StoreItemID).
			Update("store_item_stock", gorm.Expr("store_item_stock - 1")).Error; err != nil {
			return helper.ErrInternal("Stok güncellenemedi", err)
		}

		order := model.StoreOrderModel{
			StoreOrderOrgID:      in.OrgID,
			StoreOrderItemID:     item.StoreItemID,
			StoreOrderStudentID:  in.StudentID,
			StoreOrderPrice:      item.StoreItemPrice,
			StoreOrderStatus:     model.OrderPending,
			StoreOrderPeriodID:   res.Transaction.PointsTxPeriodID,
			StoreOrderPointsTxID: res.Transaction.PointsTxID,
		}
		if err := tx.Create(&order).Error; err != nil {
			return helper.ErrInternal("Sipariş oluşturulamadı", err)
		}

		out = RedeemResult{Order: order, NewBalance: res.NewBalance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
