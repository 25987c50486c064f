// file: internals/features/store/service/store_service_test.go
package service_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"egitimportal_backend/internals/constants"
	ledgerModel "egitimportal_backend/internals/features/ledger/model"
	ledgerService "egitimportal_backend/internals/features/ledger/service"
	periodModel "egitimportal_backend/internals/features/periods/model"
	storeModel "egitimportal_backend/internals/features/store/model"
	"egitimportal_backend/internals/features/store/service"
	userModel "egitimportal_backend/internals/features/users/user/model"
	helper "egitimportal_backend/internals/helpers"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&periodModel.PeriodModel{},
		&ledgerModel.PointsTransactionModel{},
		&ledgerModel.ExperienceTransactionModel{},
		&ledgerModel.TransactionRollbackModel{},
		&storeModel.StoreItemModel{},
		&storeModel.StoreOrderModel{},
	))
	return db
}

type fixture struct {
	orgID   uuid.UUID
	tutor   userModel.UserModel
	student userModel.UserModel
	item    storeModel.StoreItemModel
}

func seed(t *testing.T, db *gorm.DB, price, stock int) fixture {
	t.Helper()
	orgID := uuid.New()

	period := periodModel.PeriodModel{
		PeriodOrgID:     orgID,
		PeriodName:      "2026-2027 Güz",
		PeriodStartDate: time.Now().AddDate(0, -1, 0),
		PeriodStatus:    periodModel.PeriodStatusActive,
	}
	require.NoError(t, db.Create(&period).Error)

	tutor := userModel.UserModel{
		UserOrgID: orgID,
		UserName:  "Eğitmen",
		UserEmail: "tutor@example.com",
		UserRole:  constants.RoleTutor,
	}
	require.NoError(t, db.Create(&tutor).Error)

	student := userModel.UserModel{
		UserOrgID:   orgID,
		UserName:    "Öğrenci",
		UserEmail:   "ogrenci@example.com",
		UserRole:    constants.RoleOgrenci,
		UserTutorID: &tutor.UserID,
	}
	require.NoError(t, db.Create(&student).Error)

	item := storeModel.StoreItemModel{
		StoreItemOrgID:    orgID,
		StoreItemName:     "Defter",
		StoreItemPrice:    price,
		StoreItemStock:    stock,
		StoreItemIsActive: true,
	}
	require.NoError(t, db.Create(&item).Error)

	return fixture{orgID: orgID, tutor: tutor, student: student, item: item}
}

func awardPoints(t *testing.T, db *gorm.DB, fx fixture, points int) {
	t.Helper()
	_, err := ledgerService.AwardPoints(db, ledgerService.AwardPointsInput{
		OrgID:     fx.orgID,
		StudentID: fx.student.UserID,
		ActorID:   fx.tutor.UserID,
		ActorRole: constants.RoleTutor,
		Points:    points,
		Reason:    "Ödev",
	})
	require.NoError(t, err)
}

func requireKind(t *testing.T, err error, kind helper.ErrorKind) {
	t.Helper()
	var ae *helper.AppError
	require.True(t, errors.As(err, &ae), "beklenen AppError, gelen: %v", err)
	require.Equal(t, kind, ae.Kind)
}

func TestRedeem_DeductsPointsAndStock(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db, 30, 5)
	awardPoints(t, db, fx, 100)

	res, err := service.Redeem(db, service.RedeemInput{
		OrgID:       fx.orgID,
		ItemID:      fx.item.StoreItemID,
		StudentID:   fx.student.UserID,
		StudentRole: constants.RoleOgrenci,
	})
	require.NoError(t, err)
	require.Equal(t, 70, res.NewBalance)
	require.Equal(t, 30, res.Order.StoreOrderPrice)
	require.Equal(t, storeModel.OrderPending, res.Order.StoreOrderStatus)

	var item storeModel.StoreItemModel
	require.NoError(t, db.First(&item, "store_item_id = ?", fx.item.StoreItemID).Error)
	require.Equal(t, 4, item.StoreItemStock)

	// Harcama defterde REDEEM satırı olarak görünür
	var tx ledgerModel.PointsTransactionModel
	require.NoError(t, db.First(&tx, "points_tx_id = ?", res.Order.StoreOrderPointsTxID).Error)
	require.Equal(t, ledgerModel.PointsTxRedeem, tx.PointsTxType)
	require.Equal(t, 30, tx.PointsTxPoints)
}

func TestRedeem_InsufficientBalanceRejected(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db, 50, 5)
	awardPoints(t, db, fx, 20)

	_, err := service.Redeem(db, service.RedeemInput{
		OrgID:       fx.orgID,
		ItemID:      fx.item.StoreItemID,
		StudentID:   fx.student.UserID,
		StudentRole: constants.RoleOgrenci,
	})
	requireKind(t, err, helper.ErrKindValidation)

	// Stok ve sipariş değişmemiş olmalı
	var item storeModel.StoreItemModel
	require.NoError(t, db.First(&item, "store_item_id = ?", fx.item.StoreItemID).Error)
	require.Equal(t, 5, item.StoreItemStock)

	var cnt int64
	require.NoError(t, db.Model(&storeModel.StoreOrderModel{}).Count(&cnt).Error)
	require.Zero(t, cnt)
}

func TestRedeem_OutOfStockConflicts(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db, 10, 0)
	awardPoints(t, db, fx, 100)

	_, err := service.Redeem(db, service.RedeemInput{
		OrgID:       fx.orgID,
		ItemID:      fx.item.StoreItemID,
		StudentID:   fx.student.UserID,
		StudentRole: constants.RoleOgrenci,
	})
	requireKind(t, err, helper.ErrKindConflict)
}

func TestRedeem_InactiveItemRejected(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db, 10, 5)
	awardPoints(t, db, fx, 100)

	require.NoError(t, db.Model(&storeModel.StoreItemModel{}).
		Where("store_item_id = ?", fx.item.StoreItemID).
		Update("store_item_is_active", false).Error)

	_, err := service.Redeem(db, service.RedeemInput{
		OrgID:       fx.orgID,
		ItemID:      fx.item.StoreItemID,
		StudentID:   fx.student.UserID,
		StudentRole: constants.RoleOgrenci,
	})
	requireKind(t, err, helper.ErrKindValidation)
}
