// file: internals/features/ledger/service/ledger_service_test.go
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
	"egitimportal_backend/internals/features/ledger/service"
	periodModel "egitimportal_backend/internals/features/periods/model"
	userModel "egitimportal_backend/internals/features/users/user/model"
	helper "egitimportal_backend/internals/helpers"
)

/* ============================================
   Test fixture
============================================ */

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
	))
	return db
}

type fixture struct {
	orgID   uuid.UUID
	period  periodModel.PeriodModel
	admin   userModel.UserModel
	tutor   userModel.UserModel
	student userModel.UserModel
}

func seed(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	orgID := uuid.New()

	period := periodModel.PeriodModel{
		PeriodOrgID:     orgID,
		PeriodName:      "2026-2027 Güz",
		PeriodStartDate: time.Now().AddDate(0, -1, 0),
		PeriodStatus:    periodModel.PeriodStatusActive,
	}
	require.NoError(t, db.Create(&period).Error)

	admin := userModel.UserModel{
		UserOrgID: orgID,
		UserName:  "Yönetici",
		UserEmail: "admin@example.com",
		UserRole:  constants.RoleAdmin,
	}
	require.NoError(t, db.Create(&admin).Error)

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

	return fixture{orgID: orgID, period: period, admin: admin, tutor: tutor, student: student}
}

func requireKind(t *testing.T, err error, kind helper.ErrorKind) {
	t.Helper()
	var ae *helper.AppError
	require.True(t, errors.As(err, &ae), "beklenen AppError, gelen: %v", err)
	require.Equal(t, kind, ae.Kind)
}

/* ============================================
   AwardPoints
============================================ */

func TestAwardPoints_CreatesLedgerRowAndUpdatesBalance(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db)

	res, err := service.AwardPoints(db, service.AwardPointsInput{
		OrgID:     fx.orgID,
		StudentID: fx.student.UserID,
		ActorID:   fx.tutor.UserID,
		ActorRole: constants.RoleTutor,
		Points:    50,
		Reason:    "Haftalık ödev",
	})
	require.NoError(t, err)
	require.Equal(t, 50, res.NewBalance)
	require.Equal(t, ledgerModel.PointsTxAward, res.Transaction.PointsTxType)
	require.Equal(t, 50, res.Transaction.PointsTxPoints)
	require.Equal(t, fx.period.PeriodID, res.Transaction.PointsTxPeriodID)

	// Defter projeksiyonu ve denormalize sayaç aynı değeri vermeli
	balance, err := service.CalculatePoints(db, fx.student.UserID, fx.period.PeriodID)
	require.NoError(t, err)
	require.Equal(t, 50, balance)

	var student userModel.UserModel
	require.NoError(t, db.First(&student, "user_id = ?", fx.student.UserID).Error)
	require.Equal(t, 50, student.UserPoints)
}

func TestAwardPoints_ForeignTutorForbidden(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db)

	other := userModel.UserModel{
		UserOrgID: fx.orgID,
		UserName:  "Başka Eğitmen",
		UserEmail: "tutor2@example.com",
		UserRole:  constants.RoleTutor,
	}
	require.NoError(t, db.Create(&other).Error)

	_, err := service.AwardPoints(db, service.AwardPointsInput{
		OrgID:     fx.orgID,
		StudentID: fx.student.UserID,
		ActorID:   other.UserID,
		ActorRole: constants.RoleTutor,
		Points:    10,
		Reason:    "deneme",
	})
	requireKind(t, err, helper.ErrKindForbidden)

	var cnt int64
	require.NoError(t, db.Model(&ledgerModel.PointsTransactionModel{}).Count(&cnt).Error)
	require.Zero(t, cnt)
}

func TestAwardPoints_AdminBypassesOwnership(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db)

	_, err := service.AwardPoints(db, service.AwardPointsInput{
		OrgID:     fx.orgID,
		StudentID: fx.student.UserID,
		ActorID:   fx.admin.UserID,
		ActorRole: constants.RoleAdmin,
		Points:    20,
		Reason:    "Turnuva derecesi",
	})
	require.NoError(t, err)
}

func TestAwardPoints_OverDeductRejected(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db)

	_, err := service.AwardPoints(db, service.AwardPointsInput{
		OrgID:     fx.orgID,
		StudentID: fx.student.UserID,
		ActorID:   fx.tutor.UserID,
		ActorRole: constants.RoleTutor,
		Points:    30,
		Reason:    "Ödev",
	})
	require.NoError(t, err)

	_, err = service.AwardPoints(db, service.AwardPointsInput{
		OrgID:     fx.orgID,
		StudentID: fx.student.UserID,
		ActorID:   fx.tutor.UserID,
		ActorRole: constants.RoleTutor,
		Points:    -50,
		Reason:    "Ceza",
	})
	requireKind(t, err, helper.ErrKindValidation)

	// Bakiye ve defter değişmemiş olmalı
	balance, err := service.CalculatePoints(db, fx.student.UserID, fx.period.PeriodID)
	require.NoError(t, err)
	require.Equal(t, 30, balance)

	var cnt int64
	require.NoError(t, db.Model(&ledgerModel.PointsTransactionModel{}).Count(&cnt).Error)
	require.EqualValues(t, 1, cnt)
}

func TestAwardPoints_DeductWritesRedeemRow(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db)

	_, err := service.AwardPoints(db, service.AwardPointsInput{
		OrgID:     fx.orgID,
		StudentID: fx.student.UserID,
		ActorID:   fx.tutor.UserID,
		ActorRole: constants.RoleTutor,
		Points:    100,
		Reason:    "Ödev",
	})
	require.NoError(t, err)

	res, err := service.AwardPoints(db, service.AwardPointsInput{
		OrgID:     fx.orgID,
		StudentID: fx.student.UserID,
		ActorID:   fx.tutor.UserID,
		ActorRole: constants.RoleTutor,
		Points:    -40,
		Reason:    "Mağaza harcaması",
	})
	require.NoError(t, err)
	require.Equal(t, 60, res.NewBalance)
	require.Equal(t, ledgerModel.PointsTxRedeem, res.Transaction.PointsTxType)
	require.Equal(t, 40, res.Transaction.PointsTxPoints) // büyüklük, işaret değil
}

func TestAwardPoints_NoActivePeriodFailsClosed(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db)

	require.NoError(t, db.Model(&periodModel.PeriodModel{}).
		Where("period_id = ?", fx.period.PeriodID).
		Update("period_status", periodModel.PeriodStatusInactive).Error)

	_, err := service.AwardPoints(db, service.AwardPointsInput{
		OrgID:     fx.orgID,
		StudentID: fx.student.UserID,
		ActorID:   fx.tutor.UserID,
		ActorRole: constants.RoleTutor,
		Points:    10,
		Reason:    "deneme",
	})
	requireKind(t, err, helper.ErrKindNotFound)

	var cnt int64
	require.NoError(t, db.Model(&ledgerModel.PointsTransactionModel{}).Count(&cnt).Error)
	require.Zero(t, cnt)
}

func TestAwardPoints_ZeroRejected(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db)

	_, err := service.AwardPoints(db, service.AwardPointsInput{
		OrgID:     fx.orgID,
		StudentID: fx.student.UserID,
		ActorID:   fx.tutor.UserID,
		ActorRole: constants.RoleTutor,
		Points:    0,
		Reason:    "deneme",
	})
	requireKind(t, err, helper.ErrKindValidation)
}

/* ============================================
   GrantExperience
============================================ */

func TestGrantExperience_SignedAmounts(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db)

	res, err := service.GrantExperience(db, service.GrantExperienceInput{
		OrgID:     fx.orgID,
		StudentID: fx.student.UserID,
		ActorID:   fx.tutor.UserID,
		ActorRole: constants.RoleTutor,
		Amount:    100,
		Reason:    "Atölye katılımı",
	})
	require.NoError(t, err)
	require.Equal(t, 100, res.NewBalance)

	res, err = service.GrantExperience(db, service.GrantExperienceInput{
		OrgID:     fx.orgID,
		StudentID: fx.student.UserID,
		ActorID:   fx.tutor.UserID,
		ActorRole: constants.RoleTutor,
		Amount:    -40,
		Reason:    "Düzeltme",
	})
	require.NoError(t, err)
	require.Equal(t, 60, res.NewBalance)

	balance, err := service.CalculateExperience(db, fx.student.UserID, fx.period.PeriodID)
	require.NoError(t, err)
	require.Equal(t, 60, balance)

	var student userModel.UserModel
	require.NoError(t, db.First(&student, "user_id = ?", fx.student.UserID).Error)
	require.Equal(t, 60, student.UserExperience)
}

/* ============================================
   Rollback
============================================ */

func TestRollback_PointsRestoresBalance(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db)

	res, err := service.AwardPoints(db, service.AwardPointsInput{
		OrgID:     fx.orgID,
		StudentID: fx.student.UserID,
		ActorID:   fx.tutor.UserID,
		ActorRole: constants.RoleTutor,
		Points:    50,
		Reason:    "Ödev",
	})
	require.NoError(t, err)

	rb, err := service.Rollback(db, service.RollbackInput{
		OrgID:           fx.orgID,
		TransactionID:   res.Transaction.PointsTxID,
		TransactionType: ledgerModel.RollbackTypePoints,
		AdminID:         fx.admin.UserID,
		Reason:          "Yanlış öğrenciye işlendi",
	})
	require.NoError(t, err)
	require.Equal(t, fx.student.UserID, rb.Rollback.RollbackStudentID)
	require.Equal(t, 0, rb.Student.UserPoints)

	// Orijinal satır silinmez, işaretlenir
	var orig ledgerModel.PointsTransactionModel
	require.NoError(t, db.First(&orig, "points_tx_id = ?", res.Transaction.PointsTxID).Error)
	require.True(t, orig.PointsTxRolledBack)

	balance, err := service.CalculatePoints(db, fx.student.UserID, fx.period.PeriodID)
	require.NoError(t, err)
	require.Zero(t, balance)

	var cnt int64
	require.NoError(t, db.Model(&ledgerModel.TransactionRollbackModel{}).Count(&cnt).Error)
	require.EqualValues(t, 1, cnt)
}

func TestRollback_ExperienceRestoresBalance(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db)

	res, err := service.GrantExperience(db, service.GrantExperienceInput{
		OrgID:     fx.orgID,
		StudentID: fx.student.UserID,
		ActorID:   fx.tutor.UserID,
		ActorRole: constants.RoleTutor,
		Amount:    80,
		Reason:    "Atölye",
	})
	require.NoError(t, err)

	rb, err := service.Rollback(db, service.RollbackInput{
		OrgID:           fx.orgID,
		TransactionID:   res.Transaction.ExperienceTxID,
		TransactionType: ledgerModel.RollbackTypeExperience,
		AdminID:         fx.admin.UserID,
		Reason:          "Hatalı giriş",
	})
	require.NoError(t, err)
	require.Equal(t, 0, rb.Student.UserExperience)

	balance, err := service.CalculateExperience(db, fx.student.UserID, fx.period.PeriodID)
	require.NoError(t, err)
	require.Zero(t, balance)
}

func TestRollback_SecondAttemptConflicts(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db)

	res, err := service.AwardPoints(db, service.AwardPointsInput{
		OrgID:     fx.orgID,
		StudentID: fx.student.UserID,
		ActorID:   fx.tutor.UserID,
		ActorRole: constants.RoleTutor,
		Points:    50,
		Reason:    "Ödev",
	})
	require.NoError(t, err)

	in := service.RollbackInput{
		OrgID:           fx.orgID,
		TransactionID:   res.Transaction.PointsTxID,
		TransactionType: ledgerModel.RollbackTypePoints,
		AdminID:         fx.admin.UserID,
		Reason:          "Yanlış işlem",
	}
	_, err = service.Rollback(db, in)
	require.NoError(t, err)

	_, err = service.Rollback(db, in)
	requireKind(t, err, helper.ErrKindConflict)

	// Tek audit satırı, bakiye ikinci kez değişmemiş
	var cnt int64
	require.NoError(t, db.Model(&ledgerModel.TransactionRollbackModel{}).Count(&cnt).Error)
	require.EqualValues(t, 1, cnt)

	var student userModel.UserModel
	require.NoError(t, db.First(&student, "user_id = ?", fx.student.UserID).Error)
	require.Zero(t, student.UserPoints)
}

func TestRollback_UnknownTransactionNotFound(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db)

	_, err := service.Rollback(db, service.RollbackInput{
		OrgID:           fx.orgID,
		TransactionID:   uuid.New(),
		TransactionType: ledgerModel.RollbackTypePoints,
		AdminID:         fx.admin.UserID,
		Reason:          "deneme",
	})
	requireKind(t, err, helper.ErrKindNotFound)
}

func TestRollback_InvalidTypeRejected(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db)

	_, err := service.Rollback(db, service.RollbackInput{
		OrgID:           fx.orgID,
		TransactionID:   uuid.New(),
		TransactionType: "bilinmeyen",
		AdminID:         fx.admin.UserID,
		Reason:          "deneme",
	})
	requireKind(t, err, helper.ErrKindValidation)
}

/* ============================================
   Dönem izolasyonu
============================================ */

func TestCalculatePoints_ScopedToPeriod(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db)

	_, err := service.AwardPoints(db, service.AwardPointsInput{
		OrgID:     fx.orgID,
		StudentID: fx.student.UserID,
		ActorID:   fx.tutor.UserID,
		ActorRole: constants.RoleTutor,
		Points:    50,
		Reason:    "Güz dönemi",
	})
	require.NoError(t, err)

	// Yeni dönem açılır; eski dönemin puanları yeni projeksiyona taşınmaz
	next := periodModel.PeriodModel{
		PeriodOrgID:     fx.orgID,
		PeriodName:      "2027 Bahar",
		PeriodStartDate: time.Now(),
		PeriodStatus:    periodModel.PeriodStatusInactive,
	}
	require.NoError(t, db.Create(&next).Error)

	balance, err := service.CalculatePoints(db, fx.student.UserID, next.PeriodID)
	require.NoError(t, err)
	require.Zero(t, balance)

	balance, err = service.CalculatePoints(db, fx.student.UserID, fx.period.PeriodID)
	require.NoError(t, err)
	require.Equal(t, 50, balance)
}
