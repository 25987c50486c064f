// file: internals/features/ledger/service/ledger_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"egitimportal_backend/internals/constants"
	ledgerModel "egitimportal_backend/internals/features/ledger/model"
	periodService "egitimportal_backend/internals/features/periods/service"
	userModel "egitimportal_backend/internals/features/users/user/model"
	helper "egitimportal_backend/internals/helpers"
)

/* ============================================
   Puan ver / düş
============================================ */

type AwardPointsInput struct {
	OrgID     uuid.UUID
	StudentID uuid.UUID
	ActorID   uuid.UUID
	ActorRole string
	Points    int // işaretli: >0 ekleme, <0 düşme
	Reason    string
}

type AwardPointsResult struct {
	Transaction ledgerModel.PointsTransactionModel
	NewBalance  int
}

// AwardPoints: tek ledger yazma yolu. Aktif dönemi çözer, yetkiyi ve bakiyeyi
// doğrular, ledger satırı + denormalize sayaç güncellemesini tek transaction'da
// işler. Denormalize user_points'e başka hiçbir akış dokunmaz.
func AwardPoints(db *gorm.DB, in AwardPointsInput) (*AwardPointsResult, error) {
	if in.Points == 0 {
		return nil, helper.ErrValidation("Puan 0 olamaz")
	}

	period, err := periodService.RequireActivePeriod(db, in.OrgID)
	if err != nil {
		return nil, err
	}

	var out AwardPointsResult
	err = db.Transaction(func(tx *gorm.DB) error {
		student, err := lockStudent(tx, in.OrgID, in.StudentID)
		if err != nil {
			return err
		}
		if err := ensureActorOwnsStudent(in.ActorRole, in.ActorID, student); err != nil {
			return err
		}

		// Bakiye otoritesi ledger toplamıdır (dönem bazlı)
		balance, err := sumPoints(tx, in.StudentID, period.PeriodID)
		if err != nil {
			return err
		}
		if in.Points < 0 && balance+in.Points < 0 {
			return helper.ErrValidation("Öğrencinin sahip olduğundan fazla puan düşülemez")
		}

		txType := ledgerModel.PointsTxAward
		magnitude := in.Points
		if in.Points < 0 {
			txType = ledgerModel.PointsTxRedeem
			magnitude = -in.Points
		}

		row := ledgerModel.PointsTransactionModel{
			PointsTxOrgID:     in.OrgID,
			PointsTxStudentID: in.StudentID,
			PointsTxActorID:   in.ActorID,
			PointsTxPoints:    magnitude,
			PointsTxType:      txType,
			PointsTxReason:    in.Reason,
			PointsTxPeriodID:  period.PeriodID,
		}
		if err := tx.Create(&row).Error; err != nil {
			return helper.ErrInternal("Puan hareketi kaydedilemedi", err)
		}

		if err := tx.Model(&userModel.UserModel{}).
			Where("user_id = ?", student.UserID).
			Update("user_points", gorm.Expr("user_points + ?", in.Points)).Error; err != nil {
			return helper.ErrInternal("Puan bakiyesi güncellenemedi", err)
		}

		out = AwardPointsResult{Transaction: row, NewBalance: balance + in.Points}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

/* ============================================
   Deneyim (XP) ver
============================================ */

type GrantExperienceInput struct {
	OrgID     uuid.UUID
	StudentID uuid.UUID
	ActorID   uuid.UUID
	ActorRole string
	Amount    int // işaretli
	Reason    string
}

type GrantExperienceResult struct {
	Transaction ledgerModel.ExperienceTransactionModel
	NewBalance  int
}

func GrantExperience(db *gorm.DB, in GrantExperienceInput) (*GrantExperienceResult, error) {
	if in.Amount == 0 {
		return nil, helper.ErrValidation("Deneyim miktarı 0 olamaz")
	}

	period, err := periodService.RequireActivePeriod(db, in.OrgID)
	if err != nil {
		return nil, err
	}

	var out GrantExperienceResult
	err = db.Transaction(func(tx *gorm.DB) error {
		student, err := lockStudent(tx, in.OrgID, in.StudentID)
		if err != nil {
			return err
		}
		if err := ensureActorOwnsStudent(in.ActorRole, in.ActorID, student); err != nil {
			return err
		}

		balance, err := sumExperience(tx, in.StudentID, period.PeriodID)
		if err != nil {
			return err
		}

		row := ledgerModel.ExperienceTransactionModel{
			ExperienceTxOrgID:     in.OrgID,
			ExperienceTxStudentID: in.StudentID,
			ExperienceTxActorID:   in.ActorID,
			ExperienceTxAmount:    in.Amount,
			ExperienceTxReason:    in.Reason,
			ExperienceTxPeriodID:  period.PeriodID,
		}
		if err := tx.Create(&row).Error; err != nil {
			return helper.ErrInternal("Deneyim hareketi kaydedilemedi", err)
		}

		if err := tx.Model(&userModel.UserModel{}).
			Where("user_id = ?", student.UserID).
			Update("user_experience", gorm.Expr("user_experience + ?", in.Amount)).Error; err != nil {
			return helper.ErrInternal("Deneyim bakiyesi güncellenemedi", err)
		}

		out = GrantExperienceResult{Transaction: row, NewBalance: balance + in.Amount}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

/* ============================================
   Geri alma (rollback)
============================================ */

type RollbackInput struct {
	OrgID           uuid.UUID
	TransactionID   uuid.UUID
	TransactionType string // puan | deneyim
	AdminID         uuid.UUID
	Reason          string
}

type RollbackResult struct {
	Rollback ledgerModel.TransactionRollbackModel
	Student  userModel.UserModel
}

// Rollback: orijinal satırı kilitleyip etkisini tersine çevirir, rolled_back
// işaretler ve audit satırı yazar. (transaction_id, type) başına en fazla bir kez;
// unique index check-then-insert yarışına karşı son savunmadır.
func Rollback(db *gorm.DB, in RollbackInput) (*RollbackResult, error) {
	if in.TransactionType != ledgerModel.RollbackTypePoints && in.TransactionType != ledgerModel.RollbackTypeExperience {
		return nil, helper.ErrValidation("İşlem tipi geçersiz (puan | deneyim)")
	}

	period, err := periodService.RequireActivePeriod(db, in.OrgID)
	if err != nil {
		return nil, err
	}

	// Ön kontrol: mevcut rollback var mı (unique index son savunma)
	var cnt int64
	if err := db.Model(&ledgerModel.TransactionRollbackModel{}).
		Where("rollback_transaction_id = ? AND rollback_transaction_type = ?", in.TransactionID, in.TransactionType).
		Count(&cnt).Error; err != nil {
		return nil, helper.ErrInternal("Geri alma kaydı kontrol edilemedi", err)
	}
	if cnt > 0 {
		return nil, helper.ErrConflict("Bu işlem zaten geri alınmış")
	}

	var out RollbackResult
	err = db.Transaction(func(tx *gorm.DB) error {
		var studentID uuid.UUID
		var reverseDelta int // denormalize sayaca uygulanacak işaretli değer
		var counterColumn string

		switch in.TransactionType {
		case ledgerModel.RollbackTypePoints:
			var orig ledgerModel.PointsTransactionModel
			if err := withLock(tx).
				Where("points_tx_org_id = ? AND points_tx_id = ?", in.OrgID, in.TransactionID).
				First(&orig).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return helper.ErrNotFound("Geri alınacak işlem bulunamadı")
				}
				return helper.ErrInternal("İşlem alınamadı", err)
			}
			if orig.PointsTxRolledBack {
				return helper.ErrConflict("Bu işlem zaten geri alınmış")
			}
			studentID = orig.PointsTxStudentID
			reverseDelta = -orig.SignedPoints()
			counterColumn = "user_points"

			if err := tx.Model(&ledgerModel.PointsTransactionModel{}).
				Where("points_tx_id = ?", orig.PointsTxID).
				Update("points_tx_rolled_back", true).Error; err != nil {
				return helper.ErrInternal("İşlem işaretlenemedi", err)
			}

		case ledgerModel.RollbackTypeExperience:
			var orig ledgerModel.ExperienceTransactionModel
			if err := withLock(tx).
				Where("experience_tx_org_id = ? AND experience_tx_id = ?", in.OrgID, in.TransactionID).
				First(&orig).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return helper.ErrNotFound("Geri alınacak işlem bulunamadı")
				}
				return helper.ErrInternal("İşlem alınamadı", err)
			}
			if orig.ExperienceTxRolledBack {
				return helper.ErrConflict("Bu işlem zaten geri alınmış")
			}
			studentID = orig.ExperienceTxStudentID
			reverseDelta = -orig.ExperienceTxAmount
			counterColumn = "user_experience"

			if err := tx.Model(&ledgerModel.ExperienceTransactionModel{}).
				Where("experience_tx_id = ?", orig.ExperienceTxID).
				Update("experience_tx_rolled_back", true).Error; err != nil {
				return helper.ErrInternal("İşlem işaretlenemedi", err)
			}
		}

		if err := tx.Model(&userModel.UserModel{}).
			Where("user_id = ?", studentID).
			Update(counterColumn, gorm.Expr(counterColumn+" + ?", reverseDelta)).Error; err != nil {
			return helper.ErrInternal("Bakiye geri alınamadı", err)
		}

		rb := ledgerModel.TransactionRollbackModel{
			RollbackOrgID:           in.OrgID,
			RollbackTransactionID:   in.TransactionID,
			RollbackTransactionType: in.TransactionType,
			RollbackStudentID:       studentID,
			RollbackAdminID:         in.AdminID,
			RollbackReason:          in.Reason,
			RollbackPeriodID:        period.PeriodID,
		}
		if err := tx.Create(&rb).Error; err != nil {
			// unique index ihlali = eşzamanlı ikinci rollback
			return helper.ErrConflict("Bu işlem zaten geri alınmış")
		}

		var student userModel.UserModel
		if err := tx.Where("user_id = ?", studentID).First(&student).Error; err != nil {
			return helper.ErrInternal("Öğrenci alınamadı", err)
		}

		out = RollbackResult{Rollback: rb, Student: student}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

/* ============================================
   Bakiye projeksiyonu (dönem bazlı okuma yolu)
============================================ */

// CalculatePoints: geri alınmamış satırların işaretli toplamı.
// Denormalize user_points yerine defter otorite kabul edilir.
func CalculatePoints(db *gorm.DB, studentID, periodID uuid.UUID) (int, error) {
	return sumPoints(db, studentID, periodID)
}

func CalculateExperience(db *gorm.DB, studentID, periodID uuid.UUID) (int, error) {
	return sumExperience(db, studentID, periodID)
}

func sumPoints(db *gorm.DB, studentID, periodID uuid.UUID) (int, error) {
	var total *int
	err := db.Model(&ledgerModel.PointsTransactionModel{}).
		Select("SUM(CASE WHEN points_tx_type = ? THEN points_tx_points ELSE -points_tx_points END)", ledgerModel.PointsTxAward).
		Where("points_tx_student_id = ? AND points_tx_period_id = ? AND points_tx_rolled_back = ?", studentID, periodID, false).
		Scan(&total).Error
	if err != nil {
		return 0, helper.ErrInternal("Puan bakiyesi hesaplanamadı", err)
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func sumExperience(db *gorm.DB, studentID, periodID uuid.UUID) (int, error) {
	var total *int
	err := db.Model(&ledgerModel.ExperienceTransactionModel{}).
		Select("SUM(experience_tx_amount)").
		Where("experience_tx_student_id = ? AND experience_tx_period_id = ? AND experience_tx_rolled_back = ?", studentID, periodID, false).
		Scan(&total).Error
	if err != nil {
		return 0, helper.ErrInternal("Deneyim bakiyesi hesaplanamadı", err)
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

/* ============================================
   Ortak kontroller
============================================ */

// withLock: satır kilidi (SELECT ... FOR UPDATE). SQLite bunu desteklemez;
// orada transaction'ın kendisi yeterli.
func withLock(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func lockStudent(tx *gorm.DB, orgID, studentID uuid.UUID) (*userModel.UserModel, error) {
	var student userModel.UserModel
	if err := withLock(tx).
		Where("user_org_id = ? AND user_id = ?", orgID, studentID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("Öğrenci bulunamadı")
		}
		return nil, helper.ErrInternal("Öğrenci alınamadı", err)
	}
	if !student.IsStudent() {
		return nil, helper.ErrNotFound("Öğrenci bulunamadı")
	}
	return &student, nil
}

// ensureActorOwnsStudent: tutor/asistan sadece kendi öğrencisine işlem yapabilir;
// admin sınırsız. Öğrencinin kendisi de aktör olabilir (mağaza harcaması);
// HTTP yazma uçları yine de personel rolü ister.
func ensureActorOwnsStudent(actorRole string, actorID uuid.UUID, student *userModel.UserModel) error {
	if actorID == student.UserID {
		return nil
	}
	switch actorRole {
	case constants.RoleAdmin:
		return nil
	case constants.RoleTutor, constants.RoleAsistan:
		if student.UserTutorID == nil || *student.UserTutorID != actorID {
			return helper.ErrForbidden("Sadece kendi öğrencinize puan işlemi yapabilirsiniz")
		}
		return nil
	default:
		return helper.ErrForbidden("Bu işlem için yetkiniz yok")
	}
}
