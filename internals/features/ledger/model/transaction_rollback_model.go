// file: internals/features/ledger/model/transaction_rollback_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Geri alınan işlem tipleri
const (
	RollbackTypePoints     = "puan"
	RollbackTypeExperience = "deneyim"
)

// TransactionRollbackModel: geri alma audit kaydı. Orijinal satır silinmez.
// (transaction_id, transaction_type) başına en fazla bir geri alma; unique index
// uygulama kontrolündeki yarışa karşı son savunmadır.
type TransactionRollbackModel struct {
	RollbackID    uuid.UUID `gorm:"type:uuid;primaryKey;column:rollback_id" json:"rollback_id"`
	RollbackOrgID uuid.UUID `gorm:"type:uuid;not null;index;column:rollback_org_id" json:"rollback_org_id"`

	RollbackTransactionID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_rollbacks_tx;column:rollback_transaction_id" json:"rollback_transaction_id"`
	RollbackTransactionType string    `gorm:"type:varchar(8);not null;uniqueIndex:uq_rollbacks_tx;column:rollback_transaction_type" json:"rollback_transaction_type"`

	RollbackStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:rollback_student_id" json:"rollback_student_id"`
	RollbackAdminID   uuid.UUID `gorm:"type:uuid;not null;column:rollback_admin_id" json:"rollback_admin_id"`

	RollbackReason   string    `gorm:"type:text;not null;column:rollback_reason" json:"rollback_reason"`
	RollbackPeriodID uuid.UUID `gorm:"type:uuid;not null;column:rollback_period_id" json:"rollback_period_id"`

	RollbackCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:rollback_created_at" json:"rollback_created_at"`
}

func (TransactionRollbackModel) TableName() string { return "transaction_rollbacks" }

func (m *TransactionRollbackModel) BeforeCreate(tx *gorm.DB) error {
	if m.RollbackID == uuid.Nil {
		m.RollbackID = uuid.New()
	}
	if m.RollbackTransactionType != RollbackTypePoints && m.RollbackTransactionType != RollbackTypeExperience {
		return errors.New("rollback_transaction_type geçersiz")
	}
	return nil
}
