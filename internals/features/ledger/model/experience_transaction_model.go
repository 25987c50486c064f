// file: internals/features/ledger/model/experience_transaction_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExperienceTransactionModel: append-only deneyim (XP) defteri satırı.
// Puanın aksine miktar işaretli tutulur.
type ExperienceTransactionModel struct {
	ExperienceTxID    uuid.UUID `gorm:"type:uuid;primaryKey;column:experience_tx_id" json:"experience_tx_id"`
	ExperienceTxOrgID uuid.UUID `gorm:"type:uuid;not null;index;column:experience_tx_org_id" json:"experience_tx_org_id"`

	ExperienceTxStudentID uuid.UUID `gorm:"type:uuid;not null;index:idx_experience_tx_student_period;column:experience_tx_student_id" json:"experience_tx_student_id"`
	ExperienceTxActorID   uuid.UUID `gorm:"type:uuid;not null;column:experience_tx_actor_id" json:"experience_tx_actor_id"`

	// İşaretli miktar; 0 olamaz
	ExperienceTxAmount int    `gorm:"type:integer;not null;column:experience_tx_amount" json:"experience_tx_amount"`
	ExperienceTxReason string `gorm:"type:text;column:experience_tx_reason" json:"experience_tx_reason"`

	ExperienceTxPeriodID uuid.UUID `gorm:"type:uuid;not null;index:idx_experience_tx_student_period;column:experience_tx_period_id" json:"experience_tx_period_id"`

	ExperienceTxRolledBack bool `gorm:"not null;default:false;column:experience_tx_rolled_back" json:"experience_tx_rolled_back"`

	ExperienceTxCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:experience_tx_created_at" json:"experience_tx_created_at"`
}

func (ExperienceTransactionModel) TableName() string { return "experience_transactions" }

func (m *ExperienceTransactionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ExperienceTxID == uuid.Nil {
		m.ExperienceTxID = uuid.New()
	}
	if m.ExperienceTxAmount == 0 {
		return errors.New("experience_tx_amount 0 olamaz")
	}
	return nil
}
