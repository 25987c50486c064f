// file: internals/features/ledger/model/points_transaction_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Puan hareket tipleri
const (
	PointsTxAward  = "kazanim" // puan ekleme
	PointsTxRedeem = "harcama" // puan düşme / mağaza harcaması
)

// PointsTransactionModel: append-only puan defteri satırı.
// Satır silinmez; geri alma rolled_back bayrağı + ayrı audit kaydıyla yapılır.
type PointsTransactionModel struct {
	PointsTxID    uuid.UUID `gorm:"type:uuid;primaryKey;column:points_tx_id" json:"points_tx_id"`
	PointsTxOrgID uuid.UUID `gorm:"type:uuid;not null;index;column:points_tx_org_id" json:"points_tx_org_id"`

	PointsTxStudentID uuid.UUID `gorm:"type:uuid;not null;index:idx_points_tx_student_period;column:points_tx_student_id" json:"points_tx_student_id"`
	PointsTxActorID   uuid.UUID `gorm:"type:uuid;not null;column:points_tx_actor_id" json:"points_tx_actor_id"`

	// Büyüklük her zaman > 0; işaret tip ile belirlenir
	PointsTxPoints int    `gorm:"type:integer;not null;column:points_tx_points" json:"points_tx_points"`
	PointsTxType   string `gorm:"type:varchar(8);not null;column:points_tx_type" json:"points_tx_type"`
	PointsTxReason string `gorm:"type:text;not null;column:points_tx_reason" json:"points_tx_reason"`

	PointsTxPeriodID uuid.UUID `gorm:"type:uuid;not null;index:idx_points_tx_student_period;column:points_tx_period_id" json:"points_tx_period_id"`

	PointsTxRolledBack bool `gorm:"not null;default:false;column:points_tx_rolled_back" json:"points_tx_rolled_back"`

	PointsTxCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:points_tx_created_at" json:"points_tx_created_at"`
}

func (PointsTransactionModel) TableName() string { return "points_transactions" }

func (m *PointsTransactionModel) BeforeCreate(tx *gorm.DB) error {
	if m.PointsTxID == uuid.Nil {
		m.PointsTxID = uuid.New()
	}
	if m.PointsTxPoints <= 0 {
		return errors.New("points_tx_points > 0 olmalı")
	}
	if m.PointsTxType != PointsTxAward && m.PointsTxType != PointsTxRedeem {
		return errors.New("points_tx_type geçersiz")
	}
	return nil
}

// SignedPoints: toplama uygulanan işaretli değer
func (m *PointsTransactionModel) SignedPoints() int {
	if m.PointsTxType == PointsTxRedeem {
		return -m.PointsTxPoints
	}
	return m.PointsTxPoints
}
