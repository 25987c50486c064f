// file: internals/features/periods/model/period_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Dönem durumları
const (
	PeriodStatusActive   = "aktif"
	PeriodStatusInactive = "pasif"
	PeriodStatusArchived = "arsiv"
)

type PeriodModel struct {
	// ============ PK & Tenant ============
	PeriodID    uuid.UUID `gorm:"type:uuid;primaryKey;column:period_id" json:"period_id"`
	PeriodOrgID uuid.UUID `gorm:"type:uuid;not null;index;column:period_org_id" json:"period_org_id"`

	// ============ Kimlik ============
	// Örn: "2026-2027 Güz"
	PeriodName        string  `gorm:"type:text;not null;column:period_name" json:"period_name"`
	PeriodDescription *string `gorm:"type:text;column:period_description" json:"period_description,omitempty"`

	PeriodStartDate time.Time  `gorm:"type:timestamptz;not null;column:period_start_date" json:"period_start_date"`
	PeriodEndDate   *time.Time `gorm:"type:timestamptz;column:period_end_date" json:"period_end_date,omitempty"`

	// aktif | pasif | arsiv
	// Kurum başına tek aktif dönem: migration'da partial unique index
	//   CREATE UNIQUE INDEX uq_periods_org_active ON periods (period_org_id)
	//   WHERE period_status = 'aktif' AND period_deleted_at IS NULL;
	PeriodStatus string `gorm:"type:varchar(8);not null;default:pasif;index;column:period_status" json:"period_status"`

	// JSONB ek istatistikler (opsiyonel / esnek)
	PeriodStats datatypes.JSON `gorm:"type:jsonb;column:period_stats" json:"period_stats,omitempty"`

	// ============ Audit / Soft delete ============
	PeriodCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:period_created_at" json:"period_created_at"`
	PeriodUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:period_updated_at" json:"period_updated_at"`
	PeriodDeletedAt gorm.DeletedAt `gorm:"column:period_deleted_at;index" json:"period_deleted_at,omitempty"`
}

func (PeriodModel) TableName() string { return "periods" }

func (m *PeriodModel) BeforeCreate(tx *gorm.DB) error {
	if m.PeriodID == uuid.Nil {
		m.PeriodID = uuid.New()
	}
	return nil
}

// ============ Hooks: validation & light normalization ============
func (m *PeriodModel) BeforeSave(tx *gorm.DB) error {
	m.PeriodName = strings.TrimSpace(m.PeriodName)
	if m.PeriodName == "" {
		return errors.New("period_name boş olamaz")
	}
	if m.PeriodEndDate != nil && m.PeriodEndDate.Before(m.PeriodStartDate) {
		return errors.New("period_end_date >= period_start_date olmalı")
	}
	switch m.PeriodStatus {
	case PeriodStatusActive, PeriodStatusInactive, PeriodStatusArchived:
	default:
		return errors.New("period_status geçersiz")
	}
	if m.PeriodDescription != nil {
		d := strings.TrimSpace(*m.PeriodDescription)
		if d == "" {
			m.PeriodDescription = nil
		} else {
			m.PeriodDescription = &d
		}
	}
	return nil
}
