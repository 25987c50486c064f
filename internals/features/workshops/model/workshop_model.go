// file: internals/features/workshops/model/workshop_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkshopModel: kontenjanlı atölye etkinliği
type WorkshopModel struct {
	WorkshopID    uuid.UUID `gorm:"type:uuid;primaryKey;column:workshop_id" json:"workshop_id"`
	WorkshopOrgID uuid.UUID `gorm:"type:uuid;not null;index;column:workshop_org_id" json:"workshop_org_id"`

	WorkshopTitle       string  `gorm:"type:text;not null;column:workshop_title" json:"workshop_title"`
	WorkshopDescription *string `gorm:"type:text;column:workshop_description" json:"workshop_description,omitempty"`

	// 0 = sınırsız
	WorkshopCapacity int        `gorm:"type:integer;not null;default:0;column:workshop_capacity" json:"workshop_capacity"`
	WorkshopImageURL *string    `gorm:"type:text;column:workshop_image_url" json:"workshop_image_url,omitempty"`
	WorkshopStartsAt time.Time  `gorm:"type:timestamptz;not null;column:workshop_starts_at" json:"workshop_starts_at"`
	WorkshopPeriodID uuid.UUID  `gorm:"type:uuid;not null;index;column:workshop_period_id" json:"workshop_period_id"`

	WorkshopCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:workshop_created_at" json:"workshop_created_at"`
	WorkshopUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:workshop_updated_at" json:"workshop_updated_at"`
	WorkshopDeletedAt gorm.DeletedAt `gorm:"column:workshop_deleted_at;index" json:"workshop_deleted_at,omitempty"`
}

func (WorkshopModel) TableName() string { return "workshops" }

func (m *WorkshopModel) BeforeCreate(tx *gorm.DB) error {
	if m.WorkshopID == uuid.Nil {
		m.WorkshopID = uuid.New()
	}
	return nil
}

func (m *WorkshopModel) BeforeSave(tx *gorm.DB) error {
	m.WorkshopTitle = strings.TrimSpace(m.WorkshopTitle)
	if m.WorkshopTitle == "" {
		return errors.New("workshop_title boş olamaz")
	}
	if m.WorkshopCapacity < 0 {
		return errors.New("workshop_capacity negatif olamaz")
	}
	return nil
}
