// file: internals/features/meetings/model/meeting_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeetingModel: yönetim kurulu toplantısı
type MeetingModel struct {
	MeetingID    uuid.UUID `gorm:"type:uuid;primaryKey;column:meeting_id" json:"meeting_id"`
	MeetingOrgID uuid.UUID `gorm:"type:uuid;not null;index;column:meeting_org_id" json:"meeting_org_id"`

	MeetingTitle  string  `gorm:"type:text;not null;column:meeting_title" json:"meeting_title"`
	MeetingAgenda *string `gorm:"type:text;column:meeting_agenda" json:"meeting_agenda,omitempty"`

	MeetingAt        time.Time `gorm:"type:timestamptz;not null;column:meeting_at" json:"meeting_at"`
	MeetingPeriodID  uuid.UUID `gorm:"type:uuid;not null;index;column:meeting_period_id" json:"meeting_period_id"`
	MeetingCreatedBy uuid.UUID `gorm:"type:uuid;not null;column:meeting_created_by" json:"meeting_created_by"`

	MeetingCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:meeting_created_at" json:"meeting_created_at"`
	MeetingUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:meeting_updated_at" json:"meeting_updated_at"`
	MeetingDeletedAt gorm.DeletedAt `gorm:"column:meeting_deleted_at;index" json:"meeting_deleted_at,omitempty"`
}

func (MeetingModel) TableName() string { return "meetings" }

func (m *MeetingModel) BeforeCreate(tx *gorm.DB) error {
	if m.MeetingID == uuid.Nil {
		m.MeetingID = uuid.New()
	}
	return nil
}

func (m *MeetingModel) BeforeSave(tx *gorm.DB) error {
	m.MeetingTitle = strings.TrimSpace(m.MeetingTitle)
	if m.MeetingTitle == "" {
		return errors.New("meeting_title boş olamaz")
	}
	return nil
}
