// file: internals/features/notifications/model/notification_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bildirim türleri
const (
	KindGeneral  = "genel"
	KindPoints   = "puan"
	KindRollback = "geri_alma"
	KindWorkshop = "atolye"
	KindStore    = "magaza"
)

type NotificationModel struct {
	NotificationID    uuid.UUID `gorm:"type:uuid;primaryKey;column:notification_id" json:"notification_id"`
	NotificationOrgID uuid.UUID `gorm:"type:uuid;not null;index;column:notification_org_id" json:"notification_org_id"`

	NotificationRecipientID uuid.UUID `gorm:"type:uuid;not null;index;column:notification_recipient_id" json:"notification_recipient_id"`

	NotificationKind  string `gorm:"type:varchar(16);not null;default:genel;column:notification_kind" json:"notification_kind"`
	NotificationTitle string `gorm:"type:text;not null;column:notification_title" json:"notification_title"`
	NotificationBody  string `gorm:"type:text;not null;column:notification_body" json:"notification_body"`

	NotificationReadAt *time.Time `gorm:"type:timestamptz;column:notification_read_at" json:"notification_read_at,omitempty"`

	NotificationCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:notification_created_at" json:"notification_created_at"`
}

func (NotificationModel) TableName() string { return "notifications" }

func (m *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if m.NotificationID == uuid.Nil {
		m.NotificationID = uuid.New()
	}
	return nil
}

func (m *NotificationModel) BeforeSave(tx *gorm.DB) error {
	m.NotificationTitle = strings.TrimSpace(m.NotificationTitle)
	if m.NotificationTitle == "" {
		return errors.New("notification_title boş olamaz")
	}
	return nil
}
