// file: internals/features/attendance/model/attendance_session_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceSessionModel: bir yoklama oturumu (ders, antrenman vb.)
type AttendanceSessionModel struct {
	AttendanceSessionID    uuid.UUID `gorm:"type:uuid;primaryKey;column:attendance_session_id" json:"attendance_session_id"`
	AttendanceSessionOrgID uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_session_org_id" json:"attendance_session_org_id"`

	AttendanceSessionTitle    string    `gorm:"type:text;not null;column:attendance_session_title" json:"attendance_session_title"`
	AttendanceSessionDate     time.Time `gorm:"type:timestamptz;not null;column:attendance_session_date" json:"attendance_session_date"`
	AttendanceSessionPeriodID uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_session_period_id" json:"attendance_session_period_id"`
	AttendanceSessionOpenedBy uuid.UUID `gorm:"type:uuid;not null;column:attendance_session_opened_by" json:"attendance_session_opened_by"`

	AttendanceSessionCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:attendance_session_created_at" json:"attendance_session_created_at"`
	AttendanceSessionUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:attendance_session_updated_at" json:"attendance_session_updated_at"`
	AttendanceSessionDeletedAt gorm.DeletedAt `gorm:"column:attendance_session_deleted_at;index" json:"attendance_session_deleted_at,omitempty"`
}

func (AttendanceSessionModel) TableName() string { return "attendance_sessions" }

func (m *AttendanceSessionModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceSessionID == uuid.Nil {
		m.AttendanceSessionID = uuid.New()
	}
	return nil
}

func (m *AttendanceSessionModel) BeforeSave(tx *gorm.DB) error {
	m.AttendanceSessionTitle = strings.TrimSpace(m.AttendanceSessionTitle)
	if m.AttendanceSessionTitle == "" {
		return errors.New("attendance_session_title boş olamaz")
	}
	return nil
}
