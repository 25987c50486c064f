// file: internals/features/attendance/model/attendance_record_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Yoklama durumları
const (
	AttendancePresent = "geldi"
	AttendanceAbsent  = "gelmedi"
	AttendanceExcused = "izinli"
	AttendanceLate    = "gec"
)

// AttendanceRecordModel: oturum başına öğrenci kaydı.
// (session, student) çifti tekildir; ikinci işaretleme Conflict döner.
type AttendanceRecordModel struct {
	AttendanceRecordID    uuid.UUID `gorm:"type:uuid;primaryKey;column:attendance_record_id" json:"attendance_record_id"`
	AttendanceRecordOrgID uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_record_org_id" json:"attendance_record_org_id"`

	AttendanceRecordSessionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_session_student;column:attendance_record_session_id" json:"attendance_record_session_id"`
	AttendanceRecordStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_session_student;index;column:attendance_record_student_id" json:"attendance_record_student_id"`

	AttendanceRecordStatus   string    `gorm:"type:varchar(8);not null;column:attendance_record_status" json:"attendance_record_status"`
	AttendanceRecordMarkedBy uuid.UUID `gorm:"type:uuid;not null;column:attendance_record_marked_by" json:"attendance_record_marked_by"`
	AttendanceRecordNote     *string   `gorm:"type:text;column:attendance_record_note" json:"attendance_record_note,omitempty"`

	AttendanceRecordCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:attendance_record_created_at" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:attendance_record_updated_at" json:"attendance_record_updated_at"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }

func (m *AttendanceRecordModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceRecordID == uuid.Nil {
		m.AttendanceRecordID = uuid.New()
	}
	return nil
}

func (m *AttendanceRecordModel) BeforeSave(tx *gorm.DB) error {
	switch m.AttendanceRecordStatus {
	case AttendancePresent, AttendanceAbsent, AttendanceExcused, AttendanceLate:
		return nil
	default:
		return errors.New("attendance_record_status geçersiz")
	}
}
