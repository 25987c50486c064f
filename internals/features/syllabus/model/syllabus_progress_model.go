// file: internals/features/syllabus/model/syllabus_progress_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// İlerleme durumları
const (
	ProgressNotStarted = "baslamadi"
	ProgressInProgress = "devam"
	ProgressCompleted  = "tamamlandi"
)

// SyllabusProgressModel: öğrencinin konu bazlı ilerlemesi.
// (topic, student) tekildir; işaretleme upsert ile yapılır.
type SyllabusProgressModel struct {
	SyllabusProgressID    uuid.UUID `gorm:"type:uuid;primaryKey;column:syllabus_progress_id" json:"syllabus_progress_id"`
	SyllabusProgressOrgID uuid.UUID `gorm:"type:uuid;not null;index;column:syllabus_progress_org_id" json:"syllabus_progress_org_id"`

	SyllabusProgressTopicID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_syllabus_topic_student;column:syllabus_progress_topic_id" json:"syllabus_progress_topic_id"`
	SyllabusProgressStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_syllabus_topic_student;index;column:syllabus_progress_student_id" json:"syllabus_progress_student_id"`

	SyllabusProgressStatus      string     `gorm:"type:varchar(12);not null;default:baslamadi;column:syllabus_progress_status" json:"syllabus_progress_status"`
	SyllabusProgressCompletedAt *time.Time `gorm:"type:timestamptz;column:syllabus_progress_completed_at" json:"syllabus_progress_completed_at,omitempty"`
	SyllabusProgressMarkedBy    uuid.UUID  `gorm:"type:uuid;not null;column:syllabus_progress_marked_by" json:"syllabus_progress_marked_by"`

	SyllabusProgressCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:syllabus_progress_created_at" json:"syllabus_progress_created_at"`
	SyllabusProgressUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:syllabus_progress_updated_at" json:"syllabus_progress_updated_at"`
}

func (SyllabusProgressModel) TableName() string { return "syllabus_progress" }

func (m *SyllabusProgressModel) BeforeCreate(tx *gorm.DB) error {
	if m.SyllabusProgressID == uuid.Nil {
		m.SyllabusProgressID = uuid.New()
	}
	return nil
}

func (m *SyllabusProgressModel) BeforeSave(tx *gorm.DB) error {
	switch m.SyllabusProgressStatus {
	case ProgressNotStarted, ProgressInProgress, ProgressCompleted:
		return nil
	default:
		return errors.New("syllabus_progress_status geçersiz")
	}
}
