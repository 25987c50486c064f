// file: internals/features/syllabus/model/syllabus_topic_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SyllabusTopicModel: müfredat konusu. Branş içinde sıra numarasıyla dizilir.
type SyllabusTopicModel struct {
	SyllabusTopicID    uuid.UUID `gorm:"type:uuid;primaryKey;column:syllabus_topic_id" json:"syllabus_topic_id"`
	SyllabusTopicOrgID uuid.UUID `gorm:"type:uuid;not null;index;column:syllabus_topic_org_id" json:"syllabus_topic_org_id"`

	SyllabusTopicPeriodID uuid.UUID `gorm:"type:uuid;not null;index;column:syllabus_topic_period_id" json:"syllabus_topic_period_id"`
	SyllabusTopicBranch   string    `gorm:"type:varchar(64);not null;index;column:syllabus_topic_branch" json:"syllabus_topic_branch"`
	SyllabusTopicOrder    int       `gorm:"type:integer;not null;column:syllabus_topic_order" json:"syllabus_topic_order"`
	SyllabusTopicTitle    string    `gorm:"type:text;not null;column:syllabus_topic_title" json:"syllabus_topic_title"`

	SyllabusTopicCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:syllabus_topic_created_at" json:"syllabus_topic_created_at"`
	SyllabusTopicUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:syllabus_topic_updated_at" json:"syllabus_topic_updated_at"`
	SyllabusTopicDeletedAt gorm.DeletedAt `gorm:"column:syllabus_topic_deleted_at;index" json:"syllabus_topic_deleted_at,omitempty"`
}

func (SyllabusTopicModel) TableName() string { return "syllabus_topics" }

func (m *SyllabusTopicModel) BeforeCreate(tx *gorm.DB) error {
	if m.SyllabusTopicID == uuid.Nil {
		m.SyllabusTopicID = uuid.New()
	}
	return nil
}

func (m *SyllabusTopicModel) BeforeSave(tx *gorm.DB) error {
	m.SyllabusTopicTitle = strings.TrimSpace(m.SyllabusTopicTitle)
	m.SyllabusTopicBranch = strings.ToLower(strings.TrimSpace(m.SyllabusTopicBranch))
	if m.SyllabusTopicTitle == "" {
		return errors.New("syllabus_topic_title boş olamaz")
	}
	if m.SyllabusTopicBranch == "" {
		return errors.New("syllabus_topic_branch boş olamaz")
	}
	return nil
}
