// file: internals/features/meetings/model/meeting_decision_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Karar durumları
const (
	DecisionPending   = "beklemede"
	DecisionApplied   = "uygulandi"
	DecisionCancelled = "iptal"
)

// MeetingDecisionModel: toplantıda alınan karar. Sıra numarası toplantı içinde artar.
type MeetingDecisionModel struct {
	MeetingDecisionID    uuid.UUID `gorm:"type:uuid;primaryKey;column:meeting_decision_id" json:"meeting_decision_id"`
	MeetingDecisionOrgID uuid.UUID `gorm:"type:uuid;not null;index;column:meeting_decision_org_id" json:"meeting_decision_org_id"`

	MeetingDecisionMeetingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_meeting_decision_no;column:meeting_decision_meeting_id" json:"meeting_decision_meeting_id"`
	MeetingDecisionNo        int       `gorm:"type:integer;not null;uniqueIndex:uq_meeting_decision_no;column:meeting_decision_no" json:"meeting_decision_no"`

	MeetingDecisionText   string `gorm:"type:text;not null;column:meeting_decision_text" json:"meeting_decision_text"`
	MeetingDecisionStatus string `gorm:"type:varchar(12);not null;default:beklemede;column:meeting_decision_status" json:"meeting_decision_status"`

	// Opsiyonel yapılandırılmış ek veri (bütçe, sorumlu, termin vb.)
	MeetingDecisionPayload datatypes.JSON `gorm:"type:jsonb;column:meeting_decision_payload" json:"meeting_decision_payload,omitempty"`

	MeetingDecisionCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:meeting_decision_created_at" json:"meeting_decision_created_at"`
	MeetingDecisionUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:meeting_decision_updated_at" json:"meeting_decision_updated_at"`
}

func (MeetingDecisionModel) TableName() string { return "meeting_decisions" }

func (m *MeetingDecisionModel) BeforeCreate(tx *gorm.DB) error {
	if m.MeetingDecisionID == uuid.Nil {
		m.MeetingDecisionID = uuid.New()
	}
	return nil
}

func (m *MeetingDecisionModel) BeforeSave(tx *gorm.DB) error {
	m.MeetingDecisionText = strings.TrimSpace(m.MeetingDecisionText)
	if m.MeetingDecisionText == "" {
		return errors.New("meeting_decision_text boş olamaz")
	}
	switch m.MeetingDecisionStatus {
	case DecisionPending, DecisionApplied, DecisionCancelled:
		return nil
	default:
		return errors.New("meeting_decision_status geçersiz")
	}
}
