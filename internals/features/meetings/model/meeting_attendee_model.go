// file: internals/features/meetings/model/meeting_attendee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeetingAttendeeModel: toplantı katılım satırı (kurul üyeleri)
type MeetingAttendeeModel struct {
	MeetingAttendeeID    uuid.UUID `gorm:"type:uuid;primaryKey;column:meeting_attendee_id" json:"meeting_attendee_id"`
	MeetingAttendeeOrgID uuid.UUID `gorm:"type:uuid;not null;index;column:meeting_attendee_org_id" json:"meeting_attendee_org_id"`

	MeetingAttendeeMeetingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_meeting_attendee;column:meeting_attendee_meeting_id" json:"meeting_attendee_meeting_id"`
	MeetingAttendeeUserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_meeting_attendee;column:meeting_attendee_user_id" json:"meeting_attendee_user_id"`

	MeetingAttendeePresent bool `gorm:"not null;default:true;column:meeting_attendee_present" json:"meeting_attendee_present"`

	MeetingAttendeeCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:meeting_attendee_created_at" json:"meeting_attendee_created_at"`
}

func (MeetingAttendeeModel) TableName() string { return "meeting_attendees" }

func (m *MeetingAttendeeModel) BeforeCreate(tx *gorm.DB) error {
	if m.MeetingAttendeeID == uuid.Nil {
		m.MeetingAttendeeID = uuid.New()
	}
	return nil
}
