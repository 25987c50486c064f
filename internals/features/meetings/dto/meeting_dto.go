// file: internals/features/meetings/dto/meeting_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"egitimportal_backend/internals/features/meetings/model"
)

/* =======================
   Request DTO
======================= */

type MeetingCreateDTO struct {
	Title     string    `json:"title"      validate:"required,min=2"`
	Agenda    *string   `json:"agenda"     validate:"omitempty,max=4000"`
	MeetingAt time.Time `json:"meeting_at" validate:"required"`
}

func (p *MeetingCreateDTO) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	if p.Agenda != nil {
		a := strings.TrimSpace(*p.Agenda)
		if a == "" {
			p.Agenda = nil
		} else {
			p.Agenda = &a
		}
	}
}

func (p *MeetingCreateDTO) ToModel(orgID, periodID, createdBy uuid.UUID) model.MeetingModel {
	return model.MeetingModel{
		MeetingOrgID:     orgID,
		MeetingTitle:     p.Title,
		MeetingAgenda:    p.Agenda,
		MeetingAt:        p.MeetingAt,
		MeetingPeriodID:  periodID,
		MeetingCreatedBy: createdBy,
	}
}

type DecisionCreateDTO struct {
	Text    string         `json:"text"    validate:"required,min=2"`
	Payload datatypes.JSON `json:"payload" validate:"omitempty"`
}

func (p *DecisionCreateDTO) Normalize() { p.Text = strings.TrimSpace(p.Text) }

type DecisionStatusDTO struct {
	Status string `json:"status" validate:"required,oneof=beklemede uygulandi iptal"`
}

type AttendeeDTO struct {
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	Present bool      `json:"present"`
}

/* =======================
   Response DTO
======================= */

type MeetingResponseDTO struct {
	MeetingID        uuid.UUID `json:"meeting_id"`
	MeetingTitle     string    `json:"meeting_title"`
	MeetingAgenda    *string   `json:"meeting_agenda,omitempty"`
	MeetingAt        time.Time `json:"meeting_at"`
	MeetingPeriodID  uuid.UUID `json:"meeting_period_id"`
	MeetingCreatedBy uuid.UUID `json:"meeting_created_by"`
	MeetingCreatedAt time.Time `json:"meeting_created_at"`
}

type DecisionResponseDTO struct {
	MeetingDecisionID        uuid.UUID      `json:"meeting_decision_id"`
	MeetingDecisionMeetingID uuid.UUID      `json:"meeting_decision_meeting_id"`
	MeetingDecisionNo        int            `json:"meeting_decision_no"`
	MeetingDecisionText      string         `json:"meeting_decision_text"`
	MeetingDecisionStatus    string         `json:"meeting_decision_status"`
	MeetingDecisionPayload   datatypes.JSON `json:"meeting_decision_payload,omitempty"`
	MeetingDecisionCreatedAt time.Time      `json:"meeting_decision_created_at"`
}

func FromMeeting(ent model.MeetingModel) MeetingResponseDTO {
	return MeetingResponseDTO{
		MeetingID:        ent.MeetingID,
		MeetingTitle:     ent.MeetingTitle,
		MeetingAgenda:    ent.MeetingAgenda,
		MeetingAt:        ent.MeetingAt,
		MeetingPeriodID:  ent.MeetingPeriodID,
		MeetingCreatedBy: ent.MeetingCreatedBy,
		MeetingCreatedAt: ent.MeetingCreatedAt,
	}
}

func FromMeetings(list []model.MeetingModel) []MeetingResponseDTO {
	out := make([]MeetingResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromMeeting(it))
	}
	return out
}

func FromDecision(ent model.MeetingDecisionModel) DecisionResponseDTO {
	return DecisionResponseDTO{
		MeetingDecisionID:        ent.MeetingDecisionID,
		MeetingDecisionMeetingID: ent.MeetingDecisionMeetingID,
		MeetingDecisionNo:        ent.MeetingDecisionNo,
		MeetingDecisionText:      ent.MeetingDecisionText,
		MeetingDecisionStatus:    ent.MeetingDecisionStatus,
		MeetingDecisionPayload:   ent.MeetingDecisionPayload,
		MeetingDecisionCreatedAt: ent.MeetingDecisionCreatedAt,
	}
}

func FromDecisions(list []model.MeetingDecisionModel) []DecisionResponseDTO {
	out := make([]DecisionResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromDecision(it))
	}
	return out
}
