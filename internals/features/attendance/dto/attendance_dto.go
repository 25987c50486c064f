// file: internals/features/attendance/dto/attendance_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"egitimportal_backend/internals/features/attendance/model"
)

/* =======================
   Request DTO
======================= */

type SessionCreateDTO struct {
	Title string    `json:"title" validate:"required,min=2"`
	Date  time.Time `json:"date"  validate:"required"`
}

func (p *SessionCreateDTO) Normalize() { p.Title = strings.TrimSpace(p.Title) }

func (p *SessionCreateDTO) ToModel(orgID, periodID, openedBy uuid.UUID) model.AttendanceSessionModel {
	return model.AttendanceSessionModel{
		AttendanceSessionOrgID:    orgID,
		AttendanceSessionTitle:    p.Title,
		AttendanceSessionDate:     p.Date,
		AttendanceSessionPeriodID: periodID,
		AttendanceSessionOpenedBy: openedBy,
	}
}

type MarkAttendanceDTO struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status"     validate:"required,oneof=geldi gelmedi izinli gec"`
	Note      *string   `json:"note"       validate:"omitempty,max=500"`
}

/* =======================
   Response DTO
======================= */

type SessionResponseDTO struct {
	AttendanceSessionID       uuid.UUID `json:"attendance_session_id"`
	AttendanceSessionTitle    string    `json:"attendance_session_title"`
	AttendanceSessionDate     time.Time `json:"attendance_session_date"`
	AttendanceSessionPeriodID uuid.UUID `json:"attendance_session_period_id"`
	AttendanceSessionOpenedBy uuid.UUID `json:"attendance_session_opened_by"`
	AttendanceSessionCreatedAt time.Time `json:"attendance_session_created_at"`
}

type RecordResponseDTO struct {
	AttendanceRecordID        uuid.UUID `json:"attendance_record_id"`
	AttendanceRecordSessionID uuid.UUID `json:"attendance_record_session_id"`
	AttendanceRecordStudentID uuid.UUID `json:"attendance_record_student_id"`
	AttendanceRecordStatus    string    `json:"attendance_record_status"`
	AttendanceRecordMarkedBy  uuid.UUID `json:"attendance_record_marked_by"`
	AttendanceRecordNote      *string   `json:"attendance_record_note,omitempty"`
	AttendanceRecordCreatedAt time.Time `json:"attendance_record_created_at"`
}

func FromSession(ent model.AttendanceSessionModel) SessionResponseDTO {
	return SessionResponseDTO{
		AttendanceSessionID:        ent.AttendanceSessionID,
		AttendanceSessionTitle:     ent.AttendanceSessionTitle,
		AttendanceSessionDate:      ent.AttendanceSessionDate,
		AttendanceSessionPeriodID:  ent.AttendanceSessionPeriodID,
		AttendanceSessionOpenedBy:  ent.AttendanceSessionOpenedBy,
		AttendanceSessionCreatedAt: ent.AttendanceSessionCreatedAt,
	}
}

func FromSessions(list []model.AttendanceSessionModel) []SessionResponseDTO {
	out := make([]SessionResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromSession(it))
	}
	return out
}

func FromRecord(ent model.AttendanceRecordModel) RecordResponseDTO {
	return RecordResponseDTO{
		AttendanceRecordID:        ent.AttendanceRecordID,
		AttendanceRecordSessionID: ent.AttendanceRecordSessionID,
		AttendanceRecordStudentID: ent.AttendanceRecordStudentID,
		AttendanceRecordStatus:    ent.AttendanceRecordStatus,
		AttendanceRecordMarkedBy:  ent.AttendanceRecordMarkedBy,
		AttendanceRecordNote:      ent.AttendanceRecordNote,
		AttendanceRecordCreatedAt: ent.AttendanceRecordCreatedAt,
	}
}

func FromRecords(list []model.AttendanceRecordModel) []RecordResponseDTO {
	out := make([]RecordResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromRecord(it))
	}
	return out
}
