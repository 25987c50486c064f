// file: internals/features/syllabus/dto/syllabus_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"egitimportal_backend/internals/features/syllabus/model"
)

/* =======================
   Request DTO
======================= */

type TopicCreateDTO struct {
	Branch string `json:"branch" validate:"required,min=2,max=64"`
	Order  int    `json:"order"  validate:"gte=0"`
	Title  string `json:"title"  validate:"required,min=2"`
}

func (p *TopicCreateDTO) Normalize() {
	p.Branch = strings.ToLower(strings.TrimSpace(p.Branch))
	p.Title = strings.TrimSpace(p.Title)
}

func (p *TopicCreateDTO) ToModel(orgID, periodID uuid.UUID) model.SyllabusTopicModel {
	return model.SyllabusTopicModel{
		SyllabusTopicOrgID:    orgID,
		SyllabusTopicPeriodID: periodID,
		SyllabusTopicBranch:   p.Branch,
		SyllabusTopicOrder:    p.Order,
		SyllabusTopicTitle:    p.Title,
	}
}

type MarkProgressDTO struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status"     validate:"required,oneof=baslamadi devam tamamlandi"`
}

/* =======================
   Response DTO
======================= */

type TopicResponseDTO struct {
	SyllabusTopicID       uuid.UUID `json:"syllabus_topic_id"`
	SyllabusTopicPeriodID uuid.UUID `json:"syllabus_topic_period_id"`
	SyllabusTopicBranch   string    `json:"syllabus_topic_branch"`
	SyllabusTopicOrder    int       `json:"syllabus_topic_order"`
	SyllabusTopicTitle    string    `json:"syllabus_topic_title"`
	SyllabusTopicCreatedAt time.Time `json:"syllabus_topic_created_at"`
}

func FromTopic(ent model.SyllabusTopicModel) TopicResponseDTO {
	return TopicResponseDTO{
		SyllabusTopicID:        ent.SyllabusTopicID,
		SyllabusTopicPeriodID:  ent.SyllabusTopicPeriodID,
		SyllabusTopicBranch:    ent.SyllabusTopicBranch,
		SyllabusTopicOrder:     ent.SyllabusTopicOrder,
		SyllabusTopicTitle:     ent.SyllabusTopicTitle,
		SyllabusTopicCreatedAt: ent.SyllabusTopicCreatedAt,
	}
}

func FromTopics(list []model.SyllabusTopicModel) []TopicResponseDTO {
	out := make([]TopicResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromTopic(it))
	}
	return out
}

type ProgressResponseDTO struct {
	SyllabusProgressID          uuid.UUID  `json:"syllabus_progress_id"`
	SyllabusProgressTopicID     uuid.UUID  `json:"syllabus_progress_topic_id"`
	SyllabusProgressStudentID   uuid.UUID  `json:"syllabus_progress_student_id"`
	SyllabusProgressStatus      string     `json:"syllabus_progress_status"`
	SyllabusProgressCompletedAt *time.Time `json:"syllabus_progress_completed_at,omitempty"`
	SyllabusProgressMarkedBy    uuid.UUID  `json:"syllabus_progress_marked_by"`
	SyllabusProgressUpdatedAt   time.Time  `json:"syllabus_progress_updated_at"`
}

func FromProgress(ent model.SyllabusProgressModel) ProgressResponseDTO {
	return ProgressResponseDTO{
		SyllabusProgressID:          ent.SyllabusProgressID,
		SyllabusProgressTopicID:     ent.SyllabusProgressTopicID,
		SyllabusProgressStudentID:   ent.SyllabusProgressStudentID,
		SyllabusProgressStatus:      ent.SyllabusProgressStatus,
		SyllabusProgressCompletedAt: ent.SyllabusProgressCompletedAt,
		SyllabusProgressMarkedBy:    ent.SyllabusProgressMarkedBy,
		SyllabusProgressUpdatedAt:   ent.SyllabusProgressUpdatedAt,
	}
}

func FromProgressList(list []model.SyllabusProgressModel) []ProgressResponseDTO {
	out := make([]ProgressResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromProgress(it))
	}
	return out
}
