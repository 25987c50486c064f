// file: internals/features/notifications/dto/notification_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"egitimportal_backend/internals/features/notifications/model"
)

/* =======================
   Request DTO
======================= */

type BroadcastDTO struct {
	// Boş bırakılırsa role göre hedeflenir
	Recipients []uuid.UUID `json:"recipients" validate:"omitempty,min=1"`
	Role       *string     `json:"role"       validate:"omitempty,oneof=admin tutor asistan kurul ogrenci sporcu"`
	Title      string      `json:"title"      validate:"required,min=2"`
	Body       string      `json:"body"       validate:"required,min=2"`
}

func (p *BroadcastDTO) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Body = strings.TrimSpace(p.Body)
}

/* =======================
   Response DTO
======================= */

type NotificationResponseDTO struct {
	NotificationID        uuid.UUID  `json:"notification_id"`
	NotificationKind      string     `json:"notification_kind"`
	NotificationTitle     string     `json:"notification_title"`
	NotificationBody      string     `json:"notification_body"`
	NotificationReadAt    *time.Time `json:"notification_read_at,omitempty"`
	NotificationCreatedAt time.Time  `json:"notification_created_at"`
}

func FromModel(ent model.NotificationModel) NotificationResponseDTO {
	return NotificationResponseDTO{
		NotificationID:        ent.NotificationID,
		NotificationKind:      ent.NotificationKind,
		NotificationTitle:     ent.NotificationTitle,
		NotificationBody:      ent.NotificationBody,
		NotificationReadAt:    ent.NotificationReadAt,
		NotificationCreatedAt: ent.NotificationCreatedAt,
	}
}

func FromModels(list []model.NotificationModel) []NotificationResponseDTO {
	out := make([]NotificationResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
