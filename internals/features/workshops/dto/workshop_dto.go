// file: internals/features/workshops/dto/workshop_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"egitimportal_backend/internals/features/workshops/model"
)

/* =======================
   Request DTO
======================= */

type WorkshopCreateDTO struct {
	Title       string    `json:"title"       validate:"required,min=2"`
	Description *string   `json:"description" validate:"omitempty,max=4000"`
	Capacity    int       `json:"capacity"    validate:"gte=0"`
	StartsAt    time.Time `json:"starts_at"   validate:"required"`
}

func (p *WorkshopCreateDTO) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	if p.Description != nil {
		d := strings.TrimSpace(*p.Description)
		if d == "" {
			p.Description = nil
		} else {
			p.Description = &d
		}
	}
}

func (p *WorkshopCreateDTO) ToModel(orgID, periodID uuid.UUID) model.WorkshopModel {
	return model.WorkshopModel{
		WorkshopOrgID:       orgID,
		WorkshopTitle:       p.Title,
		WorkshopDescription: p.Description,
		WorkshopCapacity:    p.Capacity,
		WorkshopStartsAt:    p.StartsAt,
		WorkshopPeriodID:    periodID,
	}
}

type WorkshopUpdateDTO struct {
	Title       *string    `json:"title"       validate:"omitempty,min=2"`
	Description *string    `json:"description" validate:"omitempty,max=4000"`
	Capacity    *int       `json:"capacity"    validate:"omitempty,gte=0"`
	StartsAt    *time.Time `json:"starts_at"`
}

func (p *WorkshopUpdateDTO) ApplyUpdates(ent *model.WorkshopModel) {
	if p.Title != nil {
		ent.WorkshopTitle = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		ent.WorkshopDescription = p.Description
	}
	if p.Capacity != nil {
		ent.WorkshopCapacity = *p.Capacity
	}
	if p.StartsAt != nil {
		ent.WorkshopStartsAt = *p.StartsAt
	}
}

/* =======================
   Response DTO
======================= */

type WorkshopResponseDTO struct {
	WorkshopID          uuid.UUID `json:"workshop_id"`
	WorkshopTitle       string    `json:"workshop_title"`
	WorkshopDescription *string   `json:"workshop_description,omitempty"`
	WorkshopCapacity    int       `json:"workshop_capacity"`
	WorkshopImageURL    *string   `json:"workshop_image_url,omitempty"`
	WorkshopStartsAt    time.Time `json:"workshop_starts_at"`
	WorkshopPeriodID    uuid.UUID `json:"workshop_period_id"`
	RegisteredCount     int64     `json:"registered_count"`
}

func FromModel(ent model.WorkshopModel, registered int64) WorkshopResponseDTO {
	return WorkshopResponseDTO{
		WorkshopID:          ent.WorkshopID,
		WorkshopTitle:       ent.WorkshopTitle,
		WorkshopDescription: ent.WorkshopDescription,
		WorkshopCapacity:    ent.WorkshopCapacity,
		WorkshopImageURL:    ent.WorkshopImageURL,
		WorkshopStartsAt:    ent.WorkshopStartsAt,
		WorkshopPeriodID:    ent.WorkshopPeriodID,
		RegisteredCount:     registered,
	}
}
