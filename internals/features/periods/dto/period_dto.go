// file: internals/features/periods/dto/period_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"egitimportal_backend/internals/features/periods/model"
)

// =======================
// Request DTO
// =======================

type PeriodCreateDTO struct {
	PeriodName        string     `json:"period_name"        validate:"required,min=4"`
	PeriodDescription *string    `json:"period_description,omitempty"`
	PeriodStartDate   time.Time  `json:"period_start_date"  validate:"required"`
	PeriodEndDate     *time.Time `json:"period_end_date,omitempty"`
}

type PeriodUpdateDTO struct {
	PeriodName        *string    `json:"period_name,omitempty" validate:"omitempty,min=4"`
	PeriodDescription *string    `json:"period_description,omitempty"`
	PeriodStartDate   *time.Time `json:"period_start_date,omitempty"`
	PeriodEndDate     *time.Time `json:"period_end_date,omitempty"`
}

// =======================
// Response DTO
// =======================

type PeriodResponseDTO struct {
	PeriodID          uuid.UUID  `json:"period_id"`
	PeriodOrgID       uuid.UUID  `json:"period_org_id"`
	PeriodName        string     `json:"period_name"`
	PeriodDescription *string    `json:"period_description,omitempty"`
	PeriodStartDate   time.Time  `json:"period_start_date"`
	PeriodEndDate     *time.Time `json:"period_end_date,omitempty"`
	PeriodStatus      string     `json:"period_status"`
	PeriodCreatedAt   time.Time  `json:"period_created_at"`
}

// =======================
// Helpers
// =======================

func (p *PeriodCreateDTO) Normalize() {
	p.PeriodName = strings.TrimSpace(p.PeriodName)
}

func (p *PeriodCreateDTO) ToModel(orgID uuid.UUID) model.PeriodModel {
	return model.PeriodModel{
		PeriodOrgID:       orgID,
		PeriodName:        p.PeriodName,
		PeriodDescription: p.PeriodDescription,
		PeriodStartDate:   p.PeriodStartDate,
		PeriodEndDate:     p.PeriodEndDate,
		PeriodStatus:      model.PeriodStatusInactive,
	}
}

func (u *PeriodUpdateDTO) ApplyUpdates(ent *model.PeriodModel) {
	if u.PeriodName != nil {
		ent.PeriodName = strings.TrimSpace(*u.PeriodName)
	}
	if u.PeriodDescription != nil {
		ent.PeriodDescription = u.PeriodDescription
	}
	if u.PeriodStartDate != nil {
		ent.PeriodStartDate = *u.PeriodStartDate
	}
	if u.PeriodEndDate != nil {
		ent.PeriodEndDate = u.PeriodEndDate
	}
}

// Mapper entity -> response
func FromModel(ent model.PeriodModel) PeriodResponseDTO {
	return PeriodResponseDTO{
		PeriodID:          ent.PeriodID,
		PeriodOrgID:       ent.PeriodOrgID,
		PeriodName:        ent.PeriodName,
		PeriodDescription: ent.PeriodDescription,
		PeriodStartDate:   ent.PeriodStartDate,
		PeriodEndDate:     ent.PeriodEndDate,
		PeriodStatus:      ent.PeriodStatus,
		PeriodCreatedAt:   ent.PeriodCreatedAt,
	}
}

func FromModels(list []model.PeriodModel) []PeriodResponseDTO {
	out := make([]PeriodResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
