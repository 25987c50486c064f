// file: internals/features/donations/dto/donation_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"egitimportal_backend/internals/features/donations/model"
)

/* =======================
   Request DTO
======================= */

type DonationCreateDTO struct {
	DonorName  string  `json:"donor_name"  validate:"required,min=2"`
	DonorEmail string  `json:"donor_email" validate:"required,email"`
	Amount     int     `json:"amount"      validate:"required,gt=0"`
	Message    *string `json:"message"     validate:"omitempty,max=1000"`
}

func (p *DonationCreateDTO) Normalize() {
	p.DonorName = strings.TrimSpace(p.DonorName)
	p.DonorEmail = strings.ToLower(strings.TrimSpace(p.DonorEmail))
	if p.Message != nil {
		m := strings.TrimSpace(*p.Message)
		if m == "" {
			p.Message = nil
		} else {
			p.Message = &m
		}
	}
}

func (p *DonationCreateDTO) ToModel(orgID uuid.UUID, orderID string) model.DonationModel {
	return model.DonationModel{
		DonationOrgID:      orgID,
		DonationDonorName:  p.DonorName,
		DonationDonorEmail: p.DonorEmail,
		DonationMessage:    p.Message,
		DonationAmount:     p.Amount,
		DonationOrderID:    orderID,
		DonationStatus:     model.DonationPending,
	}
}

/* =======================
   Response DTO
======================= */

type DonationResponseDTO struct {
	DonationID         uuid.UUID  `json:"donation_id"`
	DonationDonorName  string     `json:"donation_donor_name"`
	DonationDonorEmail string     `json:"donation_donor_email"`
	DonationMessage    *string    `json:"donation_message,omitempty"`
	DonationAmount     int        `json:"donation_amount"`
	DonationOrderID    string     `json:"donation_order_id"`
	DonationStatus     string     `json:"donation_status"`
	DonationPaidAt     *time.Time `json:"donation_paid_at,omitempty"`
	DonationCreatedAt  time.Time  `json:"donation_created_at"`
}

func FromModel(ent model.DonationModel) DonationResponseDTO {
	return DonationResponseDTO{
		DonationID:         ent.DonationID,
		DonationDonorName:  ent.DonationDonorName,
		DonationDonorEmail: ent.DonationDonorEmail,
		DonationMessage:    ent.DonationMessage,
		DonationAmount:     ent.DonationAmount,
		DonationOrderID:    ent.DonationOrderID,
		DonationStatus:     ent.DonationStatus,
		DonationPaidAt:     ent.DonationPaidAt,
		DonationCreatedAt:  ent.DonationCreatedAt,
	}
}

func FromModels(list []model.DonationModel) []DonationResponseDTO {
	out := make([]DonationResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
