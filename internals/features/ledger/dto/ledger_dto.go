// file: internals/features/ledger/dto/ledger_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"egitimportal_backend/internals/features/ledger/model"
)

// =======================
// Request DTO
// =======================

type AwardPointsDTO struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	// işaretli: >0 ekleme, <0 düşme
	Points int    `json:"points" validate:"required"`
	Reason string `json:"reason" validate:"required,min=2"`
}

type GrantExperienceDTO struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Amount    int       `json:"amount"     validate:"required"`
	Reason    string    `json:"reason"     validate:"omitempty,min=2"`
}

type RollbackDTO struct {
	TransactionID   uuid.UUID `json:"transaction_id"   validate:"required"`
	TransactionType string    `json:"transaction_type" validate:"required,oneof=puan deneyim"`
	Reason          string    `json:"reason"           validate:"required,min=2"`
}

func (p *AwardPointsDTO) Normalize()     { p.Reason = strings.TrimSpace(p.Reason) }
func (p *GrantExperienceDTO) Normalize() { p.Reason = strings.TrimSpace(p.Reason) }
func (p *RollbackDTO) Normalize()        { p.Reason = strings.TrimSpace(p.Reason) }

// =======================
// Response DTO
// =======================

type PointsTransactionResponseDTO struct {
	PointsTxID         uuid.UUID `json:"points_tx_id"`
	PointsTxStudentID  uuid.UUID `json:"points_tx_student_id"`
	PointsTxActorID    uuid.UUID `json:"points_tx_actor_id"`
	PointsTxPoints     int       `json:"points_tx_points"`
	PointsTxType       string    `json:"points_tx_type"`
	PointsTxReason     string    `json:"points_tx_reason"`
	PointsTxPeriodID   uuid.UUID `json:"points_tx_period_id"`
	PointsTxRolledBack bool      `json:"points_tx_rolled_back"`
	PointsTxCreatedAt  time.Time `json:"points_tx_created_at"`
}

type ExperienceTransactionResponseDTO struct {
	ExperienceTxID         uuid.UUID `json:"experience_tx_id"`
	ExperienceTxStudentID  uuid.UUID `json:"experience_tx_student_id"`
	ExperienceTxActorID    uuid.UUID `json:"experience_tx_actor_id"`
	ExperienceTxAmount     int       `json:"experience_tx_amount"`
	ExperienceTxReason     string    `json:"experience_tx_reason"`
	ExperienceTxPeriodID   uuid.UUID `json:"experience_tx_period_id"`
	ExperienceTxRolledBack bool      `json:"experience_tx_rolled_back"`
	ExperienceTxCreatedAt  time.Time `json:"experience_tx_created_at"`
}

type RollbackResponseDTO struct {
	RollbackID              uuid.UUID `json:"rollback_id"`
	RollbackTransactionID   uuid.UUID `json:"rollback_transaction_id"`
	RollbackTransactionType string    `json:"rollback_transaction_type"`
	RollbackStudentID       uuid.UUID `json:"rollback_student_id"`
	RollbackAdminID         uuid.UUID `json:"rollback_admin_id"`
	RollbackReason          string    `json:"rollback_reason"`
	RollbackPeriodID        uuid.UUID `json:"rollback_period_id"`
	RollbackCreatedAt       time.Time `json:"rollback_created_at"`
}

// =======================
// Mappers
// =======================

func FromPointsTx(ent model.PointsTransactionModel) PointsTransactionResponseDTO {
	return PointsTransactionResponseDTO{
		PointsTxID:         ent.PointsTxID,
		PointsTxStudentID:  ent.PointsTxStudentID,
		PointsTxActorID:    ent.PointsTxActorID,
		PointsTxPoints:     ent.PointsTxPoints,
		PointsTxType:       ent.PointsTxType,
		PointsTxReason:     ent.PointsTxReason,
		PointsTxPeriodID:   ent.PointsTxPeriodID,
		PointsTxRolledBack: ent.PointsTxRolledBack,
		PointsTxCreatedAt:  ent.PointsTxCreatedAt,
	}
}

func FromPointsTxs(list []model.PointsTransactionModel) []PointsTransactionResponseDTO {
	out := make([]PointsTransactionResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromPointsTx(it))
	}
	return out
}

func FromExperienceTx(ent model.ExperienceTransactionModel) ExperienceTransactionResponseDTO {
	return ExperienceTransactionResponseDTO{
		ExperienceTxID:         ent.ExperienceTxID,
		ExperienceTxStudentID:  ent.ExperienceTxStudentID,
		ExperienceTxActorID:    ent.ExperienceTxActorID,
		ExperienceTxAmount:     ent.ExperienceTxAmount,
		ExperienceTxReason:     ent.ExperienceTxReason,
		ExperienceTxPeriodID:   ent.ExperienceTxPeriodID,
		ExperienceTxRolledBack: ent.ExperienceTxRolledBack,
		ExperienceTxCreatedAt:  ent.ExperienceTxCreatedAt,
	}
}

func FromExperienceTxs(list []model.ExperienceTransactionModel) []ExperienceTransactionResponseDTO {
	out := make([]ExperienceTransactionResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromExperienceTx(it))
	}
	return out
}

func FromRollback(ent model.TransactionRollbackModel) RollbackResponseDTO {
	return RollbackResponseDTO{
		RollbackID:              ent.RollbackID,
		RollbackTransactionID:   ent.RollbackTransactionID,
		RollbackTransactionType: ent.RollbackTransactionType,
		RollbackStudentID:       ent.RollbackStudentID,
		RollbackAdminID:         ent.RollbackAdminID,
		RollbackReason:          ent.RollbackReason,
		RollbackPeriodID:        ent.RollbackPeriodID,
		RollbackCreatedAt:       ent.RollbackCreatedAt,
	}
}
