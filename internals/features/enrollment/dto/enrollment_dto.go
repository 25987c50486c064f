// file: internals/features/enrollment/dto/enrollment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "egitimportal_backend/internals/features/enrollment/model"
)

/* ============================================
   REQUEST DTO
============================================ */

// Toplu kuyruğa alma: her öğrenci kendi işi olarak yazılır,
// biri düşse diğerleri etkilenmez.
type EnqueueDTO struct {
	StudentIDs []uuid.UUID `json:"student_ids" validate:"required,min=1,max=100,dive,required"`
}

/* ============================================
   RESPONSE DTO
============================================ */

type EnrollmentJobResponseDTO struct {
	EnrollmentJobID        uuid.UUID  `json:"enrollment_job_id"`
	EnrollmentJobStudentID uuid.UUID  `json:"enrollment_job_student_id"`
	EnrollmentJobStatus    string     `json:"enrollment_job_status"`
	EnrollmentJobAttempts  int        `json:"enrollment_job_attempts"`
	EnrollmentJobLastError *string    `json:"enrollment_job_last_error,omitempty"`
	EnrollmentJobSentAt    *time.Time `json:"enrollment_job_sent_at,omitempty"`
	EnrollmentJobCreatedAt time.Time  `json:"enrollment_job_created_at"`
}

func FromModel(m model.EnrollmentJobModel) EnrollmentJobResponseDTO {
	return EnrollmentJobResponseDTO{
		EnrollmentJobID:        m.EnrollmentJobID,
		EnrollmentJobStudentID: m.EnrollmentJobStudentID,
		EnrollmentJobStatus:    m.EnrollmentJobStatus,
		EnrollmentJobAttempts:  m.EnrollmentJobAttempts,
		EnrollmentJobLastError: m.EnrollmentJobLastError,
		EnrollmentJobSentAt:    m.EnrollmentJobSentAt,
		EnrollmentJobCreatedAt: m.EnrollmentJobCreatedAt,
	}
}

func FromModels(list []model.EnrollmentJobModel) []EnrollmentJobResponseDTO {
	out := make([]EnrollmentJobResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
