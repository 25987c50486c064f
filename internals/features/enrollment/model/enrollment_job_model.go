// file: internals/features/enrollment/model/enrollment_job_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/*
Durumlar:
  - beklemede : kuyrukta, worker gönderecek
  - gonderildi: upstream kabul etti
  - hata      : deneme hakkı bitti, manuel müdahale gerekir
*/
const (
	JobStatusPending = "beklemede"
	JobStatusSent    = "gonderildi"
	JobStatusFailed  = "hata"
)

const MaxAttempts = 5

type EnrollmentJobModel struct {
	EnrollmentJobID        uuid.UUID `gorm:"type:uuid;primaryKey;column:enrollment_job_id" json:"enrollment_job_id"`
	EnrollmentJobOrgID     uuid.UUID `gorm:"type:uuid;not null;index;column:enrollment_job_org_id" json:"enrollment_job_org_id"`
	EnrollmentJobStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:enrollment_job_student_id" json:"enrollment_job_student_id"`

	// Upstream'e giden JSON gövdesi (öğrenci + dönem bilgisi).
	EnrollmentJobPayload datatypes.JSON `gorm:"type:jsonb;not null;column:enrollment_job_payload" json:"enrollment_job_payload"`

	// Aynı öğrenci+dönem için tek iş; upstream'e de Idempotency-Key olarak gider.
	EnrollmentJobIdempotencyKey string `gorm:"type:text;not null;uniqueIndex:uq_enrollment_job_idem;column:enrollment_job_idempotency_key" json:"enrollment_job_idempotency_key"`

	EnrollmentJobStatus        string     `gorm:"type:varchar(16);not null;default:'beklemede';index;column:enrollment_job_status" json:"enrollment_job_status"`
	EnrollmentJobAttempts      int        `gorm:"not null;default:0;column:enrollment_job_attempts" json:"enrollment_job_attempts"`
	EnrollmentJobLastError     *string    `gorm:"type:text;column:enrollment_job_last_error" json:"enrollment_job_last_error,omitempty"`
	EnrollmentJobNextAttemptAt *time.Time `gorm:"column:enrollment_job_next_attempt_at" json:"enrollment_job_next_attempt_at,omitempty"`
	EnrollmentJobSentAt        *time.Time `gorm:"column:enrollment_job_sent_at" json:"enrollment_job_sent_at,omitempty"`

	EnrollmentJobCreatedAt time.Time      `gorm:"autoCreateTime;column:enrollment_job_created_at" json:"enrollment_job_created_at"`
	EnrollmentJobUpdatedAt time.Time      `gorm:"autoUpdateTime;column:enrollment_job_updated_at" json:"enrollment_job_updated_at"`
	EnrollmentJobDeletedAt gorm.DeletedAt `gorm:"index;column:enrollment_job_deleted_at" json:"-"`
}

func (EnrollmentJobModel) TableName() string { return "enrollment_jobs" }

func (m *EnrollmentJobModel) BeforeCreate(tx *gorm.DB) error {
	if m.EnrollmentJobID == uuid.Nil {
		m.EnrollmentJobID = uuid.New()
	}
	if m.EnrollmentJobStatus == "" {
		m.EnrollmentJobStatus = JobStatusPending
	}
	return nil
}
