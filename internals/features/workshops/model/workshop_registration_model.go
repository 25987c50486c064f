// file: internals/features/workshops/model/workshop_registration_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkshopRegistrationModel: öğrenci kaydı. (workshop, student) tekildir;
// kontenjan kontrolü kayıt transaction'ı içinde yapılır.
type WorkshopRegistrationModel struct {
	WorkshopRegistrationID    uuid.UUID `gorm:"type:uuid;primaryKey;column:workshop_registration_id" json:"workshop_registration_id"`
	WorkshopRegistrationOrgID uuid.UUID `gorm:"type:uuid;not null;index;column:workshop_registration_org_id" json:"workshop_registration_org_id"`

	WorkshopRegistrationWorkshopID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_workshop_student;column:workshop_registration_workshop_id" json:"workshop_registration_workshop_id"`
	WorkshopRegistrationStudentID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_workshop_student;index;column:workshop_registration_student_id" json:"workshop_registration_student_id"`

	WorkshopRegistrationCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:workshop_registration_created_at" json:"workshop_registration_created_at"`
}

func (WorkshopRegistrationModel) TableName() string { return "workshop_registrations" }

func (m *WorkshopRegistrationModel) BeforeCreate(tx *gorm.DB) error {
	if m.WorkshopRegistrationID == uuid.Nil {
		m.WorkshopRegistrationID = uuid.New()
	}
	return nil
}
