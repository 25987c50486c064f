// file: internals/features/users/user/model/user_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"egitimportal_backend/internals/constants"
)

type UserModel struct {
	// ============ PK & Tenant ============
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`
	UserOrgID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_users_org_email;column:user_org_id" json:"user_org_id"`

	// ============ Kimlik ============
	UserName  string `gorm:"type:text;not null;column:user_name" json:"user_name"`
	UserEmail string `gorm:"type:text;not null;uniqueIndex:uq_users_org_email;column:user_email" json:"user_email"`
	// uniqueIndex org+email: aynı e-posta farklı kurumlarda olabilir
	UserPasswordHash string `gorm:"type:text;column:user_password_hash" json:"-"`

	// admin | tutor | asistan | kurul | ogrenci | sporcu
	UserRole string `gorm:"type:varchar(16);not null;column:user_role" json:"user_role"`

	// Öğrenci/sporcu için sorumlu tutor
	UserTutorID *uuid.UUID `gorm:"type:uuid;index;column:user_tutor_id" json:"user_tutor_id,omitempty"`

	// ============ Denormalize bakiyeler ============
	// Tek yazma yolu ledger servisi; okuma için otorite ledger toplamıdır.
	UserPoints     int `gorm:"type:integer;not null;default:0;column:user_points" json:"user_points"`
	UserExperience int `gorm:"type:integer;not null;default:0;column:user_experience" json:"user_experience"`

	UserIsActive bool `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	// ============ Audit / Soft delete ============
	UserCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:user_updated_at" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}

// ============ Hooks: validation & light normalization ============
func (m *UserModel) BeforeSave(tx *gorm.DB) error {
	m.UserName = strings.TrimSpace(m.UserName)
	m.UserEmail = strings.ToLower(strings.TrimSpace(m.UserEmail))

	valid := false
	for _, r := range constants.AllRoles {
		if m.UserRole == r {
			valid = true
			break
		}
	}
	if !valid {
		return errors.New("user_role geçersiz")
	}
	return nil
}

// IsStudent: ledger'da öğrenci sayılan roller (ogrenci, sporcu)
func (m *UserModel) IsStudent() bool {
	return constants.IsStudentRole(m.UserRole)
}
