// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"egitimportal_backend/internals/features/users/user/model"
)

// =======================
// Request DTO
// =======================

type UserCreateDTO struct {
	UserName     string     `json:"user_name"     validate:"required,min=2"`
	UserEmail    string     `json:"user_email"    validate:"required,email"`
	UserPassword string     `json:"user_password" validate:"required,min=8"`
	UserRole     string     `json:"user_role"     validate:"required,oneof=admin tutor asistan kurul ogrenci sporcu"`
	UserTutorID  *uuid.UUID `json:"user_tutor_id,omitempty"`
}

type UserUpdateDTO struct {
	UserName     *string    `json:"user_name,omitempty"     validate:"omitempty,min=2"`
	UserRole     *string    `json:"user_role,omitempty"     validate:"omitempty,oneof=admin tutor asistan kurul ogrenci sporcu"`
	UserTutorID  *uuid.UUID `json:"user_tutor_id,omitempty"`
	UserIsActive *bool      `json:"user_is_active,omitempty"`
}

type AssignTutorDTO struct {
	UserTutorID uuid.UUID `json:"user_tutor_id" validate:"required"`
}

// =======================
// Response DTO
// =======================

type UserResponseDTO struct {
	UserID         uuid.UUID  `json:"user_id"`
	UserOrgID      uuid.UUID  `json:"user_org_id"`
	UserName       string     `json:"user_name"`
	UserEmail      string     `json:"user_email"`
	UserRole       string     `json:"user_role"`
	UserTutorID    *uuid.UUID `json:"user_tutor_id,omitempty"`
	UserPoints     int        `json:"user_points"`
	UserExperience int        `json:"user_experience"`
	UserIsActive   bool       `json:"user_is_active"`
	UserCreatedAt  time.Time  `json:"user_created_at"`
}

// =======================
// Helpers
// =======================

func (p *UserCreateDTO) Normalize() {
	p.UserName = strings.TrimSpace(p.UserName)
	p.UserEmail = strings.ToLower(strings.TrimSpace(p.UserEmail))
}

func (p *UserCreateDTO) ToModel(orgID uuid.UUID, passwordHash string) model.UserModel {
	return model.UserModel{
		UserOrgID:        orgID,
		UserName:         p.UserName,
		UserEmail:        p.UserEmail,
		UserPasswordHash: passwordHash,
		UserRole:         p.UserRole,
		UserTutorID:      p.UserTutorID,
	}
}

func (u *UserUpdateDTO) ApplyUpdates(ent *model.UserModel) {
	if u.UserName != nil {
		ent.UserName = strings.TrimSpace(*u.UserName)
	}
	if u.UserRole != nil {
		ent.UserRole = *u.UserRole
	}
	if u.UserTutorID != nil {
		ent.UserTutorID = u.UserTutorID
	}
	if u.UserIsActive != nil {
		ent.UserIsActive = *u.UserIsActive
	}
}

// Mapper entity -> response
func FromModel(ent model.UserModel) UserResponseDTO {
	return UserResponseDTO{
		UserID:         ent.UserID,
		UserOrgID:      ent.UserOrgID,
		UserName:       ent.UserName,
		UserEmail:      ent.UserEmail,
		UserRole:       ent.UserRole,
		UserTutorID:    ent.UserTutorID,
		UserPoints:     ent.UserPoints,
		UserExperience: ent.UserExperience,
		UserIsActive:   ent.UserIsActive,
		UserCreatedAt:  ent.UserCreatedAt,
	}
}

func FromModels(list []model.UserModel) []UserResponseDTO {
	out := make([]UserResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
