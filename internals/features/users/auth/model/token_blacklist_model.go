// file: internals/features/users/auth/model/token_blacklist_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklist: logout edilen access token'lar. Scheduler süresi dolanları temizler.
type TokenBlacklist struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Token     string         `gorm:"type:text;not null;index;column:token" json:"token"`
	ExpiredAt time.Time      `gorm:"type:timestamptz;not null;column:expired_at" json:"expired_at"`
	CreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:created_at" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }

func (m *TokenBlacklist) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
