// file: internals/features/donations/model/donation_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bağış durumları
const (
	DonationPending  = "beklemede"
	DonationPaid     = "odendi"
	DonationCanceled = "iptal"
	DonationExpired  = "zamanasimi"
)

// DonationModel: midtrans Snap ile alınan bağış kaydı
type DonationModel struct {
	DonationID    uuid.UUID `gorm:"type:uuid;primaryKey;column:donation_id" json:"donation_id"`
	DonationOrgID uuid.UUID `gorm:"type:uuid;not null;index;column:donation_org_id" json:"donation_org_id"`

	DonationDonorName  string  `gorm:"type:text;not null;column:donation_donor_name" json:"donation_donor_name"`
	DonationDonorEmail string  `gorm:"type:text;not null;column:donation_donor_email" json:"donation_donor_email"`
	DonationMessage    *string `gorm:"type:text;column:donation_message" json:"donation_message,omitempty"`

	// Kuruş değil tam TL; ödeme sağlayıcıya int64 olarak geçilir
	DonationAmount int `gorm:"type:integer;not null;column:donation_amount" json:"donation_amount"`

	DonationOrderID string `gorm:"type:varchar(64);not null;uniqueIndex;column:donation_order_id" json:"donation_order_id"`
	DonationStatus  string `gorm:"type:varchar(12);not null;default:beklemede;column:donation_status" json:"donation_status"`

	DonationPaidAt *time.Time `gorm:"type:timestamptz;column:donation_paid_at" json:"donation_paid_at,omitempty"`

	DonationCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:donation_created_at" json:"donation_created_at"`
	DonationUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:donation_updated_at" json:"donation_updated_at"`
}

func (DonationModel) TableName() string { return "donations" }

func (m *DonationModel) BeforeCreate(tx *gorm.DB) error {
	if m.DonationID == uuid.Nil {
		m.DonationID = uuid.New()
	}
	return nil
}

func (m *DonationModel) BeforeSave(tx *gorm.DB) error {
	m.DonationDonorName = strings.TrimSpace(m.DonationDonorName)
	m.DonationDonorEmail = strings.ToLower(strings.TrimSpace(m.DonationDonorEmail))
	if m.DonationAmount <= 0 {
		return errors.New("donation_amount > 0 olmalı")
	}
	switch m.DonationStatus {
	case DonationPending, DonationPaid, DonationCanceled, DonationExpired:
		return nil
	default:
		return errors.New("donation_status geçersiz")
	}
}
