// file: internals/features/store/model/store_item_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreItemModel: puanla alınabilen ödül
type StoreItemModel struct {
	StoreItemID    uuid.UUID `gorm:"type:uuid;primaryKey;column:store_item_id" json:"store_item_id"`
	StoreItemOrgID uuid.UUID `gorm:"type:uuid;not null;index;column:store_item_org_id" json:"store_item_org_id"`

	StoreItemName        string  `gorm:"type:text;not null;column:store_item_name" json:"store_item_name"`
	StoreItemDescription *string `gorm:"type:text;column:store_item_description" json:"store_item_description,omitempty"`

	// Puan cinsinden fiyat
	StoreItemPrice    int     `gorm:"type:integer;not null;column:store_item_price" json:"store_item_price"`
	StoreItemStock    int     `gorm:"type:integer;not null;default:0;column:store_item_stock" json:"store_item_stock"`
	StoreItemImageURL *string `gorm:"type:text;column:store_item_image_url" json:"store_item_image_url,omitempty"`
	StoreItemIsActive bool    `gorm:"not null;default:true;column:store_item_is_active" json:"store_item_is_active"`

	StoreItemCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:store_item_created_at" json:"store_item_created_at"`
	StoreItemUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:store_item_updated_at" json:"store_item_updated_at"`
	StoreItemDeletedAt gorm.DeletedAt `gorm:"column:store_item_deleted_at;index" json:"store_item_deleted_at,omitempty"`
}

func (StoreItemModel) TableName() string { return "store_items" }

func (m *StoreItemModel) BeforeCreate(tx *gorm.DB) error {
	if m.StoreItemID == uuid.Nil {
		m.StoreItemID = uuid.New()
	}
	return nil
}

func (m *StoreItemModel) BeforeSave(tx *gorm.DB) error {
	m.StoreItemName = strings.TrimSpace(m.StoreItemName)
	if m.StoreItemName == "" {
		return errors.New("store_item_name boş olamaz")
	}
	if m.StoreItemPrice <= 0 {
		return errors.New("store_item_price > 0 olmalı")
	}
	if m.StoreItemStock < 0 {
		return errors.New("store_item_stock negatif olamaz")
	}
	return nil
}
