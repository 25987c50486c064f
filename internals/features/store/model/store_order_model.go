// file: internals/features/store/model/store_order_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sipariş durumları
const (
	OrderPending   = "beklemede"
	OrderDelivered = "teslim"
	OrderCancelled = "iptal"
)

// StoreOrderModel: puanla alınan sipariş. Fiyat, sipariş anında sabitlenir.
type StoreOrderModel struct {
	StoreOrderID    uuid.UUID `gorm:"type:uuid;primaryKey;column:store_order_id" json:"store_order_id"`
	StoreOrderOrgID uuid.UUID `gorm:"type:uuid;not null;index;column:store_order_org_id" json:"store_order_org_id"`

	StoreOrderItemID    uuid.UUID `gorm:"type:uuid;not null;index;column:store_order_item_id" json:"store_order_item_id"`
	StoreOrderStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:store_order_student_id" json:"store_order_student_id"`

	// Sipariş anındaki puan fiyatı
	StoreOrderPrice    int       `gorm:"type:integer;not null;column:store_order_price" json:"store_order_price"`
	StoreOrderStatus   string    `gorm:"type:varchar(12);not null;default:beklemede;column:store_order_status" json:"store_order_status"`
	StoreOrderPeriodID uuid.UUID `gorm:"type:uuid;not null;column:store_order_period_id" json:"store_order_period_id"`

	// İlgili puan defteri satırı
	StoreOrderPointsTxID uuid.UUID `gorm:"type:uuid;not null;column:store_order_points_tx_id" json:"store_order_points_tx_id"`

	StoreOrderCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:store_order_created_at" json:"store_order_created_at"`
	StoreOrderUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:store_order_updated_at" json:"store_order_updated_at"`
}

func (StoreOrderModel) TableName() string { return "store_orders" }

func (m *StoreOrderModel) BeforeCreate(tx *gorm.DB) error {
	if m.StoreOrderID == uuid.Nil {
		m.StoreOrderID = uuid.New()
	}
	return nil
}

func (m *StoreOrderModel) BeforeSave(tx *gorm.DB) error {
	switch m.StoreOrderStatus {
	case OrderPending, OrderDelivered, OrderCancelled:
		return nil
	default:
		return errors.New("store_order_status geçersiz")
	}
}
