// file: internals/features/store/dto/store_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"egitimportal_backend/internals/features/store/model"
)

/* =======================
   Request DTO
======================= */

type ItemCreateDTO struct {
	Name        string  `json:"name"        validate:"required,min=2"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Price       int     `json:"price"       validate:"required,gt=0"`
	Stock       int     `json:"stock"       validate:"gte=0"`
}

func (p *ItemCreateDTO) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	if p.Description != nil {
		d := strings.TrimSpace(*p.Description)
		if d == "" {
			p.Description = nil
		} else {
			p.Description = &d
		}
	}
}

func (p *ItemCreateDTO) ToModel(orgID uuid.UUID) model.StoreItemModel {
	return model.StoreItemModel{
		StoreItemOrgID:       orgID,
		StoreItemName:        p.Name,
		StoreItemDescription: p.Description,
		StoreItemPrice:       p.Price,
		StoreItemStock:       p.Stock,
		StoreItemIsActive:    true,
	}
}

type ItemUpdateDTO struct {
	Name        *string `json:"name"        validate:"omitempty,min=2"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Price       *int    `json:"price"       validate:"omitempty,gt=0"`
	Stock       *int    `json:"stock"       validate:"omitempty,gte=0"`
	IsActive    *bool   `json:"is_active"`
}

func (p *ItemUpdateDTO) ApplyUpdates(ent *model.StoreItemModel) {
	if p.Name != nil {
		ent.StoreItemName = strings.TrimSpace(*p.Name)
	}
	if p.Description != nil {
		ent.StoreItemDescription = p.Description
	}
	if p.Price != nil {
		ent.StoreItemPrice = *p.Price
	}
	if p.Stock != nil {
		ent.StoreItemStock = *p.Stock
	}
	if p.IsActive != nil {
		ent.StoreItemIsActive = *p.IsActive
	}
}

type OrderStatusDTO struct {
	Status string `json:"status" validate:"required,oneof=beklemede teslim iptal"`
}

/* =======================
   Response DTO
======================= */

type ItemResponseDTO struct {
	StoreItemID          uuid.UUID `json:"store_item_id"`
	StoreItemName        string    `json:"store_item_name"`
	StoreItemDescription *string   `json:"store_item_description,omitempty"`
	StoreItemPrice       int       `json:"store_item_price"`
	StoreItemStock       int       `json:"store_item_stock"`
	StoreItemImageURL    *string   `json:"store_item_image_url,omitempty"`
	StoreItemIsActive    bool      `json:"store_item_is_active"`
}

func FromItem(ent model.StoreItemModel) ItemResponseDTO {
	return ItemResponseDTO{
		StoreItemID:          ent.StoreItemID,
		StoreItemName:        ent.StoreItemName,
		StoreItemDescription: ent.StoreItemDescription,
		StoreItemPrice:       ent.StoreItemPrice,
		StoreItemStock:       ent.StoreItemStock,
		StoreItemImageURL:    ent.StoreItemImageURL,
		StoreItemIsActive:    ent.StoreItemIsActive,
	}
}

func FromItems(list []model.StoreItemModel) []ItemResponseDTO {
	out := make([]ItemResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromItem(it))
	}
	return out
}

type OrderResponseDTO struct {
	StoreOrderID         uuid.UUID `json:"store_order_id"`
	StoreOrderItemID     uuid.UUID `json:"store_order_item_id"`
	StoreOrderStudentID  uuid.UUID `json:"store_order_student_id"`
	StoreOrderPrice      int       `json:"store_order_price"`
	StoreOrderStatus     string    `json:"store_order_status"`
	StoreOrderPeriodID   uuid.UUID `json:"store_order_period_id"`
	StoreOrderPointsTxID uuid.UUID `json:"store_order_points_tx_id"`
	StoreOrderCreatedAt  time.Time `json:"store_order_created_at"`
}

func FromOrder(ent model.StoreOrderModel) OrderResponseDTO {
	return OrderResponseDTO{
		StoreOrderID:         ent.StoreOrderID,
		StoreOrderItemID:     ent.StoreOrderItemID,
		StoreOrderStudentID:  ent.StoreOrderStudentID,
		StoreOrderPrice:      ent.StoreOrderPrice,
		StoreOrderStatus:     ent.StoreOrderStatus,
		StoreOrderPeriodID:   ent.StoreOrderPeriodID,
		StoreOrderPointsTxID: ent.StoreOrderPointsTxID,
		StoreOrderCreatedAt:  ent.StoreOrderCreatedAt,
	}
}

func FromOrders(list []model.StoreOrderModel) []OrderResponseDTO {
	out := make([]OrderResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromOrder(it))
	}
	return out
}
