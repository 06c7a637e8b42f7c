package models

import (
	"time"

	"restaurant_platform/internal/schema"
)

type Order struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	BranchID    uint      `json:"branch_id" gorm:"not null;index;index:idx_orders_branch_status,priority:1"`
	TableID     *uint     `json:"table_id,omitempty"`
	OrderNumber string    `json:"order_number" gorm:"uniqueIndex;not null"`
	OrderType   string    `json:"order_type" gorm:"not null"`                                                    // dine-in, takeout, delivery
	Status      string    `json:"status" gorm:"not null;default:'pending';index;index:idx_orders_branch_status,priority:2"` // pending, confirmed, preparing, ready, completed, cancelled
	TotalAmount float64   `json:"total_amount" gorm:"not null"`
	Notes       *string   `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type OrderType string

const (
	OrderDineIn   OrderType = "dine-in"
	OrderTakeout  OrderType = "takeout"
	OrderDelivery OrderType = "delivery"
)

func (t OrderType) IsValid() bool {
	return enumMember(schema.OrderTypes, string(t))
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	return enumMember(schema.OrderStatuses, string(s))
}

func (o *Order) Validate() error {
	if err := validateEnumField("orders", "order_type", o.OrderType); err != nil {
		return err
	}
	return validateEnumField("orders", "status", o.Status)
}
