package models

import "time"

type OrderItem struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	OrderID             uint      `json:"order_id" gorm:"not null;index"`
	MenuItemID          uint      `json:"menu_item_id" gorm:"not null;index"`
	Quantity            int       `json:"quantity" gorm:"not null"`
	PriceAtOrder        float64   `json:"price_at_order" gorm:"not null"`
	Subtotal            float64   `json:"subtotal" gorm:"not null"`
	SpecialInstructions *string   `json:"special_instructions,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
