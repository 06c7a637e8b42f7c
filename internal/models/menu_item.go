package models

import "time"

type MenuItem struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	CategoryID      uint      `json:"category_id" gorm:"not null;index;index:idx_menu_items_available_category,priority:2"`
	BranchID        *uint     `json:"branch_id,omitempty" gorm:"index"`
	Name            string    `json:"name" gorm:"not null"`
	Description     *string   `json:"description,omitempty"`
	Price           float64   `json:"price" gorm:"not null"`
	ImageURL        *string   `json:"image_url,omitempty"`
	PreparationTime *int      `json:"preparation_time,omitempty"`
	IsAvailable     bool      `json:"is_available" gorm:"default:true;index:idx_menu_items_available_category,priority:1"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
