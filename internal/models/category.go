package models

import "time"

type Category struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Description  *string   `json:"description,omitempty"`
	DisplayOrder *int      `json:"display_order,omitempty" gorm:"index"`
	IsActive     bool      `json:"is_active" gorm:"index;default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
