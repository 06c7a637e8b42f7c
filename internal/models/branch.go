package models

import "time"

type Branch struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Address     string    `json:"address" gorm:"not null"`
	City        string    `json:"city" gorm:"not null"`
	State       string    `json:"state" gorm:"not null"`
	ZipCode     string    `json:"zip_code" gorm:"not null"`
	PhoneNumber string    `json:"phone_number" gorm:"not null"`
	Email       *string   `json:"email,omitempty"`
	IsActive    bool      `json:"is_active" gorm:"index;default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
