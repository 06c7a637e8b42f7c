package models

import (
	"time"

	"restaurant_platform/internal/schema"
)

type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ClerkID     string    `json:"clerk_id" gorm:"uniqueIndex;not null"`
	Email       string    `json:"email" gorm:"index;not null"`
	Name        *string   `json:"name,omitempty"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	Role        string    `json:"role" gorm:"not null;default:'customer'"` // customer, staff, admin
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleStaff    UserRole = "staff"
	RoleAdmin    UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	return enumMember(schema.UserRoles, string(r))
}

func (u *User) Validate() error {
	return validateEnumField("users", "role", u.Role)
}
