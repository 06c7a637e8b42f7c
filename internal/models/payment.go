package models

import (
	"time"

	"restaurant_platform/internal/schema"
)

type Payment struct {
	ID                    uint      `json:"id" gorm:"primaryKey"`
	OrderID               uint      `json:"order_id" gorm:"not null;index"`
	StripePaymentIntentID *string   `json:"stripe_payment_intent_id,omitempty" gorm:"index"`
	Amount                float64   `json:"amount" gorm:"not null"`
	PaymentMethod         string    `json:"payment_method" gorm:"not null"`                   // card, cash, other
	Status                string    `json:"status" gorm:"not null;default:'pending';index"` // pending, succeeded, failed, refunded
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) IsValid() bool {
	return enumMember(schema.PaymentStatuses, string(s))
}

type PaymentMethod string

const (
	MethodCard  PaymentMethod = "card"
	MethodCash  PaymentMethod = "cash"
	MethodOther PaymentMethod = "other"
)

func (m PaymentMethod) IsValid() bool {
	return enumMember(schema.PaymentMethods, string(m))
}

func (p *Payment) Validate() error {
	if err := validateEnumField("payments", "payment_method", p.PaymentMethod); err != nil {
		return err
	}
	return validateEnumField("payments", "status", p.Status)
}
