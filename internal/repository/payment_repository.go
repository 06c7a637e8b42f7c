package repository

import (
	"restaurant_platform/internal/models"
	"restaurant_platform/internal/schema"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByID(id uint) (*models.Payment, error)
	GetByOrder(orderID uint) ([]models.Payment, error)
	GetByPaymentIntent(intentID string) (*models.Payment, error)
	GetByStatus(status string) ([]models.Payment, error)
	Update(payment *models.Payment) error
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(payment *models.Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	stampCreatedAt(&payment.CreatedAt)
	return r.db.Create(payment).Error
}

func (r *paymentRepository) GetByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.First(&payment, id).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) GetByOrder(orderID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("order_id = ?", orderID).Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) GetByPaymentIntent(intentID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.Where("stripe_payment_intent_id = ?", intentID).First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) GetByStatus(status string) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("status = ?", status).Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) Update(payment *models.Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	var stored models.Payment
	if err := r.db.First(&stored, payment.ID).Error; err != nil {
		return err
	}
	if err := guardCreatedAt("payments", stored.CreatedAt, payment.CreatedAt); err != nil {
		return err
	}
	return r.db.Model(&models.Payment{ID: payment.ID}).Select("*").Omit("id", "created_at").Updates(payment).Error
}

func (r *paymentRepository) UpdateStatus(id uint, status string) error {
	if !models.PaymentStatus(status).IsValid() {
		return &schema.ValidationError{Entity: "payments", Field: "status", Reason: "not a member of the declared set"}
	}
	return r.db.Model(&models.Payment{}).Where("id = ?", id).Update("status", status).Error
}

func (r *paymentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Payment{}, id).Error
}
