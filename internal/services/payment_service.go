package services

import (
	"fmt"

	"restaurant_platform/internal/models"
	"restaurant_platform/internal/repository"
	"restaurant_platform/internal/schema"
	"restaurant_platform/pkg/stripe"
)

type PaymentService interface {
	CreatePayment(orderID uint, method string) (*models.Payment, error)
	GetPayment(id uint) (*models.Payment, error)
	GetPaymentsByOrder(orderID uint) ([]models.Payment, error)
	HandleStripeEvent(eventType, intentID string) error
	RefundPayment(id uint) error
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
	stripe      *stripe.Client
}

func NewPaymentService(paymentRepo repository.PaymentRepository, orderRepo repository.OrderRepository, stripeClient *stripe.Client) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		stripe:      stripeClient,
	}
}

// CreatePayment opens a payment for an order. Card payments get a payment
// intent from Stripe and start pending; the webhook moves them along. Cash
// and other methods are settled at the counter and recorded as succeeded.
func (s *paymentService) CreatePayment(orderID uint, method string) (*models.Payment, error) {
	if !models.PaymentMethod(method).IsValid() {
		return nil, &schema.ValidationError{Entity: "payments", Field: "payment_method", Reason: "not a member of the declared set"}
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("order %d: %w", orderID, err)
	}

	payment := &models.Payment{
		OrderID:       order.ID,
		Amount:        order.TotalAmount,
		PaymentMethod: method,
		Status:        string(models.PaymentPending),
	}

	if method == string(models.MethodCard) {
		intent, err := s.stripe.CreatePaymentIntent(order.TotalAmount, "usd", order.OrderNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to create payment intent: %w", err)
		}
		payment.StripePaymentIntentID = &intent.ID
	} else {
		payment.Status = string(models.PaymentSucceeded)
	}

	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) GetPayment(id uint) (*models.Payment, error) {
	return s.paymentRepo.GetByID(id)
}

func (s *paymentService) GetPaymentsByOrder(orderID uint) ([]models.Payment, error) {
	return s.paymentRepo.GetByOrder(orderID)
}

// HandleStripeEvent translates an asynchronous processor notification into a
// payment status transition. Unknown event types are ignored, not failed:
// Stripe sends many event kinds this platform does not track.
func (s *paymentService) HandleStripeEvent(eventType, intentID string) error {
	var status models.PaymentStatus
	switch eventType {
	case "payment_intent.succeeded":
		status = models.PaymentSucceeded
	case "payment_intent.payment_failed":
		status = models.PaymentFailed
	case "charge.refunded":
		status = models.PaymentRefunded
	default:
		return nil
	}

	payment, err := s.paymentRepo.GetByPaymentIntent(intentID)
	if err != nil {
		return fmt.Errorf("payment intent %s: %w", intentID, err)
	}
	return s.paymentRepo.UpdateStatus(payment.ID, string(status))
}

func (s *paymentService) RefundPayment(id uint) error {
	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		return err
	}
	if payment.Status != string(models.PaymentSucceeded) {
		return &schema.ValidationError{Entity: "payments", Field: "status", Reason: "only succeeded payments can be refunded"}
	}
	return s.paymentRepo.UpdateStatus(id, string(models.PaymentRefunded))
}
