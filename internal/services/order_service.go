package services

import (
	"fmt"
	"time"

	"restaurant_platform/internal/models"
	"restaurant_platform/internal/redis"
	"restaurant_platform/internal/repository"
	"restaurant_platform/internal/schema"
)

// PlaceOrderRequest is the input for order placement. Prices are never taken
// from the caller; they are read from the menu at placement time.
type PlaceOrderRequest struct {
	UserID    uint                `json:"user_id"`
	BranchID  uint                `json:"branch_id"`
	TableID   *uint               `json:"table_id,omitempty"`
	OrderType string              `json:"order_type"`
	Notes     *string             `json:"notes,omitempty"`
	Items     []PlaceOrderItemReq `json:"items"`
}

type PlaceOrderItemReq struct {
	MenuItemID          uint    `json:"menu_item_id"`
	Quantity            int     `json:"quantity"`
	SpecialInstructions *string `json:"special_instructions,omitempty"`
}

type OrderService interface {
	PlaceOrder(req *PlaceOrderRequest) (*models.Order, []*models.OrderItem, error)
	GetOrder(id uint) (*models.Order, []*models.OrderItem, error)
	GetOrderByNumber(orderNumber string) (*models.Order, error)
	GetOrdersByUser(userID uint) ([]models.Order, error)
	GetOrdersByBranch(branchID uint) ([]models.Order, error)
	GetOrdersByBranchAndStatus(branchID uint, status string) ([]models.Order, error)
	UpdateStatus(id uint, status string) error
	CancelOrder(id uint) error
}

type orderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	menuItemRepo  repository.MenuItemRepository
	sequence      *redis.Client
}

func NewOrderService(orderRepo repository.OrderRepository, orderItemRepo repository.OrderItemRepository, menuItemRepo repository.MenuItemRepository, sequence *redis.Client) OrderService {
	return &orderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		menuItemRepo:  menuItemRepo,
		sequence:      sequence,
	}
}

// PlaceOrder builds and persists an order with its line items. Each line's
// subtotal is priceAtOrder * quantity and the order total is the sum of
// subtotals; both are computed here, not trusted from input.
func (s *orderService) PlaceOrder(req *PlaceOrderRequest) (*models.Order, []*models.OrderItem, error) {
	if len(req.Items) == 0 {
		return nil, nil, &schema.ValidationError{Entity: "orders", Field: "items", Reason: "order must contain at least one item"}
	}
	if !models.OrderType(req.OrderType).IsValid() {
		return nil, nil, &schema.ValidationError{Entity: "orders", Field: "order_type", Reason: "not a member of the declared set"}
	}

	var items []*models.OrderItem
	var total float64
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, nil, &schema.ValidationError{Entity: "order_items", Field: "quantity", Reason: "quantity must be positive"}
		}
		menuItem, err := s.menuItemRepo.GetByID(line.MenuItemID)
		if err != nil {
			return nil, nil, fmt.Errorf("menu item %d: %w", line.MenuItemID, err)
		}
		if !menuItem.IsAvailable {
			return nil, nil, &schema.ValidationError{Entity: "order_items", Field: "menu_item_id", Reason: fmt.Sprintf("menu item %d is not available", line.MenuItemID)}
		}
		subtotal := menuItem.Price * float64(line.Quantity)
		items = append(items, &models.OrderItem{
			MenuItemID:          line.MenuItemID,
			Quantity:            line.Quantity,
			PriceAtOrder:        menuItem.Price,
			Subtotal:            subtotal,
			SpecialInstructions: line.SpecialInstructions,
		})
		total += subtotal
	}

	orderNumber, err := s.nextOrderNumber()
	if err != nil {
		return nil, nil, err
	}

	order := &models.Order{
		UserID:      req.UserID,
		BranchID:    req.BranchID,
		TableID:     req.TableID,
		OrderNumber: orderNumber,
		OrderType:   req.OrderType,
		Status:      string(models.OrderPending),
		TotalAmount: total,
		Notes:       req.Notes,
	}
	if err := s.orderRepo.CreateWithItems(order, items); err != nil {
		return nil, nil, err
	}
	return order, items, nil
}

func (s *orderService) nextOrderNumber() (string, error) {
	date := time.Now().Format("20060102")
	seq, err := s.sequence.NextOrderSequence(date)
	if err != nil {
		return "", fmt.Errorf("failed to generate order number: %w", err)
	}
	return fmt.Sprintf("ORD-%s-%04d", date, seq), nil
}

func (s *orderService) GetOrder(id uint) (*models.Order, []*models.OrderItem, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.orderItemRepo.GetByOrder(id)
	if err != nil {
		return nil, nil, err
	}
	return order, items, nil
}

func (s *orderService) GetOrderByNumber(orderNumber string) (*models.Order, error) {
	return s.orderRepo.GetByOrderNumber(orderNumber)
}

func (s *orderService) GetOrdersByUser(userID uint) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

func (s *orderService) GetOrdersByBranch(branchID uint) ([]models.Order, error) {
	return s.orderRepo.GetByBranch(branchID)
}

func (s *orderService) GetOrdersByBranchAndStatus(branchID uint, status string) ([]models.Order, error) {
	return s.orderRepo.GetByBranchAndStatus(branchID, status)
}

func (s *orderService) UpdateStatus(id uint, status string) error {
	return s.orderRepo.UpdateStatus(id, status)
}

func (s *orderService) CancelOrder(id uint) error {
	return s.orderRepo.UpdateStatus(id, string(models.OrderCancelled))
}
