package repository

import (
	"time"

	"restaurant_platform/internal/models"
	"restaurant_platform/internal/schema"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *models.Order) error
	CreateWithItems(order *models.Order, items []*models.OrderItem) error
	GetByID(id uint) (*models.Order, error)
	GetByOrderNumber(orderNumber string) (*models.Order, error)
	GetByUser(userID uint) ([]models.Order, error)
	GetByBranch(branchID uint) ([]models.Order, error)
	GetByStatus(status string) ([]models.Order, error)
	GetByBranchAndStatus(branchID uint, status string) ([]models.Order, error)
	GetCompletedBetween(branchID *uint, start, end time.Time) ([]models.Order, error)
	Update(order *models.Order) error
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.CreateWithItems(order, nil)
}

// CreateWithItems persists an order and its line items in one transaction so
// a duplicate order number leaves no partial state behind.
func (r *orderRepository) CreateWithItems(order *models.Order, items []*models.OrderItem) error {
	if err := order.Validate(); err != nil {
		return err
	}
	stampCreatedAt(&order.CreatedAt)
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Order{}).Where("order_number = ?", order.OrderNumber).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &schema.UniquenessViolation{Entity: "orders", Fields: []string{"order_number"}}
		}
		if err := tx.Create(order).Error; err != nil {
			return translateError("orders", []string{"order_number"}, err)
		}
		for _, item := range items {
			item.OrderID = order.ID
			stampCreatedAt(&item.CreatedAt)
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByOrderNumber(orderNumber string) (*models.Order, error) {
	var order models.Order
	err := r.db.Where("order_number = ?", orderNumber).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("user_id = ?", userID).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByBranch(branchID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("branch_id = ?", branchID).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByStatus(status string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("status = ?", status).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByBranchAndStatus(branchID uint, status string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("branch_id = ? AND status = ?", branchID, status).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetCompletedBetween(branchID *uint, start, end time.Time) ([]models.Order, error) {
	var orders []models.Order
	query := r.db.Where("status = ? AND created_at >= ? AND created_at < ?", "completed", start, end)
	if branchID != nil {
		query = query.Where("branch_id = ?", *branchID)
	}
	err := query.Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Update(order *models.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}
	var stored models.Order
	if err := r.db.First(&stored, order.ID).Error; err != nil {
		return err
	}
	if err := guardCreatedAt("orders", stored.CreatedAt, order.CreatedAt); err != nil {
		return err
	}
	if order.OrderNumber != stored.OrderNumber {
		var count int64
		if err := r.db.Model(&models.Order{}).Where("order_number = ? AND id <> ?", order.OrderNumber, order.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &schema.UniquenessViolation{Entity: "orders", Fields: []string{"order_number"}}
		}
	}
	err := r.db.Model(&models.Order{ID: order.ID}).Select("*").Omit("id", "created_at").Updates(order).Error
	return translateError("orders", []string{"order_number"}, err)
}

func (r *orderRepository) UpdateStatus(id uint, status string) error {
	if !models.OrderStatus(status).IsValid() {
		return &schema.ValidationError{Entity: "orders", Field: "status", Reason: "not a member of the declared set"}
	}
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error
}

func (r *orderRepository) Delete(id uint) error {
	return r.db.Delete(&models.Order{}, id).Error
}
