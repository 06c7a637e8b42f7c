package repository

import (
	"restaurant_platform/internal/models"

	"gorm.io/gorm"
)

type OrderItemRepository interface {
	Create(item *models.OrderItem) error
	GetByID(id uint) (*models.OrderItem, error)
	GetByOrder(orderID uint) ([]*models.OrderItem, error)
	GetByMenuItem(menuItemID uint) ([]*models.OrderItem, error)
	Update(item *models.OrderItem) error
	Delete(id uint) error
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) Create(item *models.OrderItem) error {
	stampCreatedAt(&item.CreatedAt)
	return r.db.Create(item).Error
}

func (r *orderItemRepository) GetByID(id uint) (*models.OrderItem, error) {
	var item models.OrderItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *orderItemRepository) GetByOrder(orderID uint) ([]*models.OrderItem, error) {
	var items []*models.OrderItem
	err := r.db.Where("order_id = ?", orderID).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderItemRepository) GetByMenuItem(menuItemID uint) ([]*models.OrderItem, error) {
	var items []*models.OrderItem
	err := r.db.Where("menu_item_id = ?", menuItemID).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderItemRepository) Update(item *models.OrderItem) error {
	var stored models.OrderItem
	if err := r.db.First(&stored, item.ID).Error; err != nil {
		return err
	}
	if err := guardCreatedAt("order_items", stored.CreatedAt, item.CreatedAt); err != nil {
		return err
	}
	return r.db.Model(&models.OrderItem{ID: item.ID}).Select("*").Omit("id", "created_at").Updates(item).Error
}

func (r *orderItemRepository) Delete(id uint) error {
	return r.db.Delete(&models.OrderItem{}, id).Error
}
