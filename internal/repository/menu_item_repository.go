package repository

import (
	"restaurant_platform/internal/models"

	"gorm.io/gorm"
)

type MenuItemRepository interface {
	Create(item *models.MenuItem) error
	GetByID(id uint) (*models.MenuItem, error)
	GetByCategory(categoryID uint) ([]models.MenuItem, error)
	GetByBranch(branchID uint) ([]models.MenuItem, error)
	GetAvailableByCategory(categoryID uint) ([]models.MenuItem, error)
	GetAll() ([]models.MenuItem, error)
	Update(item *models.MenuItem) error
	Delete(id uint) error
}

type menuItemRepository struct {
	db *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) Create(item *models.MenuItem) error {
	stampCreatedAt(&item.CreatedAt)
	return r.db.Create(item).Error
}

func (r *menuItemRepository) GetByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuItemRepository) GetByCategory(categoryID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Where("category_id = ?", categoryID).Find(&items).Error
	return items, err
}

func (r *menuItemRepository) GetByBranch(branchID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Where("branch_id = ?", branchID).Find(&items).Error
	return items, err
}

func (r *menuItemRepository) GetAvailableByCategory(categoryID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Where("is_available = ? AND category_id = ?", true, categoryID).Find(&items).Error
	return items, err
}

func (r *menuItemRepository) GetAll() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Find(&items).Error
	return items, err
}

func (r *menuItemRepository) Update(item *models.MenuItem) error {
	var stored models.MenuItem
	if err := r.db.First(&stored, item.ID).Error; err != nil {
		return err
	}
	if err := guardCreatedAt("menu_items", stored.CreatedAt, item.CreatedAt); err != nil {
		return err
	}
	return r.db.Model(&models.MenuItem{ID: item.ID}).Select("*").Omit("id", "created_at").Updates(item).Error
}

func (r *menuItemRepository) Delete(id uint) error {
	return r.db.Delete(&models.MenuItem{}, id).Error
}
