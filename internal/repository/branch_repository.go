package repository

import (
	"restaurant_platform/internal/models"

	"gorm.io/gorm"
)

type BranchRepository interface {
	Create(branch *models.Branch) error
	GetByID(id uint) (*models.Branch, error)
	GetActive() ([]models.Branch, error)
	GetAll() ([]models.Branch, error)
	Update(branch *models.Branch) error
	Delete(id uint) error
}

type branchRepository struct {
	db *gorm.DB
}

func NewBranchRepository(db *gorm.DB) BranchRepository {
	return &branchRepository{db: db}
}

func (r *branchRepository) Create(branch *models.Branch) error {
	stampCreatedAt(&branch.CreatedAt)
	return r.db.Create(branch).Error
}

func (r *branchRepository) GetByID(id uint) (*models.Branch, error) {
	var branch models.Branch
	err := r.db.First(&branch, id).Error
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *branchRepository) GetActive() ([]models.Branch, error) {
	var branches []models.Branch
	err := r.db.Where("is_active = ?", true).Find(&branches).Error
	return branches, err
}

func (r *branchRepository) GetAll() ([]models.Branch, error) {
	var branches []models.Branch
	err := r.db.Find(&branches).Error
	return branches, err
}

func (r *branchRepository) Update(branch *models.Branch) error {
	var stored models.Branch
	if err := r.db.First(&stored, branch.ID).Error; err != nil {
		return err
	}
	if err := guardCreatedAt("branches", stored.CreatedAt, branch.CreatedAt); err != nil {
		return err
	}
	return r.db.Model(&models.Branch{ID: branch.ID}).Select("*").Omit("id", "created_at").Updates(branch).Error
}

func (r *branchRepository) Delete(id uint) error {
	return r.db.Delete(&models.Branch{}, id).Error
}
