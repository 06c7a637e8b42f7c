package repository

import (
	"restaurant_platform/internal/models"
	"restaurant_platform/internal/schema"

	"gorm.io/gorm"
)

type TableRepository interface {
	Create(table *models.Table) error
	GetByID(id uint) (*models.Table, error)
	GetByBranch(branchID uint) ([]models.Table, error)
	GetByBranchAndStatus(branchID uint, status string) ([]models.Table, error)
	GetByBranchAndNumber(branchID uint, tableNumber int) (*models.Table, error)
	Update(table *models.Table) error
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
}

type tableRepository struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) Create(table *models.Table) error {
	if err := table.Validate(); err != nil {
		return err
	}
	stampCreatedAt(&table.CreatedAt)
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Table{}).
			Where("branch_id = ? AND table_number = ?", table.BranchID, table.TableNumber).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return &schema.UniquenessViolation{Entity: "tables", Fields: []string{"branch_id", "table_number"}}
		}
		if err := tx.Create(table).Error; err != nil {
			return translateError("tables", []string{"branch_id", "table_number"}, err)
		}
		return nil
	})
}

func (r *tableRepository) GetByID(id uint) (*models.Table, error) {
	var table models.Table
	err := r.db.First(&table, id).Error
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) GetByBranch(branchID uint) ([]models.Table, error) {
	var tables []models.Table
	err := r.db.Where("branch_id = ?", branchID).Find(&tables).Error
	return tables, err
}

func (r *tableRepository) GetByBranchAndStatus(branchID uint, status string) ([]models.Table, error) {
	var tables []models.Table
	err := r.db.Where("branch_id = ? AND status = ?", branchID, status).Find(&tables).Error
	return tables, err
}

func (r *tableRepository) GetByBranchAndNumber(branchID uint, tableNumber int) (*models.Table, error) {
	var table models.Table
	err := r.db.Where("branch_id = ? AND table_number = ?", branchID, tableNumber).First(&table).Error
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) Update(table *models.Table) error {
	if err := table.Validate(); err != nil {
		return err
	}
	var stored models.Table
	if err := r.db.First(&stored, table.ID).Error; err != nil {
		return err
	}
	if err := guardCreatedAt("tables", stored.CreatedAt, table.CreatedAt); err != nil {
		return err
	}
	err := r.db.Model(&models.Table{ID: table.ID}).Select("*").Omit("id", "created_at").Updates(table).Error
	return translateError("tables", []string{"branch_id", "table_number"}, err)
}

func (r *tableRepository) UpdateStatus(id uint, status string) error {
	if !models.TableStatus(status).IsValid() {
		return &schema.ValidationError{Entity: "tables", Field: "status", Reason: "not a member of the declared set"}
	}
	return r.db.Model(&models.Table{}).Where("id = ?", id).Update("status", status).Error
}

func (r *tableRepository) Delete(id uint) error {
	return r.db.Delete(&models.Table{}, id).Error
}
