package repository

import (
	"time"

	"restaurant_platform/internal/models"

	"gorm.io/gorm"
)

type AnalyticsRepository interface {
	Create(analytics *models.Analytics) error
	GetByID(id uint) (*models.Analytics, error)
	GetByBranch(branchID uint) ([]models.Analytics, error)
	GetByBranchAndPeriodStart(branchID uint, periodStart time.Time) ([]models.Analytics, error)
	GetByPeriod(periodStart, periodEnd time.Time) ([]models.Analytics, error)
	Update(analytics *models.Analytics) error
	Delete(id uint) error
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) Create(analytics *models.Analytics) error {
	stampCreatedAt(&analytics.CreatedAt)
	return r.db.Create(analytics).Error
}

func (r *analyticsRepository) GetByID(id uint) (*models.Analytics, error) {
	var analytics models.Analytics
	err := r.db.First(&analytics, id).Error
	if err != nil {
		return nil, err
	}
	return &analytics, nil
}

func (r *analyticsRepository) GetByBranch(branchID uint) ([]models.Analytics, error) {
	var records []models.Analytics
	err := r.db.Where("branch_id = ?", branchID).Find(&records).Error
	return records, err
}

func (r *analyticsRepository) GetByBranchAndPeriodStart(branchID uint, periodStart time.Time) ([]models.Analytics, error) {
	var records []models.Analytics
	err := r.db.Where("branch_id = ? AND period_start = ?", branchID, periodStart).Find(&records).Error
	return records, err
}

func (r *analyticsRepository) GetByPeriod(periodStart, periodEnd time.Time) ([]models.Analytics, error) {
	var records []models.Analytics
	err := r.db.Where("period_start >= ? AND period_end <= ?", periodStart, periodEnd).Find(&records).Error
	return records, err
}

func (r *analyticsRepository) Update(analytics *models.Analytics) error {
	var stored models.Analytics
	if err := r.db.First(&stored, analytics.ID).Error; err != nil {
		return err
	}
	if err := guardCreatedAt("analytics", stored.CreatedAt, analytics.CreatedAt); err != nil {
		return err
	}
	return r.db.Model(&models.Analytics{ID: analytics.ID}).Select("*").Omit("id", "created_at").Updates(analytics).Error
}

func (r *analyticsRepository) Delete(id uint) error {
	return r.db.Delete(&models.Analytics{}, id).Error
}
