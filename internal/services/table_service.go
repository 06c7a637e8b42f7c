package services

import (
	"restaurant_platform/internal/models"
	"restaurant_platform/internal/repository"
)

type TableService interface {
	CreateTable(table *models.Table) error
	GetTable(id uint) (*models.Table, error)
	GetTablesByBranch(branchID uint) ([]models.Table, error)
	GetAvailableTables(branchID uint) ([]models.Table, error)
	UpdateTable(table *models.Table) error
	SetStatus(id uint, status string) error
	DeleteTable(id uint) error
}

type tableService struct {
	tableRepo repository.TableRepository
}

func NewTableService(tableRepo repository.TableRepository) TableService {
	return &tableService{tableRepo: tableRepo}
}

func (s *tableService) CreateTable(table *models.Table) error {
	if table.Status == "" {
		table.Status = string(models.TableAvailable)
	}
	return s.tableRepo.Create(table)
}

func (s *tableService) GetTable(id uint) (*models.Table, error) {
	return s.tableRepo.GetByID(id)
}

func (s *tableService) GetTablesByBranch(branchID uint) ([]models.Table, error) {
	return s.tableRepo.GetByBranch(branchID)
}

func (s *tableService) GetAvailableTables(branchID uint) ([]models.Table, error) {
	return s.tableRepo.GetByBranchAndStatus(branchID, string(models.TableAvailable))
}

func (s *tableService) UpdateTable(table *models.Table) error {
	return s.tableRepo.Update(table)
}

func (s *tableService) SetStatus(id uint, status string) error {
	return s.tableRepo.UpdateStatus(id, status)
}

func (s *tableService) DeleteTable(id uint) error {
	return s.tableRepo.Delete(id)
}
