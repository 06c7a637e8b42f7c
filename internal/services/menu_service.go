package services

import (
	"time"

	"restaurant_platform/internal/models"
	"restaurant_platform/internal/redis"
	"restaurant_platform/internal/repository"
)

type MenuService interface {
	CreateCategory(category *models.Category) error
	GetActiveCategories() ([]models.Category, error)
	UpdateCategory(category *models.Category) error
	DeleteCategory(id uint) error

	CreateMenuItem(item *models.MenuItem) error
	GetMenuItem(id uint) (*models.MenuItem, error)
	GetMenuByCategory(categoryID uint) ([]models.MenuItem, error)
	GetBranchMenu(branchID uint) ([]models.MenuItem, error)
	UpdateMenuItem(item *models.MenuItem) error
	SetAvailability(id uint, available bool) error
	DeleteMenuItem(id uint) error
}

type menuService struct {
	categoryRepo repository.CategoryRepository
	menuItemRepo repository.MenuItemRepository
	cache        *redis.Client
	cacheTTL     time.Duration
}

func NewMenuService(categoryRepo repository.CategoryRepository, menuItemRepo repository.MenuItemRepository, cache *redis.Client, cacheTTL time.Duration) MenuService {
	return &menuService{
		categoryRepo: categoryRepo,
		menuItemRepo: menuItemRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
}

func (s *menuService) CreateCategory(category *models.Category) error {
	return s.categoryRepo.Create(category)
}

func (s *menuService) GetActiveCategories() ([]models.Category, error) {
	return s.categoryRepo.GetActive()
}

func (s *menuService) UpdateCategory(category *models.Category) error {
	return s.categoryRepo.Update(category)
}

func (s *menuService) DeleteCategory(id uint) error {
	return s.categoryRepo.Delete(id)
}

func (s *menuService) CreateMenuItem(item *models.MenuItem) error {
	if err := s.menuItemRepo.Create(item); err != nil {
		return err
	}
	s.invalidate(item)
	return nil
}

func (s *menuService) GetMenuItem(id uint) (*models.MenuItem, error) {
	return s.menuItemRepo.GetByID(id)
}

func (s *menuService) GetMenuByCategory(categoryID uint) ([]models.MenuItem, error) {
	return s.menuItemRepo.GetAvailableByCategory(categoryID)
}

// GetBranchMenu serves the branch menu from cache when possible and falls
// back to the database, repopulating the cache on a miss.
func (s *menuService) GetBranchMenu(branchID uint) ([]models.MenuItem, error) {
	if cached, err := s.cache.GetBranchMenu(branchID); err == nil {
		return cached, nil
	}

	items, err := s.menuItemRepo.GetByBranch(branchID)
	if err != nil {
		return nil, err
	}
	available := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if item.IsAvailable {
			available = append(available, item)
		}
	}
	s.cache.SetBranchMenu(branchID, available, s.cacheTTL)
	return available, nil
}

func (s *menuService) UpdateMenuItem(item *models.MenuItem) error {
	if err := s.menuItemRepo.Update(item); err != nil {
		return err
	}
	s.invalidate(item)
	return nil
}

func (s *menuService) SetAvailability(id uint, available bool) error {
	item, err := s.menuItemRepo.GetByID(id)
	if err != nil {
		return err
	}
	item.IsAvailable = available
	return s.UpdateMenuItem(item)
}

func (s *menuService) DeleteMenuItem(id uint) error {
	item, err := s.menuItemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.menuItemRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate(item)
	return nil
}

func (s *menuService) invalidate(item *models.MenuItem) {
	if item.BranchID != nil {
		s.cache.InvalidateBranchMenu(*item.BranchID)
	}
}
