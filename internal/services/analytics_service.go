package services

import (
	"fmt"
	"sort"
	"time"

	"restaurant_platform/internal/models"
	"restaurant_platform/internal/redis"
	"restaurant_platform/internal/repository"
)

const topItemsLimit = 5

type AnalyticsService interface {
	ComputeForPeriod(branchID *uint, periodStart, periodEnd time.Time) (*models.Analytics, error)
	GetByBranch(branchID uint) ([]models.Analytics, error)
	GetByPeriod(periodStart, periodEnd time.Time) ([]models.Analytics, error)
}

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	menuItemRepo  repository.MenuItemRepository
	cache         *redis.Client
	cacheTTL      time.Duration
}

func NewAnalyticsService(
	analyticsRepo repository.AnalyticsRepository,
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	menuItemRepo repository.MenuItemRepository,
	cache *redis.Client,
	cacheTTL time.Duration,
) AnalyticsService {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		menuItemRepo:  menuItemRepo,
		cache:         cache,
		cacheTTL:      cacheTTL,
	}
}

// ComputeForPeriod aggregates completed orders into a persisted analytics
// record: revenue, order count, distinct customers, average order value and
// the ranked best sellers. Results are cached per branch and period.
func (s *analyticsService) ComputeForPeriod(branchID *uint, periodStart, periodEnd time.Time) (*models.Analytics, error) {
	cacheKey := s.cacheKey(branchID, periodStart, periodEnd)
	if cached, err := s.cache.GetAnalytics(cacheKey); err == nil {
		return cached, nil
	}

	orders, err := s.orderRepo.GetCompletedBetween(branchID, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}

	record := &models.Analytics{
		BranchID:    branchID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	}

	customers := make(map[uint]struct{})
	type itemAgg struct {
		orderCount int
		revenue    float64
	}
	byItem := make(map[uint]*itemAgg)

	for _, order := range orders {
		record.OrderCount++
		record.TotalRevenue += order.TotalAmount
		customers[order.UserID] = struct{}{}

		items, err := s.orderItemRepo.GetByOrder(order.ID)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			agg, ok := byItem[item.MenuItemID]
			if !ok {
				agg = &itemAgg{}
				byItem[item.MenuItemID] = agg
			}
			agg.orderCount += item.Quantity
			agg.revenue += item.Subtotal
		}
	}

	record.CustomerCount = len(customers)
	if record.OrderCount > 0 {
		record.AverageOrderValue = record.TotalRevenue / float64(record.OrderCount)
	}

	if len(byItem) > 0 {
		var top models.TopMenuItems
		for menuItemID, agg := range byItem {
			entry := models.TopMenuItem{
				MenuItemID: menuItemID,
				OrderCount: agg.orderCount,
				Revenue:    agg.revenue,
			}
			if menuItem, err := s.menuItemRepo.GetByID(menuItemID); err == nil {
				entry.Name = menuItem.Name
			}
			top = append(top, entry)
		}
		sort.Slice(top, func(i, j int) bool {
			if top[i].OrderCount != top[j].OrderCount {
				return top[i].OrderCount > top[j].OrderCount
			}
			return top[i].Revenue > top[j].Revenue
		})
		if len(top) > topItemsLimit {
			top = top[:topItemsLimit]
		}
		record.TopMenuItems = top
	}

	if err := s.analyticsRepo.Create(record); err != nil {
		return nil, err
	}
	s.cache.SetAnalytics(cacheKey, record, s.cacheTTL)
	return record, nil
}

func (s *analyticsService) GetByBranch(branchID uint) ([]models.Analytics, error) {
	return s.analyticsRepo.GetByBranch(branchID)
}

func (s *analyticsService) GetByPeriod(periodStart, periodEnd time.Time) ([]models.Analytics, error) {
	return s.analyticsRepo.GetByPeriod(periodStart, periodEnd)
}

func (s *analyticsService) cacheKey(branchID *uint, periodStart, periodEnd time.Time) string {
	branch := "all"
	if branchID != nil {
		branch = fmt.Sprintf("%d", *branchID)
	}
	return fmt.Sprintf("branch:%s:%d-%d", branch, periodStart.Unix(), periodEnd.Unix())
}
