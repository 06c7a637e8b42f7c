package services

import (
	"testing"
	"time"

	"restaurant_platform/internal/models"
	"restaurant_platform/internal/redis"
	"restaurant_platform/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"gorm.io/gorm"
)

// Test fakes embed the repository interface so only the methods a test
// exercises need implementations.

type fakeUserRepo struct {
	repository.UserRepository
	byClerkID map[string]*models.User
	created   []*models.User
	updated   []*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byClerkID: make(map[string]*models.User)}
}

func (f *fakeUserRepo) GetByClerkID(clerkID string) (*models.User, error) {
	if user, ok := f.byClerkID[clerkID]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Create(user *models.User) error {
	user.ID = uint(len(f.created) + 1)
	user.CreatedAt = time.Now()
	f.byClerkID[user.ClerkID] = user
	f.created = append(f.created, user)
	return nil
}

func (f *fakeUserRepo) Update(user *models.User) error {
	f.byClerkID[user.ClerkID] = user
	f.updated = append(f.updated, user)
	return nil
}

type fakeMenuItemRepo struct {
	repository.MenuItemRepository
	items        map[uint]*models.MenuItem
	byBranchCalls int
}

func newFakeMenuItemRepo(items ...*models.MenuItem) *fakeMenuItemRepo {
	f := &fakeMenuItemRepo{items: make(map[uint]*models.MenuItem)}
	for _, item := range items {
		f.items[item.ID] = item
	}
	return f
}

func (f *fakeMenuItemRepo) GetByID(id uint) (*models.MenuItem, error) {
	if item, ok := f.items[id]; ok {
		return item, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMenuItemRepo) GetByBranch(branchID uint) ([]models.MenuItem, error) {
	f.byBranchCalls++
	var out []models.MenuItem
	for _, item := range f.items {
		if item.BranchID != nil && *item.BranchID == branchID {
			out = append(out, *item)
		}
	}
	return out, nil
}

type fakeOrderRepo struct {
	repository.OrderRepository
	orders          []*models.Order
	items           []*models.OrderItem
	completed       []models.Order
	completedCalls  int
	statusUpdates   map[uint]string
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{statusUpdates: make(map[uint]string)}
}

func (f *fakeOrderRepo) CreateWithItems(order *models.Order, items []*models.OrderItem) error {
	order.ID = uint(len(f.orders) + 1)
	f.orders = append(f.orders, order)
	for _, item := range items {
		item.OrderID = order.ID
		f.items = append(f.items, item)
	}
	return nil
}

func (f *fakeOrderRepo) GetByID(id uint) (*models.Order, error) {
	for _, order := range f.orders {
		if order.ID == id {
			return order, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderRepo) GetCompletedBetween(branchID *uint, start, end time.Time) ([]models.Order, error) {
	f.completedCalls++
	return f.completed, nil
}

func (f *fakeOrderRepo) UpdateStatus(id uint, status string) error {
	f.statusUpdates[id] = status
	return nil
}

type fakeOrderItemRepo struct {
	repository.OrderItemRepository
	byOrder map[uint][]*models.OrderItem
}

func newFakeOrderItemRepo() *fakeOrderItemRepo {
	return &fakeOrderItemRepo{byOrder: make(map[uint][]*models.OrderItem)}
}

func (f *fakeOrderItemRepo) GetByOrder(orderID uint) ([]*models.OrderItem, error) {
	return f.byOrder[orderID], nil
}

type fakePaymentRepo struct {
	repository.PaymentRepository
	payments      map[uint]*models.Payment
	byIntent      map[string]*models.Payment
	statusUpdates map[uint]string
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{
		payments:      make(map[uint]*models.Payment),
		byIntent:      make(map[string]*models.Payment),
		statusUpdates: make(map[uint]string),
	}
}

func (f *fakePaymentRepo) Create(payment *models.Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	payment.ID = uint(len(f.payments) + 1)
	f.payments[payment.ID] = payment
	if payment.StripePaymentIntentID != nil {
		f.byIntent[*payment.StripePaymentIntentID] = payment
	}
	return nil
}

func (f *fakePaymentRepo) GetByID(id uint) (*models.Payment, error) {
	if payment, ok := f.payments[id]; ok {
		return payment, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePaymentRepo) GetByPaymentIntent(intentID string) (*models.Payment, error) {
	if payment, ok := f.byIntent[intentID]; ok {
		return payment, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePaymentRepo) UpdateStatus(id uint, status string) error {
	f.statusUpdates[id] = status
	if payment, ok := f.payments[id]; ok {
		payment.Status = status
	}
	return nil
}

type fakeAnalyticsRepo struct {
	repository.AnalyticsRepository
	created []*models.Analytics
}

func (f *fakeAnalyticsRepo) Create(analytics *models.Analytics) error {
	analytics.ID = uint(len(f.created) + 1)
	f.created = append(f.created, analytics)
	return nil
}

func newTestCache(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewFromAddr(mr.Addr())
}
