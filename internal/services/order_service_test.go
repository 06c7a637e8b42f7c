package services

import (
	"fmt"
	"testing"
	"time"

	"restaurant_platform/internal/models"
	"restaurant_platform/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_PlaceOrder(t *testing.T) {
	menuRepo := newFakeMenuItemRepo(
		&models.MenuItem{ID: 3, CategoryID: 1, Name: "Margherita", Price: 11.99, IsAvailable: true},
		&models.MenuItem{ID: 4, CategoryID: 1, Name: "Calzone", Price: 11.50, IsAvailable: true},
	)
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, newFakeOrderItemRepo(), menuRepo, newTestCache(t))

	order, items, err := svc.PlaceOrder(&PlaceOrderRequest{
		UserID:    1,
		BranchID:  2,
		OrderType: "dine-in",
		Items: []PlaceOrderItemReq{
			{MenuItemID: 3, Quantity: 2},
			{MenuItemID: 4, Quantity: 1},
		},
	})
	require.NoError(t, err)

	// Line subtotals come from the menu price, and the total is their sum.
	require.Len(t, items, 2)
	assert.Equal(t, 11.99, items[0].PriceAtOrder)
	assert.InDelta(t, 23.98, items[0].Subtotal, 1e-9)
	assert.InDelta(t, 11.50, items[1].Subtotal, 1e-9)
	assert.InDelta(t, 35.48, order.TotalAmount, 1e-9)
	for _, item := range items {
		assert.InDelta(t, item.PriceAtOrder*float64(item.Quantity), item.Subtotal, 1e-9)
	}

	assert.Equal(t, string(models.OrderPending), order.Status)
	expectedNumber := fmt.Sprintf("ORD-%s-0001", time.Now().Format("20060102"))
	assert.Equal(t, expectedNumber, order.OrderNumber)

	// Sequential placement yields distinct order numbers.
	second, _, err := svc.PlaceOrder(&PlaceOrderRequest{
		UserID:    1,
		BranchID:  2,
		OrderType: "takeout",
		Items:     []PlaceOrderItemReq{{MenuItemID: 3, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.NotEqual(t, order.OrderNumber, second.OrderNumber)
}

func TestOrderService_PlaceOrder_Rejections(t *testing.T) {
	menuRepo := newFakeMenuItemRepo(
		&models.MenuItem{ID: 3, CategoryID: 1, Name: "Margherita", Price: 11.99, IsAvailable: true},
		&models.MenuItem{ID: 9, CategoryID: 1, Name: "Seasonal Special", Price: 15, IsAvailable: false},
	)
	svc := NewOrderService(newFakeOrderRepo(), newFakeOrderItemRepo(), menuRepo, newTestCache(t))

	tests := []struct {
		name string
		req  *PlaceOrderRequest
	}{
		{
			name: "no items",
			req:  &PlaceOrderRequest{UserID: 1, BranchID: 1, OrderType: "takeout"},
		},
		{
			name: "unknown order type",
			req: &PlaceOrderRequest{UserID: 1, BranchID: 1, OrderType: "drive-thru",
				Items: []PlaceOrderItemReq{{MenuItemID: 3, Quantity: 1}}},
		},
		{
			name: "zero quantity",
			req: &PlaceOrderRequest{UserID: 1, BranchID: 1, OrderType: "takeout",
				Items: []PlaceOrderItemReq{{MenuItemID: 3, Quantity: 0}}},
		},
		{
			name: "unavailable item",
			req: &PlaceOrderRequest{UserID: 1, BranchID: 1, OrderType: "takeout",
				Items: []PlaceOrderItemReq{{MenuItemID: 9, Quantity: 1}}},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, _, err := svc.PlaceOrder(testCase.req)
			require.Error(t, err)
			var verr *schema.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestOrderService_CancelOrder(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, newFakeOrderItemRepo(), newFakeMenuItemRepo(), newTestCache(t))

	require.NoError(t, svc.CancelOrder(7))
	assert.Equal(t, "cancelled", orderRepo.statusUpdates[7])
}
