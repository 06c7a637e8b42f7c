package redis

import (
	"testing"
	"time"

	"restaurant_platform/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewFromAddr(mr.Addr())
}

func TestBranchMenuCache(t *testing.T) {
	client := newTestClient(t)

	_, err := client.GetBranchMenu(7)
	assert.Error(t, err)

	items := []models.MenuItem{
		{ID: 1, CategoryID: 2, Name: "Margherita", Price: 11.99, IsAvailable: true},
		{ID: 2, CategoryID: 2, Name: "Calzone", Price: 13.50, IsAvailable: true},
	}
	require.NoError(t, client.SetBranchMenu(7, items, time.Minute))

	cached, err := client.GetBranchMenu(7)
	require.NoError(t, err)
	assert.Len(t, cached, 2)
	assert.Equal(t, "Margherita", cached[0].Name)

	require.NoError(t, client.InvalidateBranchMenu(7))
	_, err = client.GetBranchMenu(7)
	assert.Error(t, err)
}

func TestAnalyticsCache(t *testing.T) {
	client := newTestClient(t)

	branchID := uint(3)
	record := &models.Analytics{
		BranchID:          &branchID,
		TotalRevenue:      1250.50,
		OrderCount:        42,
		CustomerCount:     30,
		AverageOrderValue: 29.77,
		TopMenuItems:      models.TopMenuItems{{MenuItemID: 1, Name: "Margherita", OrderCount: 12, Revenue: 143.88}},
	}
	require.NoError(t, client.SetAnalytics("branch:3:2026-08", record, time.Minute))

	cached, err := client.GetAnalytics("branch:3:2026-08")
	require.NoError(t, err)
	require.NotNil(t, cached.BranchID)
	assert.Equal(t, uint(3), *cached.BranchID)
	assert.Equal(t, 42, cached.OrderCount)
	require.Len(t, cached.TopMenuItems, 1)
	assert.Equal(t, "Margherita", cached.TopMenuItems[0].Name)
}

func TestNextOrderSequence(t *testing.T) {
	client := newTestClient(t)

	first, err := client.NextOrderSequence("20260830")
	require.NoError(t, err)
	second, err := client.NextOrderSequence("20260830")
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)

	// A different day starts its own counter.
	other, err := client.NextOrderSequence("20260831")
	require.NoError(t, err)
	assert.Equal(t, int64(1), other)
}
