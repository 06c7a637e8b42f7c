package services

import (
	"testing"
	"time"

	"restaurant_platform/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuService_GetBranchMenu_CachesAndFilters(t *testing.T) {
	branchID := uint(7)
	menuRepo := newFakeMenuItemRepo(
		&models.MenuItem{ID: 1, CategoryID: 1, BranchID: &branchID, Name: "Margherita", Price: 11.99, IsAvailable: true},
		&models.MenuItem{ID: 2, CategoryID: 1, BranchID: &branchID, Name: "Eighty-Sixed", Price: 9.99, IsAvailable: false},
	)
	svc := NewMenuService(nil, menuRepo, newTestCache(t), time.Minute)

	menu, err := svc.GetBranchMenu(branchID)
	require.NoError(t, err)
	require.Len(t, menu, 1)
	assert.Equal(t, "Margherita", menu[0].Name)
	assert.Equal(t, 1, menuRepo.byBranchCalls)

	// Second read comes from the cache, not the database.
	menu, err = svc.GetBranchMenu(branchID)
	require.NoError(t, err)
	assert.Len(t, menu, 1)
	assert.Equal(t, 1, menuRepo.byBranchCalls)
}
