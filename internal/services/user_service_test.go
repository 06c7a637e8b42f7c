package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_SyncFromClerk_CreatesNewUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	name := "Dana"
	user, err := svc.SyncFromClerk(&ClerkUserEvent{
		ClerkID: "clerk_abc",
		Email:   "dana@example.com",
		Name:    &name,
		Role:    "staff",
	})
	require.NoError(t, err)

	assert.Len(t, userRepo.created, 1)
	assert.Empty(t, userRepo.updated)
	assert.Equal(t, "clerk_abc", user.ClerkID)
	assert.Equal(t, "staff", user.Role)
	require.NotNil(t, user.Name)
	assert.Equal(t, "Dana", *user.Name)
	assert.Nil(t, user.PhoneNumber)
}

func TestUserService_SyncFromClerk_DefaultsRoleToCustomer(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	user, err := svc.SyncFromClerk(&ClerkUserEvent{ClerkID: "clerk_x", Email: "x@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "customer", user.Role)
}

func TestUserService_SyncFromClerk_UpdatesExistingUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	_, err := svc.SyncFromClerk(&ClerkUserEvent{ClerkID: "clerk_abc", Email: "old@example.com", Role: "customer"})
	require.NoError(t, err)

	updated, err := svc.SyncFromClerk(&ClerkUserEvent{ClerkID: "clerk_abc", Email: "new@example.com", Role: "admin"})
	require.NoError(t, err)

	assert.Len(t, userRepo.created, 1)
	assert.Len(t, userRepo.updated, 1)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "admin", updated.Role)
}
