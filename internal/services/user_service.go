package services

import (
	"errors"

	"restaurant_platform/internal/models"
	"restaurant_platform/internal/repository"

	"gorm.io/gorm"
)

// ClerkUserEvent is the normalized payload of an identity-provider webhook.
// Clerk owns authentication; this layer only mirrors the user record.
type ClerkUserEvent struct {
	ClerkID     string  `json:"clerk_id"`
	Email       string  `json:"email"`
	Name        *string `json:"name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Role        string  `json:"role"`
}

type UserService interface {
	SyncFromClerk(event *ClerkUserEvent) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GetUserByClerkID(clerkID string) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	UpdateUser(user *models.User) error
	DeleteUser(id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// SyncFromClerk upserts the local mirror of an identity-provider user.
// user.created events insert; user.updated events overwrite the mutable
// fields of the existing record keyed by clerk_id.
func (s *userService) SyncFromClerk(event *ClerkUserEvent) (*models.User, error) {
	role := event.Role
	if role == "" {
		role = string(models.RoleCustomer)
	}

	existing, err := s.userRepo.GetByClerkID(event.ClerkID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user := &models.User{
			ClerkID:     event.ClerkID,
			Email:       event.Email,
			Name:        event.Name,
			PhoneNumber: event.PhoneNumber,
			Role:        role,
		}
		if err := s.userRepo.Create(user); err != nil {
			return nil, err
		}
		return user, nil
	}

	existing.Email = event.Email
	existing.Name = event.Name
	existing.PhoneNumber = event.PhoneNumber
	existing.Role = role
	if err := s.userRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *userService) GetUserByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

func (s *userService) GetUserByClerkID(clerkID string) (*models.User, error) {
	return s.userRepo.GetByClerkID(clerkID)
}

func (s *userService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

func (s *userService) UpdateUser(user *models.User) error {
	return s.userRepo.Update(user)
}

func (s *userService) DeleteUser(id uint) error {
	return s.userRepo.Delete(id)
}
