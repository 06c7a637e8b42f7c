package repository

import (
	"restaurant_platform/internal/models"
	"restaurant_platform/internal/schema"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByClerkID(clerkID string) (*models.User, error)
	GetByEmail(email string) ([]models.User, error)
	GetAll() ([]models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	stampCreatedAt(&user.CreatedAt)
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("clerk_id = ?", user.ClerkID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &schema.UniquenessViolation{Entity: "users", Fields: []string{"clerk_id"}}
		}
		if err := tx.Create(user).Error; err != nil {
			return translateError("users", []string{"clerk_id"}, err)
		}
		return nil
	})
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByClerkID(clerkID string) (*models.User, error) {
	var user models.User
	err := r.db.Where("clerk_id = ?", clerkID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(email string) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("email = ?", email).Find(&users).Error
	return users, err
}

func (r *userRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Find(&users).Error
	return users, err
}

func (r *userRepository) Update(user *models.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	var stored models.User
	if err := r.db.First(&stored, user.ID).Error; err != nil {
		return err
	}
	if err := guardCreatedAt("users", stored.CreatedAt, user.CreatedAt); err != nil {
		return err
	}
	if user.ClerkID != stored.ClerkID {
		var count int64
		if err := r.db.Model(&models.User{}).Where("clerk_id = ? AND id <> ?", user.ClerkID, user.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &schema.UniquenessViolation{Entity: "users", Fields: []string{"clerk_id"}}
		}
	}
	err := r.db.Model(&models.User{ID: user.ID}).Select("*").Omit("id", "created_at").Updates(user).Error
	return translateError("users", []string{"clerk_id"}, err)
}

func (r *userRepository) Delete(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}
