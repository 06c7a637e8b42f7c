package migrations

import (
	"log"

	"restaurant_platform/internal/models"
	"restaurant_platform/internal/repository"

	"gorm.io/gorm"
)

// RunMigrations recreates the full schema and seeds default data.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	log.Println("Dropping existing tables...")
	err := db.Migrator().DropTable(
		&models.Analytics{},
		&models.Payment{},
		&models.OrderItem{},
		&models.Order{},
		&models.Table{},
		&models.MenuItem{},
		&models.Category{},
		&models.Branch{},
		&models.User{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	log.Println("Creating tables...")
	err = db.AutoMigrate(
		&models.User{},
		&models.Branch{},
		&models.Category{},
		&models.MenuItem{},
		&models.Table{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Analytics{},
	)
	if err != nil {
		return err
	}

	if err := createDefaultData(db); err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// createDefaultData seeds a first branch, an admin user and the starter
// menu categories so a fresh install is immediately usable.
func createDefaultData(db *gorm.DB) error {
	log.Println("Creating default data...")

	userRepo := repository.NewUserRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	if _, err := userRepo.GetByClerkID("seed_admin"); err == nil {
		log.Println("Default data already exists")
		return nil
	}

	adminName := "Platform Admin"
	admin := &models.User{
		ClerkID: "seed_admin",
		Email:   "admin@restaurant.local",
		Name:    &adminName,
		Role:    string(models.RoleAdmin),
	}
	if err := userRepo.Create(admin); err != nil {
		return err
	}
	log.Println("Created admin user")

	branch := &models.Branch{
		Name:        "Main Branch",
		Address:     "1 Market Street",
		City:        "San Francisco",
		State:       "CA",
		ZipCode:     "94105",
		PhoneNumber: "+1-555-0100",
		IsActive:    true,
	}
	if err := branchRepo.Create(branch); err != nil {
		return err
	}
	log.Println("Created default branch")

	starterCategories := []string{"Appetizers", "Mains", "Desserts", "Drinks"}
	for order, name := range starterCategories {
		displayOrder := order + 1
		category := &models.Category{
			Name:         name,
			DisplayOrder: &displayOrder,
			IsActive:     true,
		}
		if err := categoryRepo.Create(category); err != nil {
			return err
		}
	}
	log.Printf("Created %d starter categories", len(starterCategories))

	return nil
}
