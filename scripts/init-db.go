package main

import (
	"fmt"
	"log"

	"restaurant_platform/internal/config"
	"restaurant_platform/internal/database"
	"restaurant_platform/internal/migrations"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Recreate the schema and seed default data
	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	fmt.Println("Database initialization completed!")
}
