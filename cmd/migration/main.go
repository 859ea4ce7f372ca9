package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/driversed/driversed-api/internal/adapter/repository"
	"github.com/driversed/driversed-api/internal/domain/user"
	"github.com/driversed/driversed-api/internal/infrastructure/database"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	if err := database.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations applied successfully")

	if err := seedAdminUser(); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
}

// seedAdminUser creates the first admin user when ADMIN_EMAIL and
// ADMIN_PASSWORD are set and no user with that email exists yet.
func seedAdminUser() error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	db, err := database.NewPostgresDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userRepo := repository.NewUserRepository(db)

	if _, err := userRepo.FindByEmail(ctx, email); err == nil {
		log.Printf("Admin user %s already exists, skipping seed", email)
		return nil
	} else if !errors.Is(err, user.ErrNotFound) {
		return err
	}

	now := time.Now()
	admin := &user.User{
		ID:        uuid.New().String(),
		Name:      getEnvOrDefault("ADMIN_NAME", "Administrator"),
		Email:     email,
		Role:      user.RoleAdmin,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := admin.SetPassword(password); err != nil {
		return err
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("Admin user %s created", email)
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
