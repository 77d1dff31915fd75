package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/timearchive/server/internal/auth"
)

func main() {
	// load environment
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// connect to database
	dbConnString := os.Getenv("DATABASE_URL")
	if dbConnString == "" {
		log.Fatal("DATABASE_URL not set")
	}

	dbPool, err := pgxpool.New(context.Background(), dbConnString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	ctx := context.Background()

	// create or find test user
	testEmail := "test@timearchive.dev"
	var userID string

	err = dbPool.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", testEmail).Scan(&userID)

	if err != nil {
		// create test user with a known password
		passwordHash, err := auth.HashPassword("test-password-123")
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		err = dbPool.QueryRow(ctx, `
			INSERT INTO users (email, password_hash, role)
			VALUES ($1, $2, $3)
			RETURNING id
		`, testEmail, passwordHash, auth.RoleAdmin).Scan(&userID)

		if err != nil {
			log.Fatalf("Failed to create test user: %v", err)
		}
		fmt.Printf("✅ Created test user: %s (ID: %s)\n", testEmail, userID)
	} else {
		fmt.Printf("✅ Using existing test user (ID: %s)\n", userID)
	}

	// generate JWT token
	token, err := auth.GenerateJWT(userID, testEmail, auth.RoleAdmin)
	if err != nil {
		log.Fatalf("Failed to generate JWT: %v", err)
	}

	fmt.Printf("\n🔑 Test JWT Token:\n%s\n\n", token)
	fmt.Printf("Export this token for testing:\nexport TEST_TOKEN=\"%s\"\n", token)
}
