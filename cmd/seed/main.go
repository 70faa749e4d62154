// seed inserts a test user and a spread of todos into the local dev database.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/tiago154/fast-zero/internal/auth"
	"github.com/tiago154/fast-zero/internal/infrastructure/postgres"
)

const (
	seedUsername = "seed"
	seedEmail    = "seed@test.local"
	seedPassword = "password"
)

type todoSpec struct {
	title       string
	description string
	state       string
}

var todos = []todoSpec{
	{"Write the project README", "Cover setup, env vars, and how to run tests", "draft"},
	{"Plan the sprint", "Collect estimates from the team", "todo"},
	{"Fix the login form", "Password field loses focus on error", "doing"},
	{"Ship v0.1", "Tag and deploy to staging", "doing"},
	{"Review onboarding docs", "", "done"},
	{"Clean up old branches", "Anything merged before last month", "done"},
	{"Draft blog post", "Abandoned — superseded by the launch announcement", "trash"},
	{"Try the new CI runner", "", "trash"},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	// Upsert test user
	var userID int64
	err = pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE SET updated_at = NOW()
		RETURNING id`,
		seedUsername, seedEmail, hash,
	).Scan(&userID)
	if err != nil {
		log.Fatalf("upsert user: %v", err)
	}

	var inserted int
	for _, item := range todos {
		_, err := pool.Exec(ctx, `
			INSERT INTO todos (user_id, title, description, state)
			VALUES ($1, $2, $3, $4)`,
			userID, item.title, item.description, item.state,
		)
		if err != nil {
			log.Fatalf("insert todo %q: %v", item.title, err)
		}
		inserted++
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  User:          %s / %s\n", seedUsername, seedPassword)
	fmt.Printf("  User ID:       %d\n", userID)
	fmt.Printf("  Todos created: %d\n", inserted)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1 — get a token:")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:8080/api/auth/token \\\n")
	fmt.Printf("      -H 'Content-Type: application/json' \\\n")
	fmt.Printf("      -d '{\"username\":\"%s\",\"password\":\"%s\"}'\n", seedUsername, seedPassword)
	fmt.Println()
	fmt.Println("  Step 2 — list todos:")
	fmt.Println()
	fmt.Println("    export JWT=eyJ...")
	fmt.Println("    curl -s http://localhost:8080/api/todos -H \"Authorization: Bearer $JWT\"")
	fmt.Println()
	fmt.Println("  Step 3 — filter by state:")
	fmt.Println()
	fmt.Println("    curl -s 'http://localhost:8080/api/todos?state=doing' -H \"Authorization: Bearer $JWT\"")
}
