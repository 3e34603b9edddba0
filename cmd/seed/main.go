// seed inserts two demo users and a handful of tasks into the local dev
// database. Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"task-tracker-api/internal/infrastructure/postgres"
)

const seedPassword = "password123"

var seedUsers = []struct {
	name  string
	email string
	tasks []string
}{
	{
		name:  "Alice Demo",
		email: "alice@test.local",
		tasks: []string{
			"buy milk",
			"walk the dog",
			"file expense report",
		},
	},
	{
		name:  "Bob Demo",
		email: "bob@test.local",
		tasks: []string{
			"renew passport",
			"book dentist appointment",
		},
	},
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

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash seed password: %v", err)
	}

	var taskCount int
	for _, su := range seedUsers {
		// Idempotent re-runs: existing users keep their row, tasks are
		// only inserted on first run.
		var userID string
		var created bool
		err := pool.QueryRow(ctx, `
			INSERT INTO users (name, email, password_hash)
			VALUES ($1, $2, $3)
			ON CONFLICT (email) DO UPDATE SET updated_at = NOW()
			RETURNING id, (xmax = 0)`,
			su.name, su.email, string(hash),
		).Scan(&userID, &created)
		if err != nil {
			log.Fatalf("upsert user %s: %v", su.email, err)
		}

		if !created {
			fmt.Printf("  %s already seeded, skipping tasks\n", su.email)
			continue
		}

		for _, description := range su.tasks {
			if _, err := pool.Exec(ctx, `
				INSERT INTO tasks (user_id, description) VALUES ($1, $2)`,
				userID, description,
			); err != nil {
				log.Fatalf("insert task for %s: %v", su.email, err)
			}
			taskCount++
		}
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  Users:    %d (password for all: %s)\n", len(seedUsers), seedPassword)
	fmt.Printf("  Tasks:    %d\n", taskCount)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1 — log in as a seed user:")
	fmt.Println()
	fmt.Println("    curl -s -X POST http://localhost:8080/api/users/login \\")
	fmt.Println("      -H 'Content-Type: application/json' \\")
	fmt.Printf("      -d '{\"email\":\"alice@test.local\",\"password\":\"%s\"}'\n", seedPassword)
	fmt.Println()
	fmt.Println("  Step 2 — list your tasks:")
	fmt.Println()
	fmt.Println("    export JWT=eyJ...   # token from the login response")
	fmt.Println("    curl -s http://localhost:8080/api/tasks -H \"Authorization: Bearer $JWT\"")
	fmt.Println()
	fmt.Println("  Step 3 — try to delete Bob's task with Alice's token and watch it 401.")
}
