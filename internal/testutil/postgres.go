// Package testutil starts a disposable PostgreSQL for integration tests.
package testutil

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	database "github.com/sebuszqo/FoodManager/db"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	once     sync.Once
	shared   *sql.DB
	startErr error
)

// Postgres returns a migrated database shared by every test in the package.
// The container is removed by the testcontainers reaper when the process
// exits. Tests are skipped in -short mode or without a Docker daemon.
func Postgres(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	once.Do(func() {
		shared, startErr = start(context.Background())
	})
	if startErr != nil {
		t.Fatalf("start postgres: %v", startErr)
	}
	Reset(t, shared)
	return shared
}

func start(ctx context.Context) (*sql.DB, error) {
	container, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		postgres.WithDatabase("food"),
		postgres.WithUsername("food"),
		postgres.WithPassword("food"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		return nil, err
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, err
	}
	if err := database.ApplyMigrations(ctx, db); err != nil {
		return nil, err
	}
	return db, nil
}

// Reset empties every application table and restarts the id sequences.
func Reset(t *testing.T, db *sql.DB) {
	t.Helper()
	_, err := db.Exec(`TRUNCATE carts, recipe_ingredients, recipes, recipe_categories,
		user_ingredients, ingredients, ingredient_categories, users RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatalf("reset database: %v", err)
	}
}

// CreateUser inserts a user row directly and returns its id.
func CreateUser(t *testing.T, db *sql.DB, username string, staff bool) string {
	t.Helper()
	var id string
	err := db.QueryRow(`INSERT INTO users (username, email, password_hash, is_staff)
		VALUES ($1, $2, 'x', $3) RETURNING id`, username, username+"@example.com", staff).Scan(&id)
	if err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return id
}
