// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"gazete/internal/database"
	"gazete/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses the same environment variables and defaults as config.Load.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "gazete")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "gazete")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := testDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// seedUser inserts a test user and returns its id. Cleanup removes it.
func seedUser(t *testing.T, db *sql.DB, username string, role models.Role) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(`
		INSERT INTO users (username, email, password_hash, first_name, last_name, role, is_active)
		VALUES ($1, $2, 'x', 'Test', 'User', $3, TRUE)
		RETURNING id
	`, username, username+"@test.local", role).Scan(&id)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM users WHERE id = $1", id) })
	return id
}

// seedCategory inserts a test category and returns its id. Cleanup removes it.
func seedCategory(t *testing.T, db *sql.DB, name, slug string) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(`
		INSERT INTO categories (name, slug) VALUES ($1, $2) RETURNING id
	`, name, slug).Scan(&id)
	if err != nil {
		t.Fatalf("seed category: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM categories WHERE id = $1", id) })
	return id
}

// cleanNews removes test news rows by slug. Call in t.Cleanup().
func cleanNews(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	for _, slug := range slugs {
		db.Exec("DELETE FROM news WHERE slug = $1", slug)
	}
}
