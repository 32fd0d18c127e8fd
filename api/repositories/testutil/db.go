package testutil

import (
	"context"
	"draftroom/pkg/config"
	"draftroom/pkg/database"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// migrationsPath resolves the repository migrations directory from this file.
func migrationsPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "migrations")
}

// NewTestConnection starts a PostgreSQL container with the full schema migrated.
// Return the connection pool and the cleanup function.
func NewTestConnection(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	ctx := context.Background()

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "test",
				"POSTGRES_PASSWORD": "test",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	cfg := config.DatabaseConfiguration{
		Driver: config.DriverPostgres,
		DSN: fmt.Sprintf(
			"host=%s port=%s user=test password=test dbname=testdb sslmode=disable TimeZone=UTC",
			host, port.Port(),
		),
		MigrationsPath: migrationsPath(),
		Name:           "testdb",
	}

	db, err := database.NewConnection(cfg)
	if err != nil {
		t.Fatalf("Failed to open gorm connection: %v", err)
	}

	// Run the migrations to replicate the full schema.
	if err := database.Migrate(cfg, db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	cleanup := func() {
		database.Close(db)
		tc.CleanupContainer(t, container)
	}

	return db, cleanup
}

// NewSqliteConnection creates an isolated in-memory database created from the models.
func NewSqliteConnection(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := config.DatabaseConfiguration{
		Driver: config.DriverSqlite,
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", strings.ReplaceAll(t.Name(), "/", "_")),
	}

	db, err := database.NewConnection(cfg)
	if err != nil {
		t.Fatalf("Failed to open sqlite connection: %v", err)
	}

	if err := database.Migrate(cfg, db); err != nil {
		t.Fatalf("Failed to migrate sqlite: %v", err)
	}

	t.Cleanup(func() { database.Close(db) })

	return db
}
