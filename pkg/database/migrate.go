package database

import (
	"database/sql"
	"draftroom/pkg/config"
	"draftroom/pkg/database/models"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"
)

const migrationsLockKey = "draftroom_migrations_lock"

// Migrate brings the schema up to date.
// PostgreSQL uses the versioned SQL migrations, sqlite is created from the models.
func Migrate(cfg config.DatabaseConfiguration, db *gorm.DB) error {
	if cfg.Driver == config.DriverSqlite {
		return AutoMigrate(db)
	}

	sqlDb, err := db.DB()
	if err != nil {
		return fmt.Errorf("couldn't get raw db connection: %w", err)
	}

	return RunMigrations(cfg, sqlDb)
}

// AutoMigrate creates the tables from the gorm models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Player{},
		&models.ExpertReport{},
		&models.CommunityReport{},
		&models.ReportVote{},
		&models.PlayerVote{},
	)
}

// RunMigrations applies all pending migrations to the database.
func RunMigrations(cfg config.DatabaseConfiguration, db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", cfg.MigrationsPath),
		cfg.Name,
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	// Acquire an advisory lock to prevent concurrent migrations between services.
	var lockAcquired bool
	err = db.QueryRow("SELECT pg_try_advisory_lock(hashtext($1))", migrationsLockKey).Scan(&lockAcquired)
	if err != nil {
		return err
	}

	if !lockAcquired {
		slog.Info("another process is already running migrations, skipping")
		return nil
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		_ = db.QueryRow("SELECT pg_advisory_unlock(hashtext($1))", migrationsLockKey).Scan(new(bool))
		return fmt.Errorf("could not run migrations: %w", err)
	}

	var lockReleased bool
	err = db.QueryRow("SELECT pg_advisory_unlock(hashtext($1))", migrationsLockKey).Scan(&lockReleased)
	if err != nil || !lockReleased {
		return fmt.Errorf("could not release advisory lock: %w", err)
	}

	return nil
}
