package database

import (
	"draftroom/pkg/config"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens the connection pool for the configured driver.
func NewConnection(cfg config.DatabaseConfiguration) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	// Create the database instance.
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get the SQL database itself.
	sqlDb, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get the sql connection: %w", err)
	}

	// Set the pool values.
	if cfg.Driver == config.DriverSqlite {
		// A single writer avoids "database is locked" errors.
		sqlDb.SetMaxOpenConns(1)
	} else {
		sqlDb.SetMaxOpenConns(100)
		sqlDb.SetMaxIdleConns(10)
		sqlDb.SetConnMaxLifetime(time.Hour)
		sqlDb.SetConnMaxIdleTime(time.Hour)
	}

	// Test the connection
	if err := sqlDb.Ping(); err != nil {
		sqlDb.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func dialectorFor(cfg config.DatabaseConfiguration) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN), nil
	case config.DriverSqlite:
		return sqlite.Open(cfg.DSN), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

// Close releases the pool, ignoring a connection that was never opened.
func Close(db *gorm.DB) {
	if sqlDb, err := db.DB(); err == nil {
		sqlDb.Close()
	}
}
