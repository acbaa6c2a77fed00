// Package store implements the snapshot persistence collaborator: one JSON
// document per authenticated identity, kept in a relational table.
package store

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fintrack/internal/config"
)

// Manager owns the database connection behind the snapshot store.
type Manager struct {
	db *gorm.DB
}

// NewManager opens the database selected by the configuration. Postgres is
// used for hosted deployments; sqlite backs local and test runs.
func NewManager(cfg *config.Config) (*Manager, error) {
	var dialector gorm.Dialector
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		dialector = postgres.New(postgres.Config{
			DSN:                  cfg.PostgresDSN(),
			PreferSimpleProtocol: true,
		})
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db}, nil
}

// AutoMigrate creates the snapshot table. Used for sqlite deployments and
// tests; postgres schemas are managed by cmd/migrate.
func (m *Manager) AutoMigrate() error {
	return m.db.AutoMigrate(&UserSnapshot{})
}

// DB returns the underlying GORM database instance.
func (m *Manager) DB() *gorm.DB {
	return m.db
}
