// Package testutil provides test helpers for setting up in-memory snapshot
// stores, creating engine fixtures, and making assertions.
package testutil

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fintrack/internal/engine"
	"fintrack/internal/store"
	"fintrack/internal/uuid"
)

// TestUserID is the identity used by engine fixtures.
const TestUserID = "test-user"

// SetupTestDB creates an in-memory SQLite database with the snapshot table
// migrated. Each call gets its own named database; cache=shared keeps it
// alive across the pooled connections gorm opens.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&store.UserSnapshot{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// TeardownTestDB closes the underlying database connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}

// SetupTestStore creates a SnapshotStore over an in-memory database and
// registers cleanup.
func SetupTestStore(t *testing.T) store.SnapshotStore {
	t.Helper()

	db := SetupTestDB(t)
	t.Cleanup(func() { TeardownTestDB(t, db) })
	return store.NewSnapshotStore(db)
}

// NewTestEngine creates an engine over a fresh in-memory store with a
// session signed in as TestUserID. The engine is closed on test cleanup.
func NewTestEngine(t *testing.T) *engine.Engine {
	t.Helper()

	e := engine.New(SetupTestStore(t))
	t.Cleanup(e.Close)
	if err := e.SignIn(context.Background(), TestUserID); err != nil {
		t.Fatalf("failed to sign in test session: %v", err)
	}
	return e
}
