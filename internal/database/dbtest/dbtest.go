// Package dbtest opens throwaway in-memory databases for tests.
package dbtest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/database"
)

// Open returns a migrated in-memory SQLite database that is closed when the
// test ends. The pool is pinned to one connection because every SQLite
// memory connection is its own database.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open("file::memory:"), 1, 1)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	t.Cleanup(func() { database.Close(db) })
	return db
}
