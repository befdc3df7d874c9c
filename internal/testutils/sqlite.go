package testutils

import (
	"fmt"
	"testing"

	"yelpcamp/internal/database"

	"gorm.io/gorm"
)

// NewSQLiteDB opens a migrated in-memory SQLite database private to the
// test. name must be unique across the test binary.
func NewSQLiteDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := database.Initialize(database.DialectSQLite, SQLiteDSN(name), nil)
	if err != nil {
		t.Fatalf("open sqlite %s: %v", name, err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// SQLiteDSN returns a shared-cache in-memory DSN for name
func SQLiteDSN(name string) string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
}
