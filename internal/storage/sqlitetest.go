package storage

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/robalobadob/wordle-helper/assets"
)

// OpenTest returns a migrated database in a per-test temp dir.
func OpenTest(t testing.TB) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := Migrate(db, assets.Migrations()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
