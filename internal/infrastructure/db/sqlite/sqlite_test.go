package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
)

// newTestDB opens a throwaway database file under t.TempDir.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := Connect(context.Background(), Config{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestConnect_BootstrapsSchema(t *testing.T) {
	db := newTestDB(t)

	for _, table := range []string{"users", "posts"} {
		var name string
		err := db.Get(&name,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}
}

func TestConnect_ForeignKeysStayOff(t *testing.T) {
	db := newTestDB(t)

	// The posts.user_id reference is documentation only; inserting an orphan
	// must succeed.
	var fk int
	if err := db.Get(&fk, `PRAGMA foreign_keys`); err != nil {
		t.Fatalf("pragma: %v", err)
	}
	if fk != 0 {
		t.Fatal("foreign key enforcement is on; the user_id reference must stay unenforced")
	}

	if _, err := db.Exec(
		`INSERT INTO posts (title, content, user_id) VALUES ('t', 'c', 12345)`); err != nil {
		t.Fatalf("orphan insert rejected: %v", err)
	}
}
