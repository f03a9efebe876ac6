package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/siteqa"
	"github.com/fwojciec/siteqa/sqlite"
	"github.com/stretchr/testify/require"
)

// mustOpenDB opens an in-memory database for testing.
func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// mustCreateSite creates a site for use as a parent row in tests.
func mustCreateSite(t *testing.T, db *sqlite.DB, name string) *siteqa.Site {
	t.Helper()
	site := &siteqa.Site{Name: name, RootURL: "https://" + name + ".example.com"}
	require.NoError(t, sqlite.NewSiteService(db).CreateSite(context.Background(), site))
	return site
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		ctx := context.Background()

		for _, table := range []string{"sites", "items", "chunks"} {
			var count int
			err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count)
			require.NoError(t, err, "table %s should exist", table)
		}
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		require.Error(t, db.Open())
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(t.TempDir() + "/test.db")
		require.NoError(t, db.Open())
		defer db.Close()

		var journalMode string
		err := db.QueryRowContext(context.Background(), "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		require.Equal(t, "wal", journalMode)
	})
}
