package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/store/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is automatically closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	err = migrations.Run(context.Background(), db)
	require.NoError(t, err, "failed to run migrations")

	return db
}

// SeedInvocations records invocations through store in order.
func SeedInvocations(t *testing.T, store domain.HistoryStore, invocations []domain.Invocation) {
	t.Helper()

	for _, inv := range invocations {
		_, err := store.Record(context.Background(), inv)
		require.NoError(t, err, "failed to seed invocation: %+v", inv)
	}
}
