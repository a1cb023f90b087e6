package migrations_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdtree/internal/store/migrations"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// one connection, one in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoad(t *testing.T) {
	all, err := migrations.Load()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(all), 2)

	for i := 1; i < len(all); i++ {
		require.Greater(t, all[i].Version, all[i-1].Version)
	}
	require.Equal(t, "create_invocations", all[0].Description)
}

func TestRunIdempotent(t *testing.T) {
	ctx := context.Background()
	db := openMemory(t)

	require.NoError(t, migrations.Run(ctx, db))
	v1, err := migrations.CurrentVersion(ctx, db)
	require.NoError(t, err)

	require.NoError(t, migrations.Run(ctx, db))
	v2, err := migrations.CurrentVersion(ctx, db)
	require.NoError(t, err)

	require.Equal(t, v1, v2)
}

func TestPending(t *testing.T) {
	ctx := context.Background()
	db := openMemory(t)

	all, err := migrations.Load()
	require.NoError(t, err)

	pending, err := migrations.Pending(ctx, db)
	require.NoError(t, err)
	require.Len(t, pending, len(all))

	require.NoError(t, migrations.Run(ctx, db))
	pending, err = migrations.Pending(ctx, db)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestSchemaCreated(t *testing.T) {
	ctx := context.Background()
	db := openMemory(t)
	require.NoError(t, migrations.Run(ctx, db))

	for _, table := range []string{"schema_migrations", "invocations"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "table %s not created", table)
	}

	for _, index := range []string{"idx_invocations_created_at", "idx_invocations_outcome", "idx_invocations_request_id"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='index' AND name=?", index).Scan(&name)
		require.NoError(t, err, "index %s not created", index)
	}
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, migrations.Run(ctx, openMemory(t)))
}
