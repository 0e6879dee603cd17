package migrations

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestLoadMigrations_Ordered(t *testing.T) {
	migrations, err := LoadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 3)

	for i, m := range migrations {
		assert.Equal(t, i+1, m.Version)
		assert.NotEmpty(t, m.Up)
	}
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))

	var applied int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&applied))
	assert.Equal(t, 3, applied)

	for _, table := range []string{"tasks", "task_counter"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}
}

func TestExtractVersion(t *testing.T) {
	assert.Equal(t, 1, extractVersion("000001_create_tasks.up.sql"))
	assert.Equal(t, 12, extractVersion("000012_x.up.sql"))
	assert.Equal(t, 0, extractVersion("readme.sql"))
}
