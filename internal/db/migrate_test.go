package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"catalog_imports", "catalog_assets"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_KindConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO catalog_imports (id, manifest_id, shape, source_path, imported_at)
		VALUES ('i1', 'm1', 'Finch', 'manifest.json', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO catalog_assets (import_id, seq, asset_name, kind) VALUES ('i1', 1, 'x', 'sticker')`)
	assert.Error(t, err)

	_, err = db.Exec(`INSERT INTO catalog_assets (import_id, seq, asset_name, kind) VALUES ('i1', 1, 'shape_Finch_base', 'base_shape')`)
	require.NoError(t, err)

	var status string
	require.NoError(t, db.QueryRow(`SELECT status FROM catalog_assets WHERE asset_name = 'shape_Finch_base'`).Scan(&status))
	assert.Equal(t, "missing", status)
}

func TestMigrate_ForeignKeysCascade(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO catalog_assets (import_id, seq, asset_name, kind) VALUES ('nope', 1, 'x', 'base_shape')`)
	assert.Error(t, err, "asset rows require an import")

	_, err = db.Exec(`INSERT INTO catalog_imports (id, manifest_id, shape, source_path, imported_at)
		VALUES ('i1', 'm1', 'Finch', 'manifest.json', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO catalog_assets (import_id, seq, asset_name, kind) VALUES ('i1', 1, 'x', 'base_shape')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM catalog_imports WHERE id = 'i1'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM catalog_assets`).Scan(&n))
	assert.Zero(t, n)
}

func TestOpenDB_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.db")

	db, err := OpenDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	assert.FileExists(t, path)
}
