package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all catalog schema migrations. Statements are idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS catalog_imports (
		id          TEXT PRIMARY KEY,
		manifest_id TEXT NOT NULL UNIQUE,
		shape       TEXT NOT NULL,
		birds       TEXT NOT NULL DEFAULT '[]',
		source_path TEXT NOT NULL,
		imported_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS catalog_assets (
		import_id  TEXT NOT NULL REFERENCES catalog_imports(id) ON DELETE CASCADE,
		seq        INTEGER NOT NULL,
		asset_name TEXT NOT NULL,
		kind       TEXT NOT NULL
		           CHECK(kind IN ('base_shape','category_icon','variation_icon','canvas_layer')),
		area       TEXT,
		variant    TEXT,
		status     TEXT NOT NULL DEFAULT 'missing'
		           CHECK(status IN ('present','missing','invalid')),
		checked_at TEXT,
		PRIMARY KEY (import_id, seq)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_catalog_assets_name ON catalog_assets(import_id, asset_name)`,

	`CREATE INDEX IF NOT EXISTS idx_catalog_assets_status ON catalog_assets(import_id, status)`,

	`CREATE INDEX IF NOT EXISTS idx_catalog_imports_imported_at ON catalog_imports(imported_at)`,
}
