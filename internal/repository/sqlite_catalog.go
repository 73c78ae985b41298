package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/fieldmarks/internal/db"
	"github.com/alexanderramin/fieldmarks/internal/domain"
)

// SQLiteCatalogRepo implements CatalogRepo on a SQLite database or transaction.
type SQLiteCatalogRepo struct {
	db db.DBTX
}

// NewSQLiteCatalogRepo creates a new SQLiteCatalogRepo.
func NewSQLiteCatalogRepo(conn db.DBTX) *SQLiteCatalogRepo {
	return &SQLiteCatalogRepo{db: conn}
}

var _ CatalogRepo = (*SQLiteCatalogRepo)(nil)

// importedAtLayout has fixed-width fractional seconds so imported_at sorts lexically.
const importedAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

const importColumns = `id, manifest_id, shape, birds, source_path, imported_at`

func (r *SQLiteCatalogRepo) CreateImport(ctx context.Context, imp *domain.CatalogImport) error {
	birds, err := json.Marshal(imp.Birds)
	if err != nil {
		return fmt.Errorf("encoding birds: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO catalog_imports (`+importColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		imp.ID,
		imp.ManifestID,
		imp.Shape,
		string(birds),
		imp.SourcePath,
		imp.ImportedAt.UTC().Format(importedAtLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting catalog import: %w", err)
	}
	return nil
}

func (r *SQLiteCatalogRepo) GetImport(ctx context.Context, id string) (*domain.CatalogImport, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+importColumns+` FROM catalog_imports WHERE id = ?`, id)
	return scanImport(row)
}

func (r *SQLiteCatalogRepo) GetImportByManifestID(ctx context.Context, manifestID string) (*domain.CatalogImport, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+importColumns+` FROM catalog_imports WHERE manifest_id = ?`, manifestID)
	return scanImport(row)
}

func (r *SQLiteCatalogRepo) LatestImport(ctx context.Context) (*domain.CatalogImport, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+importColumns+` FROM catalog_imports ORDER BY imported_at DESC, rowid DESC LIMIT 1`)
	return scanImport(row)
}

func (r *SQLiteCatalogRepo) DeleteImport(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM catalog_imports WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting catalog import: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("catalog import %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteCatalogRepo) AddAsset(ctx context.Context, a *domain.CatalogAsset) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO catalog_assets (import_id, seq, asset_name, kind, area, variant, status, checked_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ImportID,
		a.Seq,
		a.AssetName,
		a.Kind.String(),
		nullableString(a.Area),
		nullableString(a.Variant),
		string(a.Status),
		nullableTimeToString(a.CheckedAt, time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting catalog asset %s: %w", a.AssetName, err)
	}
	return nil
}

func (r *SQLiteCatalogRepo) ListAssets(ctx context.Context, importID string) ([]*domain.CatalogAsset, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT import_id, seq, asset_name, kind, area, variant, status, checked_at
		FROM catalog_assets WHERE import_id = ? ORDER BY seq`, importID)
	if err != nil {
		return nil, fmt.Errorf("listing catalog assets: %w", err)
	}
	defer rows.Close()

	var assets []*domain.CatalogAsset
	for rows.Next() {
		var (
			a         domain.CatalogAsset
			kind      string
			status    string
			area      sql.NullString
			variant   sql.NullString
			checkedAt sql.NullString
		)
		if err := rows.Scan(&a.ImportID, &a.Seq, &a.AssetName, &kind, &area, &variant, &status, &checkedAt); err != nil {
			return nil, fmt.Errorf("scanning catalog asset: %w", err)
		}
		if a.Kind, err = domain.ParseAssetKind(kind); err != nil {
			return nil, err
		}
		a.Area = area.String
		a.Variant = variant.String
		a.Status = domain.AssetStatus(status)
		a.CheckedAt = parseNullableTime(checkedAt, time.RFC3339)
		assets = append(assets, &a)
	}
	return assets, rows.Err()
}

// UpdateAssetStatus addresses the asset by position; names may collide within one manifest.
func (r *SQLiteCatalogRepo) UpdateAssetStatus(ctx context.Context, importID string, seq int, status domain.AssetStatus, checkedAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE catalog_assets SET status = ?, checked_at = ? WHERE import_id = ? AND seq = ?`,
		string(status), checkedAt.UTC().Format(time.RFC3339), importID, seq)
	if err != nil {
		return fmt.Errorf("updating catalog asset %d: %w", seq, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("catalog asset %d: %w", seq, ErrNotFound)
	}
	return nil
}

func (r *SQLiteCatalogRepo) CountByStatus(ctx context.Context, importID string) (map[domain.AssetKind]map[domain.AssetStatus]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT kind, status, COUNT(*) FROM catalog_assets WHERE import_id = ? GROUP BY kind, status`, importID)
	if err != nil {
		return nil, fmt.Errorf("counting catalog assets: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.AssetKind]map[domain.AssetStatus]int)
	for rows.Next() {
		var kindStr, status string
		var n int
		if err := rows.Scan(&kindStr, &status, &n); err != nil {
			return nil, fmt.Errorf("scanning catalog counts: %w", err)
		}
		kind, err := domain.ParseAssetKind(kindStr)
		if err != nil {
			return nil, err
		}
		if counts[kind] == nil {
			counts[kind] = make(map[domain.AssetStatus]int)
		}
		counts[kind][domain.AssetStatus(status)] = n
	}
	return counts, rows.Err()
}

func scanImport(row *sql.Row) (*domain.CatalogImport, error) {
	var (
		imp        domain.CatalogImport
		birds      string
		importedAt string
	)
	if err := row.Scan(&imp.ID, &imp.ManifestID, &imp.Shape, &birds, &imp.SourcePath, &importedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning catalog import: %w", err)
	}
	if err := json.Unmarshal([]byte(birds), &imp.Birds); err != nil {
		return nil, fmt.Errorf("decoding birds: %w", err)
	}
	t, err := time.Parse(importedAtLayout, importedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing imported_at: %w", err)
	}
	imp.ImportedAt = t
	return &imp, nil
}
