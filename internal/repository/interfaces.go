package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/fieldmarks/internal/domain"
)

// ErrNotFound is returned when a catalog row does not exist.
var ErrNotFound = errors.New("not found")

type CatalogRepo interface {
	CreateImport(ctx context.Context, imp *domain.CatalogImport) error
	GetImport(ctx context.Context, id string) (*domain.CatalogImport, error)
	GetImportByManifestID(ctx context.Context, manifestID string) (*domain.CatalogImport, error)
	LatestImport(ctx context.Context) (*domain.CatalogImport, error)
	DeleteImport(ctx context.Context, id string) error

	AddAsset(ctx context.Context, a *domain.CatalogAsset) error
	ListAssets(ctx context.Context, importID string) ([]*domain.CatalogAsset, error)
	UpdateAssetStatus(ctx context.Context, importID string, seq int, status domain.AssetStatus, checkedAt time.Time) error
	CountByStatus(ctx context.Context, importID string) (map[domain.AssetKind]map[domain.AssetStatus]int, error)
}
