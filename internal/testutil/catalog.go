package testutil

import (
	"time"

	"github.com/alexanderramin/fieldmarks/internal/domain"
	"github.com/google/uuid"
)

// ImportOption configures a test catalog import.
type ImportOption func(*domain.CatalogImport)

func WithManifestID(id string) ImportOption {
	return func(i *domain.CatalogImport) { i.ManifestID = id }
}

func WithImportedAt(t time.Time) ImportOption {
	return func(i *domain.CatalogImport) { i.ImportedAt = t }
}

func WithBirds(birds ...string) ImportOption {
	return func(i *domain.CatalogImport) { i.Birds = birds }
}

// NewTestImport creates a catalog import for the given shape.
func NewTestImport(shape string, opts ...ImportOption) *domain.CatalogImport {
	imp := &domain.CatalogImport{
		ID:         uuid.New().String(),
		ManifestID: uuid.New().String(),
		Shape:      shape,
		Birds:      []string{"Test Bird"},
		SourcePath: "manifest.json",
		ImportedAt: time.Now().UTC(),
	}
	for _, o := range opts {
		o(imp)
	}
	return imp
}

// NewTestCatalogAsset creates a missing asset row belonging to importID.
func NewTestCatalogAsset(importID string, seq int, name string, kind domain.AssetKind) *domain.CatalogAsset {
	return &domain.CatalogAsset{
		ImportID:  importID,
		Seq:       seq,
		AssetName: name,
		Kind:      kind,
		Status:    domain.StatusMissing,
	}
}
