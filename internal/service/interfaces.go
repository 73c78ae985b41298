package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/fieldmarks/internal/audit"
	"github.com/alexanderramin/fieldmarks/internal/diagnostic"
	"github.com/alexanderramin/fieldmarks/internal/domain"
	"github.com/alexanderramin/fieldmarks/internal/manifest"
	"github.com/alexanderramin/fieldmarks/internal/prompt"
)

// ErrNoSubjects is returned when a generate request names no birds.
var ErrNoSubjects = errors.New("at least one bird is required")

// GenerateRequest describes one manifest run.
type GenerateRequest struct {
	DatasetPath string
	Shape       string
	Birds       []string
	// Areas overrides the areas derived from the birds when non-empty.
	Areas  []string
	OutDir string
	Style  prompt.Style
}

// GenerateResult is the outcome of a manifest run.
type GenerateResult struct {
	Summary domain.Summary
	Assets  []domain.AssetDescriptor
	// Paths is zero when the run only planned.
	Paths manifest.Paths
	// Collisions lists asset names produced more than once.
	Collisions []string
}

type GenerateService interface {
	// Plan runs the pipeline without writing anything.
	Plan(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
	ListBirds(ctx context.Context, datasetPath string) ([]string, error)
}

type DiagnosticService interface {
	Overlaps(ctx context.Context, datasetPath, areaA, areaB string) (*diagnostic.OverlapReport, error)
}

// AuditResult pairs a manifest with the state of its assets on disk.
type AuditResult struct {
	Summary domain.Summary
	Report  audit.Report
}

type AuditService interface {
	Audit(ctx context.Context, manifestPath, assetsDir string) (*AuditResult, error)
}

// CatalogImportResult holds the outcome of a catalog import.
type CatalogImportResult struct {
	Import     *domain.CatalogImport
	AssetCount int
	// Replaced is true when an earlier import of the same manifest was dropped.
	Replaced bool
}

// CatalogStatus is the audited state of one catalog import.
type CatalogStatus struct {
	Import *domain.CatalogImport
	Assets []*domain.CatalogAsset
	Counts map[domain.AssetKind]map[domain.AssetStatus]int
}

type CatalogService interface {
	Import(ctx context.Context, manifestPath string) (*CatalogImportResult, error)
	// Status re-audits assetsDir against an import. An empty manifestID
	// selects the most recent import.
	Status(ctx context.Context, manifestID, assetsDir string) (*CatalogStatus, error)
}
