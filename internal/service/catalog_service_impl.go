package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/fieldmarks/internal/audit"
	"github.com/alexanderramin/fieldmarks/internal/db"
	"github.com/alexanderramin/fieldmarks/internal/domain"
	"github.com/alexanderramin/fieldmarks/internal/manifest"
	"github.com/alexanderramin/fieldmarks/internal/repository"
	"github.com/google/uuid"
)

type catalogService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewCatalogService(uow db.UnitOfWork, observers ...UseCaseObserver) CatalogService {
	return &catalogService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *catalogService) Import(ctx context.Context, manifestPath string) (result *CatalogImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"manifest": manifestPath}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "catalog-import",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	doc, err := manifest.Read(manifestPath)
	if err != nil {
		return nil, err
	}
	assets := doc.Descriptors()

	manifestID := doc.Summary.ManifestID
	if manifestID == "" {
		manifestID = manifest.ManifestID(doc.Summary.Shape, doc.Summary.Birds, assets)
	}
	fields["manifest_id"] = manifestID

	imp := &domain.CatalogImport{
		ID:         uuid.New().String(),
		ManifestID: manifestID,
		Shape:      doc.Summary.Shape,
		Birds:      doc.Summary.Birds,
		SourcePath: manifestPath,
		ImportedAt: startedAt,
	}
	if imp.Birds == nil {
		imp.Birds = []string{}
	}

	replaced := false
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteCatalogRepo(tx)

		existing, err := repo.GetImportByManifestID(ctx, manifestID)
		switch {
		case err == nil:
			if err := repo.DeleteImport(ctx, existing.ID); err != nil {
				return fmt.Errorf("replacing earlier import: %w", err)
			}
			replaced = true
		case !errors.Is(err, repository.ErrNotFound):
			return err
		}

		if err := repo.CreateImport(ctx, imp); err != nil {
			return fmt.Errorf("creating import: %w", err)
		}
		for i, a := range assets {
			row := &domain.CatalogAsset{
				ImportID:  imp.ID,
				Seq:       i,
				AssetName: a.AssetName,
				Kind:      a.Kind,
				Area:      a.Area,
				Variant:   a.Variant,
				Status:    domain.StatusMissing,
			}
			if err := repo.AddAsset(ctx, row); err != nil {
				return fmt.Errorf("creating asset %q: %w", a.AssetName, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["assets"] = len(assets)
	fields["replaced"] = replaced
	return &CatalogImportResult{Import: imp, AssetCount: len(assets), Replaced: replaced}, nil
}

func (s *catalogService) Status(ctx context.Context, manifestID, assetsDir string) (status *CatalogStatus, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"manifest_id": manifestID, "assets_dir": assetsDir}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "catalog-status",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	status = &CatalogStatus{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteCatalogRepo(tx)

		var err error
		if manifestID == "" {
			status.Import, err = repo.LatestImport(ctx)
		} else {
			status.Import, err = repo.GetImportByManifestID(ctx, manifestID)
		}
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("no catalog import found; run 'fieldmarks catalog import' first")
		}
		if err != nil {
			return err
		}

		rows, err := repo.ListAssets(ctx, status.Import.ID)
		if err != nil {
			return err
		}
		descriptors := make([]domain.AssetDescriptor, len(rows))
		for i, r := range rows {
			descriptors[i] = domain.AssetDescriptor{AssetName: r.AssetName, Kind: r.Kind, Area: r.Area, Variant: r.Variant}
		}
		report, err := audit.Run(assetsDir, descriptors)
		if err != nil {
			return err
		}
		for i, res := range report.Results {
			if err := repo.UpdateAssetStatus(ctx, status.Import.ID, rows[i].Seq, res.Status, startedAt); err != nil {
				return err
			}
		}

		if status.Assets, err = repo.ListAssets(ctx, status.Import.ID); err != nil {
			return err
		}
		status.Counts, err = repo.CountByStatus(ctx, status.Import.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	fields["assets"] = len(status.Assets)
	return status, nil
}
