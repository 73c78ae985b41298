package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/fieldmarks/internal/domain"
	"github.com/alexanderramin/fieldmarks/internal/manifest"
	"github.com/alexanderramin/fieldmarks/internal/repository"
	"github.com/alexanderramin/fieldmarks/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogImport_RecordsManifest(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewCatalogService(testutil.NewTestUoW(database))
	ctx := context.Background()

	manifestPath := generateManifest(t)
	doc, err := manifest.Read(manifestPath)
	require.NoError(t, err)

	result, err := svc.Import(ctx, manifestPath)
	require.NoError(t, err)
	assert.Equal(t, 9, result.AssetCount)
	assert.False(t, result.Replaced)
	assert.Equal(t, doc.Summary.ManifestID, result.Import.ManifestID)

	repo := repository.NewSQLiteCatalogRepo(database)
	imp, err := repo.GetImport(ctx, result.Import.ID)
	require.NoError(t, err)
	assert.Equal(t, "Finch", imp.Shape)
	assert.Equal(t, []string{"Test Bird"}, imp.Birds)

	assets, err := repo.ListAssets(ctx, imp.ID)
	require.NoError(t, err)
	require.Len(t, assets, 9)
	for i, a := range assets {
		assert.Equal(t, doc.Assets[i].AssetName, a.AssetName)
		assert.Equal(t, domain.StatusMissing, a.Status)
	}
}

func TestCatalogImport_SameManifestReplaces(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewCatalogService(testutil.NewTestUoW(database))
	ctx := context.Background()
	manifestPath := generateManifest(t)

	first, err := svc.Import(ctx, manifestPath)
	require.NoError(t, err)
	second, err := svc.Import(ctx, manifestPath)
	require.NoError(t, err)

	assert.True(t, second.Replaced)
	assert.NotEqual(t, first.Import.ID, second.Import.ID)

	repo := repository.NewSQLiteCatalogRepo(database)
	_, err = repo.GetImport(ctx, first.Import.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assets, err := repo.ListAssets(ctx, first.Import.ID)
	require.NoError(t, err)
	assert.Empty(t, assets)
}

func TestCatalogImport_RollbackOnAssetFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	// ExecContext calls in Import: #1 = import row, #2.. = asset rows.
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 3,
		Err:    fmt.Errorf("injected asset insert failure"),
	}
	svc := NewCatalogService(failUoW)

	_, err := svc.Import(ctx, generateManifest(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected asset insert failure")

	_, err = repository.NewSQLiteCatalogRepo(database).LatestImport(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCatalogStatus_UpdatesFromDisk(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewCatalogService(testutil.NewTestUoW(database))
	ctx := context.Background()

	imported, err := svc.Import(ctx, generateManifest(t))
	require.NoError(t, err)

	assetsDir := t.TempDir()
	writeAsset(t, assetsDir, "shape_Finch_base", pngHeader)
	writeAsset(t, assetsDir, "canvas_Finch_Belly_White", pngHeader)
	writeAsset(t, assetsDir, "icon_Chest_Gray", []byte("GIF89a"))

	status, err := svc.Status(ctx, "", assetsDir)
	require.NoError(t, err)
	assert.Equal(t, imported.Import.ID, status.Import.ID)
	require.Len(t, status.Assets, 9)

	assert.Equal(t, 1, status.Counts[domain.KindBaseShape][domain.StatusPresent])
	assert.Equal(t, 1, status.Counts[domain.KindCanvasLayer][domain.StatusPresent])
	assert.Equal(t, 2, status.Counts[domain.KindCanvasLayer][domain.StatusMissing])
	assert.Equal(t, 1, status.Counts[domain.KindVariationIcon][domain.StatusInvalid])
	for _, a := range status.Assets {
		assert.NotNil(t, a.CheckedAt, a.AssetName)
	}

	byID, err := svc.Status(ctx, imported.Import.ManifestID, assetsDir)
	require.NoError(t, err)
	assert.Equal(t, status.Counts, byID.Counts)
}

func TestCatalogStatus_NoImports(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewCatalogService(testutil.NewTestUoW(database))

	_, err := svc.Status(context.Background(), "", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog import")
}

func TestCatalog_CollidingAssetNames(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewCatalogService(testutil.NewTestUoW(database))
	ctx := context.Background()

	req := standardRequest(t,
		testutil.WithReference("Under Tail", "White"),
		testutil.WithReference("Under-Tail", "White"),
		testutil.WithBird("Test Bird", "Under Tail", "White", "Under-Tail", "White"),
	)
	generated, err := NewGenerateService(nil).Generate(ctx, req)
	require.NoError(t, err)
	require.Contains(t, generated.Collisions, "icon_Under_Tail_White")

	imported, err := svc.Import(ctx, generated.Paths.Manifest)
	require.NoError(t, err)
	assert.Equal(t, len(generated.Assets), imported.AssetCount)

	assetsDir := t.TempDir()
	writeAsset(t, assetsDir, "icon_Under_Tail_White", pngHeader)

	status, err := svc.Status(ctx, "", assetsDir)
	require.NoError(t, err)
	require.Len(t, status.Assets, len(generated.Assets))

	present := 0
	for i, a := range status.Assets {
		assert.Equal(t, i, a.Seq)
		if a.AssetName == "icon_Under_Tail_White" {
			assert.Equal(t, domain.StatusPresent, a.Status)
			present++
		}
	}
	assert.Equal(t, 2, present)
	assert.Equal(t, 2, status.Counts[domain.KindVariationIcon][domain.StatusPresent])
}
