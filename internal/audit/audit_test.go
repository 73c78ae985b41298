package audit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/fieldmarks/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func TestRun_ClassifiesFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "shape_Finch_base.png", []byte(pngMagic+"IHDR..."))
	writeFile(t, dir, "bird_belly.png", []byte("\xFF\xD8\xFFjpeg bytes"))
	writeFile(t, dir, "icon_Belly_White.png", []byte{0x89, 'P'})

	assets := []domain.AssetDescriptor{
		{AssetName: "shape_Finch_base", Kind: domain.KindBaseShape},
		{AssetName: "bird_belly", Kind: domain.KindCategoryIcon},
		{AssetName: "icon_Belly_White", Kind: domain.KindVariationIcon},
		{AssetName: "canvas_Finch_Belly_White", Kind: domain.KindCanvasLayer},
	}

	report, err := Run(dir, assets)
	require.NoError(t, err)
	require.Len(t, report.Results, 4)
	assert.Equal(t, domain.StatusPresent, report.Results[0].Status)
	assert.Equal(t, domain.StatusInvalid, report.Results[1].Status)
	assert.Equal(t, domain.StatusInvalid, report.Results[2].Status)
	assert.Equal(t, domain.StatusMissing, report.Results[3].Status)
	assert.Equal(t, filepath.Join(dir, "canvas_Finch_Belly_White.png"), report.Results[3].Path)

	assert.Equal(t, 1, report.Counts[domain.StatusPresent])
	assert.Equal(t, 2, report.Counts[domain.StatusInvalid])
	assert.Equal(t, 1, report.Counts[domain.StatusMissing])
	assert.False(t, report.Complete())
}

func TestRun_Complete(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "shape_Finch_base.png", []byte(pngMagic))

	report, err := Run(dir, []domain.AssetDescriptor{{AssetName: "shape_Finch_base", Kind: domain.KindBaseShape}})
	require.NoError(t, err)
	assert.True(t, report.Complete())
}

func TestRun_BadDirectory(t *testing.T) {
	_, err := Run(filepath.Join(t.TempDir(), "absent"), nil)
	assert.ErrorContains(t, err, "opening assets directory")

	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = Run(file, nil)
	assert.ErrorContains(t, err, "is not a directory")
}

func TestCheck_EmptyFileIsInvalid(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "empty.png", nil)

	status, err := Check(filepath.Join(dir, "empty.png"))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInvalid, status)
}
