// Package audit checks which planned assets already exist as PNG files.
package audit

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alexanderramin/fieldmarks/internal/domain"
)

const pngMagic = "\x89PNG\r\n\x1a\n"

// Result is the audit outcome for one descriptor.
type Result struct {
	AssetName string
	Kind      domain.AssetKind
	Path      string
	Status    domain.AssetStatus
}

// Report aggregates an audit run.
type Report struct {
	Results []Result
	Counts  map[domain.AssetStatus]int
}

// Complete reports whether every asset is present.
func (r Report) Complete() bool {
	return r.Counts[domain.StatusPresent] == len(r.Results)
}

// FileName is the on-disk name for an asset.
func FileName(assetName string) string {
	return assetName + ".png"
}

// Run checks dir for <asset_name>.png for every descriptor.
func Run(dir string, assets []domain.AssetDescriptor) (Report, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return Report{}, fmt.Errorf("opening assets directory: %w", err)
	}
	if !info.IsDir() {
		return Report{}, fmt.Errorf("assets path %s is not a directory", dir)
	}

	report := Report{
		Results: make([]Result, 0, len(assets)),
		Counts:  map[domain.AssetStatus]int{domain.StatusPresent: 0, domain.StatusMissing: 0, domain.StatusInvalid: 0},
	}
	for _, a := range assets {
		path := filepath.Join(dir, FileName(a.AssetName))
		status, err := Check(path)
		if err != nil {
			return Report{}, err
		}
		report.Results = append(report.Results, Result{AssetName: a.AssetName, Kind: a.Kind, Path: path, Status: status})
		report.Counts[status]++
	}
	return report, nil
}

// Check classifies a single file by its PNG signature.
func Check(path string) (domain.AssetStatus, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.StatusMissing, nil
		}
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	header := make([]byte, len(pngMagic))
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if n == len(pngMagic) && string(header) == pngMagic {
		return domain.StatusPresent, nil
	}
	return domain.StatusInvalid, nil
}
