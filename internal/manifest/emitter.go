package manifest

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexanderramin/fieldmarks/internal/domain"
)

// Paths are the files written by one Emit.
type Paths struct {
	Manifest string
	Prompts  string
}

// Emitter writes the manifest and prompt listing into a directory.
type Emitter struct {
	dir     string
	permDir os.FileMode
	permF   os.FileMode
}

// NewEmitter returns an Emitter rooted at dir.
func NewEmitter(dir string) *Emitter {
	return &Emitter{dir: dir, permDir: 0o755, permF: 0o644}
}

// Emit renders both artifacts fully in memory, creates the directory if
// needed, then replaces each file atomically.
func (e *Emitter) Emit(summary domain.Summary, assets []domain.AssetDescriptor) (Paths, error) {
	doc, err := MarshalDocument(NewDocument(summary, assets))
	if err != nil {
		return Paths{}, err
	}
	listing := RenderPrompts(summary, assets)

	if err := os.MkdirAll(e.dir, e.permDir); err != nil {
		return Paths{}, fmt.Errorf("creating output directory: %w", err)
	}

	paths := Paths{
		Manifest: filepath.Join(e.dir, ManifestFile),
		Prompts:  filepath.Join(e.dir, PromptsFile),
	}
	if err := e.writeAtomic(paths.Manifest, doc); err != nil {
		return Paths{}, fmt.Errorf("writing %s: %w", ManifestFile, err)
	}
	if err := e.writeAtomic(paths.Prompts, listing); err != nil {
		return Paths{}, fmt.Errorf("writing %s: %w", PromptsFile, err)
	}
	return paths, nil
}

func (e *Emitter) writeAtomic(dest string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	_ = os.Chmod(tmpPath, e.permF)

	bw := bufio.NewWriter(tmp)
	if _, err := io.Copy(bw, bytes.NewReader(data)); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
