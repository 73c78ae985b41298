package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/fieldmarks/internal/domain"
	"github.com/google/uuid"
)

// Output file names inside the destination directory.
const (
	ManifestFile = "manifest.json"
	PromptsFile  = "prompts.txt"
)

// namespace seeds name-based manifest ids.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://fieldmarks.local/manifest"))

// Document is the machine-readable manifest.
type Document struct {
	Summary domain.Summary `json:"summary"`
	Assets  []AssetEntry   `json:"assets"`
}

// AssetEntry is the wire form of a descriptor. Fields that do not apply to
// the kind are null.
type AssetEntry struct {
	AssetName string           `json:"asset_name"`
	Kind      domain.AssetKind `json:"kind"`
	ShapeID   *string          `json:"shape_id"`
	Area      *string          `json:"area"`
	Variant   *string          `json:"variant"`
	Prompt    string           `json:"prompt"`
	Notes     string           `json:"notes"`
}

// NewDocument pairs a summary with its descriptors.
func NewDocument(summary domain.Summary, assets []domain.AssetDescriptor) Document {
	entries := make([]AssetEntry, len(assets))
	for i, a := range assets {
		entries[i] = AssetEntry{
			AssetName: a.AssetName,
			Kind:      a.Kind,
			ShapeID:   optional(a.ShapeID),
			Area:      optional(a.Area),
			Variant:   optional(a.Variant),
			Prompt:    a.Prompt,
			Notes:     a.Notes,
		}
	}
	return Document{Summary: summary, Assets: entries}
}

// Descriptors converts the wire entries back to descriptors.
func (d Document) Descriptors() []domain.AssetDescriptor {
	out := make([]domain.AssetDescriptor, len(d.Assets))
	for i, e := range d.Assets {
		out[i] = domain.AssetDescriptor{
			AssetName: e.AssetName,
			Kind:      e.Kind,
			ShapeID:   deref(e.ShapeID),
			Area:      deref(e.Area),
			Variant:   deref(e.Variant),
			Prompt:    e.Prompt,
			Notes:     e.Notes,
		}
	}
	return out
}

// ManifestID derives a stable id from the shape, the bird names and the
// ordered asset names.
func ManifestID(shape string, birds []string, assets []domain.AssetDescriptor) string {
	var b strings.Builder
	b.WriteString(shape)
	b.WriteByte(0)
	b.WriteString(strings.Join(birds, "\x1f"))
	for _, a := range assets {
		b.WriteByte(0)
		b.WriteString(a.AssetName)
	}
	return uuid.NewSHA1(namespace, []byte(b.String())).String()
}

// MarshalDocument encodes the manifest as indented JSON with a trailing newline.
// HTML characters are not escaped so prompts stay readable.
func MarshalDocument(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// Read loads a manifest written by Emitter.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &doc, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
