package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// DatasetOption customizes a fixture dataset.
type DatasetOption func(*datasetFixture)

type referenceFixture struct {
	Area     any `json:"area,omitempty"`
	Variants any `json:"variants,omitempty"`
}

type markFixture struct {
	Area    string `json:"area"`
	Variant string `json:"variant"`
}

type birdFixture struct {
	CommonName string        `json:"common_name"`
	FieldMarks []markFixture `json:"field_marks"`
}

type datasetFixture struct {
	Reference []referenceFixture
	Birds     []birdFixture
}

// WithReference adds a well-formed reference entry.
func WithReference(area string, variants ...string) DatasetOption {
	return func(d *datasetFixture) {
		if variants == nil {
			variants = []string{}
		}
		d.Reference = append(d.Reference, referenceFixture{Area: area, Variants: variants})
	}
}

// WithRawReference adds a reference entry with arbitrary JSON values, for
// exercising malformed input.
func WithRawReference(area, variants any) DatasetOption {
	return func(d *datasetFixture) {
		d.Reference = append(d.Reference, referenceFixture{Area: area, Variants: variants})
	}
}

// WithBird adds a subject. marks alternates area, variant.
func WithBird(name string, marks ...string) DatasetOption {
	return func(d *datasetFixture) {
		b := birdFixture{CommonName: name, FieldMarks: []markFixture{}}
		for i := 0; i+1 < len(marks); i += 2 {
			b.FieldMarks = append(b.FieldMarks, markFixture{Area: marks[i], Variant: marks[i+1]})
		}
		d.Birds = append(d.Birds, b)
	}
}

// StandardDataset is the Belly/Chest reference with a single "Test Bird".
func StandardDataset() []DatasetOption {
	return []DatasetOption{
		WithReference("Belly", "White", "Brown"),
		WithReference("Chest", "Gray"),
		WithBird("Test Bird", "Belly", "White", "Chest", "Gray"),
	}
}

// DatasetJSON renders a dataset document.
func DatasetJSON(t *testing.T, opts ...DatasetOption) []byte {
	t.Helper()
	d := &datasetFixture{}
	for _, opt := range opts {
		opt(d)
	}
	doc := map[string]any{
		"version": 3,
		"reference_data": map[string]any{
			"field_marks": d.Reference,
		},
		"birds": d.Birds,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("marshalling dataset fixture: %v", err)
	}
	return data
}

// WriteDataset writes a dataset document into a temp dir and returns its path.
func WriteDataset(t *testing.T, opts ...DatasetOption) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bird_database.json")
	if err := os.WriteFile(path, DatasetJSON(t, opts...), 0o644); err != nil {
		t.Fatalf("writing dataset fixture: %v", err)
	}
	return path
}
