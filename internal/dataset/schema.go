package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alexanderramin/fieldmarks/internal/domain"
)

// ErrDatasetNotFound indicates the dataset path does not exist.
var ErrDatasetNotFound = errors.New("dataset not found")

// Dataset is the top-level JSON structure of the bird field-mark database.
// Fields not listed here are ignored.
type Dataset struct {
	ReferenceData ReferenceData    `json:"reference_data"`
	Birds         []domain.Subject `json:"birds"`
}

// ReferenceData holds the reference taxonomy.
type ReferenceData struct {
	FieldMarks []ReferenceMark `json:"field_marks"`
}

// ReferenceMark is one {area, variants[]} entry. Both fields are kept raw so
// malformed entries can be skipped instead of failing the whole load.
type ReferenceMark struct {
	Area     json.RawMessage `json:"area"`
	Variants json.RawMessage `json:"variants"`
}

// Load reads and parses a dataset JSON file.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	return Parse(data)
}

// Parse decodes dataset JSON.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}
	return &ds, nil
}

// area returns the entry's area as a string. Non-string scalars are kept as
// their JSON text; null, empty and missing yield "".
func (m ReferenceMark) area() string {
	return scalarString(m.Area)
}

// variants returns the entry's variant list and whether the field was a list.
func (m ReferenceMark) variants() ([]string, bool) {
	raw := bytes.TrimSpace(m.Variants)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, scalarString(item))
	}
	return out, true
}

func scalarString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
