package domain

import (
	"fmt"
	"strings"
)

// AssetKind is the closed set of asset categories the planner emits.
type AssetKind uint8

const (
	KindBaseShape AssetKind = iota + 1
	KindCategoryIcon
	KindVariationIcon
	KindCanvasLayer
)

// AllAssetKinds lists every kind in emission order.
var AllAssetKinds = []AssetKind{KindBaseShape, KindCategoryIcon, KindVariationIcon, KindCanvasLayer}

var assetKindNames = map[AssetKind]string{
	KindBaseShape:     "base_shape",
	KindCategoryIcon:  "category_icon",
	KindVariationIcon: "variation_icon",
	KindCanvasLayer:   "canvas_layer",
}

func (k AssetKind) String() string {
	if name, ok := assetKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("AssetKind(%d)", uint8(k))
}

// Valid reports whether k is one of the declared kinds.
func (k AssetKind) Valid() bool {
	_, ok := assetKindNames[k]
	return ok
}

// MarshalText encodes the kind as its wire name.
func (k AssetKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid asset kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a wire name such as "canvas_layer".
func (k *AssetKind) UnmarshalText(text []byte) error {
	parsed, err := ParseAssetKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseAssetKind maps a wire name back to its kind.
func ParseAssetKind(s string) (AssetKind, error) {
	for k, name := range assetKindNames {
		if name == strings.TrimSpace(s) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown asset kind %q", s)
}

// AssetDescriptor is one asset that must exist, with the prompt that produces it.
// ShapeID, Area and Variant are empty when they do not apply to Kind.
type AssetDescriptor struct {
	AssetName string
	Kind      AssetKind
	ShapeID   string
	Area      string
	Variant   string
	Prompt    string
	Notes     string
}

// Usage hints attached to each kind of descriptor.
const (
	NotesBaseShape     = "Generate once; use as reference for all canvas layers."
	NotesCategoryIcon  = "Used by ChooseFieldMark.imageView (bird_<area.lowercased>)."
	NotesVariationIcon = "Centered is OK; shown in variationsCollectionView."
	NotesCanvasLayer   = "Must align to base; use inpainting/reference image."
)

// AssetCounts tallies descriptors per kind.
type AssetCounts struct {
	BaseShape      int `json:"base_shape"`
	CategoryIcons  int `json:"category_icons"`
	VariationIcons int `json:"variation_icons"`
	CanvasLayers   int `json:"canvas_layers"`
	Total          int `json:"total"`
}

// CountAssets tallies a descriptor list.
func CountAssets(assets []AssetDescriptor) AssetCounts {
	var c AssetCounts
	for _, a := range assets {
		switch a.Kind {
		case KindBaseShape:
			c.BaseShape++
		case KindCategoryIcon:
			c.CategoryIcons++
		case KindVariationIcon:
			c.VariationIcons++
		case KindCanvasLayer:
			c.CanvasLayers++
		}
	}
	c.Total = len(assets)
	return c
}

// Summary aggregates one planning run. It is derived from the plan, never edited.
type Summary struct {
	ManifestID              string      `json:"manifest_id"`
	Shape                   string      `json:"shape"`
	ShapeClean              string      `json:"shape_clean"`
	Birds                   []string    `json:"birds"`
	Areas                   []string    `json:"areas"`
	MissingAreas            []string    `json:"missing_areas_not_in_reference"`
	DuplicateReferenceAreas []string    `json:"duplicate_reference_areas,omitempty"`
	Counts                  AssetCounts `json:"counts"`
}

// HasMissingAreas reports whether any requested area had no reference entry.
func (s Summary) HasMissingAreas() bool {
	return len(s.MissingAreas) > 0
}
