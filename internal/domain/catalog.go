package domain

import "time"

// AssetStatus is whether a planned asset exists on disk as a PNG.
type AssetStatus string

const (
	StatusPresent AssetStatus = "present"
	StatusMissing AssetStatus = "missing"
	StatusInvalid AssetStatus = "invalid"
)

// AllAssetStatuses lists statuses in display order.
var AllAssetStatuses = []AssetStatus{StatusPresent, StatusMissing, StatusInvalid}

// CatalogImport is one manifest recorded in the asset catalog.
type CatalogImport struct {
	ID         string
	ManifestID string
	Shape      string
	Birds      []string
	SourcePath string
	ImportedAt time.Time
}

// CatalogAsset is one tracked asset of an import.
type CatalogAsset struct {
	ImportID  string
	Seq       int
	AssetName string
	Kind      AssetKind
	Area      string
	Variant   string
	Status    AssetStatus
	CheckedAt *time.Time
}
