package domain

import "strings"

var filenameReplacer = strings.NewReplacer(" ", "_", "-", "_")

// CleanForFilename replaces spaces and hyphens with underscores. The GUI
// performs the same substitution when it looks assets up by name.
func CleanForFilename(name string) string {
	return filenameReplacer.Replace(name)
}

// BaseShapeName returns shape_<ShapeId>_base.
func BaseShapeName(shapeID string) string {
	return "shape_" + CleanForFilename(shapeID) + "_base"
}

// CategoryIconName returns bird_<area-lowercased>. The GUI lowercases the raw
// area without underscore substitution, so neither does this.
func CategoryIconName(area string) string {
	return "bird_" + strings.ToLower(area)
}

// VariationIconName returns icon_<Area>_<Variant>.
func VariationIconName(area, variant string) string {
	return "icon_" + CleanForFilename(area) + "_" + CleanForFilename(variant)
}

// CanvasLayerName returns canvas_<ShapeId>_<Area>_<Variant>.
func CanvasLayerName(shapeID, area, variant string) string {
	return "canvas_" + CleanForFilename(shapeID) + "_" + CleanForFilename(area) + "_" + CleanForFilename(variant)
}
