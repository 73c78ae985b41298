package planner

import "github.com/alexanderramin/fieldmarks/internal/domain"

// Composer renders the generation prompt for a descriptor whose kind, shape,
// area and variant are already set.
type Composer interface {
	Compose(d domain.AssetDescriptor) string
}

// PlanAssets enumerates every asset required for shapeID over the known areas.
// Order: the base shape, one category icon per area, then for each area and
// each of its reference variants a variation icon followed by a canvas layer.
// Areas absent from idx and repeated areas are skipped.
func PlanAssets(shapeID string, known []string, idx *domain.ReferenceIndex, c Composer) []domain.AssetDescriptor {
	areas := make([]string, 0, len(known))
	seen := make(map[string]bool, len(known))
	for _, a := range known {
		if seen[a] || !idx.Has(a) {
			continue
		}
		seen[a] = true
		areas = append(areas, a)
	}

	assets := make([]domain.AssetDescriptor, 0, 1+len(areas)*3)
	emit := func(d domain.AssetDescriptor) {
		d.Prompt = c.Compose(d)
		assets = append(assets, d)
	}

	emit(domain.AssetDescriptor{
		AssetName: domain.BaseShapeName(shapeID),
		Kind:      domain.KindBaseShape,
		ShapeID:   shapeID,
		Notes:     domain.NotesBaseShape,
	})

	for _, area := range areas {
		emit(domain.AssetDescriptor{
			AssetName: domain.CategoryIconName(area),
			Kind:      domain.KindCategoryIcon,
			Area:      area,
			Notes:     domain.NotesCategoryIcon,
		})
	}

	for _, area := range areas {
		for _, variant := range idx.Variants(area) {
			emit(domain.AssetDescriptor{
				AssetName: domain.VariationIconName(area, variant),
				Kind:      domain.KindVariationIcon,
				Area:      area,
				Variant:   variant,
				Notes:     domain.NotesVariationIcon,
			})
			emit(domain.AssetDescriptor{
				AssetName: domain.CanvasLayerName(shapeID, area, variant),
				Kind:      domain.KindCanvasLayer,
				ShapeID:   shapeID,
				Area:      area,
				Variant:   variant,
				Notes:     domain.NotesCanvasLayer,
			})
		}
	}

	return assets
}

// DuplicateNames returns asset names that occur more than once, in first-seen
// order. Distinct inputs that collide after underscore substitution show up here.
func DuplicateNames(assets []domain.AssetDescriptor) []string {
	counts := make(map[string]int, len(assets))
	var dups []string
	for _, a := range assets {
		counts[a.AssetName]++
		if counts[a.AssetName] == 2 {
			dups = append(dups, a.AssetName)
		}
	}
	return dups
}
