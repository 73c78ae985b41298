package dataset

import "github.com/alexanderramin/fieldmarks/internal/domain"

// BuildReferenceIndex builds the area → variants taxonomy from the reference
// field marks. Entries without an area or without a list of variants are
// skipped. A repeated area replaces the earlier entry.
func BuildReferenceIndex(ds *Dataset) *domain.ReferenceIndex {
	idx := domain.NewReferenceIndex()
	if ds == nil {
		return idx
	}
	for _, mark := range ds.ReferenceData.FieldMarks {
		area := mark.area()
		if area == "" {
			continue
		}
		variants, ok := mark.variants()
		if !ok {
			continue
		}
		idx.Set(area, variants)
	}
	return idx
}
