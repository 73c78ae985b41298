package domain

// FieldMark is one observable trait of a subject: a variant within an area.
type FieldMark struct {
	Area    string `json:"area"`
	Variant string `json:"variant"`
}

// Subject is a bird record from the dataset. Subjects are read-only.
type Subject struct {
	CommonName string      `json:"common_name"`
	FieldMarks []FieldMark `json:"field_marks"`
}

// Areas returns the distinct non-empty areas of the subject's field marks
// in first-seen order.
func (s Subject) Areas() []string {
	seen := make(map[string]bool, len(s.FieldMarks))
	var areas []string
	for _, fm := range s.FieldMarks {
		if fm.Area == "" || seen[fm.Area] {
			continue
		}
		seen[fm.Area] = true
		areas = append(areas, fm.Area)
	}
	return areas
}

// VariantsIn returns the subject's variants recorded for area, in input order.
func (s Subject) VariantsIn(area string) []string {
	var out []string
	for _, fm := range s.FieldMarks {
		if fm.Area == area {
			out = append(out, fm.Variant)
		}
	}
	return out
}

// ReferenceIndex maps each reference area to its ordered variants.
type ReferenceIndex struct {
	variants   map[string][]string
	order      []string
	duplicates []string
}

// NewReferenceIndex returns an empty index.
func NewReferenceIndex() *ReferenceIndex {
	return &ReferenceIndex{variants: make(map[string][]string)}
}

// Set records the variants for area. A repeated area replaces the earlier
// list and is recorded as a duplicate.
func (ri *ReferenceIndex) Set(area string, variants []string) {
	if _, exists := ri.variants[area]; exists {
		ri.duplicates = append(ri.duplicates, area)
	} else {
		ri.order = append(ri.order, area)
	}
	ri.variants[area] = append([]string(nil), variants...)
}

// Has reports whether area is a reference area.
func (ri *ReferenceIndex) Has(area string) bool {
	_, ok := ri.variants[area]
	return ok
}

// Variants returns a copy of the ordered variants for area.
func (ri *ReferenceIndex) Variants(area string) []string {
	return append([]string(nil), ri.variants[area]...)
}

// Areas returns reference areas in first-seen order.
func (ri *ReferenceIndex) Areas() []string {
	return append([]string(nil), ri.order...)
}

// Duplicates returns each area that appeared more than once, once per repeat.
func (ri *ReferenceIndex) Duplicates() []string {
	return append([]string(nil), ri.duplicates...)
}

// Len returns the number of distinct areas.
func (ri *ReferenceIndex) Len() int {
	return len(ri.variants)
}
