// Package diagnostic holds read-only consistency checks over a dataset.
package diagnostic

import (
	"sort"

	"github.com/alexanderramin/fieldmarks/internal/domain"
)

// Default area pair whose variant sets compete in the reference schema.
const (
	DefaultAreaA = "Belly"
	DefaultAreaB = "Chest"
)

// OverlapSubject is a subject with marks in both areas.
type OverlapSubject struct {
	CommonName string
	VariantsA  []string
	VariantsB  []string
}

// OverlapReport is the result of an overlap check between two areas.
type OverlapReport struct {
	AreaA      string
	AreaB      string
	ReferenceA []string
	ReferenceB []string
	Combined   []string
	Subjects   []OverlapSubject
}

// Found reports whether any subject overlaps.
func (r OverlapReport) Found() bool {
	return len(r.Subjects) > 0
}

// FindOverlaps lists, in dataset order, every subject that has field marks in
// both areaA and areaB. Each subject appears once.
func FindOverlaps(idx *domain.ReferenceIndex, subjects []domain.Subject, areaA, areaB string) OverlapReport {
	r := OverlapReport{
		AreaA:      areaA,
		AreaB:      areaB,
		ReferenceA: sortedSet(idx.Variants(areaA)),
		ReferenceB: sortedSet(idx.Variants(areaB)),
	}
	r.Combined = sortedSet(append(append([]string(nil), r.ReferenceA...), r.ReferenceB...))

	for _, s := range subjects {
		a := s.VariantsIn(areaA)
		b := s.VariantsIn(areaB)
		if len(a) == 0 || len(b) == 0 {
			continue
		}
		r.Subjects = append(r.Subjects, OverlapSubject{CommonName: s.CommonName, VariantsA: a, VariantsB: b})
	}
	return r
}

func sortedSet(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
