package planner

import (
	"sort"
	"strings"

	"github.com/alexanderramin/fieldmarks/internal/domain"
)

// AreaSelection partitions the working areas against the reference index.
type AreaSelection struct {
	// Requested is the deduplicated working set before partitioning.
	Requested []string
	// Known are the requested areas present in the reference index, in
	// requested order.
	Known []string
	// Missing are the requested areas absent from the reference index.
	Missing []string
	// Overridden is true when the caller supplied an explicit area list.
	Overridden bool
}

// SelectAreas picks the working areas. A non-empty override is used as given
// (first occurrence wins on repeats); otherwise the sorted union of every
// subject's field-mark areas is used.
func SelectAreas(idx *domain.ReferenceIndex, subjects []domain.Subject, override []string) AreaSelection {
	var sel AreaSelection
	if len(override) > 0 {
		sel.Overridden = true
		sel.Requested = dedupe(override)
	} else {
		sel.Requested = observedAreas(subjects)
	}

	sel.Known = make([]string, 0, len(sel.Requested))
	sel.Missing = make([]string, 0)
	for _, area := range sel.Requested {
		if idx.Has(area) {
			sel.Known = append(sel.Known, area)
		} else {
			sel.Missing = append(sel.Missing, area)
		}
	}
	return sel
}

func observedAreas(subjects []domain.Subject) []string {
	set := make(map[string]bool)
	for _, s := range subjects {
		for _, area := range s.Areas() {
			set[area] = true
		}
	}
	areas := make([]string, 0, len(set))
	for area := range set {
		areas = append(areas, area)
	}
	sort.Strings(areas)
	return areas
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
