package manifest

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fieldmarks/internal/domain"
)

const separator = "------------------------------------------------------------"

// listed reports whether a kind belongs in the text listing. Icon prompts are
// left out; the listing is for the compositing prompts.
func listed(k domain.AssetKind) bool {
	return k == domain.KindBaseShape || k == domain.KindCanvasLayer
}

// RenderPrompts builds the copy/paste prompt listing.
func RenderPrompts(summary domain.Summary, assets []domain.AssetDescriptor) []byte {
	lines := []string{
		"# GUI Asset Prompts",
		"# NOTE: icon prompts omitted (category_icon, variation_icon)",
		fmt.Sprintf("# Shape: %s | Birds: %s", summary.Shape, strings.Join(summary.Birds, ", ")),
		fmt.Sprintf("# Areas: %s", strings.Join(summary.Areas, ", ")),
	}
	if summary.HasMissingAreas() {
		lines = append(lines, fmt.Sprintf("# WARNING: areas missing in reference_data.field_marks: %s",
			strings.Join(summary.MissingAreas, ", ")))
	}
	if len(summary.DuplicateReferenceAreas) > 0 {
		lines = append(lines, fmt.Sprintf("# WARNING: duplicate areas in reference_data.field_marks (last entry used): %s",
			strings.Join(summary.DuplicateReferenceAreas, ", ")))
	}
	lines = append(lines, "")

	for _, a := range assets {
		if !listed(a.Kind) {
			continue
		}
		lines = append(lines,
			fmt.Sprintf("== %s ==", a.AssetName),
			fmt.Sprintf("kind: %s", a.Kind),
		)
		if a.Area != "" {
			lines = append(lines, "area: "+a.Area)
		}
		if a.Variant != "" {
			lines = append(lines, "variant: "+a.Variant)
		}
		lines = append(lines, "", a.Prompt)
		if a.Notes != "" {
			lines = append(lines, "", "notes: "+a.Notes)
		}
		lines = append(lines, "\n"+separator+"\n")
	}

	return []byte(strings.Join(lines, "\n"))
}
