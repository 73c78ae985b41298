package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/fieldmarks/internal/domain"
	"github.com/alexanderramin/fieldmarks/internal/manifest"
)

// FormatGenerate renders the console summary of a generate run.
func FormatGenerate(s domain.Summary, paths manifest.Paths) string {
	var b strings.Builder

	b.WriteString(StyleGreen.Render("✔ Generated GUI prompts") + "\n\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("SHAPE   "), Bold(s.Shape)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("BIRDS   "), List(s.Birds)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("AREAS   "), List(s.Areas)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("MANIFEST"), TruncID(s.ManifestID)))
	b.WriteString("\n")

	b.WriteString(FormatCounts(s.Counts))

	if paths.Manifest != "" {
		b.WriteString("\n")
		b.WriteString(Dim("Wrote "+paths.Manifest) + "\n")
		b.WriteString(Dim("Wrote "+paths.Prompts) + "\n")
	}

	if s.HasMissingAreas() {
		b.WriteString("\n")
		b.WriteString(Warning("Missing areas not in reference_data.field_marks:") + "\n")
		for _, area := range s.MissingAreas {
			b.WriteString(StyleYellow.Render(" - "+area) + "\n")
		}
	}
	if len(s.DuplicateReferenceAreas) > 0 {
		b.WriteString("\n")
		b.WriteString(Warning("Reference areas defined more than once (last wins): "+List(s.DuplicateReferenceAreas)) + "\n")
	}
	return b.String()
}

// FormatCounts renders per-kind asset counts as a table.
func FormatCounts(c domain.AssetCounts) string {
	rows := [][]string{
		{domain.KindBaseShape.String(), strconv.Itoa(c.BaseShape)},
		{domain.KindCategoryIcon.String(), strconv.Itoa(c.CategoryIcons)},
		{domain.KindVariationIcon.String(), strconv.Itoa(c.VariationIcons)},
		{domain.KindCanvasLayer.String(), strconv.Itoa(c.CanvasLayers)},
		{Bold("total"), Bold(strconv.Itoa(c.Total))},
	}
	return RenderTable([]string{"KIND", "COUNT"}, rows)
}
