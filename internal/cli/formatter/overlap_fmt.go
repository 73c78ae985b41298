package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fieldmarks/internal/diagnostic"
)

// FormatOverlaps renders an overlap report.
func FormatOverlaps(r *diagnostic.OverlapReport) string {
	var b strings.Builder

	b.WriteString(Header("Reference variants") + "\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render(r.AreaA+":"), List(r.ReferenceA)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render(r.AreaB+":"), List(r.ReferenceB)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("Combined:"), List(r.Combined)))
	b.WriteString("\n")

	title := fmt.Sprintf("Birds with both %s and %s", r.AreaA, r.AreaB)
	b.WriteString(Header(title) + "\n")
	if !r.Found() {
		b.WriteString(Dim(fmt.Sprintf("No birds found with both %s and %s.", r.AreaA, r.AreaB)) + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(r.Subjects))
	for _, s := range r.Subjects {
		rows = append(rows, []string{Bold(s.CommonName), List(s.VariantsA), List(s.VariantsB)})
	}
	b.WriteString(RenderTable([]string{"BIRD", strings.ToUpper(r.AreaA), strings.ToUpper(r.AreaB)}, rows))
	return b.String()
}
