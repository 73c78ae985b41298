package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fieldmarks/internal/audit"
	"github.com/alexanderramin/fieldmarks/internal/domain"
)

// FormatAudit renders per-asset status followed by totals.
func FormatAudit(r audit.Report) string {
	rows := make([][]string, 0, len(r.Results))
	for _, res := range r.Results {
		rows = append(rows, []string{res.AssetName, KindBadge(res.Kind), StatusPill(res.Status)})
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"ASSET", "KIND", "STATUS"}, rows))
	b.WriteString("\n")
	b.WriteString(RenderCoverage(r.Counts[domain.StatusPresent], len(r.Results), 20) + "\n")
	b.WriteString(FormatStatusCounts(r.Counts))
	if r.Complete() {
		b.WriteString(StyleGreen.Render("✔ All assets present") + "\n")
	}
	return b.String()
}

// FormatStatusCounts renders a one-line status tally.
func FormatStatusCounts(counts map[domain.AssetStatus]int) string {
	parts := make([]string, 0, len(domain.AllAssetStatuses))
	for _, st := range domain.AllAssetStatuses {
		parts = append(parts, StatusColor(st).Render(fmt.Sprintf("%d %s", counts[st], st)))
	}
	return strings.Join(parts, Dim(" · ")) + "\n"
}
