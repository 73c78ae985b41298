package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/fieldmarks/internal/domain"
)

// FormatCatalogImport renders the result of recording a manifest.
func FormatCatalogImport(imp *domain.CatalogImport, assetCount int, replaced bool) string {
	verb := "Imported"
	if replaced {
		verb = "Re-imported"
	}
	return fmt.Sprintf("%s %s %s (%d assets, manifest %s)\n",
		StyleGreen.Render("✔"), verb, Bold(imp.Shape), assetCount, TruncID(imp.ManifestID))
}

// FormatCatalogStatus renders per-kind status counts of an import.
func FormatCatalogStatus(imp *domain.CatalogImport, counts map[domain.AssetKind]map[domain.AssetStatus]int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("SHAPE   "), Bold(imp.Shape)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("BIRDS   "), List(imp.Birds)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("IMPORTED"), Timestamp(&imp.ImportedAt)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("MANIFEST"), TruncID(imp.ManifestID)))
	b.WriteString("\n")

	headers := []string{"KIND"}
	for _, st := range domain.AllAssetStatuses {
		headers = append(headers, strings.ToUpper(string(st)))
	}
	totals := make(map[domain.AssetStatus]int, len(domain.AllAssetStatuses))

	rows := make([][]string, 0, len(domain.AllAssetKinds))
	for _, kind := range domain.AllAssetKinds {
		row := []string{KindBadge(kind)}
		for _, st := range domain.AllAssetStatuses {
			n := counts[kind][st]
			totals[st] += n
			row = append(row, strconv.Itoa(n))
		}
		rows = append(rows, row)
	}
	b.WriteString(RenderBox("Catalog", RenderTable(headers, rows)))
	b.WriteString("\n")
	total := 0
	for _, n := range totals {
		total += n
	}
	b.WriteString(RenderCoverage(totals[domain.StatusPresent], total, 20) + "\n")
	b.WriteString(FormatStatusCounts(totals))
	return b.String()
}
