package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fieldmarks/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusColor returns the style for an asset status.
func StatusColor(status domain.AssetStatus) lipgloss.Style {
	switch status {
	case domain.StatusPresent:
		return StyleGreen
	case domain.StatusInvalid:
		return StyleRed
	case domain.StatusMissing:
		return StyleYellow
	default:
		return StyleDim
	}
}

// StatusPill returns a colored indicator such as "● present".
func StatusPill(status domain.AssetStatus) string {
	switch status {
	case domain.StatusPresent:
		return StyleGreen.Render("● present")
	case domain.StatusInvalid:
		return StyleRed.Render("✖ invalid")
	case domain.StatusMissing:
		return StyleYellow.Render("○ missing")
	default:
		return StyleDim.Render(string(status))
	}
}

// KindBadge renders an asset kind in its own color.
func KindBadge(kind domain.AssetKind) string {
	switch kind {
	case domain.KindBaseShape:
		return StylePurple.Render(kind.String())
	case domain.KindCanvasLayer:
		return StyleBlue.Render(kind.String())
	default:
		return StyleFg.Render(kind.String())
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Warning renders a single yellow warning line.
func Warning(text string) string {
	return StyleYellow.Render("⚠ " + text)
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
