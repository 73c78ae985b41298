package formatter

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Timestamp renders t in local time, or "--" when unset.
func Timestamp(t *time.Time) string {
	if t == nil || t.IsZero() {
		return StyleDim.Render("--")
	}
	return t.Local().Format("Jan 2, 2006 15:04")
}

// List joins values with ", ", or "--" when empty.
func List(values []string) string {
	if len(values) == 0 {
		return "--"
	}
	return strings.Join(values, ", ")
}
