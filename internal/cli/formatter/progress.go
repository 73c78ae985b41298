package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderCoverage renders how many of total assets are present as a bar like
// [████░░░░]  4/9 present. Green at or above two thirds, yellow above one
// third, red below.
func RenderCoverage(present, total, width int) string {
	width = max(width, 2)
	pct := 0.0
	if total > 0 {
		pct = float64(min(max(present, 0), total)) / float64(total)
	}

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct < 0.33:
		style = StyleRed
	case pct < 0.66:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %d/%d present", style.Render(bar), present, total)
}
