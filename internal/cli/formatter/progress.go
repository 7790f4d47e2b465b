package formatter

import (
	"fmt"
	"math"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a percentage (0-100) as a bar like [████░░░░] 45%.
// The bar is green from 66%, yellow from 33% and red below.
func RenderProgress(pct float64, width int) string {
	frac := clampFrac(pct / 100)
	if width < 2 {
		width = 2
	}

	bar := barCells(frac, width)

	style := StyleGreen
	if frac < 0.33 {
		style = StyleRed
	} else if frac < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), frac*100)
}

// RenderUsageBar is RenderProgress for budget use, where filling up is bad:
// red above threshold, yellow from 75%, green below.
func RenderUsageBar(pct, threshold float64, width int) string {
	frac := clampFrac(pct / 100)
	if width < 2 {
		width = 2
	}
	bar := barCells(frac, width)

	style := StyleGreen
	switch {
	case pct > threshold:
		style = StyleRed
	case pct >= 75:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %s%%", style.Render(bar), trimFloat(pct))
}

// barCells fills the nearest whole number of cells, so 95% of four cells is
// a full bar.
func barCells(frac float64, width int) string {
	filled := int(math.Round(frac * float64(width)))
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

func clampFrac(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%.1f", f)
	return strings.TrimSuffix(s, ".0")
}
