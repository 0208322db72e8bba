package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mentorai/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar. Percent is a 0-1
// fraction; values outside are clamped.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
	// Color overrides the fill color.
	Color color.Color
}

func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, ShowPercent: showPercent, Width: width}
}

// View renders label, bar and percentage on one line of p.Width cells.
// The bar keeps at least 4 cells however long the label is.
func (p ProgressBar) View() string {
	var b strings.Builder
	if p.Label != "" {
		b.WriteString(theme.Label.Render(p.Label) + "  ")
	}
	suffix := ""
	if p.ShowPercent {
		suffix = lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("%5.0f%%", p.fraction()*100))
	}

	cells := max(p.Width-lipgloss.Width(b.String())-lipgloss.Width(suffix), 4)
	filled := int(float64(cells) * p.fraction())

	fill := theme.ProgressFilled
	if p.Color != nil {
		fill = lipgloss.NewStyle().Background(p.Color)
	}
	b.WriteString(fill.Render(strings.Repeat(" ", filled)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(" ", cells-filled)))
	b.WriteString(suffix)
	return b.String()
}

func (p ProgressBar) fraction() float64 {
	return min(max(p.Percent, 0), 1)
}
