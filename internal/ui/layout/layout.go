// Package layout draws the chrome around the quiz screen: a title bar,
// the key hint bar and the body sized to what is left.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mentorai/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24
)

type KeyHint struct {
	Key         string
	Description string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage replaces the whole screen while the terminal is
// smaller than MinWidth x MinHeight.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Fenêtre trop petite (%d x %d).\nAgrandissez-la à %d x %d minimum.",
			width, height, MinWidth, MinHeight))
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderHeader puts the app name on the left, title in the middle and
// status (usually the countdown) on the right.
func RenderHeader(title, status string, width int) string {
	left := theme.Title.Render(" MentorAI")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)

	inner := max(width-4, 0)
	used := lipgloss.Width(left) + lipgloss.Width(center) + lipgloss.Width(right)
	free := max(inner-used, 2)
	gapLeft := max((inner-lipgloss.Width(center))/2-lipgloss.Width(left), 1)
	gapLeft = min(gapLeft, free-1)
	gapRight := max(free-gapLeft, 1)

	return bar(width).Render(left + strings.Repeat(" ", gapLeft) + center + strings.Repeat(" ", gapRight) + right)
}

func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	for i, h := range hints {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(key.Render(h.Key) + " " + desc.Render(h.Description))
	}
	return bar(width).Render(" " + b.String())
}

// RenderFrame stacks header, content and footer, giving content the rows
// the bars leave free.
func RenderFrame(header, content, footer string, width, height int) string {
	rows := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rows).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
