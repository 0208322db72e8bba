package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mentorai/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. Options are labelled A, B,
// C... and can be picked with arrows or their number.
type MultiChoice struct {
	Options  []string
	Selected int
	// Chosen is the saved option, or -1.
	Chosen int
	// Correct is revealed after answering when explanations are shown, or -1.
	Correct int
}

// NewMultiChoice creates a selector. chosen restores a saved answer.
func NewMultiChoice(options []string, chosen string) MultiChoice {
	m := MultiChoice{Options: options, Chosen: -1, Correct: -1}
	for i, o := range options {
		if o == chosen {
			m.Selected = i
			m.Chosen = i
		}
	}
	return m
}

// Update handles keyboard navigation. It reports true when an option was
// picked with enter or a number key.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, false
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Chosen = m.Selected
		return m, true
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(m.Options) {
				m.Selected = i
				m.Chosen = i
				return m, true
			}
		}
	}
	return m, false
}

// Value returns the chosen option text, or "".
func (m MultiChoice) Value() string {
	if m.Chosen < 0 || m.Chosen >= len(m.Options) {
		return ""
	}
	return m.Options[m.Chosen]
}

// View renders the options.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%c)  %s", prefix, 'A'+rune(i%26), opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case m.Correct >= 0 && i == m.Correct:
			style = theme.Correct
		case m.Correct >= 0 && i == m.Chosen:
			style = theme.Incorrect
		case i == m.Chosen:
			style = theme.Selected.Underline(true)
		case i == m.Selected:
			style = theme.Selected
		}
		b.WriteString(style.Render(line) + "\n")
	}
	return b.String()
}
