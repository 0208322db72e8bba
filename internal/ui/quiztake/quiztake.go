// Package quiztake is the interactive quiz-taking screen.
package quiztake

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mentorai/internal/quiz"
	"github.com/abhisek/mentorai/internal/session"
	"github.com/abhisek/mentorai/internal/ui/components"
	"github.com/abhisek/mentorai/internal/ui/layout"
	"github.com/abhisek/mentorai/internal/ui/theme"
)

// ErrAbandoned is returned by Run when the learner quits without submitting.
var ErrAbandoned = errors.New("quiz abandoned")

// AnswerCharLimit caps free-text answers.
const AnswerCharLimit = 500

type tickMsg time.Time

// Model drives an active session.Session.
type Model struct {
	ctx  context.Context
	sess *session.Session
	now  func() time.Time

	width  int
	height int

	choice components.MultiChoice
	input  components.TextInput

	revealed    bool
	confirmQuit bool
	notice      string

	submission *session.Submission
	submitErr  error
	abandoned  bool
}

// Option configures a Model.
type Option func(*Model)

// WithClock overrides the time source used by the countdown.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// New returns a model for s, which must have an active quiz.
func New(ctx context.Context, s *session.Session, opts ...Option) (*Model, error) {
	if !s.Active() {
		return nil, session.ErrNoActiveQuiz
	}
	m := &Model{ctx: ctx, sess: s, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	m.load()
	return m, nil
}

// Submission returns the scored quiz once submitted, or nil.
func (m *Model) Submission() *session.Submission { return m.submission }

// Abandoned reports whether the learner quit without submitting.
func (m *Model) Abandoned() bool { return m.abandoned }

func (m *Model) current() quiz.Question {
	q, _ := m.sess.Question()
	return q
}

// load resets the answer widgets for the question under the cursor.
func (m *Model) load() {
	q := m.current()
	saved, _ := m.sess.Answers.Get(m.sess.Current)
	m.revealed = false
	if q.IsMultipleChoice() {
		m.choice = components.NewMultiChoice(q.Options, saved)
		return
	}
	m.input = components.NewTextInput("Votre réponse...", saved, AnswerCharLimit)
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	if m.current().IsMultipleChoice() {
		return tick()
	}
	return tea.Batch(tick(), m.input.Init())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if !m.sess.Active() {
			return m, nil
		}
		if m.sess.Expired(m.now()) {
			m.saveInput()
			return m, m.submit()
		}
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.sess.Active() && !m.current().IsMultipleChoice() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		m.sess.Abandon()
		m.abandoned = true
		return m, tea.Quit
	}
	if !m.sess.Active() {
		return m, nil
	}

	if m.confirmQuit {
		switch key {
		case "esc", "y", "o":
			m.sess.Abandon()
			m.abandoned = true
			return m, tea.Quit
		}
		m.confirmQuit = false
		return m, nil
	}

	switch key {
	case "esc":
		m.confirmQuit = true
		return m, nil
	case "ctrl+s":
		m.saveInput()
		return m, m.submit()
	case "tab":
		m.saveInput()
		if m.sess.Next() {
			m.load()
		}
		return m, nil
	case "shift+tab":
		m.saveInput()
		if m.sess.Prev() {
			m.load()
		}
		return m, nil
	}

	if m.revealed {
		if key == "enter" {
			m.advance()
		}
		return m, nil
	}

	if m.current().IsMultipleChoice() {
		var picked bool
		m.choice, picked = m.choice.Update(msg)
		if picked {
			return m, m.record(m.choice.Value())
		}
		return m, nil
	}

	if key == "enter" {
		return m, m.record(m.input.Value())
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// record saves text for the current question, then reveals the
// explanation or moves on. Answers after the deadline submit the quiz.
func (m *Model) record(text string) tea.Cmd {
	if err := m.sess.Answer(m.sess.Current, text); err != nil {
		if errors.Is(err, session.ErrTimeExpired) {
			return m.submit()
		}
		m.notice = err.Error()
		return nil
	}
	m.notice = ""
	if m.sess.Quiz.ShowExplanations && strings.TrimSpace(text) != "" {
		m.revealed = true
		if q := m.current(); q.IsMultipleChoice() {
			for i, o := range q.Options {
				if o == q.CorrectAnswer {
					m.choice.Correct = i
				}
			}
		}
		return nil
	}
	m.advance()
	return nil
}

func (m *Model) advance() {
	if m.sess.Next() {
		m.load()
		return
	}
	m.revealed = false
	m.notice = "Dernière question. Ctrl+S pour terminer le quiz."
}

// saveInput keeps a typed but unconfirmed open answer.
func (m *Model) saveInput() {
	if !m.sess.Active() || m.current().IsMultipleChoice() {
		return
	}
	if v := m.input.Value(); strings.TrimSpace(v) != "" {
		_ = m.sess.Answer(m.sess.Current, v)
	}
}

func (m *Model) submit() tea.Cmd {
	_, err := m.sess.Submit(m.ctx)
	m.submission = m.sess.LastSubmission()
	m.submitErr = err
	return tea.Quit
}

func (m *Model) keyHints() []layout.KeyHint {
	if m.confirmQuit {
		return []layout.KeyHint{
			{Key: "Esc/O", Description: "Abandonner"},
			{Key: "autre", Description: "Continuer"},
		}
	}
	if m.revealed {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Suivante"},
			{Key: "Ctrl+S", Description: "Terminer"},
		}
	}
	hints := []layout.KeyHint{{Key: "Enter", Description: "Valider"}}
	if m.current().IsMultipleChoice() {
		hints = append(hints, layout.KeyHint{Key: "↑↓ 1-9", Description: "Choisir"})
	}
	return append(hints,
		layout.KeyHint{Key: "Tab", Description: "Naviguer"},
		layout.KeyHint{Key: "Ctrl+S", Description: "Terminer"},
		layout.KeyHint{Key: "Esc", Description: "Quitter"},
	)
}

func formatRemaining(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("⏱ %02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// content renders the question body.
func (m *Model) content() string {
	if !m.sess.Active() {
		return theme.Hint.Render("Quiz terminé.")
	}
	if m.confirmQuit {
		return theme.Card.Render(theme.Title.Render("Abandonner le quiz ?") + "\n\n" +
			theme.Body.Render("Vos réponses ne seront pas enregistrées."))
	}

	q := m.current()
	answered, total := m.sess.Progress()

	var b strings.Builder
	bar := components.NewProgressBar("Progression", float64(answered)/float64(total), true, 50)
	b.WriteString(bar.View() + "\n\n")

	fmt.Fprintf(&b, "%s %s\n", theme.Selected.Render(fmt.Sprintf("Question %d/%d", m.sess.Current+1, total)),
		theme.Hint.Render(fmt.Sprintf("%s · %.1f pt", q.Competency, q.Points)))
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render(q.Prompt) + "\n\n")

	if q.IsMultipleChoice() {
		b.WriteString(m.choice.View())
	} else {
		b.WriteString(m.input.View() + "\n")
	}

	if m.revealed {
		if q.IsMultipleChoice() {
			if m.choice.Chosen == m.choice.Correct {
				b.WriteString("\n" + theme.Correct.Render("✓ Bonne réponse") + "\n")
			} else {
				b.WriteString("\n" + theme.Incorrect.Render("✗ Réponse attendue : "+q.CorrectAnswer) + "\n")
			}
		} else {
			b.WriteString("\n" + theme.Subtitle.Render("Réponse attendue : "+q.CorrectAnswer) + "\n")
		}
		if q.Explanation != "" {
			b.WriteString(theme.Hint.Render(q.Explanation) + "\n")
		}
	}

	if m.notice != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Warning).Render(m.notice) + "\n")
	}
	return b.String()
}

// frame renders the full screen, or "" before the size is known.
func (m *Model) frame() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	title := "Quiz"
	status := ""
	if m.sess.Active() {
		title = m.sess.Quiz.Document
		status = formatRemaining(m.sess.Remaining(m.now()))
	}
	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.keyHints(), m.width)
	return layout.RenderFrame(header, m.content(), footer, m.width, m.height)
}

func (m *Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.frame())
	return v
}

// Run takes the active quiz of s in the terminal and returns the
// submission. A failed history write is returned alongside it.
func Run(ctx context.Context, s *session.Session) (*session.Submission, error) {
	m, err := New(ctx, s)
	if err != nil {
		return nil, err
	}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return nil, fmt.Errorf("run quiz: %w", err)
	}
	if m.abandoned {
		return nil, ErrAbandoned
	}
	return m.submission, m.submitErr
}
