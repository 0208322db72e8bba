// Package report renders results, statistics and generated study material
// for the terminal.
package report

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mentorai/internal/analytics"
	"github.com/abhisek/mentorai/internal/grading"
	"github.com/abhisek/mentorai/internal/quiz"
	"github.com/abhisek/mentorai/internal/ui/components"
	"github.com/abhisek/mentorai/internal/ui/theme"
)

// BarWidth is the width of competency bars.
const BarWidth = 56

func row(label, value string) string {
	return theme.Label.Render(label) + theme.Body.Render(value) + "\n"
}

func competencyBars(comps map[string]float64) string {
	var b strings.Builder
	for _, name := range slices.Sorted(maps.Keys(comps)) {
		pct := comps[name]
		bar := components.NewProgressBar(name, pct/100, true, BarWidth)
		bar.Color = theme.ScoreColor(pct).GetForeground()
		b.WriteString(bar.View() + "\n")
	}
	return b.String()
}

// RenderResult renders a score card: score, mention, competency bars,
// per-question outcomes and weak areas.
func RenderResult(res quiz.Result, breakdown []grading.QuestionOutcome) string {
	var b strings.Builder

	score := theme.ScoreColor(res.Percentage).Render(fmt.Sprintf("%.1f/20", res.Score))
	b.WriteString(theme.Title.Render("Résultat du quiz") + "  " + score + "  " +
		theme.Subtitle.Render(analytics.Mention(res.Score)) + "\n\n")

	b.WriteString(row("Pourcentage", fmt.Sprintf("%.1f%%", res.Percentage)))
	b.WriteString(row("Points", fmt.Sprintf("%.2f / %.2f", res.EarnedPoints, res.TotalPoints)))
	b.WriteString(row("Bonnes réponses", fmt.Sprintf("%d / %d", res.CorrectAnswers, res.TotalQuestions)))
	if res.Duration > 0 {
		b.WriteString(row("Durée", fmt.Sprintf("%d min", res.DurationMinutes())))
	}

	if len(res.Competencies) > 0 {
		b.WriteString(theme.Section.Render("Compétences") + "\n")
		b.WriteString(competencyBars(res.Competencies))
	}

	if len(breakdown) > 0 {
		b.WriteString(theme.Section.Render("Questions") + "\n")
		for _, qo := range breakdown {
			mark := theme.Incorrect.Render("✗")
			switch {
			case qo.Correct:
				mark = theme.Correct.Render("✓")
			case !qo.Answered:
				mark = theme.Pending.Render("–")
			}
			answer := qo.Answer
			if !qo.Answered {
				answer = "(sans réponse)"
			}
			fmt.Fprintf(&b, "%s %2d. %-16s %+.2f/%.2f  %s\n",
				mark, qo.Index+1, qo.Competency, qo.Awarded, qo.Points, theme.Hint.Render(answer))
		}
	}

	if len(res.WeakAreas) > 0 {
		b.WriteString(theme.Section.Render("Points à revoir") + "\n")
		for _, w := range res.WeakAreas {
			b.WriteString("  • " + w + "\n")
		}
	}

	return theme.Card.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderStats renders history statistics.
func RenderStats(stats analytics.Stats, comps []analytics.CompetencyAverage, mentions map[string]int, projection []float64) string {
	if stats.TotalQuizzes == 0 {
		return theme.Hint.Render("Aucun quiz terminé pour le moment.")
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Statistiques") + "\n\n")
	b.WriteString(row("Quiz terminés", fmt.Sprintf("%d", stats.TotalQuizzes)))
	b.WriteString(row("Score moyen", fmt.Sprintf("%.1f/20 (%.1f%%)", stats.AverageScore, stats.AveragePercentage)))
	b.WriteString(row("Meilleur / pire", fmt.Sprintf("%.1f / %.1f", stats.BestScore, stats.WorstScore)))
	b.WriteString(row("Progression", fmt.Sprintf("%+.1f", stats.Improvement)))

	if len(comps) > 0 {
		b.WriteString(theme.Section.Render("Compétences") + "\n")
		for _, c := range comps {
			bar := components.NewProgressBar(c.Name, c.Average/100, true, BarWidth)
			bar.Color = theme.ScoreColor(c.Average).GetForeground()
			b.WriteString(bar.View() + "  " + theme.Hint.Render(c.Level) + "\n")
		}
	}

	b.WriteString(theme.Section.Render("Mentions") + "\n")
	for _, m := range analytics.Mentions() {
		b.WriteString(row(m, strings.Repeat("■", mentions[m])+fmt.Sprintf(" %d", mentions[m])))
	}

	if len(projection) > 0 {
		parts := make([]string, len(projection))
		for i, p := range projection {
			parts[i] = fmt.Sprintf("%.1f", p)
		}
		b.WriteString(theme.Section.Render("Projection") + "\n")
		b.WriteString(row("Prochains quiz", strings.Join(parts, " → ")))
	}

	return theme.Card.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderQuiz lists a quiz's questions. Answers and explanations are only
// shown with reveal.
func RenderQuiz(def *quiz.Definition, reveal bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", theme.Title.Render(def.ID), theme.Subtitle.Render(def.Document))
	fmt.Fprintf(&b, "%s · %s · %s · barème %s · %d min\n\n",
		def.QuizType, def.Difficulty, def.EvalMode, def.Scheme, int(def.TimeLimit.Minutes()))

	for i, q := range def.Questions {
		fmt.Fprintf(&b, "%s %s\n", theme.Selected.Render(fmt.Sprintf("%d.", i+1)),
			lipgloss.NewStyle().Bold(true).Render(q.Prompt))
		b.WriteString(theme.Hint.Render(fmt.Sprintf("   %s · %.1f pt", q.Competency, q.Points)) + "\n")
		for j, o := range q.Options {
			line := fmt.Sprintf("   %c) %s", 'A'+rune(j%26), o)
			if reveal && o == q.CorrectAnswer {
				line = theme.Correct.Render(line)
			}
			b.WriteString(line + "\n")
		}
		if reveal {
			if !q.IsMultipleChoice() {
				b.WriteString(theme.Correct.Render("   → "+q.CorrectAnswer) + "\n")
			}
			if q.Explanation != "" {
				b.WriteString(theme.Hint.Render("   "+q.Explanation) + "\n")
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
