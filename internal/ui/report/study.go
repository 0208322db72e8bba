package report

import (
	"fmt"
	"strings"

	"github.com/abhisek/mentorai/internal/coach"
	"github.com/abhisek/mentorai/internal/studyguide"
	"github.com/abhisek/mentorai/internal/ui/theme"
)

func bullets(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(theme.Section.Render(title) + "\n")
	for _, it := range items {
		b.WriteString("  • " + it + "\n")
	}
}

// RenderSummary renders a study summary.
func RenderSummary(s *studyguide.Summary) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Résumé") + "\n")
	b.WriteString(theme.Body.Render(s.Overview) + "\n")

	for _, sec := range s.Sections {
		b.WriteString(theme.Section.Render(sec.Title) + "\n")
		b.WriteString(sec.Content + "\n")
	}

	bullets(&b, "Concepts clés", s.KeyConcepts)
	bullets(&b, "Définitions", s.Definitions)
	bullets(&b, "Théorèmes et formules", s.Formulas)

	if len(s.MindMap.Relations) > 0 {
		b.WriteString(theme.Section.Render("Carte mentale") + "\n")
		for _, r := range s.MindMap.Relations {
			fmt.Fprintf(&b, "  %s —%s→ %s\n", r.From, r.Type, r.To)
		}
	}
	if len(s.Timeline) > 0 {
		b.WriteString(theme.Section.Render("Chronologie") + "\n")
		for _, e := range s.Timeline {
			fmt.Fprintf(&b, "  %-10s %s %s\n", e.Date, e.Event, theme.Hint.Render("("+e.Importance+")"))
		}
	}
	if len(s.Glossary) > 0 {
		b.WriteString(theme.Section.Render("Glossaire") + "\n")
		for _, t := range s.Glossary {
			fmt.Fprintf(&b, "  %s : %s\n", theme.Selected.Render(t.Term), t.Definition)
			if t.Example != "" {
				b.WriteString(theme.Hint.Render("    ex. "+t.Example) + "\n")
			}
		}
	}
	if len(s.Flashcards) > 0 {
		b.WriteString(theme.Section.Render("Flashcards") + "\n")
		for _, f := range s.Flashcards {
			fmt.Fprintf(&b, "  Q: %s\n  R: %s %s\n", f.Question, f.Answer, theme.Hint.Render("["+f.Difficulty+"]"))
		}
	}

	a := s.Analysis
	b.WriteString(theme.Section.Render("Analyse") + "\n")
	b.WriteString(row("Type", a.DocumentType))
	b.WriteString(row("Difficulté", a.Difficulty))
	b.WriteString(row("Lecture", fmt.Sprintf("%d min", a.ReadingMinutes)))
	if len(a.Keywords) > 0 {
		b.WriteString(row("Mots-clés", strings.Join(a.Keywords, ", ")))
	}
	bullets(&b, "Liens avec le cours", s.CourseLinks)

	return strings.TrimRight(b.String(), "\n")
}

// RenderRecommendations renders a coaching plan.
func RenderRecommendations(r *coach.Recommendations) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Recommandations") + "\n")

	if len(r.Review) > 0 {
		b.WriteString(theme.Section.Render("Points à revoir") + "\n")
		for _, it := range r.Review {
			fmt.Fprintf(&b, "  • %s %s\n", theme.Selected.Render(it.Chapter), theme.Hint.Render(it.Reason))
		}
	}
	bullets(&b, "Exercices recommandés", r.Exercises)
	if len(r.Resources) > 0 {
		b.WriteString(theme.Section.Render("Ressources") + "\n")
		for _, res := range r.Resources {
			fmt.Fprintf(&b, "  • [%s] %s: %s\n", res.Type, res.Title, res.Description)
		}
	}
	bullets(&b, "Stratégies", r.Strategies)

	if weeks := r.Weeks(); len(weeks) > 0 {
		b.WriteString(theme.Section.Render("Planning") + "\n")
		for _, w := range weeks {
			label := strings.Replace(w, "semaine_", "Semaine ", 1)
			b.WriteString(row(label, strings.Join(r.Plan[w], " · ")))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
