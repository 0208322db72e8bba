package report

import (
	"strings"
	"testing"
	"time"

	"github.com/abhisek/mentorai/internal/analytics"
	"github.com/abhisek/mentorai/internal/coach"
	"github.com/abhisek/mentorai/internal/grading"
	"github.com/abhisek/mentorai/internal/quiz"
	"github.com/abhisek/mentorai/internal/studyguide"
)

func sampleQuiz(t *testing.T) *quiz.Definition {
	t.Helper()
	def, err := quiz.NewDefinition("quiz-1", []quiz.Question{
		{Kind: quiz.KindMultipleChoice, Prompt: "Capitale de la France ?", Options: []string{"Paris", "Lyon"}, CorrectAnswer: "Paris", Explanation: "Siège du gouvernement.", Points: 1, Competency: "Mémorisation"},
		{Kind: quiz.KindOpen, Prompt: "Définir une dérivée", CorrectAnswer: "limite du taux de variation", Points: 2, Competency: "Compréhension"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return def
}

func TestRenderResult(t *testing.T) {
	def := sampleQuiz(t)
	answers := quiz.AnswerSet{0: "Lyon"}
	res := grading.Score(def, answers)
	res.Duration = 7 * time.Minute

	out := RenderResult(res, grading.NewEngine().Breakdown(def, answers))
	for _, want := range []string{"0.0/20", "Insuffisant", "Mémorisation", "Compréhension", "(sans réponse)", "Capitale de la France ?...", "7 min"} {
		if !strings.Contains(out, want) {
			t.Errorf("result card missing %q", want)
		}
	}
}

func TestRenderStats(t *testing.T) {
	if out := RenderStats(analytics.Stats{}, nil, nil, nil); !strings.Contains(out, "Aucun quiz") {
		t.Fatalf("empty stats = %q", out)
	}

	history := []quiz.Result{
		{Score: 12, Percentage: 60, Competencies: map[string]float64{"Analyse": 60}},
		{Score: 16, Percentage: 80, Competencies: map[string]float64{"Analyse": 80}},
	}
	out := RenderStats(analytics.Statistics(history), analytics.CompetencyAverages(history),
		analytics.MentionDistribution(history), analytics.Projection(history, 2))
	for _, want := range []string{"14.0/20", "+4.0", "Analyse", "Excellent", "20.0 → 24.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats missing %q", want)
		}
	}
}

func TestRenderQuiz(t *testing.T) {
	def := sampleQuiz(t)
	hidden := RenderQuiz(def, false)
	if strings.Contains(hidden, "Siège") || strings.Contains(hidden, "limite du taux") {
		t.Fatal("answers leaked without reveal")
	}
	shown := RenderQuiz(def, true)
	if !strings.Contains(shown, "Siège du gouvernement.") || !strings.Contains(shown, "limite du taux de variation") {
		t.Fatal("reveal should show answers and explanations")
	}
}

func TestRenderStudyMaterial(t *testing.T) {
	out := RenderSummary(studyguide.DefaultSummary())
	if !strings.Contains(out, "Résumé en cours de génération...") || !strings.Contains(out, "non déterminé") {
		t.Errorf("summary = %q", out)
	}
	out = RenderRecommendations(coach.DefaultRecommendations())
	for _, want := range []string{"Refaire les exercices du cours", "Semaine 1", "Faire des exercices"} {
		if !strings.Contains(out, want) {
			t.Errorf("recommendations missing %q", want)
		}
	}
}
