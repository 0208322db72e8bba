// Package coach turns a learner's result history into personalized
// study recommendations.
package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/abhisek/mentorai/internal/analytics"
	"github.com/abhisek/mentorai/internal/llm"
	"github.com/abhisek/mentorai/internal/quiz"
)

// Weak areas sent with a request, and the subset named in the prompt.
const (
	maxWeakAreas    = 5
	promptWeakAreas = 3
)

// Recommendations is the coaching plan. JSON keys follow the French
// schema the model is prompted with.
type Recommendations struct {
	Review     []ReviewItem        `json:"points_a_revoir"`
	Exercises  []string            `json:"exercices_recommandes"`
	Resources  []Resource          `json:"ressources"`
	Strategies []string            `json:"strategies"`
	Plan       map[string][]string `json:"planning"`
}

type ReviewItem struct {
	Chapter string `json:"chapitre"`
	Reason  string `json:"raison"`
}

type Resource struct {
	Type        string `json:"type"`
	Title       string `json:"titre"`
	Description string `json:"description"`
}

// DefaultRecommendations is shown when generation fails.
func DefaultRecommendations() *Recommendations {
	return &Recommendations{
		Review:     []ReviewItem{},
		Exercises:  []string{"Refaire les exercices du cours"},
		Resources:  []Resource{},
		Strategies: []string{"Relire régulièrement", "Pratiquer avec des exercices"},
		Plan: map[string][]string{
			"semaine_1": {"Revoir les cours"},
			"semaine_2": {"Faire des exercices"},
		},
	}
}

// Weeks returns the non-empty plan keys: semaine_1, semaine_2, ... in
// order, then any other keys sorted.
func (r *Recommendations) Weeks() []string {
	var weeks []string
	seen := map[string]bool{}
	for i := 1; ; i++ {
		key := fmt.Sprintf("semaine_%d", i)
		actions, ok := r.Plan[key]
		if !ok {
			break
		}
		seen[key] = true
		if len(actions) > 0 {
			weeks = append(weeks, key)
		}
	}
	for _, key := range slices.Sorted(maps.Keys(r.Plan)) {
		if !seen[key] && len(r.Plan[key]) > 0 {
			weeks = append(weeks, key)
		}
	}
	return weeks
}

// Generator produces recommendations.
type Generator struct {
	provider llm.Provider
}

// New creates a recommendation Generator.
func New(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

// Recommend asks the model for a study plan based on history.
func (g *Generator) Recommend(ctx context.Context, history []quiz.Result) (*Recommendations, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeRecommendations)

	weak, avg := analytics.RecommendationInput(history)
	if len(weak) > maxWeakAreas {
		weak = weak[:maxWeakAreas]
	}

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPrompt(len(history), avg, weak)},
		},
		Schema:      RecommendationsSchema,
		MaxTokens:   4096,
		Temperature: llm.DefaultTemperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var r Recommendations
	if err := json.Unmarshal(resp.Content, &r); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	return &r, nil
}

// RecommendOrDefault returns DefaultRecommendations when generation fails.
func (g *Generator) RecommendOrDefault(ctx context.Context, history []quiz.Result) *Recommendations {
	r, err := g.Recommend(ctx, history)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("recommendation generation failed, using defaults")
		return DefaultRecommendations()
	}
	return r
}

func buildPrompt(quizzes int, avg float64, weak []string) string {
	if len(weak) > promptWeakAreas {
		weak = weak[:promptWeakAreas]
	}
	return fmt.Sprintf(`En tant que conseiller pédagogique, analyse les résultats de l'étudiant et propose des recommandations personnalisées.

Résumé des résultats :
- Nombre de quiz : %d
- Score moyen : %.1f/20
- Points faibles : %s

Génère des recommandations incluant :
1. Points à revoir (chapitres/sections spécifiques)
2. Exercices recommandés
3. Ressources supplémentaires
4. Stratégies d'apprentissage
5. Planning de révision suggéré (semaine_1 à semaine_4, tableau vide si inutile)

IMPORTANT : Retourne UNIQUEMENT un objet JSON valide, sans texte avant ou après.`, quizzes, avg, strings.Join(weak, ", "))
}
