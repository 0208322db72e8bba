package analytics

import (
	"sort"

	"github.com/abhisek/mentorai/internal/quiz"
)

// WeakThreshold is the competency percentage below which a competency is
// reported as weak for recommendations.
const WeakThreshold = 60.0

// Competency levels.
const (
	LevelPriority = "priority"
	LevelPractice = "practice"
	LevelMastered = "mastered"
)

// CompetencyAverage is the mean mastery of one competency across results.
type CompetencyAverage struct {
	Name    string  `json:"name"`
	Average float64 `json:"average"`
	Samples int     `json:"samples"`
	Level   string  `json:"level"`
}

// CompetencyAverages averages each competency's percentage over the results
// it appears in, sorted by average descending then name.
func CompetencyAverages(history []quiz.Result) []CompetencyAverage {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, r := range history {
		for name, pct := range r.Competencies {
			sums[name] += pct
			counts[name]++
		}
	}

	out := make([]CompetencyAverage, 0, len(sums))
	for name, sum := range sums {
		avg := sum / float64(counts[name])
		out = append(out, CompetencyAverage{
			Name:    name,
			Average: avg,
			Samples: counts[name],
			Level:   levelFor(avg),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Average != out[j].Average {
			return out[i].Average > out[j].Average
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func levelFor(avg float64) string {
	switch {
	case avg < 50:
		return LevelPriority
	case avg < 70:
		return LevelPractice
	default:
		return LevelMastered
	}
}

// WeakCompetencies lists, result by result, every competency scored below
// threshold. Within a result competencies are visited in name order.
func WeakCompetencies(history []quiz.Result, threshold float64) []string {
	var out []string
	for _, r := range history {
		names := make([]string, 0, len(r.Competencies))
		for name := range r.Competencies {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if r.Competencies[name] < threshold {
				out = append(out, name)
			}
		}
	}
	return out
}

// RecommendationInput gathers what the recommendation generator needs: weak
// competencies followed by each result's weak areas, and the average score.
func RecommendationInput(history []quiz.Result) (weakAreas []string, avgScore float64) {
	weakAreas = WeakCompetencies(history, WeakThreshold)
	for _, r := range history {
		weakAreas = append(weakAreas, r.WeakAreas...)
	}
	return weakAreas, Statistics(history).AverageScore
}
