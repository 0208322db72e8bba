package analytics

import (
	"github.com/abhisek/mentorai/internal/quiz"
)

// Stats summarizes a result history.
type Stats struct {
	TotalQuizzes      int     `json:"total_quizzes"`
	AverageScore      float64 `json:"average_score"`
	AveragePercentage float64 `json:"average_percentage"`
	BestScore         float64 `json:"best_score"`
	WorstScore        float64 `json:"worst_score"`

	// Improvement is the last score minus the first, 0 with fewer than two results.
	Improvement float64 `json:"improvement"`
}

// Statistics computes aggregate figures over history, oldest result first.
// An empty history yields the zero Stats.
func Statistics(history []quiz.Result) Stats {
	if len(history) == 0 {
		return Stats{}
	}

	s := Stats{
		TotalQuizzes: len(history),
		BestScore:    history[0].Score,
		WorstScore:   history[0].Score,
	}

	var sumScore, sumPct float64
	for _, r := range history {
		sumScore += r.Score
		sumPct += r.Percentage
		s.BestScore = max(s.BestScore, r.Score)
		s.WorstScore = min(s.WorstScore, r.Score)
	}

	n := float64(len(history))
	s.AverageScore = sumScore / n
	s.AveragePercentage = sumPct / n
	if len(history) > 1 {
		s.Improvement = history[len(history)-1].Score - history[0].Score
	}
	return s
}

// Projection fits a least-squares line through the score sequence and
// extends it ahead steps past the last result. It returns nil when fewer
// than two results exist.
func Projection(history []quiz.Result, ahead int) []float64 {
	n := len(history)
	if n < 2 || ahead <= 0 {
		return nil
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, r := range history {
		x := float64(i)
		sumX += x
		sumY += r.Score
		sumXY += x * r.Score
		sumXX += x * x
	}

	fn := float64(n)
	slope := (fn*sumXY - sumX*sumY) / (fn*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / fn

	out := make([]float64, ahead)
	for i := range out {
		out[i] = intercept + slope*float64(n+i)
	}
	return out
}
