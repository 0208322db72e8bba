package analytics

import "github.com/abhisek/mentorai/internal/quiz"

// Mention labels, highest first.
const (
	MentionExcellent   = "Excellent"
	MentionTresBien    = "Très Bien"
	MentionBien        = "Bien"
	MentionAssezBien   = "Assez Bien"
	MentionInsuffisant = "Insuffisant"
)

var mentionBands = []struct {
	min   float64
	label string
}{
	{16, MentionExcellent},
	{14, MentionTresBien},
	{12, MentionBien},
	{10, MentionAssezBien},
}

// Mentions lists every mention label, highest first.
func Mentions() []string {
	return []string{MentionExcellent, MentionTresBien, MentionBien, MentionAssezBien, MentionInsuffisant}
}

// Mention returns the grade band for a score out of 20.
func Mention(score float64) string {
	for _, b := range mentionBands {
		if score >= b.min {
			return b.label
		}
	}
	return MentionInsuffisant
}

// MentionDistribution counts results per mention. Every label is present.
func MentionDistribution(history []quiz.Result) map[string]int {
	dist := make(map[string]int, len(mentionBands)+1)
	for _, m := range Mentions() {
		dist[m] = 0
	}
	for _, r := range history {
		dist[Mention(r.Score)]++
	}
	return dist
}
