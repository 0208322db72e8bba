package quiz

import "time"

// Result is the outcome of scoring one quiz attempt. Score is on a
// 20-point scale, Percentage and the competency values are 0-100
// (competencies can drop below 0 under negative marking).
type Result struct {
	QuizID         string             `json:"quiz_id"`
	Score          float64            `json:"score"`
	Percentage     float64            `json:"percentage"`
	EarnedPoints   float64            `json:"earned_points"`
	TotalPoints    float64            `json:"total_points"`
	CorrectAnswers int                `json:"correct_answers"`
	TotalQuestions int                `json:"total_questions"`
	Competencies   map[string]float64 `json:"competencies"`
	WeakAreas      []string           `json:"weak_areas"`

	StartedAt   time.Time     `json:"started_at,omitzero"`
	CompletedAt time.Time     `json:"completed_at,omitzero"`
	Duration    time.Duration `json:"duration,omitempty"`
}

// DurationMinutes returns the attempt duration in whole minutes.
func (r Result) DurationMinutes() int {
	return int(r.Duration / time.Minute)
}
