package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/mentorai/internal/quiz"
)

// CSVHeader lists the columns written by ExportResultsCSV.
var CSVHeader = []string{
	"quiz_id", "score", "percentage", "earned_points", "total_points",
	"correct_answers", "total_questions", "duration_minutes", "completed_at",
	"weak_areas", "competencies",
}

// ExportResultsCSV writes one row per result, in the given order.
func ExportResultsCSV(w io.Writer, results []quiz.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}

	for _, r := range results {
		competencies, err := json.Marshal(r.Competencies)
		if err != nil {
			return fmt.Errorf("marshal competencies of %s: %w", r.QuizID, err)
		}
		completed := ""
		if !r.CompletedAt.IsZero() {
			completed = r.CompletedAt.UTC().Format(time.RFC3339)
		}
		row := []string{
			r.QuizID,
			formatFloat(r.Score),
			formatFloat(r.Percentage),
			formatFloat(r.EarnedPoints),
			formatFloat(r.TotalPoints),
			strconv.Itoa(r.CorrectAnswers),
			strconv.Itoa(r.TotalQuestions),
			strconv.Itoa(r.DurationMinutes()),
			completed,
			strings.Join(r.WeakAreas, " | "),
			string(competencies),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
