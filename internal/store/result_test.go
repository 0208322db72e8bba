package store

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/abhisek/mentorai/internal/quiz"
)

func sampleResult(id string, score float64, completed time.Time) quiz.Result {
	return quiz.Result{
		QuizID:         id,
		Score:          score,
		Percentage:     score * 5,
		EarnedPoints:   score / 4,
		TotalPoints:    5,
		CorrectAnswers: 3,
		TotalQuestions: 5,
		Competencies:   map[string]float64{"Biologie": 60, "Chimie": 40},
		WeakAreas:      []string{"Quelle molécule porte l'information génétique ?..."},
		StartedAt:      completed.Add(-7 * time.Minute),
		CompletedAt:    completed,
		Duration:       7 * time.Minute,
	}
}

func TestResultRepo_AppendAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	for i, score := range []float64{8, 12, 15} {
		if err := repo.AppendResult(ctx, sampleResult("quiz_"+string(rune('a'+i)), score, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.ListResults(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 results, got %d", len(all))
	}
	if all[0].Result.Score != 8 || all[2].Result.Score != 15 {
		t.Fatalf("expected oldest first, got %v, %v", all[0].Result.Score, all[2].Result.Score)
	}

	got := all[1].Result
	if got.Competencies["Chimie"] != 40 || len(got.WeakAreas) != 1 {
		t.Fatalf("json columns not round-tripped: %+v", got)
	}
	if got.Duration != 7*time.Minute {
		t.Fatalf("Duration = %v", got.Duration)
	}
	if !got.CompletedAt.Equal(base.Add(time.Hour)) {
		t.Fatalf("CompletedAt = %v", got.CompletedAt)
	}

	recent, err := repo.ListResults(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(recent) != 2 || recent[0].Result.Score != 12 || recent[1].Result.Score != 15 {
		t.Fatalf("expected the two most recent, oldest first: %+v", recent)
	}

	history, err := repo.History(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 3 || history[0].QuizID != "quiz_a" {
		t.Fatalf("unexpected history %+v", history)
	}
}

func TestResultRepo_GetResult(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	if err := repo.AppendResult(ctx, quiz.Result{QuizID: "quiz_x", TotalQuestions: 2}); err != nil {
		t.Fatalf("append: %v", err)
	}
	list, _ := repo.ListResults(ctx, QueryOpts{})

	rec, err := repo.GetResult(ctx, list[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Result.QuizID != "quiz_x" {
		t.Fatalf("unexpected result %+v", rec)
	}
	if rec.Result.CompletedAt.IsZero() {
		t.Fatal("missing completion time should be stamped on append")
	}
	if len(rec.Result.WeakAreas) != 0 {
		t.Fatalf("expected no weak areas, got %v", rec.Result.WeakAreas)
	}

	missing, err := repo.GetResult(ctx, 42)
	if err != nil || missing != nil {
		t.Fatalf("expected nil, nil for a missing result, got %v, %v", missing, err)
	}
}

func TestExportResultsCSV(t *testing.T) {
	completed := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)
	r := sampleResult("quiz_20260501_090000_ab12cd34", 12, completed)
	r.WeakAreas = append(r.WeakAreas, "Définir l'osmose...")

	var buf bytes.Buffer
	if err := ExportResultsCSV(&buf, []quiz.Result{r}); err != nil {
		t.Fatalf("export: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(records))
	}
	if len(records[0]) != len(CSVHeader) || records[0][0] != "quiz_id" {
		t.Fatalf("unexpected header %v", records[0])
	}

	row := records[1]
	want := map[int]string{
		1:  "12.00",
		2:  "60.00",
		7:  "7",
		8:  "2026-05-01T09:30:00Z",
		9:  "Quelle molécule porte l'information génétique ?... | Définir l'osmose...",
		10: `{"Biologie":60,"Chimie":40}`,
	}
	for i, w := range want {
		if row[i] != w {
			t.Errorf("column %s = %q, want %q", CSVHeader[i], row[i], w)
		}
	}
}
