package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/mentorai/internal/quiz"
)

var resultFields = []string{
	"id", "sequence", "quiz_id", "score", "percentage", "earned_points",
	"total_points", "correct_answers", "total_questions", "competencies",
	"weak_areas", "started_at", "completed_at", "duration_ms",
}

// resultRepo implements ResultRepo on the quiz_results table.
type resultRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *resultRepo) AppendResult(ctx context.Context, res quiz.Result) error {
	competencies, err := json.Marshal(res.Competencies)
	if err != nil {
		return fmt.Errorf("marshal competencies: %w", err)
	}
	weak := res.WeakAreas
	if weak == nil {
		weak = []string{}
	}
	weakAreas, err := json.Marshal(weak)
	if err != nil {
		return fmt.Errorf("marshal weak areas: %w", err)
	}

	completed := res.CompletedAt
	if completed.IsZero() {
		completed = time.Now()
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().
		Insert(resultTable.Name).
		Columns(resultFields[1:]...).
		Values(
			seqNum,
			res.QuizID,
			res.Score,
			res.Percentage,
			res.EarnedPoints,
			res.TotalPoints,
			res.CorrectAnswers,
			res.TotalQuestions,
			string(competencies),
			string(weakAreas),
			res.StartedAt.UTC(),
			completed.UTC(),
			res.Duration.Milliseconds(),
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save quiz result: %w", err)
	}
	return nil
}

func (r *resultRepo) ListResults(ctx context.Context, opts QueryOpts) ([]ResultRecord, error) {
	sel := builder().
		Select(resultFields...).
		From(entsql.Table(resultTable.Name))
	if p := opts.predicate("completed_at"); p != nil {
		sel.Where(p)
	}
	sel.OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query quiz results: %w", err)
	}
	defer rows.Close()

	var out []ResultRecord
	for rows.Next() {
		rec, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Selected newest first so Limit keeps the most recent; history reads
	// oldest first.
	slices.Reverse(out)
	return out, nil
}

func (r *resultRepo) GetResult(ctx context.Context, id int) (*ResultRecord, error) {
	query, args := builder().
		Select(resultFields...).
		From(entsql.Table(resultTable.Name)).
		Where(entsql.EQ("id", id)).
		Query()

	rec, err := scanResult(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return rec, err
}

func (r *resultRepo) History(ctx context.Context) ([]quiz.Result, error) {
	recs, err := r.ListResults(ctx, QueryOpts{})
	if err != nil {
		return nil, err
	}
	out := make([]quiz.Result, len(recs))
	for i, rec := range recs {
		out[i] = rec.Result
	}
	return out, nil
}

func scanResult(row rowScanner) (*ResultRecord, error) {
	var (
		rec          ResultRecord
		competencies string
		weakAreas    string
		durationMs   int64
	)
	res := &rec.Result
	err := row.Scan(
		&rec.ID, &rec.Sequence, &res.QuizID, &res.Score, &res.Percentage,
		&res.EarnedPoints, &res.TotalPoints, &res.CorrectAnswers, &res.TotalQuestions,
		&competencies, &weakAreas, &res.StartedAt, &res.CompletedAt, &durationMs,
	)
	if err != nil {
		return nil, fmt.Errorf("scan quiz result: %w", err)
	}
	if err := json.Unmarshal([]byte(competencies), &res.Competencies); err != nil {
		return nil, fmt.Errorf("decode competencies of result %d: %w", rec.ID, err)
	}
	if err := json.Unmarshal([]byte(weakAreas), &res.WeakAreas); err != nil {
		return nil, fmt.Errorf("decode weak areas of result %d: %w", rec.ID, err)
	}
	res.Duration = time.Duration(durationMs) * time.Millisecond
	return &rec, nil
}
