package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/mentorai/internal/quiz"
)

// quizRepo implements QuizRepo. The definition is stored as JSON; the
// summary columns exist for listing without decoding it.
type quizRepo struct {
	db *sql.DB
}

func (r *quizRepo) SaveQuiz(ctx context.Context, def *quiz.Definition) error {
	if def == nil || def.ID == "" {
		return errors.New("save quiz: definition has no ID")
	}
	payload, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("marshal quiz %s: %w", def.ID, err)
	}

	query, args := builder().
		Insert(quizTable.Name).
		Columns("id", "document", "questions", "created_at", "definition").
		Values(def.ID, def.Document, def.Len(), def.CreatedAt.UTC(), string(payload)).
		OnConflict(entsql.ConflictColumns("id"), entsql.ResolveWithNewValues()).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save quiz %s: %w", def.ID, err)
	}
	return nil
}

func (r *quizRepo) GetQuiz(ctx context.Context, id string) (*quiz.Definition, error) {
	query, args := builder().
		Select("definition").
		From(entsql.Table(quizTable.Name)).
		Where(entsql.EQ("id", id)).
		Query()

	var payload string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get quiz %s: %w", id, err)
	}

	var def quiz.Definition
	if err := json.Unmarshal([]byte(payload), &def); err != nil {
		return nil, fmt.Errorf("decode quiz %s: %w", id, err)
	}
	return &def, nil
}

func (r *quizRepo) ListQuizzes(ctx context.Context, limit int) ([]QuizSummary, error) {
	sel := builder().
		Select("id", "document", "questions", "created_at").
		From(entsql.Table(quizTable.Name)).
		OrderBy(entsql.Desc("created_at"), entsql.Desc("id"))
	if limit > 0 {
		sel.Limit(limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	defer rows.Close()

	var out []QuizSummary
	for rows.Next() {
		var q QuizSummary
		if err := rows.Scan(&q.ID, &q.Document, &q.Questions, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan quiz: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
