package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

var llmEventFields = []string{
	"id", "sequence", "timestamp", "provider", "model", "purpose",
	"input_tokens", "output_tokens", "latency_ms", "success",
	"error_message", "request_body", "response_body",
}

// eventRepo implements EventRepo on the llm_request_events table.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().
		Insert(llmEventTable.Name).
		Columns(llmEventFields[1:]...).
		Values(
			seqNum,
			time.Now().UTC(),
			data.Provider,
			data.Model,
			data.Purpose,
			data.InputTokens,
			data.OutputTokens,
			data.LatencyMs,
			data.Success,
			data.ErrorMessage,
			data.RequestBody,
			data.ResponseBody,
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error) {
	sel := builder().
		Select(llmEventFields...).
		From(entsql.Table(llmEventTable.Name))
	if p := opts.predicate("timestamp"); p != nil {
		sel.Where(p)
	}
	if opts.Purpose != "" {
		sel.Where(entsql.EQ("purpose", opts.Purpose))
	}
	sel.OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var out []LLMRequestEventRecord
	for rows.Next() {
		e, err := scanLLMEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error) {
	query, args := builder().
		Select(llmEventFields...).
		From(entsql.Table(llmEventTable.Name)).
		Where(entsql.EQ("id", id)).
		Query()

	e, err := scanLLMEvent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return e, err
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error) {
	query, args := builder().
		Select(
			"purpose",
			entsql.As(entsql.Count("*"), "calls"),
			entsql.As("SUM(CASE WHEN `success` THEN 0 ELSE 1 END)", "failures"),
			entsql.As(entsql.Sum("input_tokens"), "input_tokens"),
			entsql.As(entsql.Sum("output_tokens"), "output_tokens"),
			entsql.As(entsql.Avg("latency_ms"), "avg_latency"),
		).
		From(entsql.Table(llmEventTable.Name)).
		GroupBy("purpose").
		OrderBy("purpose").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query usage by purpose: %w", err)
	}
	defer rows.Close()

	var out []LLMUsageStats
	for rows.Next() {
		var (
			st  LLMUsageStats
			avg float64
		)
		if err := rows.Scan(&st.Purpose, &st.Calls, &st.Failures, &st.InputTokens, &st.OutputTokens, &avg); err != nil {
			return nil, fmt.Errorf("scan usage: %w", err)
		}
		st.AvgLatencyMs = int64(avg)
		out = append(out, st)
	}
	return out, rows.Err()
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	query, args := builder().
		Select(
			"model",
			entsql.As(entsql.Count("*"), "calls"),
			entsql.As(entsql.Sum("input_tokens"), "input_tokens"),
			entsql.As(entsql.Sum("output_tokens"), "output_tokens"),
		).
		From(entsql.Table(llmEventTable.Name)).
		GroupBy("model").
		OrderBy("model").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query usage by model: %w", err)
	}
	defer rows.Close()

	var out []LLMModelUsage
	for rows.Next() {
		var mu LLMModelUsage
		if err := rows.Scan(&mu.Model, &mu.Calls, &mu.InputTokens, &mu.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan model usage: %w", err)
		}
		out = append(out, mu)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLLMEvent(row rowScanner) (*LLMRequestEventRecord, error) {
	var e LLMRequestEventRecord
	err := row.Scan(
		&e.ID, &e.Sequence, &e.Timestamp, &e.Provider, &e.Model, &e.Purpose,
		&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success,
		&e.ErrorMessage, &e.RequestBody, &e.ResponseBody,
	)
	if err != nil {
		return nil, fmt.Errorf("scan LLM event: %w", err)
	}
	return &e, nil
}

// predicate converts the sequence and time bounds into a WHERE clause.
// timeCol names the column From and To apply to.
func (o QueryOpts) predicate(timeCol string) *entsql.Predicate {
	var preds []*entsql.Predicate
	if o.After > 0 {
		preds = append(preds, entsql.GT("sequence", o.After))
	}
	if o.Before > 0 {
		preds = append(preds, entsql.LT("sequence", o.Before))
	}
	if !o.From.IsZero() {
		preds = append(preds, entsql.GTE(timeCol, o.From.UTC()))
	}
	if !o.To.IsZero() {
		preds = append(preds, entsql.LTE(timeCol, o.To.UTC()))
	}
	switch len(preds) {
	case 0:
		return nil
	case 1:
		return preds[0]
	}
	return entsql.And(preds...)
}
