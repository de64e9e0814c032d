package store

import (
	"context"
	"database/sql"
	"time"
)

// LLMRequestEvent captures one provider call for the event log.
type LLMRequestEvent struct {
	ID           int64
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	At           time.Time
}

// EventRepo appends domain events. Defined as an interface so the llm
// layer can be tested without a database.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, e LLMRequestEvent) error
}

// EventLog is the SQLite-backed event repository. It satisfies
// EventRepo and additionally supports inspection queries for the CLI.
type EventLog struct {
	db *sql.DB
}

func (r *EventLog) AppendLLMRequest(ctx context.Context, e LLMRequestEvent) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_request_events
			(model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Model, e.Purpose, e.InputTokens, e.OutputTokens, e.LatencyMs, e.Success, e.ErrorMessage,
	)
	return err
}

// Recent returns up to limit events, newest first.
func (r *EventLog) Recent(ctx context.Context, limit int) ([]LLMRequestEvent, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, at
		 FROM llm_request_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LLMRequestEvent
	for rows.Next() {
		var e LLMRequestEvent
		if err := rows.Scan(&e.ID, &e.Model, &e.Purpose, &e.InputTokens, &e.OutputTokens,
			&e.LatencyMs, &e.Success, &e.ErrorMessage, &e.At); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// NopEvents is an EventRepo that discards everything, for wiring the
// llm layer without a store.
type NopEvents struct{}

func (NopEvents) AppendLLMRequest(context.Context, LLMRequestEvent) error { return nil }
