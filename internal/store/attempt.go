package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/anayd/sensei/internal/learner"
	"github.com/anayd/sensei/internal/progress"
)

// AttemptRepo implements learner.AttemptRepo on SQLite.
type AttemptRepo struct {
	db *sql.DB
}

var _ learner.AttemptRepo = (*AttemptRepo)(nil)

// Append records one attempt.
func (r *AttemptRepo) Append(ctx context.Context, a learner.Attempt) error {
	at := a.At
	if at.IsZero() {
		at = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attempts (student_id, content_id, correct, at) VALUES (?, ?, ?, ?)`,
		a.StudentID, a.ContentID, a.Correct, at.UTC(),
	)
	if err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}
	return nil
}

// ActivityDates returns distinct UTC calendar days with activity,
// sorted ascending, ready for the streak algorithms.
func (r *AttemptRepo) ActivityDates(ctx context.Context, studentID string) ([]time.Time, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT at FROM attempts WHERE student_id = ? ORDER BY at ASC`, studentID)
	if err != nil {
		return nil, fmt.Errorf("query attempts for %s: %w", studentID, err)
	}
	defer rows.Close()

	var (
		out  []time.Time
		last time.Time
	)
	for rows.Next() {
		var at time.Time
		if err := rows.Scan(&at); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		day := progress.Day(at)
		if len(out) == 0 || !day.Equal(last) {
			out = append(out, day)
			last = day
		}
	}
	return out, rows.Err()
}
