package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/anayd/sensei/internal/learner"
)

// ProfileRepo implements learner.ProfileRepo on SQLite.
type ProfileRepo struct {
	db *sql.DB
}

var _ learner.ProfileRepo = (*ProfileRepo)(nil)

// Get returns the stored profile, or (nil, nil) when none exists.
func (r *ProfileRepo) Get(ctx context.Context, studentID string) (*learner.Profile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT grade, learning_style, current_level, strong_areas, challenge_areas
		 FROM profiles WHERE student_id = ?`, studentID)

	var (
		p          learner.Profile
		strongJSON string
		weakJSON   string
	)
	p.StudentID = studentID
	err := row.Scan(&p.Grade, &p.LearningStyle, &p.CurrentLevel, &strongJSON, &weakJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", studentID, err)
	}

	if err := json.Unmarshal([]byte(strongJSON), &p.StrongAreas); err != nil {
		return nil, fmt.Errorf("decode strong areas: %w", err)
	}
	if err := json.Unmarshal([]byte(weakJSON), &p.ChallengeAreas); err != nil {
		return nil, fmt.Errorf("decode challenge areas: %w", err)
	}
	return &p, nil
}

// Upsert stores or replaces a profile keyed by StudentID.
func (r *ProfileRepo) Upsert(ctx context.Context, p *learner.Profile) error {
	if p.StudentID == "" {
		return fmt.Errorf("profile is missing a student id")
	}

	strongJSON, err := json.Marshal(emptyToList(p.StrongAreas))
	if err != nil {
		return fmt.Errorf("encode strong areas: %w", err)
	}
	weakJSON, err := json.Marshal(emptyToList(p.ChallengeAreas))
	if err != nil {
		return fmt.Errorf("encode challenge areas: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO profiles (student_id, grade, learning_style, current_level, strong_areas, challenge_areas)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (student_id) DO UPDATE SET
			grade = excluded.grade,
			learning_style = excluded.learning_style,
			current_level = excluded.current_level,
			strong_areas = excluded.strong_areas,
			challenge_areas = excluded.challenge_areas`,
		p.StudentID, p.Grade, p.LearningStyle, p.CurrentLevel, string(strongJSON), string(weakJSON),
	)
	if err != nil {
		return fmt.Errorf("upsert profile %s: %w", p.StudentID, err)
	}
	return nil
}

// emptyToList keeps stored JSON as [] rather than null for nil slices.
func emptyToList(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
