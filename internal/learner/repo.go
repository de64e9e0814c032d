package learner

import (
	"context"
	"time"
)

// Attempt is one recorded practice interaction, the unit of the
// longitudinal activity history that streaks are computed from.
type Attempt struct {
	StudentID string
	ContentID string
	Correct   bool
	At        time.Time
}

// ProfileRepo is the persistence collaborator for student profiles.
// The engine consumes it as a key-value boundary; it neither owns the
// schema nor performs I/O itself.
type ProfileRepo interface {
	// Get returns the profile for studentID, or (nil, nil) if none exists.
	Get(ctx context.Context, studentID string) (*Profile, error)

	// Upsert stores or replaces the profile keyed by its StudentID.
	Upsert(ctx context.Context, p *Profile) error
}

// AttemptRepo is the persistence collaborator for attempt history.
type AttemptRepo interface {
	// Append records one attempt.
	Append(ctx context.Context, a Attempt) error

	// ActivityDates returns the distinct calendar days (UTC, truncated to
	// midnight) on which the student recorded at least one attempt,
	// sorted ascending.
	ActivityDates(ctx context.Context, studentID string) ([]time.Time, error)
}
