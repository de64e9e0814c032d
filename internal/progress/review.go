package progress

import (
	"context"
	"time"
)

// ReviewPlanner is the remote spaced-repetition service boundary.
// The interval formula lives behind an RPC and is consumed here, never
// implemented; callers that have no planner configured simply skip
// review scheduling.
type ReviewPlanner interface {
	// NextReview returns when the student should next review the content.
	NextReview(ctx context.Context, studentID, contentID string) (time.Time, error)
}
