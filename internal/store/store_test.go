package store

import (
	"context"
	"testing"
	"time"

	"github.com/anayd/sensei/internal/learner"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestProfileRepo_RoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	repo := s.Profiles()

	p := &learner.Profile{
		StudentID:      "u1",
		Grade:          7,
		LearningStyle:  learner.StyleVisual,
		CurrentLevel:   learner.LevelIntermediate,
		StrongAreas:    []string{"algebra"},
		ChallengeAreas: []string{"geometry", "fractions"},
	}
	if err := repo.Upsert(ctx, p); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil profile")
	}
	if got.Grade != 7 || got.LearningStyle != learner.StyleVisual {
		t.Errorf("profile = %+v", got)
	}
	if len(got.ChallengeAreas) != 2 {
		t.Errorf("ChallengeAreas = %v, want 2 entries", got.ChallengeAreas)
	}
}

func TestProfileRepo_UpsertReplaces(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	repo := s.Profiles()

	if err := repo.Upsert(ctx, &learner.Profile{StudentID: "u1", Grade: 5}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := repo.Upsert(ctx, &learner.Profile{StudentID: "u1", Grade: 6}); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	got, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Grade != 6 {
		t.Errorf("Grade = %d, want 6", got.Grade)
	}
}

func TestProfileRepo_MissingProfile(t *testing.T) {
	s := testStore(t)
	got, err := s.Profiles().Get(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("Get = %+v, want nil", got)
	}
}

func TestAttemptRepo_ActivityDates(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	repo := s.Attempts()

	stamps := []time.Time{
		time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 17, 30, 0, 0, time.UTC), // same day, collapses
		time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC),
	}
	for _, at := range stamps {
		if err := repo.Append(ctx, learner.Attempt{StudentID: "u1", ContentID: "c1", Correct: true, At: at}); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	// Another student's activity must not leak in.
	if err := repo.Append(ctx, learner.Attempt{StudentID: "u2", At: stamps[0]}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	dates, err := repo.ActivityDates(ctx, "u1")
	if err != nil {
		t.Fatalf("ActivityDates: %v", err)
	}
	if len(dates) != 2 {
		t.Fatalf("ActivityDates = %v, want 2 days", dates)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !dates[0].Equal(want) {
		t.Errorf("dates[0] = %v, want %v", dates[0], want)
	}
}

func TestEventRepo_Append(t *testing.T) {
	s := testStore(t)
	err := s.Events().AppendLLMRequest(context.Background(), LLMRequestEvent{
		Model:     "mock",
		Purpose:   "turn",
		LatencyMs: 12,
		Success:   true,
	})
	if err != nil {
		t.Fatalf("AppendLLMRequest: %v", err)
	}

	events, err := s.Events().Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	if events[0].Model != "mock" || events[0].Purpose != "turn" || !events[0].Success {
		t.Errorf("event = %+v", events[0])
	}
}
