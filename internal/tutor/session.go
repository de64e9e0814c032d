package tutor

import (
	"time"

	"github.com/anayd/sensei/internal/classify"
	"github.com/anayd/sensei/internal/gateway"
	"github.com/anayd/sensei/internal/learner"
)

// Message is one entry in a session's append-only conversation log.
// Messages are never mutated after insertion.
type Message struct {
	ID        string
	Role      gateway.Role
	Text      string
	Timestamp time.Time

	// Concept tags the message with the concept in play, when known.
	Concept string

	// Correct records answer correctness for practice turns; nil when
	// the message was not an answer.
	Correct *bool
}

// SessionContext is the mutable per-session tutoring state. It is
// updated in place each turn: fields persist unless a turn explicitly
// replaces them.
type SessionContext struct {
	CurrentConcept string
	Understanding  learner.Understanding

	// Confusions accumulates every indicator seen during the session.
	Confusions []classify.Indicator

	// StrategiesUsed lists distinct strategy names in first-use order.
	StrategiesUsed []string

	LastUpdated time.Time
}

// Session is one continuous tutoring conversation between one student
// and the engine on one subject.
type Session struct {
	ID        string
	StudentID string
	Subject   string
	Language  string
	StartedAt time.Time
	EndedAt   time.Time

	// Messages is chronological and append-only.
	Messages []Message

	Profile *learner.Profile
	Context SessionContext
}

// LearningAnalytics is the immutable summary computed once at session
// close. It is never recomputed after the session leaves the store.
type LearningAnalytics struct {
	SessionID        string
	StudentID        string
	Subject          string
	QuestionsAsked   int
	ConceptsCovered  []string
	TimeSpentSeconds int
	StrategiesUsed   []string
	ConfusionPoints  []classify.Indicator
	Insights         []string
}

// SessionInfo describes an active session for host-side reaping.
type SessionInfo struct {
	ID           string
	StudentID    string
	Subject      string
	StartedAt    time.Time
	LastActivity time.Time
}

// clone returns a deep copy so callers can inspect a session without
// holding a reference into the engine's store.
func (s *Session) clone() *Session {
	out := *s
	out.Messages = append([]Message(nil), s.Messages...)
	out.Context.Confusions = append([]classify.Indicator(nil), s.Context.Confusions...)
	out.Context.StrategiesUsed = append([]string(nil), s.Context.StrategiesUsed...)
	if s.Profile != nil {
		p := *s.Profile
		out.Profile = &p
	}
	return &out
}

// history maps the message log into the gateway's wire shape.
func (s *Session) history() []gateway.Message {
	out := make([]gateway.Message, len(s.Messages))
	for i, m := range s.Messages {
		out[i] = gateway.Message{Role: m.Role, Text: m.Text}
	}
	return out
}
