package gateway

import (
	"context"

	"github.com/anayd/sensei/internal/classify"
	"github.com/anayd/sensei/internal/learner"
)

// Role identifies who authored a conversation message.
type Role string

const (
	RoleStudent Role = "student"
	RoleTutor   Role = "tutor"
)

// Message is one entry of the conversation history handed to the gateway.
type Message struct {
	Role Role
	Text string
}

// Context carries the per-turn tutoring situation across the boundary.
type Context struct {
	Subject       string
	Concept       string
	Grade         int
	QueryType     classify.QueryType
	Understanding learner.Understanding
	Language      string
	LearningStyle learner.LearningStyle
}

// TutorResponse is generated conversational content plus metadata.
type TutorResponse struct {
	// Text is the tutor's reply, ready to show the student.
	Text string

	// Type tags what kind of reply this is ("explanation", "welcome",
	// "fallback", ...).
	Type string

	// Confidence in [0,1]. Substituted fallback replies carry 0.1.
	Confidence float64

	// Adaptations is a human-readable trail of reason + modification
	// entries recorded by the response adapter.
	Adaptations []string

	// FollowUps holds up to three suggested next questions.
	FollowUps []string

	// VisualHints are structured suggestions for the rendering layer,
	// never rendered images.
	VisualHints []VisualHint
}

// VisualHint suggests a supporting visual element.
type VisualHint struct {
	Kind  string // "diagram", "number-line", "table", ...
	Topic string
	Note  string
}

// UnderstandingResult is the provider's comprehension judgment.
type UnderstandingResult struct {
	Level      learner.Understanding
	Reasoning  string
	NextAction string
}

// Gateway is the text-generation boundary of the tutoring core.
//
// Implementations may fail; the engine recovers every failure in-band
// (apology substitution, static follow-ups, fail-open assessment), so
// no gateway error ever reaches the student as a hard stop. The engine
// never branches on which implementation it holds.
type Gateway interface {
	// GenerateResponse produces the tutor's reply to the conversation.
	GenerateResponse(ctx context.Context, history []Message, tc Context) (*TutorResponse, error)

	// DetectUnderstanding judges the student's comprehension of concept
	// from their latest text.
	DetectUnderstanding(ctx context.Context, text, concept string, tc Context) (*UnderstandingResult, error)

	// FollowUpQuestions suggests up to three next questions on concept.
	FollowUpQuestions(ctx context.Context, concept string, level learner.Understanding, tc Context) ([]string, error)
}
