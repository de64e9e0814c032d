package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/anayd/sensei/internal/classify"
	"github.com/anayd/sensei/internal/learner"
)

// Canned is a deterministic, offline Gateway for tests, demos, and cost
// control. Its output depends only on its inputs and it never fails.
type Canned struct{}

// NewCanned creates the deterministic gateway.
func NewCanned() *Canned { return &Canned{} }

var _ Gateway = (*Canned)(nil)

func (c *Canned) GenerateResponse(_ context.Context, history []Message, tc Context) (*TutorResponse, error) {
	topic := tc.Concept
	if topic == "" {
		topic = tc.Subject
	}

	var text string
	switch tc.Language {
	case "es":
		text = fmt.Sprintf("Pensemos en %s paso a paso. %s", topic, cannedAngleES(tc.QueryType))
	default:
		text = fmt.Sprintf("Let's think about %s step by step. %s", topic, cannedAngleEN(tc.QueryType))
	}
	if len(history) == 0 {
		text = Welcome(tc.Language)
	}

	return &TutorResponse{
		Text:       text,
		Type:       string(tc.QueryType),
		Confidence: 0.75,
	}, nil
}

func cannedAngleEN(q classify.QueryType) string {
	switch q {
	case classify.QueryProblem:
		return "Start by writing down what the problem gives you and what it asks for."
	case classify.QueryExample:
		return "Here is a small example we can work through together."
	case classify.QueryStudyGuidance:
		return "A short daily review beats one long cram session."
	default:
		return "Tell me what you already know about it and we'll build from there."
	}
}

func cannedAngleES(q classify.QueryType) string {
	switch q {
	case classify.QueryProblem:
		return "Empieza por anotar lo que el problema te da y lo que te pide."
	case classify.QueryExample:
		return "Aquí tienes un ejemplo pequeño que podemos resolver juntos."
	case classify.QueryStudyGuidance:
		return "Un repaso corto cada día vale más que una sesión larga."
	default:
		return "Cuéntame lo que ya sabes y construiremos desde ahí."
	}
}

// DetectUnderstanding applies a fixed keyword heuristic so demos behave
// believably without a provider.
func (c *Canned) DetectUnderstanding(_ context.Context, text, _ string, _ Context) (*UnderstandingResult, error) {
	lowered := strings.ToLower(text)

	level := learner.UnderstandingPartial
	switch {
	case containsAny(lowered, "no idea", "completely lost", "ni idea"):
		level = learner.UnderstandingNone
	case containsAny(lowered, "don't understand", "dont understand", "no entiendo", "confused", "lost"):
		level = learner.UnderstandingMinimal
	case containsAny(lowered, "i think i get", "makes sense now", "i see", "ya entiendo", "tiene sentido"):
		level = learner.UnderstandingGood
	case containsAny(lowered, "easy", "got it completely", "muy fácil", "muy facil"):
		level = learner.UnderstandingExcellent
	}

	return &UnderstandingResult{
		Level:      level,
		Reasoning:  "keyword heuristic over the student's wording",
		NextAction: "reinforce",
	}, nil
}

func (c *Canned) FollowUpQuestions(_ context.Context, concept string, _ learner.Understanding, tc Context) ([]string, error) {
	qs := DefaultFollowUps(tc.Language)
	if concept != "" && tc.Language != "es" {
		qs[0] = fmt.Sprintf("Can you explain %s back to me in your own words?", concept)
	}
	return qs, nil
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
