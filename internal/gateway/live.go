package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/anayd/sensei/internal/learner"
	"github.com/anayd/sensei/internal/llm"
)

// historyWindow bounds how much conversation is sent to the provider.
// The engine guarantees chronological history; only the tail matters
// for a conversational reply.
const historyWindow = 10

// Live is the network-backed Gateway built on an llm.Provider.
type Live struct {
	provider llm.Provider
	timeout  time.Duration

	maxTokens   int
	temperature float64
}

// LiveOption configures a Live gateway.
type LiveOption func(*Live)

// WithTimeout overrides the per-call timeout (default 15s).
func WithTimeout(d time.Duration) LiveOption {
	return func(l *Live) { l.timeout = d }
}

// NewLive creates a provider-backed gateway.
func NewLive(provider llm.Provider, opts ...LiveOption) *Live {
	l := &Live{
		provider:    provider,
		timeout:     15 * time.Second,
		maxTokens:   700,
		temperature: 0.4,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ Gateway = (*Live)(nil)

func (l *Live) GenerateResponse(ctx context.Context, history []Message, tc Context) (*TutorResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	resp, err := l.provider.Generate(ctx, llm.Request{
		System:      tutorSystemPrompt,
		Messages:    append(historyMessages(history), llm.Message{Role: llm.RoleUser, Content: buildReplyPrompt(tc)}),
		Schema:      ReplySchema,
		MaxTokens:   l.maxTokens,
		Temperature: l.temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate response: %w", err)
	}

	var out struct {
		Text       string  `json:"text"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse reply: %w", err)
	}
	if out.Text == "" {
		return nil, fmt.Errorf("parse reply: empty text")
	}

	return &TutorResponse{
		Text:       out.Text,
		Type:       string(tc.QueryType),
		Confidence: clamp01(out.Confidence),
	}, nil
}

func (l *Live) DetectUnderstanding(ctx context.Context, text, concept string, tc Context) (*UnderstandingResult, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	resp, err := l.provider.Generate(ctx, llm.Request{
		System:    tutorSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: buildUnderstandingPrompt(text, concept, tc)}},
		Schema:    UnderstandingSchema,
		MaxTokens: 300,
	})
	if err != nil {
		return nil, fmt.Errorf("detect understanding: %w", err)
	}

	var out struct {
		Level      string `json:"level"`
		Reasoning  string `json:"reasoning"`
		NextAction string `json:"next_action"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse understanding: %w", err)
	}

	level := learner.Understanding(out.Level)
	if !learner.ValidUnderstanding(level) {
		return nil, fmt.Errorf("parse understanding: unknown level %q", out.Level)
	}

	return &UnderstandingResult{
		Level:      level,
		Reasoning:  out.Reasoning,
		NextAction: out.NextAction,
	}, nil
}

func (l *Live) FollowUpQuestions(ctx context.Context, concept string, level learner.Understanding, tc Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	tc.Understanding = level
	resp, err := l.provider.Generate(ctx, llm.Request{
		System:    tutorSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: buildFollowUpPrompt(concept, tc)}},
		Schema:    FollowUpSchema,
		MaxTokens: 300,
	})
	if err != nil {
		return nil, fmt.Errorf("follow-up questions: %w", err)
	}

	var out struct {
		Questions []string `json:"questions"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse follow-ups: %w", err)
	}
	if len(out.Questions) > 3 {
		out.Questions = out.Questions[:3]
	}
	return out.Questions, nil
}

// historyMessages maps the tail of the conversation into provider roles.
func historyMessages(history []Message) []llm.Message {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	out := make([]llm.Message, len(history))
	for i, m := range history {
		role := llm.RoleUser
		if m.Role == RoleTutor {
			role = llm.RoleAssistant
		}
		out[i] = llm.Message{Role: role, Content: m.Text}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
