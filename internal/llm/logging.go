package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/anayd/sensei/internal/store"
)

// loggingProvider records every request as a persisted event. Logging
// failures degrade to a stderr warning and never fail the request.
type loggingProvider struct {
	inner  Provider
	events store.EventRepo
}

// WithLogging wraps a Provider with event recording.
func WithLogging(p Provider, events store.EventRepo) Provider {
	return &loggingProvider{inner: p, events: events}
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEvent{
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	if logErr := l.events.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record llm request event: %v\n", logErr)
	}

	return resp, err
}

func (l *loggingProvider) ModelID() string { return l.inner.ModelID() }
