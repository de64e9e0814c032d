package tutor

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/anayd/sensei/internal/classify"
	"github.com/anayd/sensei/internal/gateway"
	"github.com/anayd/sensei/internal/learner"
	"github.com/anayd/sensei/internal/llm"
	"github.com/anayd/sensei/internal/progress"
	"github.com/anayd/sensei/internal/strategy"
)

// Engine orchestrates tutoring sessions: it classifies student turns,
// tracks understanding, selects a teaching strategy, and drives the
// text-generation gateway. All methods are safe for concurrent use.
type Engine struct {
	gw       gateway.Gateway
	profiles learner.ProfileRepo
	planner  progress.ReviewPlanner
	now      func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithProfiles gives the engine a profile repository to consult when
// Open is not handed a profile directly.
func WithProfiles(repo learner.ProfileRepo) EngineOption {
	return func(e *Engine) { e.profiles = repo }
}

// WithReviewPlanner wires the spaced-repetition service so turns that
// end with solid understanding carry a next-review time.
func WithReviewPlanner(p progress.ReviewPlanner) EngineOption {
	return func(e *Engine) { e.planner = p }
}

// withClock overrides time for tests.
func withClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// NewEngine builds an engine around the given gateway.
func NewEngine(gw gateway.Gateway, opts ...EngineOption) *Engine {
	e := &Engine{
		gw:       gw,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// OpenOptions tune session creation.
type OpenOptions struct {
	// Language is an ISO 639-1 code; empty means "en".
	Language string

	// Profile overrides the repository lookup when non-nil.
	Profile *learner.Profile
}

// Open starts a new session for a student on a subject and returns a
// snapshot of it. The first message in the log is the tutor's welcome;
// if the gateway cannot produce one a static greeting is substituted.
func (e *Engine) Open(ctx context.Context, studentID, subject string, opts OpenOptions) (*Session, error) {
	lang := opts.Language
	if lang == "" {
		lang = "en"
	}

	profile := opts.Profile
	if profile == nil && e.profiles != nil {
		p, err := e.profiles.Get(ctx, studentID)
		if err == nil {
			profile = p
		}
	}

	now := e.now()
	s := &Session{
		ID:        uuid.NewString(),
		StudentID: studentID,
		Subject:   subject,
		Language:  lang,
		StartedAt: now,
		Profile:   profile,
		Context: SessionContext{
			Understanding: learner.UnderstandingPartial,
			LastUpdated:   now,
		},
	}

	welcome := e.welcomeText(ctx, s)
	s.Messages = append(s.Messages, Message{
		ID:        uuid.NewString(),
		Role:      gateway.RoleTutor,
		Text:      welcome,
		Timestamp: now,
	})

	e.mu.Lock()
	e.sessions[s.ID] = s
	e.mu.Unlock()

	return s.clone(), nil
}

func (e *Engine) welcomeText(ctx context.Context, s *Session) string {
	ctx = llm.WithPurpose(ctx, "welcome")
	resp, err := e.gw.GenerateResponse(ctx, nil, e.turnContext(s, classify.QueryGeneral))
	if err != nil || resp.Text == "" {
		return gateway.Welcome(s.Language)
	}
	return resp.Text
}

// TurnResult is what one processed student turn produced.
type TurnResult struct {
	Response      *gateway.TutorResponse
	QueryType     classify.QueryType
	Confusions    []classify.Indicator
	Understanding learner.Understanding
	Strategy      strategy.Strategy

	// NextReview is when the planner wants the concept revisited. Set
	// only when a planner is configured and the turn ended with good or
	// excellent understanding of a concept.
	NextReview *time.Time
}

// ProcessTurn runs the full per-turn pipeline on one student message:
// classify, detect confusion, assess understanding, select a strategy,
// generate, adapt, and suggest follow-ups. Exactly one student and one
// tutor message are appended per call. Generation failures are
// recovered with an apology reply; the method returns an error only
// for unknown sessions.
func (e *Engine) ProcessTurn(ctx context.Context, sessionID, text, concept string) (*TurnResult, error) {
	return e.turn(ctx, sessionID, text, concept, nil)
}

// RequestStepByStep runs a turn that forces the step-by-step strategy,
// regardless of what the selector would have chosen.
func (e *Engine) RequestStepByStep(ctx context.Context, sessionID, text, concept string) (*TurnResult, error) {
	forced := strategy.StepByStep
	return e.turn(ctx, sessionID, text, concept, &forced)
}

// RequestExamples runs a turn treated as an example request, forcing
// the hands-on strategy so the reply leans on concrete cases.
func (e *Engine) RequestExamples(ctx context.Context, sessionID, text, concept string) (*TurnResult, error) {
	forced := strategy.HandsOn
	return e.turn(ctx, sessionID, text, concept, &forced)
}

// turn runs the per-turn pipeline. The session lock is held only to
// snapshot state and to commit the finished turn; gateway calls run
// unlocked so one session's slow provider never stalls the others.
// Same-session turns are serialized by the caller.
func (e *Engine) turn(ctx context.Context, sessionID, text, concept string, forced *strategy.Strategy) (*TurnResult, error) {
	qtype := classify.Classify(text)
	indicators := classify.DetectConfusion(text)

	e.mu.Lock()
	s, ok := e.sessions[sessionID]
	if !ok {
		e.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	if concept == "" {
		concept = s.Context.CurrentConcept
	}
	current := s.Context.Understanding
	lang := s.Language
	profile := s.Profile
	studentID := s.StudentID
	tc := e.turnContext(s, qtype)
	tc.Concept = concept
	hist := append(s.history(), gateway.Message{Role: gateway.RoleStudent, Text: text})
	e.mu.Unlock()

	level := e.assess(ctx, text, concept, current, tc)
	tc.Understanding = level

	var nextReview *time.Time
	if e.planner != nil && concept != "" &&
		(level == learner.UnderstandingGood || level == learner.UnderstandingExcellent) {
		if due, err := e.planner.NextReview(ctx, studentID, concept); err == nil {
			nextReview = &due
		}
	}

	chosen := strategy.Select(qtype, level, indicators, profile)
	if forced != nil {
		chosen = *forced
	}

	genCtx := llm.WithPurpose(ctx, "turn")
	resp, err := e.gw.GenerateResponse(genCtx, hist, tc)
	if err != nil || resp == nil || resp.Text == "" {
		resp = gateway.Apology(lang)
	}
	resp = Adapt(resp, chosen, profile, concept, lang)

	if len(resp.FollowUps) == 0 {
		fuCtx := llm.WithPurpose(ctx, "followups")
		fus, err := e.gw.FollowUpQuestions(fuCtx, concept, level, tc)
		if err != nil || len(fus) == 0 {
			fus = gateway.DefaultFollowUps(lang)
		}
		resp.FollowUps = fus
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// The session may have been closed while the provider was working;
	// the turn then has nowhere to land.
	s, ok = e.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.Messages = append(s.Messages,
		Message{
			ID:        uuid.NewString(),
			Role:      gateway.RoleStudent,
			Text:      text,
			Timestamp: e.now(),
			Concept:   concept,
		},
		Message{
			ID:        uuid.NewString(),
			Role:      gateway.RoleTutor,
			Text:      resp.Text,
			Timestamp: e.now(),
			Concept:   concept,
		},
	)

	s.Context.CurrentConcept = concept
	s.Context.Understanding = level
	s.Context.Confusions = append(s.Context.Confusions, indicators...)
	s.Context.StrategiesUsed = appendDistinct(s.Context.StrategiesUsed, chosen.Name())
	s.Context.LastUpdated = e.now()

	return &TurnResult{
		Response:      resp,
		QueryType:     qtype,
		Confusions:    indicators,
		Understanding: level,
		Strategy:      chosen,
		NextReview:    nextReview,
	}, nil
}

// assess judges the student's current understanding. With no concept
// in play the current level carries over unchanged; when the gateway
// fails the assessment fails open to partial rather than pinning the
// student at a stale level. Runs without the session lock.
func (e *Engine) assess(ctx context.Context, text, concept string, current learner.Understanding, tc gateway.Context) learner.Understanding {
	if concept == "" {
		return current
	}
	tc.Concept = concept

	ctx = llm.WithPurpose(ctx, "understanding")
	res, err := e.gw.DetectUnderstanding(ctx, text, concept, tc)
	if err != nil || res == nil || !learner.ValidUnderstanding(res.Level) {
		return learner.UnderstandingPartial
	}
	return res.Level
}

// RequestCheckUnderstanding runs an explicit assessment of the given
// text against the session's current concept without appending any
// messages.
func (e *Engine) RequestCheckUnderstanding(ctx context.Context, sessionID, text string) (learner.Understanding, error) {
	e.mu.Lock()
	s, ok := e.sessions[sessionID]
	if !ok {
		e.mu.Unlock()
		return "", ErrSessionNotFound
	}
	concept := s.Context.CurrentConcept
	current := s.Context.Understanding
	tc := e.turnContext(s, classify.QueryGeneral)
	e.mu.Unlock()

	level := e.assess(ctx, text, concept, current, tc)

	e.mu.Lock()
	defer e.mu.Unlock()
	if s, ok = e.sessions[sessionID]; ok {
		s.Context.Understanding = level
		s.Context.LastUpdated = e.now()
	}
	return level, nil
}

// Close ends a session, computes its analytics, and removes it from
// the active set. Closing an unknown or already-closed session returns
// ErrSessionNotFound.
func (e *Engine) Close(sessionID string) (*LearningAnalytics, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	delete(e.sessions, sessionID)

	s.EndedAt = e.now()
	return buildAnalytics(s, s.EndedAt), nil
}

// Session returns a snapshot of an active session.
func (e *Engine) Session(sessionID string) (*Session, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	s, ok := e.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s.clone(), nil
}

// ActiveSessions lists open sessions, oldest activity first, so hosts
// can reap idle ones via Close.
func (e *Engine) ActiveSessions() []SessionInfo {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]SessionInfo, 0, len(e.sessions))
	for _, s := range e.sessions {
		out = append(out, SessionInfo{
			ID:           s.ID,
			StudentID:    s.StudentID,
			Subject:      s.Subject,
			StartedAt:    s.StartedAt,
			LastActivity: s.Context.LastUpdated,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastActivity.Before(out[j].LastActivity)
	})
	return out
}

func (e *Engine) turnContext(s *Session, qtype classify.QueryType) gateway.Context {
	tc := gateway.Context{
		Subject:       s.Subject,
		Concept:       s.Context.CurrentConcept,
		QueryType:     qtype,
		Understanding: s.Context.Understanding,
		Language:      s.Language,
	}
	if s.Profile != nil {
		tc.Grade = s.Profile.Grade
		tc.LearningStyle = s.Profile.LearningStyle
	}
	return tc
}

func appendDistinct(list []string, name string) []string {
	for _, n := range list {
		if strings.EqualFold(n, name) {
			return list
		}
	}
	return append(list, name)
}
