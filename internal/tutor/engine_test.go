package tutor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anayd/sensei/internal/gateway"
	"github.com/anayd/sensei/internal/learner"
	"github.com/anayd/sensei/internal/strategy"
)

// failingGateway simulates a provider outage on every operation.
type failingGateway struct{}

func (failingGateway) GenerateResponse(context.Context, []gateway.Message, gateway.Context) (*gateway.TutorResponse, error) {
	return nil, errors.New("provider unavailable")
}

func (failingGateway) DetectUnderstanding(context.Context, string, string, gateway.Context) (*gateway.UnderstandingResult, error) {
	return nil, errors.New("provider unavailable")
}

func (failingGateway) FollowUpQuestions(context.Context, string, learner.Understanding, gateway.Context) ([]string, error) {
	return nil, errors.New("provider unavailable")
}

// stallingGateway blocks GenerateResponse for in-conversation turns
// (welcome calls pass straight through) until released, so tests can
// observe what the engine allows while a provider call is in flight.
type stallingGateway struct {
	entered chan struct{}
	release chan struct{}
}

func newStallingGateway() *stallingGateway {
	return &stallingGateway{
		entered: make(chan struct{}, 8),
		release: make(chan struct{}),
	}
}

func (g *stallingGateway) GenerateResponse(_ context.Context, history []gateway.Message, tc gateway.Context) (*gateway.TutorResponse, error) {
	if len(history) == 0 {
		return &gateway.TutorResponse{Text: "welcome", Type: "welcome", Confidence: 0.9}, nil
	}
	g.entered <- struct{}{}
	<-g.release
	return &gateway.TutorResponse{Text: "finally, an answer", Confidence: 0.9}, nil
}

func (g *stallingGateway) DetectUnderstanding(context.Context, string, string, gateway.Context) (*gateway.UnderstandingResult, error) {
	return &gateway.UnderstandingResult{Level: learner.UnderstandingPartial}, nil
}

func (g *stallingGateway) FollowUpQuestions(context.Context, string, learner.Understanding, gateway.Context) ([]string, error) {
	return []string{"anything else?"}, nil
}

func TestTurnDoesNotBlockOtherSessions(t *testing.T) {
	gw := newStallingGateway()
	e := NewEngine(gw)

	a, err := e.Open(context.Background(), "stu-a", "math", OpenOptions{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	turnDone := make(chan error, 1)
	go func() {
		_, err := e.ProcessTurn(context.Background(), a.ID, "explain fractions", "fractions")
		turnDone <- err
	}()
	<-gw.entered // session a's turn is now inside its provider call

	otherOps := make(chan struct{})
	go func() {
		e.ActiveSessions()
		if _, err := e.Open(context.Background(), "stu-b", "science", OpenOptions{}); err != nil {
			t.Errorf("Open during in-flight turn: %v", err)
		}
		close(otherOps)
	}()

	select {
	case <-otherOps:
	case <-time.After(2 * time.Second):
		t.Fatal("engine operations blocked behind another session's gateway call")
	}

	close(gw.release)
	if err := <-turnDone; err != nil {
		t.Fatalf("ProcessTurn: %v", err)
	}

	after, err := e.Session(a.ID)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if len(after.Messages) != 3 {
		t.Errorf("messages = %d, want welcome + student + tutor", len(after.Messages))
	}
}

func TestTurnOnSessionClosedMidFlight(t *testing.T) {
	gw := newStallingGateway()
	e := NewEngine(gw)

	s, err := e.Open(context.Background(), "stu-a", "math", OpenOptions{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	turnDone := make(chan error, 1)
	go func() {
		_, err := e.ProcessTurn(context.Background(), s.ID, "explain fractions", "fractions")
		turnDone <- err
	}()
	<-gw.entered

	if _, err := e.Close(s.ID); err != nil {
		t.Fatalf("Close: %v", err)
	}
	close(gw.release)

	if err := <-turnDone; !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("turn after close err = %v, want ErrSessionNotFound", err)
	}
}

func TestOpenSeedsPartialUnderstanding(t *testing.T) {
	e := NewEngine(gateway.NewCanned())
	s, err := e.Open(context.Background(), "stu-1", "math", OpenOptions{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Context.Understanding != learner.UnderstandingPartial {
		t.Errorf("seed understanding = %q, want %q", s.Context.Understanding, learner.UnderstandingPartial)
	}
	if len(s.Messages) != 1 || s.Messages[0].Role != gateway.RoleTutor {
		t.Fatalf("want exactly one tutor welcome message, got %d messages", len(s.Messages))
	}
	if s.Messages[0].Text == "" {
		t.Error("welcome message is empty")
	}
}

func TestOpenFallsBackToStaticWelcome(t *testing.T) {
	e := NewEngine(failingGateway{})
	s, err := e.Open(context.Background(), "stu-1", "math", OpenOptions{Language: "es"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got, want := s.Messages[0].Text, gateway.Welcome("es"); got != want {
		t.Errorf("welcome = %q, want static %q", got, want)
	}
}

func TestProcessTurnPipeline(t *testing.T) {
	e := NewEngine(gateway.NewCanned())
	s, _ := e.Open(context.Background(), "stu-1", "math", OpenOptions{})

	res, err := e.ProcessTurn(context.Background(), s.ID, "what is a fraction?", "fractions")
	if err != nil {
		t.Fatalf("ProcessTurn: %v", err)
	}
	if res.Response.Text == "" {
		t.Error("empty reply text")
	}
	if res.Strategy.Name() == "" {
		t.Error("turn produced an unnamed strategy")
	}
	if len(res.Response.FollowUps) == 0 || len(res.Response.FollowUps) > 3 {
		t.Errorf("follow-ups = %d, want 1..3", len(res.Response.FollowUps))
	}

	after, err := e.Session(s.ID)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	// welcome + student + tutor
	if len(after.Messages) != 3 {
		t.Fatalf("messages = %d, want 3", len(after.Messages))
	}
	if after.Messages[1].Role != gateway.RoleStudent || after.Messages[2].Role != gateway.RoleTutor {
		t.Error("turn did not append exactly one student then one tutor message")
	}
	if after.Context.CurrentConcept != "fractions" {
		t.Errorf("current concept = %q, want fractions", after.Context.CurrentConcept)
	}
}

func TestProcessTurnConfusionShapesStrategy(t *testing.T) {
	e := NewEngine(gateway.NewCanned())
	s, _ := e.Open(context.Background(), "stu-1", "math", OpenOptions{Language: "es"})

	res, err := e.ProcessTurn(context.Background(), s.ID, "no entiendo qué significa denominador", "fractions")
	if err != nil {
		t.Fatalf("ProcessTurn: %v", err)
	}
	if len(res.Confusions) == 0 {
		t.Fatal("expected confusion indicators for 'no entiendo'")
	}
	if res.Response.Text == "" {
		t.Error("empty reply text")
	}
}

func TestProcessTurnRecoversFromGatewayFailure(t *testing.T) {
	e := NewEngine(failingGateway{})
	s, _ := e.Open(context.Background(), "stu-1", "math", OpenOptions{})

	res, err := e.ProcessTurn(context.Background(), s.ID, "explain fractions", "fractions")
	if err != nil {
		t.Fatalf("ProcessTurn must not surface gateway errors, got %v", err)
	}
	if res.Response.Confidence > 0.2 {
		t.Errorf("confidence = %v, want fallback-level (<= 0.2)", res.Response.Confidence)
	}
	if res.Response.Text == "" {
		t.Error("fallback reply is empty")
	}
	if res.Understanding != learner.UnderstandingPartial {
		t.Errorf("failed assessment = %q, want fail-open %q", res.Understanding, learner.UnderstandingPartial)
	}
	if len(res.Response.FollowUps) == 0 {
		t.Error("expected static follow-ups on gateway failure")
	}
}

func TestProcessTurnWithoutConceptKeepsUnderstanding(t *testing.T) {
	e := NewEngine(failingGateway{})
	s, _ := e.Open(context.Background(), "stu-1", "math", OpenOptions{})

	res, err := e.ProcessTurn(context.Background(), s.ID, "hello there", "")
	if err != nil {
		t.Fatalf("ProcessTurn: %v", err)
	}
	if res.Understanding != learner.UnderstandingPartial {
		t.Errorf("understanding = %q, want carried-over %q", res.Understanding, learner.UnderstandingPartial)
	}
}

func TestForcedStrategyTurns(t *testing.T) {
	e := NewEngine(gateway.NewCanned())
	s, _ := e.Open(context.Background(), "stu-1", "math", OpenOptions{})

	res, err := e.RequestStepByStep(context.Background(), s.ID, "show me how to add fractions", "fractions")
	if err != nil {
		t.Fatalf("RequestStepByStep: %v", err)
	}
	if res.Strategy != strategy.StepByStep {
		t.Errorf("strategy = %v, want StepByStep", res.Strategy)
	}

	res, err = e.RequestExamples(context.Background(), s.ID, "give me an example", "fractions")
	if err != nil {
		t.Fatalf("RequestExamples: %v", err)
	}
	if res.Strategy != strategy.HandsOn {
		t.Errorf("strategy = %v, want HandsOn", res.Strategy)
	}
}

func TestRequestCheckUnderstanding(t *testing.T) {
	e := NewEngine(gateway.NewCanned())
	s, _ := e.Open(context.Background(), "stu-1", "math", OpenOptions{})
	if _, err := e.ProcessTurn(context.Background(), s.ID, "explain fractions", "fractions"); err != nil {
		t.Fatalf("ProcessTurn: %v", err)
	}

	level, err := e.RequestCheckUnderstanding(context.Background(), s.ID, "I think I get it now")
	if err != nil {
		t.Fatalf("RequestCheckUnderstanding: %v", err)
	}
	if level != learner.UnderstandingGood {
		t.Errorf("level = %q, want %q", level, learner.UnderstandingGood)
	}
}

func TestCloseComputesAnalyticsAndIsFinal(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	clock := base
	e := NewEngine(gateway.NewCanned(), withClock(func() time.Time {
		clock = clock.Add(30 * time.Second)
		return clock
	}))

	s, _ := e.Open(context.Background(), "stu-1", "math", OpenOptions{})
	if _, err := e.ProcessTurn(context.Background(), s.ID, "what is a fraction?", "fractions"); err != nil {
		t.Fatalf("ProcessTurn: %v", err)
	}
	if _, err := e.ProcessTurn(context.Background(), s.ID, "what about decimals?", "decimals"); err != nil {
		t.Fatalf("ProcessTurn: %v", err)
	}

	a, err := e.Close(s.ID)
	if err != nil {
		t.Fatalf("Close: %v", err)
	}
	if a.QuestionsAsked != 2 {
		t.Errorf("questions asked = %d, want 2", a.QuestionsAsked)
	}
	if len(a.ConceptsCovered) != 2 {
		t.Errorf("concepts covered = %v, want 2 entries", a.ConceptsCovered)
	}
	if a.TimeSpentSeconds <= 0 {
		t.Errorf("time spent = %d, want > 0", a.TimeSpentSeconds)
	}
	if len(a.StrategiesUsed) == 0 {
		t.Error("no strategies recorded")
	}

	if _, err := e.Close(s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second Close err = %v, want ErrSessionNotFound", err)
	}
	if _, err := e.ProcessTurn(context.Background(), s.ID, "hi", ""); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("turn on closed session err = %v, want ErrSessionNotFound", err)
	}
}

func TestActiveSessionsOrderedByActivity(t *testing.T) {
	e := NewEngine(gateway.NewCanned())
	a, _ := e.Open(context.Background(), "stu-a", "math", OpenOptions{})
	b, _ := e.Open(context.Background(), "stu-b", "science", OpenOptions{})

	if _, err := e.ProcessTurn(context.Background(), a.ID, "explain gravity", "gravity"); err != nil {
		t.Fatalf("ProcessTurn: %v", err)
	}

	infos := e.ActiveSessions()
	if len(infos) != 2 {
		t.Fatalf("active sessions = %d, want 2", len(infos))
	}
	if infos[len(infos)-1].ID != a.ID {
		t.Errorf("most recently active should sort last, got %q want %q", infos[len(infos)-1].ID, a.ID)
	}
	_ = b
}

type fixedPlanner struct {
	due time.Time
}

func (p fixedPlanner) NextReview(_ context.Context, studentID, contentID string) (time.Time, error) {
	return p.due, nil
}

func TestTurnSchedulesReviewWhenUnderstandingIsSolid(t *testing.T) {
	due := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	e := NewEngine(gateway.NewCanned(), WithReviewPlanner(fixedPlanner{due: due}))
	s, _ := e.Open(context.Background(), "stu-1", "math", OpenOptions{})

	// "easy" assesses as excellent; the planner should be consulted.
	res, err := e.ProcessTurn(context.Background(), s.ID, "oh this is easy", "fractions")
	if err != nil {
		t.Fatalf("ProcessTurn: %v", err)
	}
	if res.NextReview == nil || !res.NextReview.Equal(due) {
		t.Errorf("NextReview = %v, want %v", res.NextReview, due)
	}

	// A struggling turn schedules nothing.
	res, err = e.ProcessTurn(context.Background(), s.ID, "I don't understand this at all", "fractions")
	if err != nil {
		t.Fatalf("ProcessTurn: %v", err)
	}
	if res.NextReview != nil {
		t.Errorf("NextReview = %v, want nil for low understanding", res.NextReview)
	}
}

func TestTurnWithoutPlannerSchedulesNothing(t *testing.T) {
	e := NewEngine(gateway.NewCanned())
	s, _ := e.Open(context.Background(), "stu-1", "math", OpenOptions{})

	res, err := e.ProcessTurn(context.Background(), s.ID, "oh this is easy", "fractions")
	if err != nil {
		t.Fatalf("ProcessTurn: %v", err)
	}
	if res.NextReview != nil {
		t.Errorf("NextReview = %v, want nil without a planner", res.NextReview)
	}
}

func TestProfileFlowsIntoAdaptation(t *testing.T) {
	profile := &learner.Profile{
		StudentID:     "stu-1",
		Grade:         5,
		LearningStyle: learner.StyleVisual,
		CurrentLevel:  learner.LevelBeginner,
	}
	e := NewEngine(gateway.NewCanned())
	s, _ := e.Open(context.Background(), "stu-1", "math", OpenOptions{Profile: profile})

	res, err := e.ProcessTurn(context.Background(), s.ID, "explain fractions", "fractions")
	if err != nil {
		t.Fatalf("ProcessTurn: %v", err)
	}
	if len(res.Response.VisualHints) == 0 {
		t.Error("visual learner got no visual hints")
	}
	if len(res.Response.Adaptations) == 0 {
		t.Error("no adaptation trail recorded")
	}
}
