package gateway

import (
	"context"
	"testing"

	"github.com/anayd/sensei/internal/learner"
)

func TestCanned_Deterministic(t *testing.T) {
	gw := NewCanned()
	tc := testContext()
	history := []Message{{Role: RoleStudent, Text: "explain fractions"}}

	first, err := gw.GenerateResponse(context.Background(), history, tc)
	if err != nil {
		t.Fatalf("GenerateResponse: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := gw.GenerateResponse(context.Background(), history, tc)
		if err != nil {
			t.Fatalf("GenerateResponse: %v", err)
		}
		if again.Text != first.Text || again.Confidence != first.Confidence {
			t.Fatal("canned gateway is not deterministic")
		}
	}
}

func TestCanned_EmptyHistoryYieldsWelcome(t *testing.T) {
	gw := NewCanned()
	resp, err := gw.GenerateResponse(context.Background(), nil, testContext())
	if err != nil {
		t.Fatalf("GenerateResponse: %v", err)
	}
	if resp.Text != Welcome("en") {
		t.Errorf("Text = %q, want welcome greeting", resp.Text)
	}
}

func TestCanned_SpanishReply(t *testing.T) {
	gw := NewCanned()
	tc := testContext()
	tc.Language = "es"

	resp, err := gw.GenerateResponse(context.Background(),
		[]Message{{Role: RoleStudent, Text: "no entiendo las fracciones"}}, tc)
	if err != nil {
		t.Fatalf("GenerateResponse: %v", err)
	}
	if resp.Text == "" {
		t.Fatal("empty reply")
	}
	if resp.Text == Welcome("es") {
		t.Error("non-empty history should not yield the welcome")
	}
}

func TestCanned_DetectUnderstanding(t *testing.T) {
	gw := NewCanned()
	tests := []struct {
		text string
		want learner.Understanding
	}{
		{"I have no idea where to start", learner.UnderstandingNone},
		{"I don't understand this at all", learner.UnderstandingMinimal},
		{"oh I think I get it now", learner.UnderstandingGood},
		{"what about the next part?", learner.UnderstandingPartial},
	}
	for _, tt := range tests {
		got, err := gw.DetectUnderstanding(context.Background(), tt.text, "fractions", testContext())
		if err != nil {
			t.Fatalf("DetectUnderstanding(%q): %v", tt.text, err)
		}
		if got.Level != tt.want {
			t.Errorf("DetectUnderstanding(%q) = %q, want %q", tt.text, got.Level, tt.want)
		}
	}
}

func TestCanned_FollowUps(t *testing.T) {
	gw := NewCanned()
	got, err := gw.FollowUpQuestions(context.Background(), "fractions", learner.UnderstandingPartial, testContext())
	if err != nil {
		t.Fatalf("FollowUpQuestions: %v", err)
	}
	if len(got) == 0 || len(got) > 3 {
		t.Errorf("follow-ups = %v, want 1..3", got)
	}
}

func TestFallbacks_Localized(t *testing.T) {
	if Apology("es").Text == Apology("en").Text {
		t.Error("es apology should differ from en")
	}
	if Apology("fr").Text != Apology("en").Text {
		t.Error("unknown language should fall back to en")
	}
	if Apology("en").Confidence != FallbackConfidence {
		t.Errorf("apology confidence = %v, want %v", Apology("en").Confidence, FallbackConfidence)
	}
	if len(DefaultFollowUps("es")) != 3 {
		t.Error("expected 3 spanish defaults")
	}
}
