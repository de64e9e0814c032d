package tutor

import (
	"fmt"
	"time"

	"github.com/anayd/sensei/internal/classify"
	"github.com/anayd/sensei/internal/gateway"
	"github.com/anayd/sensei/internal/learner"
)

// buildAnalytics derives the close-time summary from the session's
// message log and accumulated context.
func buildAnalytics(s *Session, endedAt time.Time) *LearningAnalytics {
	questions := 0
	var concepts []string
	seen := map[string]bool{}
	for _, m := range s.Messages {
		if m.Role == gateway.RoleStudent {
			questions++
		}
		if m.Concept != "" && !seen[m.Concept] {
			seen[m.Concept] = true
			concepts = append(concepts, m.Concept)
		}
	}

	a := &LearningAnalytics{
		SessionID:        s.ID,
		StudentID:        s.StudentID,
		Subject:          s.Subject,
		QuestionsAsked:   questions,
		ConceptsCovered:  concepts,
		TimeSpentSeconds: int(endedAt.Sub(s.StartedAt).Seconds()),
		StrategiesUsed:   append([]string(nil), s.Context.StrategiesUsed...),
		ConfusionPoints:  append([]classify.Indicator(nil), s.Context.Confusions...),
	}
	a.Insights = deriveInsights(s, a)
	return a
}

// deriveInsights turns the raw counters into short human-readable
// observations for the caller's reporting layer.
func deriveInsights(s *Session, a *LearningAnalytics) []string {
	var out []string

	if dominant, count := dominantConfusion(a.ConfusionPoints); count >= 2 {
		out = append(out, fmt.Sprintf("repeated %s confusion (%d signals); targeted review recommended", dominant, count))
	}

	switch s.Context.Understanding {
	case learner.UnderstandingNone, learner.UnderstandingMinimal:
		out = append(out, "session ended with low understanding; revisit the concept next time")
	case learner.UnderstandingExcellent:
		out = append(out, "session ended with excellent understanding; ready for harder material")
	}

	if a.QuestionsAsked >= 8 {
		out = append(out, "highly engaged session with many questions")
	}
	if len(a.ConceptsCovered) > 3 {
		out = append(out, fmt.Sprintf("broad session covering %d concepts; consider narrowing focus", len(a.ConceptsCovered)))
	}

	return out
}

func dominantConfusion(points []classify.Indicator) (classify.ConfusionCategory, int) {
	counts := map[classify.ConfusionCategory]int{}
	var best classify.ConfusionCategory
	bestCount := 0
	for _, p := range points {
		counts[p.Category]++
		if counts[p.Category] > bestCount {
			best = p.Category
			bestCount = counts[p.Category]
		}
	}
	return best, bestCount
}
