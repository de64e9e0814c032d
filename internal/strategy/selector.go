package strategy

import (
	"github.com/anayd/sensei/internal/classify"
	"github.com/anayd/sensei/internal/learner"
)

// Select picks an explanation strategy from the turn's signals.
//
// The rules form an ordered override table: each later rule, when it
// applies, replaces the outcome of the earlier ones. Learning style is
// evaluated last so style adaptation wins over both difficulty and
// confusion signals.
func Select(qtype classify.QueryType, level learner.Understanding, indicators []classify.Indicator, profile *learner.Profile) Strategy {
	chosen := Basic

	switch level {
	case learner.UnderstandingNone, learner.UnderstandingMinimal:
		chosen = Foundational
	case learner.UnderstandingExcellent:
		chosen = Advanced
	}

	for _, in := range indicators {
		if in.Category == classify.ConfusionVocabulary {
			chosen = Vocabulary
		}
	}
	for _, in := range indicators {
		if in.Category == classify.ConfusionProcedure {
			chosen = StepByStep
		}
	}

	if profile != nil {
		switch profile.LearningStyle {
		case learner.StyleVisual:
			chosen = Visual
		case learner.StyleKinesthetic:
			chosen = HandsOn
		}
	}

	return chosen
}
