package strategy

import (
	"github.com/anayd/sensei/internal/learner"
)

// Strategy is a closed enumeration of explanation strategies.
// The zero value is Basic, so an unset strategy is always a valid one.
type Strategy int

const (
	Basic Strategy = iota
	Foundational
	Advanced
	Vocabulary
	StepByStep
	Visual
	HandsOn
)

var strategyNames = map[Strategy]string{
	Basic:        "basic_explanation",
	Foundational: "foundational_building",
	Advanced:     "advanced_exploration",
	Vocabulary:   "vocabulary_focus",
	StepByStep:   "step_by_step",
	Visual:       "visual_explanation",
	HandsOn:      "hands_on_explanation",
}

// Name returns the stable string key for the strategy.
func (s Strategy) Name() string {
	if n, ok := strategyNames[s]; ok {
		return n
	}
	return strategyNames[Basic]
}

// All returns every strategy in declaration order.
func All() []Strategy {
	return []Strategy{Basic, Foundational, Advanced, Vocabulary, StepByStep, Visual, HandsOn}
}

// Definition describes a strategy: what it is for and how to bend it
// toward each learning style.
type Definition struct {
	Name        string
	Description string
	When        string
	StyleNotes  map[learner.LearningStyle]string
}

// registry is built once at package init and never mutated afterwards.
// Lookups always resolve: unknown values fall back to Basic.
var registry = map[Strategy]Definition{
	Basic: {
		Name:        "basic_explanation",
		Description: "Plain explanation at the student's current level",
		When:        "default when no stronger signal applies",
		StyleNotes: map[learner.LearningStyle]string{
			learner.StyleVisual:         "sketch the idea before describing it",
			learner.StyleAuditory:       "restate the key sentence aloud in two ways",
			learner.StyleKinesthetic:    "suggest acting the idea out with objects at hand",
			learner.StyleReadingWriting: "close with a one-line written summary",
		},
	},
	Foundational: {
		Name:        "foundational_building",
		Description: "Rebuild prerequisites before the asked concept",
		When:        "understanding is absent or minimal",
		StyleNotes: map[learner.LearningStyle]string{
			learner.StyleVisual:         "draw the prerequisite chain as a ladder",
			learner.StyleAuditory:       "narrate each prerequisite as a short story beat",
			learner.StyleKinesthetic:    "build each prerequisite with a physical analogy",
			learner.StyleReadingWriting: "list prerequisites as numbered notes",
		},
	},
	Advanced: {
		Name:        "advanced_exploration",
		Description: "Extend past the question into edge cases and why it works",
		When:        "understanding is excellent",
		StyleNotes: map[learner.LearningStyle]string{
			learner.StyleVisual:         "contrast diagrams of the normal and edge case",
			learner.StyleAuditory:       "pose the extension as a spoken riddle",
			learner.StyleKinesthetic:    "propose an experiment the student can run",
			learner.StyleReadingWriting: "assign a short written proof or argument",
		},
	},
	Vocabulary: {
		Name:        "vocabulary_focus",
		Description: "Define the blocking terms first, then answer",
		When:        "a vocabulary confusion signal is present",
		StyleNotes: map[learner.LearningStyle]string{
			learner.StyleVisual:         "pair each term with a small icon or picture",
			learner.StyleAuditory:       "say each term and its definition as a couplet",
			learner.StyleKinesthetic:    "attach each term to a gesture",
			learner.StyleReadingWriting: "build a two-column term/definition table",
		},
	},
	StepByStep: {
		Name:        "step_by_step",
		Description: "Numbered procedure with one idea per step",
		When:        "a procedure confusion signal is present",
		StyleNotes: map[learner.LearningStyle]string{
			learner.StyleVisual:         "number the steps on a flow diagram",
			learner.StyleAuditory:       "read each step aloud before doing it",
			learner.StyleKinesthetic:    "have the student perform each step immediately",
			learner.StyleReadingWriting: "have the student copy each step in their own words",
		},
	},
	Visual: {
		Name:        "visual_explanation",
		Description: "Lead with a described diagram or mental image",
		When:        "the student's learning style is visual",
		StyleNotes: map[learner.LearningStyle]string{
			learner.StyleVisual: "open with the picture, close with the words",
		},
	},
	HandsOn: {
		Name:        "hands_on_explanation",
		Description: "Anchor the explanation in a physical activity",
		When:        "the student's learning style is kinesthetic",
		StyleNotes: map[learner.LearningStyle]string{
			learner.StyleKinesthetic: "pick an activity doable at a desk in one minute",
		},
	},
}

// Lookup returns the definition for s. It always resolves; values outside
// the enumeration resolve to the Basic definition.
func Lookup(s Strategy) Definition {
	if def, ok := registry[s]; ok {
		return def
	}
	return registry[Basic]
}
