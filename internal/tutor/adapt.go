package tutor

import (
	"fmt"

	"github.com/anayd/sensei/internal/gateway"
	"github.com/anayd/sensei/internal/learner"
	"github.com/anayd/sensei/internal/strategy"
)

// nudges are the deterministic strategy-specific closings appended to
// generated text, keyed by strategy then language.
var nudges = map[strategy.Strategy]map[string]string{
	strategy.Basic: {
		"en": "Does that make sense so far?",
		"es": "¿Tiene sentido hasta aquí?",
	},
	strategy.Foundational: {
		"en": "Let's make sure the basics feel solid before we go further.",
		"es": "Asegurémonos de que la base quede firme antes de avanzar.",
	},
	strategy.Advanced: {
		"en": "Ready to push this one step further?",
		"es": "¿Listo para llevarlo un paso más allá?",
	},
	strategy.Vocabulary: {
		"en": "Tell me if any of those terms still feels fuzzy.",
		"es": "Dime si alguno de esos términos aún no queda claro.",
	},
	strategy.StepByStep: {
		"en": "Try the first step and tell me what you get.",
		"es": "Intenta el primer paso y dime qué obtienes.",
	},
	strategy.Visual: {
		"en": "Try sketching this as you read it back.",
		"es": "Intenta dibujarlo mientras lo vuelves a leer.",
	},
	strategy.HandsOn: {
		"en": "Grab something nearby and act this out as we go.",
		"es": "Toma algo que tengas cerca y repítelo con las manos.",
	},
}

func nudgeFor(s strategy.Strategy, lang string) string {
	table, ok := nudges[s]
	if !ok {
		table = nudges[strategy.Basic]
	}
	if n, ok := table[lang]; ok {
		return n
	}
	return table["en"]
}

// Adapt applies the chosen strategy to a generated response: it appends
// the strategy's deterministic nudge, attaches a visual hint for visual
// learners, and records an adaptation trail. Confidence passes through
// untouched; the adapter never fabricates a score. Pure, no I/O.
func Adapt(resp *gateway.TutorResponse, chosen strategy.Strategy, profile *learner.Profile, concept, lang string) *gateway.TutorResponse {
	def := strategy.Lookup(chosen)

	out := *resp
	out.Adaptations = append(append([]string(nil), resp.Adaptations...),
		fmt.Sprintf("strategy %s (%s): appended closing nudge", def.Name, def.When))

	if nudge := nudgeFor(chosen, lang); nudge != "" {
		out.Text = resp.Text + "\n\n" + nudge
	}

	if profile != nil {
		if note, ok := def.StyleNotes[profile.LearningStyle]; ok {
			out.Adaptations = append(out.Adaptations,
				fmt.Sprintf("learning style %s: %s", profile.LearningStyle, note))
		}
		if profile.LearningStyle == learner.StyleVisual {
			topic := concept
			if topic == "" {
				topic = "the current topic"
			}
			out.VisualHints = append(append([]gateway.VisualHint(nil), resp.VisualHints...),
				gateway.VisualHint{
					Kind:  "diagram",
					Topic: topic,
					Note:  "a labeled sketch of " + topic + " would support this explanation",
				})
		}
	}

	return &out
}
