package classify

import "strings"

// ConfusionCategory names what kind of thing the student is stuck on.
type ConfusionCategory string

const (
	ConfusionVocabulary  ConfusionCategory = "vocabulary"
	ConfusionProcedure   ConfusionCategory = "procedure"
	ConfusionApplication ConfusionCategory = "application"
	ConfusionConcept     ConfusionCategory = "concept"
	ConfusionConnection  ConfusionCategory = "connection"
)

// Severity grades how stuck the signal suggests the student is.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Indicator is one detected confusion signal.
// Intervention is guidance for the strategy selector only and is never
// shown verbatim to the student.
type Indicator struct {
	Category     ConfusionCategory
	Severity     Severity
	Description  string
	Intervention string
}

type confusionRule struct {
	category     ConfusionCategory
	severity     Severity
	description  string
	intervention string
	keywords     []string
}

var confusionRules = []confusionRule{
	{
		category:     ConfusionVocabulary,
		severity:     SeverityMedium,
		description:  "unfamiliar with a term or definition",
		intervention: "define key terms before continuing",
		keywords: []string{
			"what does", "meaning of", "definition", "what's a", "whats a",
			"qué significa", "que significa", "significado", "definición", "definicion",
		},
	},
	{
		category:     ConfusionProcedure,
		severity:     SeverityMedium,
		description:  "unsure which steps to take",
		intervention: "walk through the steps one at a time",
		keywords: []string{
			"how do i", "what steps", "which step", "where do i start",
			"first step", "in what order",
			"cómo hago", "como hago", "qué pasos", "que pasos", "por dónde empiezo",
			"por donde empiezo",
		},
	},
	{
		category:     ConfusionApplication,
		severity:     SeverityMedium,
		description:  "cannot apply the idea to a problem",
		intervention: "tie the idea to a concrete worked problem",
		keywords: []string{
			"when do i use", "how do i use", "apply", "real life", "real world",
			"in practice", "use this for",
			"cuándo uso", "cuando uso", "cómo uso", "como uso", "aplicar",
			"en la vida real",
		},
	},
	{
		category:     ConfusionConcept,
		severity:     SeverityHigh,
		description:  "the underlying idea has not landed",
		intervention: "rebuild the concept from fundamentals",
		keywords: []string{
			"don't understand", "dont understand", "doesn't make sense",
			"doesnt make sense", "makes no sense", "confused", "lost",
			"no entiendo", "no comprendo", "no tiene sentido", "estoy perdido",
			"estoy perdida", "confundido", "confundida",
		},
	},
	{
		category:     ConfusionConnection,
		severity:     SeverityLow,
		description:  "cannot relate this to earlier material",
		intervention: "bridge explicitly from the prior topic",
		keywords: []string{
			"how is this related", "how does this relate", "connection",
			"what does this have to do", "relate to", "relationship between",
			"cómo se relaciona", "como se relaciona", "relación entre",
			"relacion entre", "qué tiene que ver", "que tiene que ver",
		},
	},
}

// DetectConfusion returns every confusion signal present in the text.
// Categories are independent, so the result holds 0 to 5 indicators.
// Pure and total, like Classify.
func DetectConfusion(text string) []Indicator {
	lowered := strings.ToLower(text)
	var out []Indicator
	for _, rule := range confusionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				out = append(out, Indicator{
					Category:     rule.category,
					Severity:     rule.severity,
					Description:  rule.description,
					Intervention: rule.intervention,
				})
				break
			}
		}
	}
	return out
}
