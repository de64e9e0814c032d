package gateway

// Static localized strings used when the provider fails. Unknown
// languages fall back to English.

// FallbackConfidence is the confidence attached to substituted replies.
const FallbackConfidence = 0.1

var apologies = map[string]string{
	"en": "I'm sorry, I had trouble putting together a good answer just now. Could you rephrase your question, or tell me which part is giving you trouble?",
	"es": "Lo siento, tuve problemas para preparar una buena respuesta. ¿Podrías reformular tu pregunta o decirme qué parte te está costando?",
}

var welcomes = map[string]string{
	"en": "Hi! I'm your tutor for this session. Ask me anything about the subject and we'll work through it together.",
	"es": "¡Hola! Soy tu tutor en esta sesión. Pregúntame lo que quieras sobre la materia y lo resolveremos juntos.",
}

var staticFollowUps = map[string][]string{
	"en": {
		"Can you explain that back to me in your own words?",
		"What part feels least clear right now?",
		"Would you like to try a practice problem?",
	},
	"es": {
		"¿Puedes explicármelo con tus propias palabras?",
		"¿Qué parte te parece menos clara ahora?",
		"¿Quieres intentar un problema de práctica?",
	},
}

func localized(table map[string]string, lang string) string {
	if s, ok := table[lang]; ok {
		return s
	}
	return table["en"]
}

// Apology returns the substitute reply for a failed generation, as a
// complete TutorResponse carrying FallbackConfidence.
func Apology(lang string) *TutorResponse {
	return &TutorResponse{
		Text:       localized(apologies, lang),
		Type:       "fallback",
		Confidence: FallbackConfidence,
	}
}

// Welcome returns the static greeting used when the gateway cannot
// produce one.
func Welcome(lang string) string {
	return localized(welcomes, lang)
}

// DefaultFollowUps returns the static locale-appropriate suggestions.
func DefaultFollowUps(lang string) []string {
	qs, ok := staticFollowUps[lang]
	if !ok {
		qs = staticFollowUps["en"]
	}
	out := make([]string, len(qs))
	copy(out, qs)
	return out
}
