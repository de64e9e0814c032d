package classify

import "testing"

func TestClassify_Categories(t *testing.T) {
	tests := []struct {
		text string
		want QueryType
	}{
		{"Can you explain photosynthesis?", QueryExplanation},
		{"I don't understand fractions", QueryExplanation},
		{"no entiendo las fracciones", QueryExplanation},
		{"Solve 3x + 5 = 20", QueryProblem},
		{"calcula el área del círculo", QueryProblem},
		{"What's the difference between speed and velocity?", QueryClarification},
		{"Can you give me an example of a metaphor?", QueryExample},
		{"dame un ejemplo de metáfora", QueryExample},
		{"I need help with my homework", QueryHomework},
		{"necesito ayuda con mi tarea", QueryHomework},
		{"How should I study for the exam?", QueryStudyGuidance},
	}

	for _, tt := range tests {
		if got := Classify(tt.text); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestClassify_DefaultsToGeneral(t *testing.T) {
	texts := []string{
		"hello there",
		"photosynthesis",
		"42",
		"",
	}
	for _, text := range texts {
		if got := Classify(text); got != QueryGeneral {
			t.Errorf("Classify(%q) = %q, want %q", text, got, QueryGeneral)
		}
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// Contains both an explanation trigger and an example trigger;
	// explanation is earlier in the table.
	got := Classify("explain this with an example")
	if got != QueryExplanation {
		t.Errorf("Classify = %q, want %q", got, QueryExplanation)
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	if got := Classify("EXPLAIN GRAVITY"); got != QueryExplanation {
		t.Errorf("Classify = %q, want %q", got, QueryExplanation)
	}
}
