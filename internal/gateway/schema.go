package gateway

import "github.com/anayd/sensei/internal/llm"

// ReplySchema shapes the tutor's conversational reply.
var ReplySchema = &llm.Schema{
	Name:        "tutor-reply",
	Description: "A tutor's reply to a student's question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{
				"type":        "string",
				"description": "The reply shown to the student, in the session language",
			},
			"confidence": map[string]any{
				"type":        "number",
				"description": "How confident the tutor is that this reply addresses the question (0.0-1.0)",
			},
		},
		"required":             []any{"text", "confidence"},
		"additionalProperties": false,
	},
}

// UnderstandingSchema shapes the comprehension judgment.
var UnderstandingSchema = &llm.Schema{
	Name:        "understanding-judgment",
	Description: "Judgment of a student's comprehension of a concept",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"level": map[string]any{
				"type": "string",
				"enum": []any{
					"no_understanding", "minimal_understanding", "partial",
					"good_understanding", "excellent_understanding",
				},
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "One or two sentences on what the student's wording signals",
			},
			"next_action": map[string]any{
				"type": "string",
				"enum": []any{"advance", "reinforce", "simplify"},
			},
		},
		"required":             []any{"level", "reasoning", "next_action"},
		"additionalProperties": false,
	},
}

// FollowUpSchema shapes follow-up question suggestions.
var FollowUpSchema = &llm.Schema{
	Name:        "follow-up-questions",
	Description: "Short follow-up questions to deepen the student's thinking",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"maxItems": 3,
				"items": map[string]any{
					"type":        "string",
					"description": "One question, in the session language",
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
