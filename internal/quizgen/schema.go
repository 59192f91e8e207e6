package quizgen

import "github.com/ryuki04/lexbot/internal/llm"

// QuizSchema defines the JSON schema for quiz generation responses.
// "question" is deliberately not required: an item that omits it is
// repaired from the vocabulary word at the same index before the quiz
// is accepted.
var QuizSchema = &llm.Schema{
	Name:        "vocab-quiz",
	Description: "An array of vocabulary quiz items",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type":        "string",
					"description": "The question shown to the learner",
				},
				"options": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Answer options for multiple choice. Omit for free text.",
				},
				"correctAnswer": map[string]any{
					"type":        "string",
					"description": "The expected answer",
				},
				"hint": map[string]any{
					"type":        "string",
					"description": "An optional short hint",
				},
			},
			"required": []any{"correctAnswer"},
		},
	},
}
