package grading

import "github.com/ryuki04/lexbot/internal/llm"

// GradeSchema defines the JSON schema for grading responses.
var GradeSchema = &llm.Schema{
	Name:        "quiz-grade",
	Description: "Score and feedback for a submitted vocabulary quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"scorePercentage": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Percentage of correct answers",
			},
			"incorrect": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question":          map[string]any{"type": "string"},
						"yourAnswer":        map[string]any{"type": "string"},
						"yourAnswerMeaning": map[string]any{"type": "string"},
						"correctAnswer":     map[string]any{"type": "string"},
						"correctMeaning":    map[string]any{"type": "string"},
						"feedback":          map[string]any{"type": "string"},
					},
					"required": []any{"question", "yourAnswer", "correctAnswer"},
				},
				"description": "One entry per missed question",
			},
			"overallFeedback": map[string]any{
				"type":        "string",
				"description": "Encouraging overall feedback in the requested language",
			},
		},
		"required": []any{"scorePercentage", "overallFeedback"},
	},
}
