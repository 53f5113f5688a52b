package grader

import "github.com/naghz/naghz/internal/llm"

// ScoreSchema defines the structured form for the numeric grading call.
var ScoreSchema = &llm.Schema{
	Name:        "answer-score",
	Description: "Numeric grade for a learner's free-response answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"description": "Score from 0 to 100",
				"minimum":     0,
				"maximum":     100,
			},
		},
		"required":             []any{"score"},
		"additionalProperties": false,
	},
}
