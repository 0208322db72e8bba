package quizgen

import "github.com/abhisek/mentorai/internal/llm"

// QuizSchema defines the JSON schema for quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "A list of quiz questions built from course material, with answers and explanations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "integer",
							"description": "1-based question number",
						},
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"qcm", "ouverte"},
							"description": "qcm for multiple choice, ouverte for a free-text answer",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question shown to the student",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Answer options for qcm, usually 4. Empty array for open questions.",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "For qcm: the exact text of the correct option. For open questions: the reference answer.",
						},
						"explication": map[string]any{
							"type":        "string",
							"description": "Detailed explanation of the answer",
						},
						"points": map[string]any{
							"type":        "number",
							"description": "Point value of the question",
						},
						"competence": map[string]any{
							"type":        "string",
							"description": "Compréhension, Application, Analyse or Mémorisation",
						},
					},
					"required":             []any{"id", "type", "question", "options", "correct_answer", "explication", "points", "competence"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
