package coach

import "github.com/abhisek/mentorai/internal/llm"

func week(n string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": "Actions for week " + n,
	}
}

// RecommendationsSchema defines the JSON schema for study recommendations.
var RecommendationsSchema = &llm.Schema{
	Name:        "study-recommendations",
	Description: "Personalized study recommendations from quiz results",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"points_a_revoir": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"chapitre": map[string]any{"type": "string"},
						"raison":   map[string]any{"type": "string"},
					},
					"required":             []any{"chapitre", "raison"},
					"additionalProperties": false,
				},
			},
			"exercices_recommandes": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"ressources": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type":        map[string]any{"type": "string", "description": "vidéo, livre, article, exercice..."},
						"titre":       map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
					},
					"required":             []any{"type", "titre", "description"},
					"additionalProperties": false,
				},
			},
			"strategies": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"planning": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"semaine_1": week("1"),
					"semaine_2": week("2"),
					"semaine_3": week("3"),
					"semaine_4": week("4"),
				},
				"required":             []any{"semaine_1", "semaine_2", "semaine_3", "semaine_4"},
				"additionalProperties": false,
			},
		},
		"required":             []any{"points_a_revoir", "exercices_recommandes", "ressources", "strategies", "planning"},
		"additionalProperties": false,
	},
}
