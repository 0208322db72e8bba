package studyguide

import "github.com/abhisek/mentorai/internal/llm"

func str(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func strs(desc string) map[string]any {
	return map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "description": desc}
}

func integer(desc string) map[string]any {
	return map[string]any{"type": "integer", "description": desc}
}

// object builds a closed object schema requiring every property.
func object(props map[string]any) map[string]any {
	required := make([]any, 0, len(props))
	for k := range props {
		required = append(required, k)
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

func list(item map[string]any) map[string]any {
	return map[string]any{"type": "array", "items": item}
}

// SummarySchema defines the JSON schema for document summaries.
var SummarySchema = &llm.Schema{
	Name:        "document-summary",
	Description: "A structured study summary of a course document",
	Definition: object(map[string]any{
		"resume_general": str("General summary of the document"),
		"sections": list(object(map[string]any{
			"titre":   str("Section title"),
			"contenu": str("Detailed summary of the section"),
		})),
		"mindmap": object(map[string]any{
			"concepts_principaux": strs("Main concepts"),
			"relations": list(object(map[string]any{
				"de":   str("Source concept"),
				"vers": str("Target concept"),
				"type": str("Relation kind, e.g. implique"),
			})),
		}),
		"timeline": list(object(map[string]any{
			"date":       str("Date"),
			"evenement":  str("What happened"),
			"importance": str("haute, moyenne or basse"),
		})),
		"glossaire": list(object(map[string]any{
			"terme":      str("Technical term"),
			"definition": str("Clear explanation"),
			"exemple":    str("Usage example"),
		})),
		"flashcards": list(object(map[string]any{
			"question":   str("Question to ask"),
			"reponse":    str("Expected answer"),
			"difficulte": str("facile, moyen or difficile"),
		})),
		"analyse": object(map[string]any{
			"type_document":     str("cours, article, rapport, these or manuel"),
			"niveau_difficulte": str("debutant, intermediaire or avance"),
			"mots_cles":         strs("Main keywords"),
			"concepts_connexes": strs("Related concepts"),
			"temps_lecture_min": integer("Estimated reading time in minutes"),
			"statistiques": object(map[string]any{
				"nb_pages_estime":     integer("Estimated page count"),
				"nb_mots":             integer("Word count"),
				"nb_concepts_uniques": integer("Number of distinct concepts"),
			}),
		}),
		"definitions":        strs("Key definitions"),
		"theoremes_formules": strs("Theorems and formulas"),
		"concepts_cles":      strs("Key concepts"),
		"liens_cours":        strs("Links to other course topics"),
	}),
}
