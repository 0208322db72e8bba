package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-object",
		Description: "A test object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":  map[string]any{"type": "string"},
				"age":   map[string]any{"type": "integer", "minimum": 0},
				"grade": map[string]any{"type": "string", "enum": []any{"A", "B", "C"}},
			},
			"required": []any{"name", "age"},
		},
	}
}

// flashcardSchema has the shape the generators use: a closed object
// holding an array of closed items with an enum field.
func flashcardSchema() *Schema {
	return &Schema{
		Name: "test-flashcards",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"flashcards": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"question":   map[string]any{"type": "string"},
							"reponse":    map[string]any{"type": "string"},
							"difficulte": map[string]any{"type": "string", "enum": []any{"facile", "moyen", "difficile"}},
						},
						"required":             []any{"question", "reponse", "difficulte"},
						"additionalProperties": false,
					},
				},
			},
			"required":             []any{"flashcards"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"conforming", `{"flashcards":[{"question":"Unité de la force ?","reponse":"Le newton","difficulte":"facile"}]}`, true},
		{"missing required", `{"flashcards":[{"question":"Q","difficulte":"moyen"}]}`, false},
		{"unknown enum", `{"flashcards":[{"question":"Q","reponse":"R","difficulte":"extrême"}]}`, false},
		{"extra item key", `{"flashcards":[{"question":"Q","reponse":"R","difficulte":"moyen","indice":"x"}]}`, false},
		{"extra top-level key", `{"flashcards":[{"question":"Q","reponse":"R","difficulte":"moyen"}],"note":1}`, false},
		{"empty array", `{"flashcards":[]}`, false},
		{"wrong type", `{"flashcards":"aucune"}`, false},
		{"malformed json", `{"flashcards":[`, false},
		{"empty", ``, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(flashcardSchema(), json.RawMessage(tt.raw))
			if tt.valid {
				if err != nil {
					t.Fatalf("expected no error, got: %v", err)
				}
				return
			}
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
			}
			if string(invErr.Content) != tt.raw {
				t.Errorf("error should carry the rejected content, got %q", invErr.Content)
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NumbersKeepPrecision(t *testing.T) {
	schema := &Schema{
		Name: "test-points",
		Definition: map[string]any{
			"type":       "object",
			"properties": map[string]any{"points": map[string]any{"type": "integer"}},
		},
	}
	if err := validateResponse(schema, json.RawMessage(`{"points": 2}`)); err != nil {
		t.Fatalf("2 is an integer: %v", err)
	}
	if err := validateResponse(schema, json.RawMessage(`{"points": 2.5}`)); err == nil {
		t.Fatal("2.5 is not an integer")
	}
}
