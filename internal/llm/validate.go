package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledSchemas holds *jsonschema.Schema values keyed by Schema.Name.
var compiledSchemas sync.Map

// validateResponse checks raw against schema and reports any mismatch as
// *ErrInvalidResponse. A nil schema accepts anything.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}
	invalid := func(format string, args ...any) error {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf(format, args...)}
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return invalid("invalid JSON: %w", err)
	}
	compiled, err := compileSchema(schema)
	if err != nil {
		return invalid("compile schema %q: %w", schema.Name, err)
	}
	if err := compiled.Validate(doc); err != nil {
		return invalid("schema validation failed: %w", err)
	}
	return nil
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	if v, ok := compiledSchemas.Load(schema.Name); ok {
		return v.(*jsonschema.Schema), nil
	}

	// Definitions are Go literals; round-trip them so the compiler sees
	// plain JSON values (json.Number, []any, map[string]any).
	defJSON, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(defJSON))
	if err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	url := "mem://schemas/" + schema.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, err
	}
	v, _ := compiledSchemas.LoadOrStore(schema.Name, compiled)
	return v.(*jsonschema.Schema), nil
}
