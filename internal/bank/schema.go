package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://question-bank.json"

// Schema is the JSON schema every bank document must satisfy, regardless
// of whether it was written as JSON or YAML.
var Schema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":        []any{"string", "integer"},
				"description": "Stable question identifier",
			},
			"question": map[string]any{
				"type":        "string",
				"description": "Prompt text",
			},
			"options": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "string"},
				"description":          "Option letter to option text",
			},
			"choose": map[string]any{
				"type":        "integer",
				"description": "Number of options the user must select (default 1)",
			},
			"answer": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Letters of the correct option set",
			},
			"domain": map[string]any{
				"type":        "string",
				"description": "Optional classification label",
			},
		},
		"required": []any{"id", "question", "options", "answer"},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// validateDocument checks a decoded bank document against Schema.
func validateDocument(doc any) error {
	compileOnce.Do(func() {
		compiled, compileErr = compileSchema()
	})
	if compileErr != nil {
		return fmt.Errorf("compile bank schema: %w", compileErr)
	}
	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compileSchema() (*jsonschema.Schema, error) {
	// Round-trip through JSON so the compiler sees plain decoded values.
	defBytes, err := json.Marshal(Schema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}
