package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildResultJSONSchema describes the reply envelope we accept from the
// model: a JSON object whose optional "events" member is an array. Nothing
// stricter is asserted here. Metadata fields may arrive as any scalar (the
// sanitizer stringifies them) and invalid candidates are dropped one by one
// during sanitization instead of failing the whole reply.
func BuildResultJSONSchema() map[string]any {
	scalar := map[string]any{"type": []string{"string", "number", "boolean", "null"}}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"courseName": scalar,
			"instructor": scalar,
			"semester":   scalar,
			"year":       map[string]any{"type": []string{"number", "string", "null"}},
			"events":     map[string]any{"type": "array"},
		},
	}
}

// validateAgainstSchema validates raw JSON against a schema map.
func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("result.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("result.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal reply: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("reply does not match schema: %w", err)
	}
	return nil
}
