package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// ParseStructuredFootprint decodes a JSON-mode reply after validating
// it against the footprint schema.
func ParseStructuredFootprint(data []byte) (float64, error) {
	if err := ValidateJSONAgainstSchema(BuildFootprintJSONSchema(), data); err != nil {
		return 0, err
	}
	var out struct {
		FootprintKg float64 `json:"footprint_kg"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return 0, fmt.Errorf("unmarshal footprint: %w", err)
	}
	return out.FootprintKg, nil
}
