package llm

// BuildFootprintJSONSchema returns a JSON-Schema (draft 2020-12 subset)
// as a generic map. Providers that support structured output pass it as
// a response constraint and we also use it locally to validate.
func BuildFootprintJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"footprint_kg": map[string]any{"type": "number", "minimum": 0.0},
		},
		"required": []string{"footprint_kg"},
	}
}
