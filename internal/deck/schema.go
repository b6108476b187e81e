package deck

// seedSchema defines the JSON schema a seed deck file must satisfy.
var seedSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"term": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"definition": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"example": map[string]any{
				"type": "string",
			},
			"tags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"term", "definition"},
		"additionalProperties": false,
	},
}
