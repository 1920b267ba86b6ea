package items

// importSchema validates item catalog files before anything reaches the
// database. Prompt and level are mandatory; ids are optional and
// generated when absent.
var importSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"items": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"prompt": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"answer": map[string]any{
						"type": "string",
					},
					"level": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
				},
				"required":             []any{"prompt", "level"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"items"},
	"additionalProperties": false,
}
