package contacts

// BuildBackupSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. Import payloads are validated against it before any row is
// written.
func BuildBackupSchema() map[string]any {
	contactProps := map[string]any{
		"name":    map[string]any{"type": "string", "minLength": 1},
		"company": map[string]any{"type": "string"},
		"phone":   map[string]any{"type": "string"},
		"email": map[string]any{
			"type":    "string",
			"pattern": `^$|^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`,
		},
		"address": map[string]any{"type": "string"},
		"website": map[string]any{"type": "string"},
		"tags": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"notes": map[string]any{"type": "string"},
		"scan_source": map[string]any{
			"type": "string",
			"enum": []any{"CAMERA", "UPLOAD", "MANUAL", ""},
		},
	}

	return map[string]any{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type":    "array",
		"items": map[string]any{
			"type":                 "object",
			"properties":           contactProps,
			"required":             []any{"name"},
			"additionalProperties": false,
		},
	}
}
