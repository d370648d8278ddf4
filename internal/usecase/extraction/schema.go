package extraction

import "kai-assistant/internal/domain/entity"

// responseSchema is the single source of truth for the extraction output
// shape. It is sent to the model as a strict response_format; the pipeline
// only parses, it does not reshape.
func responseSchema() *entity.ResponseSchema {
	classSchema := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"name": map[string]interface{}{
				"type":        "string",
				"description": "Class name, e.g. 'Adult BJJ' or 'Little Tigers'",
			},
			"dayOfWeek": map[string]interface{}{
				"type": "string",
				"enum": []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
			},
			"startTime": map[string]interface{}{
				"type":        "string",
				"description": "24-hour HH:MM",
			},
			"endTime": map[string]interface{}{
				"type":        "string",
				"description": "24-hour HH:MM",
			},
			"instructor":  map[string]interface{}{"type": "string"},
			"location":    map[string]interface{}{"type": "string"},
			"level":       map[string]interface{}{"type": "string"},
			"maxCapacity": map[string]interface{}{"type": "integer"},
			"notes":       map[string]interface{}{"type": "string"},
		},
		"required":             []string{"name", "dayOfWeek", "startTime", "endTime"},
		"additionalProperties": false,
	}

	return &entity.ResponseSchema{
		Name: "schedule_extraction",
		Schema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"success": map[string]interface{}{"type": "boolean"},
				"classes": map[string]interface{}{
					"type":  "array",
					"items": classSchema,
				},
				"confidence": map[string]interface{}{
					"type":    "number",
					"minimum": 0,
					"maximum": 1,
				},
				"warnings": map[string]interface{}{
					"type":  "array",
					"items": map[string]interface{}{"type": "string"},
				},
			},
			"required":             []string{"success", "classes", "confidence"},
			"additionalProperties": false,
		},
		Strict: true,
	}
}
