package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	t := reflect.TypeOf(Settings{})
	example := make(map[string]any, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" || jsonTag == "-" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]

		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Bool:
		return fieldName == "color" || fieldName == "show_origin"
	case reflect.Int:
		switch fieldName {
		case "git_timeout_seconds":
			return 30
		case "max_log_files":
			return 100
		case "workers":
			return 8
		default:
			return 10
		}
	case reflect.String:
		switch fieldName {
		case "author":
			return "Jane Doe"
		case "depth":
			return DepthCommits
		case "path":
			return "~/code"
		case "period":
			return "week"
		default:
			return "example"
		}
	}

	return nil
}
