package usecase

import (
	"strconv"
	"strings"
)

func asMap(raw any) map[string]any {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	return obj
}

func getArray(src map[string]any, key string) []any {
	if src == nil {
		return nil
	}
	items, ok := src[key].([]any)
	if !ok {
		return nil
	}
	return items
}

func getMap(src map[string]any, key string) map[string]any {
	if src == nil {
		return nil
	}
	return asMap(src[key])
}

func firstMap(items []any) map[string]any {
	if len(items) == 0 {
		return nil
	}
	return asMap(items[0])
}

func getString(src map[string]any, key string) string {
	if src == nil {
		return ""
	}
	raw, ok := src[key]
	if !ok || raw == nil {
		return ""
	}
	return valueString(raw)
}

func getStringDefault(src map[string]any, key, fallback string) string {
	if value := getString(src, key); value != "" {
		return value
	}
	return fallback
}

func getInt(src map[string]any, key string) int {
	if src == nil {
		return 0
	}
	switch typed := src[key].(type) {
	case float64:
		return int(typed)
	case float32:
		return int(typed)
	case int:
		return typed
	case int64:
		return int(typed)
	case string:
		v, err := strconv.Atoi(strings.TrimSpace(typed))
		if err != nil {
			return 0
		}
		return v
	default:
		return 0
	}
}

func getBool(src map[string]any, key string) bool {
	if src == nil {
		return false
	}
	value, ok := src[key].(bool)
	return ok && value
}

// valueString renders a loosely-typed JSON scalar the way the upstream
// sends it: strings pass through, numbers lose the float64 artifacts
// sonic decoding introduces.
func valueString(raw any) string {
	switch typed := raw.(type) {
	case string:
		return strings.TrimSpace(typed)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(typed), 'f', -1, 32)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case bool:
		return strconv.FormatBool(typed)
	default:
		return ""
	}
}

func firstNonEmpty(values ...string) string {
	for _, item := range values {
		if strings.TrimSpace(item) != "" {
			return strings.TrimSpace(item)
		}
	}
	return ""
}
