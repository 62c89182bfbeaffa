// Package input provides type-safe helpers for extracting flag values
// from a map[string]any.
//
// Flag maps mix booleans, numbers, and strings depending on how a value
// was gathered (YAML defaults, prompt input, implication resolution), so
// every accessor coerces the common scalar encodings and falls back to a
// caller-supplied default on mismatch. All functions handle nil maps.
package input

import "strconv"

// GetString extracts a string value, formatting numeric and boolean
// values rather than failing on them.
func GetString(m map[string]any, key string, defaultVal string) string {
	if m == nil {
		return defaultVal
	}
	val, ok := m[key]
	if !ok || val == nil {
		return defaultVal
	}
	switch v := val.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return defaultVal
	}
}

// GetInt extracts an int value, coercing int64, float64, and numeric
// strings.
func GetInt(m map[string]any, key string, defaultVal int) int {
	if m == nil {
		return defaultVal
	}
	val, ok := m[key]
	if !ok || val == nil {
		return defaultVal
	}
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
		return defaultVal
	default:
		return defaultVal
	}
}

// GetFloat extracts a float64 value, coercing int, int64, and numeric
// strings.
func GetFloat(m map[string]any, key string, defaultVal float64) float64 {
	if m == nil {
		return defaultVal
	}
	val, ok := m[key]
	if !ok || val == nil {
		return defaultVal
	}
	switch v := val.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
		return defaultVal
	default:
		return defaultVal
	}
}

// GetBool extracts a bool value, coercing the string forms
// strconv.ParseBool accepts.
func GetBool(m map[string]any, key string, defaultVal bool) bool {
	if m == nil {
		return defaultVal
	}
	val, ok := m[key]
	if !ok || val == nil {
		return defaultVal
	}
	switch v := val.(type) {
	case bool:
		return v
	case string:
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
		return defaultVal
	default:
		return defaultVal
	}
}
