package provider

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Models occasionally wrap the JSON in a code fence or lead with prose;
// this picks out the first top-level object, nested braces included.
var reJSONObject = regexp.MustCompile(`\{[^{}]*(?:\{[^{}]*\}[^{}]*)*\}`)

// ExtractJSONObject pulls the JSON object out of a chat completion's
// content, tolerating code fences and surrounding text.
func ExtractJSONObject(content string) ([]byte, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	if json.Valid([]byte(content)) && strings.HasPrefix(content, "{") {
		return []byte(content), nil
	}
	if m := reJSONObject.FindString(content); m != "" && json.Valid([]byte(m)) {
		return []byte(m), nil
	}
	return nil, fmt.Errorf("no JSON object in provider response")
}

// SanitizePayload decodes a raw payload and cleans it up so it can pass
// schema validation:
//   - drops nulls and empty strings
//   - coerces numbers and booleans to strings (every canonical field is text)
//   - flattens one-element arrays, joins longer string arrays with commas
//   - trims surrounding whitespace
//
// It returns the cleaned map plus the keys it dropped.
func SanitizePayload(raw []byte) (map[string]any, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	var dropped []string
	out := make(map[string]any, len(m))
	for k, v := range m {
		s, ok := coerceString(v)
		if !ok || strings.TrimSpace(s) == "" {
			dropped = append(dropped, k)
			continue
		}
		out[k] = strings.TrimSpace(s)
	}
	return out, dropped, nil
}

func coerceString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t)), true
		}
		return fmt.Sprintf("%.2f", t), true
	case bool:
		return fmt.Sprintf("%t", t), true
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := coerceString(e); ok && strings.TrimSpace(s) != "" {
				parts = append(parts, strings.TrimSpace(s))
			}
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, ", "), true
	default:
		return "", false
	}
}
