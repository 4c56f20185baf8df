package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator checks a decoded value against its schema rules.
type SchemaValidator[T any] func(T) error

// ExtractJSON decodes a value of type T out of raw model output. Models
// wrap JSON in markdown fences and surrounding prose despite instructions,
// so the fences are stripped and the first balanced object is scanned out
// before decoding. A non-nil validator runs on the decoded value.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	body := scanObject(dropFences(raw))
	if body == "" {
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}

	var value T
	if err := json.Unmarshal([]byte(body), &value); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if validator != nil {
		if err := validator(value); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}
	return value, nil
}

// dropFences removes markdown fence lines (``` or ```json).
func dropFences(s string) string {
	var b strings.Builder
	for line := range strings.Lines(s) {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		b.WriteString(line)
	}
	return b.String()
}

// scanObject returns the first balanced { ... } block. String literals are
// tracked so braces inside values don't unbalance the scan.
func scanObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}

	depth, inString, escaped := 0, false, false
	for i := start; i < len(s); i++ {
		switch c := s[i]; {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
