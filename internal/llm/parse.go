package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidJSON = errors.New("completion is not valid JSON")

// StripFences removes markdown code fences the model tends to wrap JSON in.
func StripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// ParseJSON decodes a completion into v. When the fence-stripped text does
// not parse, the first balanced-looking {...} or [...] span is tried.
func ParseJSON(raw string, v any) error {
	cleaned := StripFences(raw)
	if cleaned == "" {
		return fmt.Errorf("%w: empty completion", ErrInvalidJSON)
	}

	firstErr := json.Unmarshal([]byte(cleaned), v)
	if firstErr == nil {
		return nil
	}

	if span, ok := jsonSpan(cleaned); ok && span != cleaned {
		if err := json.Unmarshal([]byte(span), v); err == nil {
			return nil
		}
	}
	return fmt.Errorf("%w: %v", ErrInvalidJSON, firstErr)
}

// jsonSpan returns the text from the first opening brace or bracket to the
// last matching closer.
func jsonSpan(s string) (string, bool) {
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return "", false
	}
	closer := byte('}')
	if s[start] == '[' {
		closer = ']'
	}
	end := strings.LastIndexByte(s, closer)
	if end <= start {
		return "", false
	}
	return s[start : end+1], true
}
