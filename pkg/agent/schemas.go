package agent

import (
	"encoding/json"
	"fmt"
	"strings"
)

// extractJSON strips markdown code fences and surrounding prose from an
// LLM response, returning the first JSON value. Models wrap JSON in
// ```json fences often enough that decoding the raw text directly is
// not an option.
func extractJSON(text string) (string, error) {
	text = strings.TrimSpace(text)

	if idx := strings.Index(text, "```"); idx != -1 {
		rest := text[idx+3:]
		rest = strings.TrimPrefix(rest, "json")
		rest = strings.TrimPrefix(rest, "JSON")
		if end := strings.Index(rest, "```"); end != -1 {
			text = strings.TrimSpace(rest[:end])
		} else {
			text = strings.TrimSpace(rest)
		}
	}

	// Fall back to the outermost JSON brackets when the model added prose
	// around the value.
	start := strings.IndexAny(text, "{[")
	if start == -1 {
		return "", fmt.Errorf("no JSON value found in response")
	}
	var end int
	if text[start] == '{' {
		end = strings.LastIndex(text, "}")
	} else {
		end = strings.LastIndex(text, "]")
	}
	if end < start {
		return "", fmt.Errorf("unterminated JSON value in response")
	}
	return text[start : end+1], nil
}

// decodeJSON extracts and unmarshals the JSON value in an LLM response
// into out.
func decodeJSON(text string, out any) error {
	raw, err := extractJSON(text)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("failed to decode JSON: %w", err)
	}
	return nil
}
