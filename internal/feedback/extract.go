package feedback

import (
	"encoding/json"
	"regexp"
	"strings"
)

// jsonObjectPattern captures from the first "{" through the last "}",
// which lets replies wrapped in prose or markdown fences still parse.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSON pulls the JSON object out of a raw model reply and
// validates that it parses. Returns MalformedJSONError when the reply
// carries no usable JSON.
func ExtractJSON(raw string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, &MalformedJSONError{}
	}

	candidate := trimmed
	if match := jsonObjectPattern.FindString(trimmed); match != "" {
		candidate = match
	}

	if !json.Valid([]byte(candidate)) {
		return nil, &MalformedJSONError{Snippet: snippet(candidate)}
	}
	return json.RawMessage(candidate), nil
}

// DecodeInto extracts the JSON object from raw, unmarshals it into out
// and validates the result. Unmarshal failures and validation failures
// both surface as SchemaViolationError.
func DecodeInto(raw string, out interface{ Validate() error }) error {
	obj, err := ExtractJSON(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(obj, out); err != nil {
		return &SchemaViolationError{Field: "$", Reason: err.Error()}
	}
	return out.Validate()
}

func snippet(s string) string {
	const max = 80
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
