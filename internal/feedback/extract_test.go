package feedback

import (
	"errors"
	"strings"
	"testing"
)

func TestExtractJSONPlainObject(t *testing.T) {
	obj, err := ExtractJSON(`{"score": 80}`)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if string(obj) != `{"score": 80}` {
		t.Fatalf("unexpected object: %s", obj)
	}
}

func TestExtractJSONWrappedInProse(t *testing.T) {
	raw := "Sure! Here is your analysis:\n{\"score\": 72, \"feedback\": \"solid\"}\nLet me know if you need more."
	obj, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if string(obj) != `{"score": 72, "feedback": "solid"}` {
		t.Fatalf("unexpected object: %s", obj)
	}
}

func TestExtractJSONMarkdownFence(t *testing.T) {
	raw := "```json\n{\"score\": 65,\n \"feedback\": \"ok\"}\n```"
	obj, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if !strings.Contains(string(obj), `"score": 65`) {
		t.Fatalf("unexpected object: %s", obj)
	}
}

func TestExtractJSONNestedBraces(t *testing.T) {
	raw := `prefix {"outer": {"inner": 1}} suffix`
	obj, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if string(obj) != `{"outer": {"inner": 1}}` {
		t.Fatalf("unexpected object: %s", obj)
	}
}

func TestExtractJSONNoObject(t *testing.T) {
	for _, raw := range []string{"", "   ", "no json here"} {
		_, err := ExtractJSON(raw)
		var malformed *MalformedJSONError
		if !errors.As(err, &malformed) {
			t.Fatalf("raw %q: expected MalformedJSONError, got %v", raw, err)
		}
	}
}

func TestExtractJSONInvalidObjectKeepsSnippet(t *testing.T) {
	_, err := ExtractJSON(`{"score": broken`)
	var malformed *MalformedJSONError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedJSONError, got %v", err)
	}
}

func TestExtractJSONSnippetTruncated(t *testing.T) {
	raw := "{" + strings.Repeat("x", 200) + "}"
	_, err := ExtractJSON(raw)
	var malformed *MalformedJSONError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedJSONError, got %v", err)
	}
	if len(malformed.Snippet) > 83 {
		t.Fatalf("snippet not truncated: %d chars", len(malformed.Snippet))
	}
}

func TestDecodeIntoValid(t *testing.T) {
	var result RescoreResult
	raw := "Score updated.\n{\"score\": 88, \"feedback\": \"stronger verbs\"}"
	if err := DecodeInto(raw, &result); err != nil {
		t.Fatalf("DecodeInto: %v", err)
	}
	if result.Score != 88 || result.Feedback != "stronger verbs" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestDecodeIntoTypeMismatch(t *testing.T) {
	var result RescoreResult
	err := DecodeInto(`{"score": "eighty"}`, &result)
	var violation *SchemaViolationError
	if !errors.As(err, &violation) {
		t.Fatalf("expected SchemaViolationError, got %v", err)
	}
	if violation.Field != "$" {
		t.Fatalf("unexpected field: %q", violation.Field)
	}
}

func TestDecodeIntoValidationFailure(t *testing.T) {
	var result RescoreResult
	err := DecodeInto(`{"score": 120, "feedback": "x"}`, &result)
	var violation *SchemaViolationError
	if !errors.As(err, &violation) {
		t.Fatalf("expected SchemaViolationError, got %v", err)
	}
	if violation.Field != "score" {
		t.Fatalf("unexpected field: %q", violation.Field)
	}
}
