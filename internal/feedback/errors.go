package feedback

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no artifact exists for a resume.
	ErrNotFound = errors.New("not found")

	// ErrInFlight is returned when the same operation is already
	// running for the same resume.
	ErrInFlight = errors.New("operation already in progress")

	// ErrNoResumeText is returned when a resume has no extracted text
	// to analyze.
	ErrNoResumeText = errors.New("resume has no extracted text")
)

// MalformedJSONError means the model reply contained no parseable JSON
// object.
type MalformedJSONError struct {
	Snippet string
}

func (e *MalformedJSONError) Error() string {
	if e.Snippet == "" {
		return "malformed AI response: no JSON object found"
	}
	return fmt.Sprintf("malformed AI response: %s", e.Snippet)
}

// SchemaViolationError means the reply parsed as JSON but does not
// satisfy the expected schema.
type SchemaViolationError struct {
	Field  string
	Reason string
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("schema violation: %s %s", e.Field, e.Reason)
}
