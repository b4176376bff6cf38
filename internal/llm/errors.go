package llm

import (
	"errors"
	"strings"
)

// Sentinel errors shared by providers and callers.
var (
	// ErrNoResponse means the provider answered but the reply carried
	// no usable content.
	ErrNoResponse = errors.New("No response from AI")

	// ErrNotConfigured means no provider credentials are present.
	ErrNotConfigured = errors.New("AI provider is not configured on server")
)

// QuotaCode is the provider error code that signals an exhausted
// AI usage allowance.
const QuotaCode = "error_400_from_delegate"

// ProviderError is a terminal error returned by a provider call.
type ProviderError struct {
	Code    string // provider-specific error code, may be empty
	Status  int    // upstream HTTP status, 0 if not applicable
	Message string
}

func (e *ProviderError) Error() string {
	if e.Code != "" {
		return e.Message + " (" + e.Code + ")"
	}
	return e.Message
}

// IsQuota reports whether err represents an exhausted usage allowance:
// either the delegate quota code or a permission-denied message.
func IsQuota(err error) bool {
	if err == nil {
		return false
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		if pe.Code == QuotaCode {
			return true
		}
	}
	return strings.Contains(err.Error(), "Permission denied")
}

// StatusMessage maps an upstream HTTP status to a user-facing message.
func StatusMessage(status int) string {
	switch status {
	case 401:
		return "Invalid OpenAI API key. Please check your API key in .env file and make sure it is valid and not revoked."
	case 429:
		return "OpenAI API rate limit exceeded. Please try again later."
	case 500:
		return "OpenAI API server error. Please try again later."
	default:
		return "Failed to analyze resume"
	}
}
