package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Client abstracts chat-style LLM providers. Chat sends a single user
// prompt and returns the provider's reply envelope. Implementations do
// not retry failed calls; errors are terminal for the caller to handle.
type Client interface {
	Chat(ctx context.Context, prompt string) (*Response, error)
}

// Response is the normalized reply envelope shared by all providers.
type Response struct {
	Message ResponseMessage `json:"message"`
}

// ResponseMessage carries the assistant reply.
type ResponseMessage struct {
	Role    string  `json:"role,omitempty"`
	Content Content `json:"content"`
}

// Content is the reply body. On the wire it is either a plain string or
// a list of text parts like [{"text": "..."}]; both decode to the same
// value so callers only ever deal with Text().
type Content struct {
	parts []string
}

// TextContent wraps a plain string as Content.
func TextContent(s string) Content {
	return Content{parts: []string{s}}
}

// Text returns the first text part, or "" when the reply is empty.
func (c Content) Text() string {
	if len(c.parts) == 0 {
		return ""
	}
	return c.parts[0]
}

// IsEmpty reports whether the reply carries no usable text.
func (c Content) IsEmpty() bool {
	return strings.TrimSpace(c.Text()) == ""
}

func (c *Content) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		c.parts = []string{s}
		return nil
	}

	var partList []struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &partList); err == nil {
		c.parts = c.parts[:0]
		for _, p := range partList {
			c.parts = append(c.parts, p.Text)
		}
		return nil
	}

	return fmt.Errorf("unsupported content shape: %s", truncate(string(data), 120))
}

func (c Content) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Text())
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
