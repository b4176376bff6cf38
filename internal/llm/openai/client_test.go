package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resumind-backend/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewClient("test-key", "gpt-3.5-turbo", server.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client, server
}

func TestChatSendsExpectedRequest(t *testing.T) {
	var captured map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"score\":80}"}}]}`))
	})

	resp, err := client.Chat(context.Background(), "analyze this resume")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if got := resp.Message.Content.Text(); got != `{"score":80}` {
		t.Fatalf("unexpected content: %s", got)
	}

	if captured["model"] != "gpt-3.5-turbo" {
		t.Fatalf("unexpected model: %v", captured["model"])
	}
	if captured["temperature"] != 0.7 {
		t.Fatalf("unexpected temperature: %v", captured["temperature"])
	}
	if captured["max_tokens"] != float64(500) {
		t.Fatalf("unexpected max_tokens: %v", captured["max_tokens"])
	}
	messages, ok := captured["messages"].([]any)
	if !ok || len(messages) != 1 {
		t.Fatalf("expected single message, got %v", captured["messages"])
	}
	msg := messages[0].(map[string]any)
	if msg["role"] != "user" {
		t.Fatalf("unexpected role: %v", msg["role"])
	}
	if !strings.Contains(msg["content"].(string), "analyze this resume") {
		t.Fatalf("prompt not forwarded: %v", msg["content"])
	}
}

func TestChatMapsUnauthorized(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error","code":"invalid_api_key"}}`))
	})

	_, err := client.Chat(context.Background(), "prompt")
	var pe *llm.ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if pe.Status != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", pe.Status)
	}
	if !strings.Contains(pe.Message, "Invalid OpenAI API key") {
		t.Fatalf("unexpected message: %s", pe.Message)
	}
	if pe.Code != "invalid_api_key" {
		t.Fatalf("unexpected code: %s", pe.Code)
	}
}

func TestChatMapsRateLimit(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"slow down","type":"rate_limit_error"}}`))
	})

	_, err := client.Chat(context.Background(), "prompt")
	var pe *llm.ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if !strings.Contains(pe.Message, "rate limit exceeded") {
		t.Fatalf("unexpected message: %s", pe.Message)
	}
}

func TestChatEmptyContentIsNoResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"   "}}]}`))
	})

	_, err := client.Chat(context.Background(), "prompt")
	if !errors.Is(err, llm.ErrNoResponse) {
		t.Fatalf("expected ErrNoResponse, got %v", err)
	}
}

func TestChatMissingChoicesIsNoResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := client.Chat(context.Background(), "prompt")
	if !errors.Is(err, llm.ErrNoResponse) {
		t.Fatalf("expected ErrNoResponse, got %v", err)
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "gpt-3.5-turbo", ""); err == nil {
		t.Fatalf("expected error for missing api key")
	}
	if _, err := NewClient("key", "", ""); err == nil {
		t.Fatalf("expected error for missing model")
	}
}
