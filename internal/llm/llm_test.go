package llm

import (
	"encoding/json"
	"testing"
)

func TestContentDecodesPlainString(t *testing.T) {
	var resp Response
	raw := `{"message":{"role":"assistant","content":"{\"score\":71}"}}`
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := resp.Message.Content.Text(); got != `{"score":71}` {
		t.Fatalf("unexpected text: %s", got)
	}
}

func TestContentDecodesPartList(t *testing.T) {
	var resp Response
	raw := `{"message":{"content":[{"text":"first part"},{"text":"second part"}]}}`
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// Only the first part is used, matching the provider contract.
	if got := resp.Message.Content.Text(); got != "first part" {
		t.Fatalf("unexpected text: %s", got)
	}
}

func TestContentDecodesEmptyPartList(t *testing.T) {
	var resp Response
	raw := `{"message":{"content":[]}}`
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Message.Content.IsEmpty() {
		t.Fatalf("expected empty content")
	}
}

func TestContentRejectsUnsupportedShape(t *testing.T) {
	var c Content
	if err := json.Unmarshal([]byte(`{"weird":true}`), &c); err == nil {
		t.Fatalf("expected error for object content")
	}
}

func TestContentMarshalsAsString(t *testing.T) {
	c := TextContent("hello")
	out, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"hello"` {
		t.Fatalf("unexpected marshal output: %s", out)
	}
}
