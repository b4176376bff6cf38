package auth

import (
	"strings"
	"testing"
	"time"
)

func TestStateStoreConsumeOnce(t *testing.T) {
	s := newStateStore()
	s.put("abc", time.Now().Add(time.Minute))

	if !s.consume("abc") {
		t.Fatal("first consume should succeed")
	}
	if s.consume("abc") {
		t.Fatal("second consume should fail")
	}
	if s.consume("never-stored") {
		t.Fatal("unknown state should fail")
	}
}

func TestStateStoreExpired(t *testing.T) {
	s := newStateStore()
	s.put("old", time.Now().Add(-time.Second))

	if s.consume("old") {
		t.Fatal("expired state should fail")
	}
}

func TestAppendToken(t *testing.T) {
	got, err := appendToken("http://localhost:5173/auth/callback?next=library", "tok123")
	if err != nil {
		t.Fatalf("appendToken: %v", err)
	}
	if !strings.Contains(got, "token=tok123") {
		t.Fatalf("token missing: %s", got)
	}
	if !strings.Contains(got, "next=library") {
		t.Fatalf("existing query dropped: %s", got)
	}

	if _, err := appendToken("", "tok"); err == nil {
		t.Fatal("empty redirect should error")
	}
}
