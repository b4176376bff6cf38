package telemetry

import "testing"

func TestNoiseFilterMatchesMessage(t *testing.T) {
	f := NewNoiseFilter([]string{"chatbase", "ResizeObserver"})

	tests := []struct {
		name   string
		msg    string
		fields map[string]any
		want   bool
	}{
		{name: "noisy message", msg: "chatbase embed failed", want: true},
		{name: "noisy error field", msg: "widget", fields: map[string]any{"error": "ResizeObserver loop limit exceeded"}, want: true},
		{name: "clean message", msg: "provider call failed", want: false},
		{name: "non-string error field", msg: "x", fields: map[string]any{"error": 42}, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := f.matches(tt.msg, tt.fields); got != tt.want {
				t.Fatalf("matches(%q) = %v, want %v", tt.msg, got, tt.want)
			}
		})
	}
}

func TestNoiseFilterOnlyAppliesToErrors(t *testing.T) {
	SetNoiseFilter(NewNoiseFilter([]string{"noisy"}))
	t.Cleanup(func() { SetNoiseFilter(nil) })

	if suppressed("info", "noisy thing happened", nil) {
		t.Fatalf("info lines must never be suppressed")
	}
	if !suppressed("error", "noisy thing happened", nil) {
		t.Fatalf("expected error line to be suppressed")
	}
}

func TestNilFilterSuppressesNothing(t *testing.T) {
	SetNoiseFilter(nil)
	if suppressed("error", "anything", nil) {
		t.Fatalf("nil filter must not suppress")
	}
}
