package telemetry

import (
	"strings"
	"sync"
)

// NoiseFilter drops error-level log lines whose message or error field
// matches a known-noisy substring. It replaces patching the process-wide
// error writer: suppression stays scoped to this logger.
type NoiseFilter struct {
	patterns []string
}

var (
	filterMu    sync.RWMutex
	noiseFilter *NoiseFilter
)

// NewNoiseFilter builds a filter from substrings; empty entries are dropped.
func NewNoiseFilter(patterns []string) *NoiseFilter {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return &NoiseFilter{patterns: out}
}

// SetNoiseFilter installs the filter used by Error. Pass nil to clear.
func SetNoiseFilter(f *NoiseFilter) {
	filterMu.Lock()
	noiseFilter = f
	filterMu.Unlock()
}

func (f *NoiseFilter) matches(msg string, fields map[string]any) bool {
	if f == nil || len(f.patterns) == 0 {
		return false
	}
	haystack := msg
	if errField, ok := fields["error"]; ok {
		if s, ok := errField.(string); ok {
			haystack += " " + s
		}
	}
	for _, p := range f.patterns {
		if strings.Contains(haystack, p) {
			return true
		}
	}
	return false
}

func suppressed(level, msg string, fields map[string]any) bool {
	if level != "error" {
		return false
	}
	filterMu.RLock()
	f := noiseFilter
	filterMu.RUnlock()
	return f.matches(msg, fields)
}
