package util

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"regexp"
	"strings"
)

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// HashUserKey derives a stable opaque key for a user identifier so that
// raw emails never appear in object keys or log fields.
func HashUserKey(id string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(id))))
	return hex.EncodeToString(sum[:16])
}

// SanitizeFileName strips path components and replaces characters that
// are unsafe in object keys. Empty input becomes "file".
func SanitizeFileName(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	base = unsafeFileChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		return "file"
	}
	return base
}
