package utils

import (
	"path/filepath"
	"strings"
)

// ValidateFileExtension reports whether filename carries one of the allowed
// extensions. An empty allow-list or a "*" entry allows everything.
func ValidateFileExtension(filename string, allowed []string) bool {
	if filename == "" {
		return false
	}
	if len(allowed) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(filename))
	for _, a := range allowed {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "*" {
			return true
		}
		if a != "" && ext == a {
			return true
		}
	}
	return false
}

// ValidateFileSize reports whether sizeBytes is within maxBytes. A zero or
// negative limit disables the check.
func ValidateFileSize(sizeBytes, maxBytes int64) bool {
	if maxBytes <= 0 {
		return true
	}
	return sizeBytes <= maxBytes
}

// SplitCSV splits a comma-separated env value into trimmed, non-empty parts.
func SplitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
