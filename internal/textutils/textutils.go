// Package textutils provides text normalization helpers shared by the
// parsers and the reconciliation stage.
package textutils

import "strings"

// NormalizeDescription trims a free-text description and substitutes the
// fallback when nothing usable remains.
func NormalizeDescription(description, fallback string) string {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}

// TruncateRunes shortens a string to at most max runes. Statement
// descriptions can contain multi-byte text, so truncation counts runes,
// not bytes.
func TruncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
