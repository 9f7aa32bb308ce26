// ===============================
// internal/query/normalize.go - Facet Input Normalization
// ===============================

package query

import "strings"

// Normalize trims surrounding whitespace from a raw facet value.
// A value that is empty after trimming is reported as absent (ok=false)
// and must never be used as a filter term or facet candidate.
func Normalize(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}

// NormalizeFold trims and uppercases a raw facet value. Used for the
// language and region dimensions, which arrive in mixed case upstream.
// Category, theme and entity name are a controlled set and keep their
// case — callers must not fold those.
func NormalizeFold(raw string) (string, bool) {
	trimmed, ok := Normalize(raw)
	if !ok {
		return "", false
	}
	return strings.ToUpper(trimmed), true
}
