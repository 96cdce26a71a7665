// Package sanitizer normalizes free text coming from query strings and upstream records.
package sanitizer

import (
	"strings"
	"unicode"
)

// TrimAndNormalize trims s and collapses every run of whitespace into a single space.
func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

// NormalizeLabel is the comparison key for free-text matching.
func NormalizeLabel(label string) string {
	return strings.ToLower(TrimAndNormalize(label))
}

// IsBlank reports whether s holds nothing but whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// OptionalText returns nil for blank input and the trimmed text otherwise.
func OptionalText(s *string) *string {
	if s == nil || IsBlank(*s) {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
