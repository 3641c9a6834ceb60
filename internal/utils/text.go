package utils

import (
	"strings"
	"unicode/utf8"
)

func CountWords(text string) int {
	return len(strings.Fields(text))
}

// Truncate shortens s to at most maxRunes runes, appending an ellipsis
// when anything was cut. Used to keep logged request bodies bounded.
func Truncate(s string, maxRunes int) string {
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}

	runes := []rune(s)
	return string(runes[:maxRunes]) + "..."
}
