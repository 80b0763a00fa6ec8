package match

import (
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)

// Normalize canonicalizes free text for comparison: lowercase, punctuation
// stripped, whitespace collapsed. Idempotent; empty input yields "".
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)
	text = nonWord.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}
