package textutil

import (
	"regexp"
	"strings"
)

var (
	// nonAlnum matches everything that is neither a lowercase alphanumeric
	// nor whitespace; applied after lowercasing.
	nonAlnum = regexp.MustCompile(`[^a-z0-9\s]`)
	// spaces matches runs of whitespace.
	spaces = regexp.MustCompile(`\s+`)
)

// Clean lowercases text, replaces punctuation with spaces, and collapses
// whitespace runs to single spaces. Idempotent; empty input yields "".
func Clean(text string) string {
	if text == "" {
		return ""
	}
	t := strings.ToLower(text)
	t = nonAlnum.ReplaceAllString(t, " ")
	t = spaces.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}
