// Package slug derives URL-safe identifiers from titles.
package slug

import (
	"regexp"
	"strings"
)

var (
	nonWord  = regexp.MustCompile(`[^\w\s-]`)
	joinRuns = regexp.MustCompile(`[\s_-]+`)
	edges    = regexp.MustCompile(`^-+|-+$`)
)

// Make converts a title into its slug: lowercased, punctuation stripped,
// runs of whitespace/underscores/hyphens collapsed to a single hyphen,
// no leading or trailing hyphen.
func Make(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonWord.ReplaceAllString(s, "")
	s = joinRuns.ReplaceAllString(s, "-")
	return edges.ReplaceAllString(s, "")
}
