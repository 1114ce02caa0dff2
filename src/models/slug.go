package models

import (
	"regexp"
	"strings"
)

var reSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Turns an arbitrary string (a title, a person's name, a link basename) into a
// URL-safe slug. May return an empty string if nothing salvageable remains.
func GenerateSlug(s string) string {
	s = strings.ToLower(s)
	s = reSlugChars.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}
