package utils

import (
	"regexp"
	"strings"
)

var (
	slugSpaces  = regexp.MustCompile(`[\s_]+`)
	slugNonSafe = regexp.MustCompile(`[^a-z0-9\-]+`)
	slugDashes  = regexp.MustCompile(`-+`)
)

// Slugify converts a name into a URL-safe slug: lowercase ASCII
// letters, digits and hyphens. Names that contain no usable
// characters (for example fully Cyrillic ones) produce fallback.
func Slugify(name, fallback string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugNonSafe.ReplaceAllString(s, "")
	s = slugDashes.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if s == "" {
		return fallback
	}
	return s
}
