package service

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// ValidSlug reports whether s is URL-safe: lowercase alphanumerics
// separated by single hyphens.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// Slugify derives a URL-safe slug from a title.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// objectNameFromURL extracts the object name from a public image URL.
// Objects are stored flat inside their bucket, so the last path segment
// is the full object name.
func objectNameFromURL(imageURL string) string {
	idx := strings.LastIndex(imageURL, "/")
	if idx < 0 || idx+1 >= len(imageURL) {
		return ""
	}
	return imageURL[idx+1:]
}
