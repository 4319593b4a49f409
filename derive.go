package portfolio

import (
	"strings"
	"time"
)

// Slugify converts a title to a URL-safe slug: lowercase, characters
// outside [a-z0-9 -] removed, whitespace runs collapsed to a single
// hyphen, hyphen runs collapsed, leading/trailing hyphens trimmed.
// Applying it to an already-valid slug returns the slug unchanged.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ', r == '-':
			b.WriteRune(r)
		}
	}
	fields := strings.FieldsFunc(b.String(), func(r rune) bool {
		return r == ' ' || r == '-'
	})
	return strings.Join(fields, "-")
}

const wordsPerMinute = 200

// ReadingTime estimates reading minutes for content: whitespace-delimited
// word count divided by 200, rounded up, minimum 1 for non-empty content.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// defaultPublishedAt fills in the publish timestamp when a record goes out
// as published without one. Anything already supplied passes through, and
// a set timestamp is never cleared when status later moves off published.
func defaultPublishedAt(status Status, supplied string) string {
	if status == StatusPublished && supplied == "" {
		return time.Now().UTC().Format(time.RFC3339)
	}
	return supplied
}
