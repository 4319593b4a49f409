package portfolio

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// slugPattern accepts lowercase alphanumeric segments separated by single
// hyphens: no leading, trailing, or doubled hyphens.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// FieldError is a single violated constraint on a named form field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every violated field constraint of a submission.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Message returns the message for a field, or "" if the field passed.
func (e *ValidationError) Message(field string) string {
	if e == nil {
		return ""
	}
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// ParseProjectForm turns raw form values into a typed, defaulted Project,
// or a ValidationError naming every offending field. The record comes back
// without identity or timestamps; those belong to the write path.
func ParseProjectForm(form url.Values) (Project, error) {
	verr := &ValidationError{}

	title := strings.TrimSpace(form.Get("title"))
	if title == "" {
		verr.add("title", "Title is required")
	}

	slug := strings.TrimSpace(form.Get("slug"))
	if slug == "" {
		slug = Slugify(title)
	}
	switch {
	case slug == "":
		verr.add("slug", "Slug is required")
	case !slugPattern.MatchString(slug):
		verr.add("slug", "Slug must be lowercase with hyphens")
	}

	p := Project{
		Title:            title,
		Slug:             slug,
		Description:      form.Get("description"),
		ShortDescription: form.Get("short_description"),
		Content:          form.Get("content"),
		ImageURL:         parseURLField(verr, form, "image_url"),
		GithubURL:        parseURLField(verr, form, "github_url"),
		LiveURL:          parseURLField(verr, form, "live_url"),
		Technologies:     parseListField(form, "technologies"),
		Features:         parseListField(form, "features"),
		Screenshots:      parseListField(form, "screenshots"),
		Category:         strings.TrimSpace(form.Get("category")),
		Featured:         form.Get("featured") != "",
		Status:           parseStatusField(verr, form),
		OrderIndex:       parseIntField(form, "order_index", 0),
		Author:           strings.TrimSpace(form.Get("author")),
		PublishedAt:      strings.TrimSpace(form.Get("published_at")),
	}
	return p, verr.orNil()
}

// ParseBlogForm is the blog counterpart of ParseProjectForm. Content is
// required and the author defaults to the site owner.
func ParseBlogForm(form url.Values) (Blog, error) {
	verr := &ValidationError{}

	title := strings.TrimSpace(form.Get("title"))
	if title == "" {
		verr.add("title", "Title is required")
	}

	slug := strings.TrimSpace(form.Get("slug"))
	if slug == "" {
		slug = Slugify(title)
	}
	switch {
	case slug == "":
		verr.add("slug", "Slug is required")
	case !slugPattern.MatchString(slug):
		verr.add("slug", "Slug must be lowercase with hyphens")
	}

	content := form.Get("content")
	if strings.TrimSpace(content) == "" {
		verr.add("content", "Content is required")
	}

	author := strings.TrimSpace(form.Get("author"))
	if author == "" {
		author = "Hatami Sugandi"
	}

	b := Blog{
		Title:         title,
		Slug:          slug,
		Excerpt:       form.Get("excerpt"),
		Content:       content,
		FeaturedImage: parseURLField(verr, form, "featured_image"),
		Author:        author,
		Tags:          parseListField(form, "tags"),
		Category:      strings.TrimSpace(form.Get("category")),
		Featured:      form.Get("featured") != "",
		Status:        parseStatusField(verr, form),
		PublishedAt:   strings.TrimSpace(form.Get("published_at")),
	}
	return b, verr.orNil()
}

// parseURLField accepts an empty value as "no value"; anything else must be
// an absolute http(s) URL.
func parseURLField(verr *ValidationError, form url.Values, key string) string {
	raw := strings.TrimSpace(form.Get(key))
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		verr.add(key, "Must be a valid URL")
		return ""
	}
	return raw
}

// parseListField collects a repeatable field, splitting each value on
// commas so both multi-input forms and a single comma-separated field
// work. Insertion order is preserved.
func parseListField(form url.Values, key string) []string {
	var out []string
	for _, raw := range form[key] {
		for _, v := range strings.Split(raw, ",") {
			if s := strings.TrimSpace(v); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func parseStatusField(verr *ValidationError, form url.Values) Status {
	raw := strings.TrimSpace(form.Get("status"))
	if raw == "" {
		return StatusPublished
	}
	status := Status(raw)
	if !status.Valid() {
		verr.add("status", fmt.Sprintf("Status must be one of %s, %s, %s", StatusDraft, StatusPublished, StatusArchived))
		return StatusPublished
	}
	return status
}

func parseIntField(form url.Values, key string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(form.Get(key)))
	if err != nil {
		return fallback
	}
	return n
}
