package portfolio

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectFormFixture() url.Values {
	return url.Values{
		"title": {"Portfolio Site"},
		"slug":  {"portfolio-site"},
	}
}

func blogFormFixture() url.Values {
	return url.Values{
		"title":   {"Hello World"},
		"slug":    {"hello-world"},
		"content": {"Some content."},
	}
}

func TestParseProjectFormSlugPattern(t *testing.T) {
	tests := []struct {
		slug string
		ok   bool
	}{
		{"my-post-1", true},
		{"a", true},
		{"123", true},
		{"My Post", false},
		{"my--post", false},
		{"-my-post", false},
		{"my-post-", false},
		{"my_post", false},
	}
	for _, tt := range tests {
		form := projectFormFixture()
		form.Set("slug", tt.slug)
		_, err := ParseProjectForm(form)
		if tt.ok {
			assert.NoError(t, err, "slug %q should be accepted", tt.slug)
		} else {
			assert.Error(t, err, "slug %q should be rejected", tt.slug)
		}
	}
}

func TestParseProjectFormDerivesSlugFromTitle(t *testing.T) {
	form := projectFormFixture()
	form.Del("slug")
	form.Set("title", "My Great App")

	p, err := ParseProjectForm(form)
	require.NoError(t, err)
	assert.Equal(t, "my-great-app", p.Slug)
}

func TestParseProjectFormURLFields(t *testing.T) {
	form := projectFormFixture()
	form.Set("github_url", "https://github.com/me/app")
	form.Set("live_url", "")
	p, err := ParseProjectForm(form)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/me/app", p.GithubURL)
	assert.Empty(t, p.LiveURL, "empty URL means no value")

	form.Set("image_url", "not a url")
	_, err = ParseProjectForm(form)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Must be a valid URL", verr.Message("image_url"))
}

func TestParseProjectFormDefaults(t *testing.T) {
	p, err := ParseProjectForm(projectFormFixture())
	require.NoError(t, err)
	assert.Equal(t, StatusPublished, p.Status)
	assert.False(t, p.Featured)
	assert.Zero(t, p.OrderIndex)
}

func TestParseProjectFormCoercions(t *testing.T) {
	form := projectFormFixture()
	form.Set("featured", "on")
	form.Set("order_index", "7")
	p, err := ParseProjectForm(form)
	require.NoError(t, err)
	assert.True(t, p.Featured)
	assert.Equal(t, 7, p.OrderIndex)

	form.Set("order_index", "not-a-number")
	p, err = ParseProjectForm(form)
	require.NoError(t, err)
	assert.Zero(t, p.OrderIndex, "non-numeric order_index falls back to 0")

	form.Set("status", "retired")
	_, err = ParseProjectForm(form)
	assert.Error(t, err, "unknown status is a violation")
}

func TestParseProjectFormListFields(t *testing.T) {
	form := projectFormFixture()
	form["technologies"] = []string{"Go", "SQLite"}
	form.Set("features", "auth, uploads , caching")
	form["screenshots"] = []string{"one.png", "", "two.png"}

	p, err := ParseProjectForm(form)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "SQLite"}, p.Technologies)
	assert.Equal(t, []string{"auth", "uploads", "caching"}, p.Features)
	assert.Equal(t, []string{"one.png", "two.png"}, p.Screenshots, "blanks dropped, order preserved")
}

func TestParseBlogFormCollectsAllViolations(t *testing.T) {
	_, err := ParseBlogForm(url.Values{})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Title is required", verr.Message("title"))
	assert.Equal(t, "Slug is required", verr.Message("slug"))
	assert.Equal(t, "Content is required", verr.Message("content"))
	assert.Len(t, verr.Fields, 3)
}

func TestParseBlogFormDefaults(t *testing.T) {
	b, err := ParseBlogForm(blogFormFixture())
	require.NoError(t, err)
	assert.Equal(t, "Hatami Sugandi", b.Author)
	assert.Equal(t, StatusPublished, b.Status)

	form := blogFormFixture()
	form.Set("author", "Guest Writer")
	form.Set("status", "draft")
	b, err = ParseBlogForm(form)
	require.NoError(t, err)
	assert.Equal(t, "Guest Writer", b.Author)
	assert.Equal(t, StatusDraft, b.Status)
}
