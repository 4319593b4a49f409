package portfolio

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"My  Post!!", "my-post"},
		{"  Spaces  everywhere  ", "spaces-everywhere"},
		{"C++ & Go: A Comparison", "c-go-a-comparison"},
		{"already-a-slug", "already-a-slug"},
		{"my--post", "my-post"},
		{"-leading-and-trailing-", "leading-and-trailing"},
		{"123 Numbers 456", "123-numbers-456"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	for _, slug := range []string{"hello-world", "a", "my-post-1", "x-1-y-2"} {
		assert.Equal(t, slug, Slugify(slug), "valid slug should pass through unchanged")
	}
}

func TestReadingTime(t *testing.T) {
	words := func(n int) string {
		return strings.TrimSpace(strings.Repeat("word ", n))
	}
	tests := []struct {
		content string
		want    int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{words(199), 1},
		{words(200), 1},
		{words(201), 2},
		{words(400), 2},
		{words(401), 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ReadingTime(tt.content))
	}
}

func TestDefaultPublishedAt(t *testing.T) {
	before := time.Now().UTC()
	got := defaultPublishedAt(StatusPublished, "")
	after := time.Now().UTC()

	require.NotEmpty(t, got, "publishing without a timestamp should set one")
	ts, err := time.Parse(time.RFC3339, got)
	require.NoError(t, err)
	assert.False(t, ts.Before(before.Truncate(time.Second)))
	assert.False(t, ts.After(after.Add(time.Second)))

	assert.Empty(t, defaultPublishedAt(StatusDraft, ""), "drafts do not get a timestamp")
	assert.Equal(t, "2024-05-01T10:00:00Z", defaultPublishedAt(StatusPublished, "2024-05-01T10:00:00Z"), "supplied value passes through")
	assert.Equal(t, "2024-05-01T10:00:00Z", defaultPublishedAt(StatusDraft, "2024-05-01T10:00:00Z"), "moving off published never clears it")
}
