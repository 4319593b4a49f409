package portfolio

import (
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestActions(t *testing.T) *Actions {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return NewActions(s, NewContentCache(s, time.Minute))
}

func TestCreateBlogPublishingWorkflow(t *testing.T) {
	a := setupTestActions(t)

	form := url.Values{
		"title":   {"Hello World"},
		"content": {strings.TrimSpace(strings.Repeat("word ", 400))},
		"status":  {"published"},
	}

	before := time.Now().UTC().Truncate(time.Second)
	created, err := a.CreateBlog(form)
	require.NoError(t, err)
	after := time.Now().UTC().Add(time.Second)

	assert.Equal(t, "hello-world", created.Slug, "slug derived from title")
	assert.Equal(t, 2, created.ReadingTime, "400 words at 200wpm")
	assert.Equal(t, StatusPublished, created.Status)
	assert.NotEmpty(t, created.ID)

	require.NotEmpty(t, created.PublishedAt)
	ts, err := time.Parse(time.RFC3339, created.PublishedAt)
	require.NoError(t, err)
	assert.False(t, ts.Before(before), "published_at should be >= request time")
	assert.False(t, ts.After(after), "published_at should be <= completion time")

	// The public read path sees the new post immediately.
	blogs, err := a.PublishedBlogs(0)
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, "hello-world", blogs[0].Slug)
}

func TestCreateBlogValidationFailureTouchesNothing(t *testing.T) {
	a := setupTestActions(t)

	_, err := a.CreateBlog(url.Values{"excerpt": {"only an excerpt"}})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Message("title"))
	assert.NotEmpty(t, verr.Message("content"))

	blogs, err := a.AllBlogs()
	require.NoError(t, err)
	assert.Empty(t, blogs, "failed validation never reaches the store")
}

func TestUpdateBlogKeepsPublishedAtWhenUnpublishing(t *testing.T) {
	a := setupTestActions(t)

	created, err := a.CreateBlog(url.Values{
		"title":   {"Staying Power"},
		"content": {"Body text."},
		"status":  {"published"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.PublishedAt)

	// The edit form carries the existing timestamp through.
	form := url.Values{
		"title":        {"Staying Power"},
		"slug":         {created.Slug},
		"content":      {"Body text, revised."},
		"status":       {"draft"},
		"published_at": {created.PublishedAt},
	}
	updated, err := a.UpdateBlog(created.ID, form)
	require.NoError(t, err)

	assert.Equal(t, StatusDraft, updated.Status)
	assert.Equal(t, created.PublishedAt, updated.PublishedAt, "moving off published does not clear the timestamp")
}

func TestUpdateBlogRecomputesReadingTime(t *testing.T) {
	a := setupTestActions(t)

	created, err := a.CreateBlog(url.Values{
		"title":   {"Growing Post"},
		"content": {"short"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ReadingTime)

	form := url.Values{
		"title":   {"Growing Post"},
		"slug":    {created.Slug},
		"content": {strings.Repeat("word ", 650)},
	}
	updated, err := a.UpdateBlog(created.ID, form)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.ReadingTime, "reading time rederived from current content")
}

func TestCreateProjectDuplicateSlug(t *testing.T) {
	a := setupTestActions(t)

	form := url.Values{"title": {"Twin"}, "slug": {"twin"}}
	_, err := a.CreateProject(form)
	require.NoError(t, err)

	_, err = a.CreateProject(form)
	require.Error(t, err, "the store's uniqueness constraint rejects the duplicate")
	var verr *ValidationError
	assert.False(t, strings.Contains(err.Error(), "validation"), "duplicate slug is a store failure, not a validation one")
	assert.NotErrorAs(t, err, &verr)
}

func TestUpdateProjectNotFoundFromActions(t *testing.T) {
	a := setupTestActions(t)

	_, err := a.UpdateProject("missing-id", url.Values{"title": {"X"}, "slug": {"x"}})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProjectMissing(t *testing.T) {
	a := setupTestActions(t)

	err := a.DeleteProject("never-existed")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReorderProjectsRefreshesPublicOrder(t *testing.T) {
	a := setupTestActions(t)

	first, err := a.CreateProject(url.Values{"title": {"First"}, "order_index": {"0"}})
	require.NoError(t, err)
	second, err := a.CreateProject(url.Values{"title": {"Second"}, "order_index": {"1"}})
	require.NoError(t, err)

	// Warm the cache, then reorder.
	initial, err := a.PublishedProjects()
	require.NoError(t, err)
	require.Equal(t, first.Slug, initial[0].Slug)

	err = a.ReorderProjects([]OrderUpdate{
		{ID: first.ID, OrderIndex: 1},
		{ID: second.ID, OrderIndex: 0},
	})
	require.NoError(t, err)

	got, err := a.PublishedProjects()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.Slug, got[0].Slug, "reorder invalidates the cached view")
}

func TestRecordBlogView(t *testing.T) {
	a := setupTestActions(t)

	created, err := a.CreateBlog(url.Values{
		"title":   {"Viewed"},
		"content": {"text"},
	})
	require.NoError(t, err)

	require.NoError(t, a.RecordBlogView(created.ID))
	require.NoError(t, a.RecordBlogView(created.ID))

	got, err := a.BlogByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ViewCount)
}

func TestFeaturedListsHonorLimits(t *testing.T) {
	a := setupTestActions(t)

	for i := 0; i < 8; i++ {
		_, err := a.CreateProject(url.Values{
			"title":       {"P" + string(rune('a'+i))},
			"featured":    {"on"},
			"order_index": {strconv.Itoa(i)},
		})
		require.NoError(t, err)
	}
	for i := 0; i < 5; i++ {
		_, err := a.CreateBlog(url.Values{
			"title":        {"B" + string(rune('a'+i))},
			"content":      {"text"},
			"featured":     {"on"},
			"published_at": {time.Date(2024, 1, i+1, 0, 0, 0, 0, time.UTC).Format(time.RFC3339)},
		})
		require.NoError(t, err)
	}

	projects, err := a.FeaturedProjects()
	require.NoError(t, err)
	assert.Len(t, projects, 6)

	blogs, err := a.FeaturedBlogs()
	require.NoError(t, err)
	assert.Len(t, blogs, 3)
	assert.Equal(t, "be", blogs[0].Slug, "newest publish date first")
}

func TestPreviewReturnsDrafts(t *testing.T) {
	a := setupTestActions(t)

	_, err := a.CreateProject(url.Values{
		"title":  {"Secret Project"},
		"status": {"draft"},
	})
	require.NoError(t, err)
	_, err = a.CreateBlog(url.Values{
		"title":   {"Secret Post"},
		"content": {"still writing"},
		"status":  {"draft"},
	})
	require.NoError(t, err)

	_, err = a.ProjectBySlug("secret-project")
	assert.ErrorIs(t, err, ErrNotFound, "drafts stay off the public routes")
	_, err = a.BlogBySlug("secret-post")
	assert.ErrorIs(t, err, ErrNotFound, "drafts stay off the public routes")

	p, err := a.ProjectPreview("secret-project")
	require.NoError(t, err)
	assert.Equal(t, "Secret Project", p.Title)

	b, err := a.BlogPreview("secret-post")
	require.NoError(t, err)
	assert.Equal(t, "Secret Post", b.Title)

	_, err = a.ProjectPreview("no-such-slug")
	assert.ErrorIs(t, err, ErrNotFound)
}
