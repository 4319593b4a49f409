package portfolio

import (
	"path/filepath"
	"testing"
	"time"
)

func setupTestCache(t *testing.T) (*ContentCache, *Store) {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewContentCache(s, time.Minute), s
}

func TestCacheServesStaleUntilInvalidated(t *testing.T) {
	cache, s := setupTestCache(t)

	if _, err := s.InsertProject(testProject("one")); err != nil {
		t.Fatalf("InsertProject failed: %v", err)
	}

	got, err := cache.Projects()
	if err != nil {
		t.Fatalf("Projects failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("count = %d, want 1", len(got))
	}

	// A write behind the cache's back is not visible until Invalidate.
	if _, err := s.InsertProject(testProject("two")); err != nil {
		t.Fatalf("InsertProject failed: %v", err)
	}
	got, _ = cache.Projects()
	if len(got) != 1 {
		t.Errorf("cached count = %d, want stale 1", len(got))
	}

	cache.Invalidate()
	got, _ = cache.Projects()
	if len(got) != 2 {
		t.Errorf("post-invalidate count = %d, want 2", len(got))
	}
}

func TestCacheExcludesUnpublished(t *testing.T) {
	cache, s := setupTestCache(t)

	draft := testBlog("secret")
	draft.Status = StatusDraft
	if _, err := s.InsertBlog(draft); err != nil {
		t.Fatalf("InsertBlog failed: %v", err)
	}
	live := testBlog("public")
	if _, err := s.InsertBlog(live); err != nil {
		t.Fatalf("InsertBlog failed: %v", err)
	}

	if _, err := cache.BlogBySlug("secret"); err != ErrNotFound {
		t.Errorf("draft lookup should return ErrNotFound, got %v", err)
	}
	got, err := cache.BlogBySlug("public")
	if err != nil {
		t.Fatalf("BlogBySlug failed: %v", err)
	}
	if got.Slug != "public" {
		t.Errorf("Slug = %q", got.Slug)
	}

	blogs, err := cache.Blogs(0)
	if err != nil {
		t.Fatalf("Blogs failed: %v", err)
	}
	if len(blogs) != 1 {
		t.Errorf("count = %d, want 1 published", len(blogs))
	}
}

func TestCacheFeaturedFilters(t *testing.T) {
	cache, s := setupTestCache(t)

	plain := testProject("plain")
	if _, err := s.InsertProject(plain); err != nil {
		t.Fatalf("InsertProject failed: %v", err)
	}
	starred := testProject("starred")
	starred.Featured = true
	if _, err := s.InsertProject(starred); err != nil {
		t.Fatalf("InsertProject failed: %v", err)
	}

	got, err := cache.FeaturedProjects(6)
	if err != nil {
		t.Fatalf("FeaturedProjects failed: %v", err)
	}
	if len(got) != 1 || got[0].Slug != "starred" {
		t.Errorf("featured = %v, want just starred", got)
	}
}
