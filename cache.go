package portfolio

import (
	"sync"
	"time"
)

// ContentCache is an in-memory cache of the published projects and blog
// posts that the public pages render, with TTL. Admin mutations call
// Invalidate so the next public read sees fresh data.
type ContentCache struct {
	mu       sync.RWMutex
	projects []Project
	blogs    []Blog
	fetched  time.Time
	ttl      time.Duration
	store    *Store
}

// NewContentCache creates a ContentCache backed by the given Store.
func NewContentCache(s *Store, ttl time.Duration) *ContentCache {
	return &ContentCache{store: s, ttl: ttl}
}

func (c *ContentCache) valid() bool {
	return !c.fetched.IsZero() && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *ContentCache) Invalidate() {
	c.mu.Lock()
	c.projects = nil
	c.blogs = nil
	c.fetched = time.Time{}
	c.mu.Unlock()
}

func (c *ContentCache) load() error {
	if c.valid() {
		return nil
	}
	projects, err := c.store.ListPublishedProjects()
	if err != nil {
		return err
	}
	blogs, err := c.store.ListPublishedBlogs(0)
	if err != nil {
		return err
	}
	c.projects = projects
	c.blogs = blogs
	c.fetched = time.Now()
	return nil
}

// ensureLoaded returns cached content after ensuring the cache is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *ContentCache) ensureLoaded() ([]Project, []Blog, error) {
	c.mu.RLock()
	if c.valid() {
		projects, blogs := c.projects, c.blogs
		c.mu.RUnlock()
		return projects, blogs, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, nil, err
	}
	return c.projects, c.blogs, nil
}

// Projects returns published projects in display order.
func (c *ContentCache) Projects() ([]Project, error) {
	projects, _, err := c.ensureLoaded()
	return projects, err
}

// FeaturedProjects returns up to limit published projects flagged featured.
func (c *ContentCache) FeaturedProjects(limit int) ([]Project, error) {
	projects, _, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	var featured []Project
	for _, p := range projects {
		if !p.Featured {
			continue
		}
		featured = append(featured, p)
		if limit > 0 && len(featured) == limit {
			break
		}
	}
	return featured, nil
}

// Blogs returns published posts, newest publish date first. limit <= 0
// means no limit.
func (c *ContentCache) Blogs(limit int) ([]Blog, error) {
	_, blogs, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(blogs) > limit {
		blogs = blogs[:limit]
	}
	return blogs, nil
}

// FeaturedBlogs returns up to limit published posts flagged featured.
func (c *ContentCache) FeaturedBlogs(limit int) ([]Blog, error) {
	_, blogs, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	var featured []Blog
	for _, b := range blogs {
		if !b.Featured {
			continue
		}
		featured = append(featured, b)
		if limit > 0 && len(featured) == limit {
			break
		}
	}
	return featured, nil
}

// ProjectBySlug returns a published project by slug from the cache.
func (c *ContentCache) ProjectBySlug(slug string) (Project, error) {
	projects, _, err := c.ensureLoaded()
	if err != nil {
		return Project{}, err
	}
	for _, p := range projects {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Project{}, ErrNotFound
}

// BlogBySlug returns a published post by slug from the cache.
func (c *ContentCache) BlogBySlug(slug string) (Blog, error) {
	_, blogs, err := c.ensureLoaded()
	if err != nil {
		return Blog{}, err
	}
	for _, b := range blogs {
		if b.Slug == slug {
			return b, nil
		}
	}
	return Blog{}, ErrNotFound
}
