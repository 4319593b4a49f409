package portfolio

import (
	"fmt"
	"net/url"

	"github.com/google/uuid"
)

// Home-page section limits, mirroring how many cards the layout shows.
const (
	featuredProjectLimit = 6
	featuredBlogLimit    = 3
)

// Actions is the content workflow layer: each method composes validation,
// derived-field computation, and store calls, then invalidates the public
// cache on mutation. HTTP handlers stay thin wrappers around it.
type Actions struct {
	store *Store
	cache *ContentCache
}

// NewActions returns an Actions layer over the given store and cache.
func NewActions(store *Store, cache *ContentCache) *Actions {
	return &Actions{store: store, cache: cache}
}

// --- Projects ---

// AllProjects lists every project for the admin dashboard.
func (a *Actions) AllProjects() ([]Project, error) {
	return a.store.ListAllProjects()
}

// PublishedProjects lists published projects in display order.
func (a *Actions) PublishedProjects() ([]Project, error) {
	return a.cache.Projects()
}

// FeaturedProjects lists the published projects featured on the home page.
func (a *Actions) FeaturedProjects() ([]Project, error) {
	return a.cache.FeaturedProjects(featuredProjectLimit)
}

// ProjectByID looks a project up by id for the admin edit form.
func (a *Actions) ProjectByID(id string) (Project, error) {
	return a.store.GetProjectByID(id)
}

// ProjectBySlug looks a published project up by its public URL key.
func (a *Actions) ProjectBySlug(slug string) (Project, error) {
	return a.cache.ProjectBySlug(slug)
}

// ProjectPreview looks a project up by slug regardless of status, so the
// admin can see a draft the way visitors will.
func (a *Actions) ProjectPreview(slug string) (Project, error) {
	return a.store.GetProjectBySlug(slug)
}

// CreateProject validates submitted form values, fills derived fields, and
// inserts the record. A duplicate slug is the store's constraint to reject.
func (a *Actions) CreateProject(form url.Values) (Project, error) {
	p, err := ParseProjectForm(form)
	if err != nil {
		return Project{}, err
	}
	p.ID = uuid.NewString()
	p.PublishedAt = defaultPublishedAt(p.Status, p.PublishedAt)
	created, err := a.store.InsertProject(p)
	if err != nil {
		return Project{}, fmt.Errorf("create project: %w", err)
	}
	a.cache.Invalidate()
	return created, nil
}

// UpdateProject runs the create pipeline keyed by id: a full overwrite of
// the mutable fields, with derived fields recomputed.
func (a *Actions) UpdateProject(id string, form url.Values) (Project, error) {
	p, err := ParseProjectForm(form)
	if err != nil {
		return Project{}, err
	}
	p.ID = id
	p.PublishedAt = defaultPublishedAt(p.Status, p.PublishedAt)
	updated, err := a.store.UpdateProject(p)
	if err != nil {
		if err == ErrNotFound {
			return Project{}, err
		}
		return Project{}, fmt.Errorf("update project: %w", err)
	}
	a.cache.Invalidate()
	return updated, nil
}

// DeleteProject removes a project by id. Deletion is immediate and
// irreversible; there is no soft delete.
func (a *Actions) DeleteProject(id string) error {
	if err := a.store.DeleteProject(id); err != nil {
		return err
	}
	a.cache.Invalidate()
	return nil
}

// ReorderProjects applies a batch of display-order changes in one store
// transaction, then refreshes the public pages.
func (a *Actions) ReorderProjects(updates []OrderUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	if err := a.store.UpdateProjectOrder(updates); err != nil {
		return err
	}
	a.cache.Invalidate()
	return nil
}

// --- Blogs ---

// AllBlogs lists every post for the admin dashboard.
func (a *Actions) AllBlogs() ([]Blog, error) {
	return a.store.ListAllBlogs()
}

// PublishedBlogs lists published posts, newest first. limit <= 0 means all.
func (a *Actions) PublishedBlogs(limit int) ([]Blog, error) {
	return a.cache.Blogs(limit)
}

// FeaturedBlogs lists the published posts featured on the home page.
func (a *Actions) FeaturedBlogs() ([]Blog, error) {
	return a.cache.FeaturedBlogs(featuredBlogLimit)
}

// BlogByID looks a post up by id for the admin edit form.
func (a *Actions) BlogByID(id string) (Blog, error) {
	return a.store.GetBlogByID(id)
}

// BlogBySlug looks a published post up by its public URL key.
func (a *Actions) BlogBySlug(slug string) (Blog, error) {
	return a.cache.BlogBySlug(slug)
}

// BlogPreview looks a post up by slug regardless of status, so the admin
// can see a draft the way visitors will.
func (a *Actions) BlogPreview(slug string) (Blog, error) {
	return a.store.GetBlogBySlug(slug)
}

// CreateBlog validates submitted form values, recomputes reading time,
// defaults the publish timestamp, and inserts the record.
func (a *Actions) CreateBlog(form url.Values) (Blog, error) {
	b, err := ParseBlogForm(form)
	if err != nil {
		return Blog{}, err
	}
	b.ID = uuid.NewString()
	b.ReadingTime = ReadingTime(b.Content)
	b.PublishedAt = defaultPublishedAt(b.Status, b.PublishedAt)
	created, err := a.store.InsertBlog(b)
	if err != nil {
		return Blog{}, fmt.Errorf("create blog: %w", err)
	}
	a.cache.Invalidate()
	return created, nil
}

// UpdateBlog overwrites the mutable fields of a post by id. Reading time
// is always rederived from the submitted content; a publish timestamp the
// form carried through is left untouched even when the status moves off
// published.
func (a *Actions) UpdateBlog(id string, form url.Values) (Blog, error) {
	b, err := ParseBlogForm(form)
	if err != nil {
		return Blog{}, err
	}
	b.ID = id
	b.ReadingTime = ReadingTime(b.Content)
	b.PublishedAt = defaultPublishedAt(b.Status, b.PublishedAt)
	updated, err := a.store.UpdateBlog(b)
	if err != nil {
		if err == ErrNotFound {
			return Blog{}, err
		}
		return Blog{}, fmt.Errorf("update blog: %w", err)
	}
	a.cache.Invalidate()
	return updated, nil
}

// DeleteBlog removes a post by id.
func (a *Actions) DeleteBlog(id string) error {
	if err := a.store.DeleteBlog(id); err != nil {
		return err
	}
	a.cache.Invalidate()
	return nil
}

// RecordBlogView bumps a post's view counter. Reads keep coming from the
// cache, so the counter does not invalidate it.
func (a *Actions) RecordBlogView(id string) error {
	return a.store.IncrementBlogViews(id)
}
