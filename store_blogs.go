package portfolio

import "fmt"

const blogColumns = `id, title, slug, excerpt, content, featured_image, author,
tags, category, featured, status, reading_time, view_count,
published_at, created_at, updated_at`

func scanBlog(row interface{ Scan(...any) error }) (Blog, error) {
	var b Blog
	var tags, status string
	var featured int
	err := row.Scan(&b.ID, &b.Title, &b.Slug, &b.Excerpt, &b.Content,
		&b.FeaturedImage, &b.Author, &tags, &b.Category, &featured, &status,
		&b.ReadingTime, &b.ViewCount, &b.PublishedAt, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return Blog{}, err
	}
	b.Tags = splitList(tags)
	b.Featured = featured == 1
	b.Status = Status(status)
	return b, nil
}

func (s *Store) queryBlogs(query string, args ...any) ([]Blog, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []Blog
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}
	return blogs, rows.Err()
}

// ListAllBlogs returns every blog post (drafts included), newest first.
func (s *Store) ListAllBlogs() ([]Blog, error) {
	return s.queryBlogs(`SELECT ` + blogColumns + ` FROM blogs
		ORDER BY created_at DESC`)
}

// ListPublishedBlogs returns published posts ordered by published_at
// descending then created_at descending. limit <= 0 means no limit.
func (s *Store) ListPublishedBlogs(limit int) ([]Blog, error) {
	q := `SELECT ` + blogColumns + ` FROM blogs
		WHERE status = ? ORDER BY published_at DESC, created_at DESC`
	if limit > 0 {
		return s.queryBlogs(q+` LIMIT ?`, string(StatusPublished), limit)
	}
	return s.queryBlogs(q, string(StatusPublished))
}

// ListFeaturedBlogs returns up to limit published, featured posts.
func (s *Store) ListFeaturedBlogs(limit int) ([]Blog, error) {
	return s.queryBlogs(`SELECT `+blogColumns+` FROM blogs
		WHERE status = ? AND featured = 1
		ORDER BY published_at DESC, created_at DESC LIMIT ?`, string(StatusPublished), limit)
}

// GetBlogByID returns a post by id, ErrNotFound when absent.
func (s *Store) GetBlogByID(id string) (Blog, error) {
	row := s.db.QueryRow(`SELECT `+blogColumns+` FROM blogs WHERE id = ?`, id)
	return scanBlog(row)
}

// GetBlogBySlug returns a post by slug, ErrNotFound when absent.
func (s *Store) GetBlogBySlug(slug string) (Blog, error) {
	row := s.db.QueryRow(`SELECT `+blogColumns+` FROM blogs WHERE slug = ?`, slug)
	return scanBlog(row)
}

// InsertBlog stores a new post. The store owns created_at and updated_at;
// a duplicate slug surfaces as the UNIQUE constraint error.
func (s *Store) InsertBlog(b Blog) (Blog, error) {
	now := nowUTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	_, err := s.db.Exec(`INSERT INTO blogs (`+blogColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Title, b.Slug, b.Excerpt, b.Content, b.FeaturedImage, b.Author,
		joinList(b.Tags), b.Category, boolToInt(b.Featured), string(b.Status),
		b.ReadingTime, b.ViewCount, b.PublishedAt, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return Blog{}, fmt.Errorf("insert blog: %w", err)
	}
	return b, nil
}

// UpdateBlog overwrites the mutable fields of a post by id. view_count and
// created_at are deliberately left out of the statement: the counter moves
// only through IncrementBlogViews.
func (s *Store) UpdateBlog(b Blog) (Blog, error) {
	b.UpdatedAt = nowUTC()
	res, err := s.db.Exec(`UPDATE blogs SET
		title = ?, slug = ?, excerpt = ?, content = ?, featured_image = ?,
		author = ?, tags = ?, category = ?, featured = ?, status = ?,
		reading_time = ?, published_at = ?, updated_at = ?
		WHERE id = ?`,
		b.Title, b.Slug, b.Excerpt, b.Content, b.FeaturedImage,
		b.Author, joinList(b.Tags), b.Category, boolToInt(b.Featured), string(b.Status),
		b.ReadingTime, b.PublishedAt, b.UpdatedAt, b.ID)
	if err != nil {
		return Blog{}, fmt.Errorf("update blog: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Blog{}, ErrNotFound
	}
	return b, nil
}

// DeleteBlog removes a post by id, ErrNotFound when absent.
func (s *Store) DeleteBlog(id string) error {
	res, err := s.db.Exec(`DELETE FROM blogs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementBlogViews bumps the view counter with a single atomic UPDATE so
// concurrent readers cannot lose increments.
func (s *Store) IncrementBlogViews(id string) error {
	res, err := s.db.Exec(`UPDATE blogs SET view_count = view_count + 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
