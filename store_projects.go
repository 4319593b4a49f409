package portfolio

import "fmt"

const projectColumns = `id, title, slug, description, short_description, content,
image_url, github_url, live_url, technologies, features, screenshots,
category, featured, status, order_index, author, published_at, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (Project, error) {
	var p Project
	var technologies, features, screenshots string
	var featured int
	var status string
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Description, &p.ShortDescription,
		&p.Content, &p.ImageURL, &p.GithubURL, &p.LiveURL,
		&technologies, &features, &screenshots,
		&p.Category, &featured, &status, &p.OrderIndex, &p.Author,
		&p.PublishedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return Project{}, err
	}
	p.Technologies = splitList(technologies)
	p.Features = splitList(features)
	p.Screenshots = splitList(screenshots)
	p.Featured = featured == 1
	p.Status = Status(status)
	return p, nil
}

func (s *Store) queryProjects(query string, args ...any) ([]Project, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// ListAllProjects returns every project (drafts included) ordered by
// order_index ascending, newest first within the same index.
func (s *Store) ListAllProjects() ([]Project, error) {
	return s.queryProjects(`SELECT ` + projectColumns + ` FROM projects
		ORDER BY order_index ASC, created_at DESC`)
}

// ListPublishedProjects returns published projects in display order.
func (s *Store) ListPublishedProjects() ([]Project, error) {
	return s.queryProjects(`SELECT `+projectColumns+` FROM projects
		WHERE status = ? ORDER BY order_index ASC, created_at DESC`, string(StatusPublished))
}

// ListFeaturedProjects returns up to limit published, featured projects
// in display order.
func (s *Store) ListFeaturedProjects(limit int) ([]Project, error) {
	return s.queryProjects(`SELECT `+projectColumns+` FROM projects
		WHERE status = ? AND featured = 1
		ORDER BY order_index ASC, created_at DESC LIMIT ?`, string(StatusPublished), limit)
}

// GetProjectByID returns a project by id, ErrNotFound when absent.
func (s *Store) GetProjectByID(id string) (Project, error) {
	row := s.db.QueryRow(`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	return scanProject(row)
}

// GetProjectBySlug returns a project by slug, ErrNotFound when absent.
func (s *Store) GetProjectBySlug(slug string) (Project, error) {
	row := s.db.QueryRow(`SELECT `+projectColumns+` FROM projects WHERE slug = ?`, slug)
	return scanProject(row)
}

// InsertProject stores a new project. The store owns created_at and
// updated_at; a duplicate slug surfaces as the UNIQUE constraint error.
func (s *Store) InsertProject(p Project) (Project, error) {
	now := nowUTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := s.db.Exec(`INSERT INTO projects (`+projectColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Slug, p.Description, p.ShortDescription, p.Content,
		p.ImageURL, p.GithubURL, p.LiveURL,
		joinList(p.Technologies), joinList(p.Features), joinList(p.Screenshots),
		p.Category, boolToInt(p.Featured), string(p.Status), p.OrderIndex,
		p.Author, p.PublishedAt, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return Project{}, fmt.Errorf("insert project: %w", err)
	}
	return p, nil
}

// UpdateProject overwrites the mutable fields of a project by id and
// refreshes updated_at. created_at stays as written.
func (s *Store) UpdateProject(p Project) (Project, error) {
	p.UpdatedAt = nowUTC()
	res, err := s.db.Exec(`UPDATE projects SET
		title = ?, slug = ?, description = ?, short_description = ?, content = ?,
		image_url = ?, github_url = ?, live_url = ?,
		technologies = ?, features = ?, screenshots = ?,
		category = ?, featured = ?, status = ?, order_index = ?, author = ?,
		published_at = ?, updated_at = ?
		WHERE id = ?`,
		p.Title, p.Slug, p.Description, p.ShortDescription, p.Content,
		p.ImageURL, p.GithubURL, p.LiveURL,
		joinList(p.Technologies), joinList(p.Features), joinList(p.Screenshots),
		p.Category, boolToInt(p.Featured), string(p.Status), p.OrderIndex, p.Author,
		p.PublishedAt, p.UpdatedAt, p.ID)
	if err != nil {
		return Project{}, fmt.Errorf("update project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Project{}, ErrNotFound
	}
	return p, nil
}

// DeleteProject removes a project by id, ErrNotFound when absent.
func (s *Store) DeleteProject(id string) error {
	res, err := s.db.Exec(`DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateProjectOrder applies a batch of order_index changes in a single
// transaction, so the batch lands fully or not at all.
func (s *Store) UpdateProjectOrder(updates []OrderUpdate) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	now := nowUTC()
	for _, u := range updates {
		if _, err := tx.Exec(`UPDATE projects SET order_index = ?, updated_at = ? WHERE id = ?`,
			u.OrderIndex, now, u.ID); err != nil {
			return fmt.Errorf("reorder project %s: %w", u.ID, err)
		}
	}
	return tx.Commit()
}
