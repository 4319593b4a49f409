package portfolio

// Status is the publication state of a content record.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Valid reports whether s is one of the three known states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// Project is a portfolio entry stored in SQLite and rendered by templates.
// Timestamps are RFC3339 UTC strings; an empty PublishedAt means the record
// has never been published.
type Project struct {
	ID               string
	Title            string
	Slug             string
	Description      string
	ShortDescription string
	Content          string
	ImageURL         string
	GithubURL        string
	LiveURL          string
	Technologies     []string
	Features         []string
	Screenshots      []string
	Category         string
	Featured         bool
	Status           Status
	OrderIndex       int
	Author           string
	PublishedAt      string
	CreatedAt        string
	UpdatedAt        string
}

// Blog is a blog post. ReadingTime is derived from Content on every write
// and ViewCount is bumped server-side; neither is user-supplied.
type Blog struct {
	ID            string
	Title         string
	Slug          string
	Excerpt       string
	Content       string
	FeaturedImage string
	Author        string
	Tags          []string
	Category      string
	Featured      bool
	Status        Status
	ReadingTime   int
	ViewCount     int
	PublishedAt   string
	CreatedAt     string
	UpdatedAt     string
}

// Image is metadata for an uploaded file living under public/uploads/.
type Image struct {
	Filename     string
	OriginalName string
	Width        int
	Height       int
	Size         int
	UploadedAt   string
}

// URL returns the publicly resolvable path for the uploaded image.
func (i Image) URL() string {
	return "/public/uploads/" + i.Filename
}

// OrderUpdate is one (id, order_index) pair of a project reorder request.
type OrderUpdate struct {
	ID         string
	OrderIndex int
}
