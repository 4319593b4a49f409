// Package portfolio is a personal portfolio site with a content admin
// area, built with Go, Echo, and templ. Public pages (hero, about,
// projects, blog, FAQ) render from an embedded SQLite store; a
// password-protected admin panel manages the project and blog records.
//
// Page templates are user-provided templ components wired in through the
// ViewFuncs struct; the package owns the handlers, middleware, validation,
// and database operations.
package portfolio

import (
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// ViewFuncs holds the templ components the handlers render. This is the
// inversion-of-control seam that keeps all markup outside this package.
type ViewFuncs struct {
	Home        func(featured []Project, projects []Project, blogs []Blog) templ.Component
	ProjectPage func(p Project, related []Project) templ.Component
	BlogPage    func(b Blog, recent []Blog) templ.Component

	AdminLogin     func(showError bool, csrfToken string) templ.Component
	AdminDashboard func(projects []Project, blogs []Blog, csrfToken string) templ.Component
	AdminProjects  func(projects []Project, message, csrfToken string) templ.Component
	AdminBlogs     func(blogs []Blog, message, csrfToken string) templ.Component
	ProjectForm    func(p Project, verr *ValidationError, csrfToken string) templ.Component
	BlogForm       func(b Blog, verr *ValidationError, csrfToken string) templ.Component
	AdminImages    func(images []Image, csrfToken string) templ.Component

	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// App is the central application. It wires together the store, cache,
// actions, handlers, middleware, and user-provided templates.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Store   *Store
	Cache   *ContentCache
	Actions *Actions
	Views   ViewFuncs

	loginLimiter *LoginLimiter
	customRoutes []func(*App)
	staticDir    string
}

// New creates an App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the database, cache, middleware, and routes, then
// starts the server. It blocks until the server stops.
func (a *App) Start() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("portfolio: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("portfolio: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("portfolio: init store: %w", err)
	}
	a.Store = store
	a.Cache = NewContentCache(store, a.Config.ContentCacheTTL)
	a.Actions = NewActions(store, a.Cache)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// Public pages
	e.GET("/", a.handleHome)
	e.GET("/projects/:slug/", a.handleProject)
	e.GET("/blog", handleBlogRedirect)
	e.GET("/blog/:slug/", a.handleBlog)

	// Admin login surface (outside the session guard)
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)

	// Admin content management, every route behind the session guard
	g := e.Group("/admin", a.requireAdmin)
	g.GET("/projects/", a.handleAdminProjects)
	g.GET("/projects/new/", a.handleAdminProjectNew)
	g.GET("/projects/:id/edit/", a.handleAdminProjectEdit)
	g.GET("/projects/preview/:slug/", a.handleAdminProjectPreview)
	g.POST("/projects/save/", a.handleAdminProjectSave)
	g.POST("/projects/reorder/", a.handleAdminProjectReorder)
	g.DELETE("/projects/:id/", a.handleAdminProjectDelete)
	g.GET("/blogs/", a.handleAdminBlogs)
	g.GET("/blogs/new/", a.handleAdminBlogNew)
	g.GET("/blogs/:id/edit/", a.handleAdminBlogEdit)
	g.GET("/blogs/preview/:slug/", a.handleAdminBlogPreview)
	g.POST("/blogs/save/", a.handleAdminBlogSave)
	g.DELETE("/blogs/:id/", a.handleAdminBlogDelete)
	g.GET("/images/", a.handleImageList)
	g.POST("/images/upload/", a.handleImageUpload)
	g.DELETE("/images/:filename/", a.handleImageDelete)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
