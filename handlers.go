package portfolio

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

func (a *App) handleHome(c echo.Context) error {
	featured, err := a.Actions.FeaturedProjects()
	if err != nil {
		return err
	}
	projects, err := a.Actions.PublishedProjects()
	if err != nil {
		return err
	}
	blogs, err := a.Actions.PublishedBlogs(featuredBlogLimit)
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, a.Views.Home(featured, projects, blogs))
}

func (a *App) handleProject(c echo.Context) error {
	slug := c.Param("slug")
	project, err := a.Actions.ProjectBySlug(slug)
	if err != nil {
		if err == ErrNotFound {
			return render(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	projects, err := a.Actions.PublishedProjects()
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, a.Views.ProjectPage(project, relatedProjects(project, projects)))
}

func (a *App) handleBlog(c echo.Context) error {
	slug := c.Param("slug")
	blog, err := a.Actions.BlogBySlug(slug)
	if err != nil {
		if err == ErrNotFound {
			return render(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	// Best-effort counter bump; the page renders either way.
	if err := a.Actions.RecordBlogView(blog.ID); err != nil {
		c.Logger().Errorf("record view for %s: %v", blog.ID, err)
	}
	recent, err := a.Actions.PublishedBlogs(featuredBlogLimit)
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, a.Views.BlogPage(blog, recent))
}

func handleBlogRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/")
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

// handleRobots generates robots.txt dynamically using the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = render(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = render(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// relatedProjects returns projects sharing at least one technology with
// the current one, keeping display order.
func relatedProjects(current Project, projects []Project) []Project {
	techSet := make(map[string]struct{})
	for _, t := range current.Technologies {
		tech := strings.ToLower(strings.TrimSpace(t))
		if tech != "" {
			techSet[tech] = struct{}{}
		}
	}
	var related []Project
	for _, p := range projects {
		if p.Slug == current.Slug {
			continue
		}
		for _, t := range p.Technologies {
			if _, ok := techSet[strings.ToLower(strings.TrimSpace(t))]; ok {
				related = append(related, p)
				break
			}
		}
	}
	return related
}
