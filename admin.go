package portfolio

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return render(c, http.StatusOK, a.Views.AdminLogin(false, CsrfToken(c)))
	}
	projects, err := a.Actions.AllProjects()
	if err != nil {
		return err
	}
	blogs, err := a.Actions.AllBlogs()
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, a.Views.AdminDashboard(projects, blogs, CsrfToken(c)))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(ip)
	return render(c, http.StatusOK, a.Views.AdminLogin(true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

// --- Projects ---

func (a *App) handleAdminProjects(c echo.Context) error {
	return a.renderAdminProjects(c, c.QueryParam("msg"))
}

func (a *App) handleAdminProjectNew(c echo.Context) error {
	p := Project{Status: StatusPublished, Author: a.Config.Author}
	return render(c, http.StatusOK, a.Views.ProjectForm(p, nil, CsrfToken(c)))
}

func (a *App) handleAdminProjectEdit(c echo.Context) error {
	p, err := a.Actions.ProjectByID(c.Param("id"))
	if err != nil {
		if err == ErrNotFound {
			return c.NoContent(http.StatusNotFound)
		}
		return err
	}
	return render(c, http.StatusOK, a.Views.ProjectForm(p, nil, CsrfToken(c)))
}

// handleAdminProjectPreview shows a project on the public detail page no
// matter its status. Drafts stay invisible on the public routes, so this
// is the only way to proof one before publishing.
func (a *App) handleAdminProjectPreview(c echo.Context) error {
	p, err := a.Actions.ProjectPreview(c.Param("slug"))
	if err != nil {
		if err == ErrNotFound {
			return c.NoContent(http.StatusNotFound)
		}
		return err
	}
	return render(c, http.StatusOK, a.Views.ProjectPage(p, nil))
}

// handleAdminProjectSave creates or updates a project depending on the
// hidden id field. Validation failures re-render the form with the
// offending fields marked; success navigates back to the list.
func (a *App) handleAdminProjectSave(c echo.Context) error {
	form, err := adminForm(c)
	if err != nil {
		return err
	}
	id := form.Get("id")

	var saveErr error
	if id == "" {
		_, saveErr = a.Actions.CreateProject(form)
	} else {
		_, saveErr = a.Actions.UpdateProject(id, form)
	}
	if saveErr != nil {
		var verr *ValidationError
		if errors.As(saveErr, &verr) {
			p, _ := ParseProjectForm(form)
			p.ID = id
			return render(c, http.StatusUnprocessableEntity, a.Views.ProjectForm(p, verr, CsrfToken(c)))
		}
		if errors.Is(saveErr, ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		return saveErr
	}
	return c.Redirect(http.StatusSeeOther, "/admin/projects/?msg=saved")
}

// handleAdminProjectReorder applies (id, order_index) pairs submitted as
// parallel id/order_index form values, then re-renders the list in place.
func (a *App) handleAdminProjectReorder(c echo.Context) error {
	form, err := adminForm(c)
	if err != nil {
		return err
	}
	ids := form["id"]
	indexes := form["order_index"]
	if len(ids) != len(indexes) {
		return echo.NewHTTPError(http.StatusBadRequest, "mismatched reorder pairs")
	}
	updates := make([]OrderUpdate, 0, len(ids))
	for i, id := range ids {
		n, err := strconv.Atoi(indexes[i])
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "order_index must be numeric")
		}
		updates = append(updates, OrderUpdate{ID: id, OrderIndex: n})
	}
	if err := a.Actions.ReorderProjects(updates); err != nil {
		return err
	}
	return a.renderAdminProjects(c, "reordered")
}

func (a *App) handleAdminProjectDelete(c echo.Context) error {
	if err := a.Actions.DeleteProject(c.Param("id")); err != nil {
		if err == ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "project not found")
		}
		return err
	}
	return a.renderAdminProjects(c, "deleted")
}

func (a *App) renderAdminProjects(c echo.Context, msg string) error {
	projects, err := a.Actions.AllProjects()
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, a.Views.AdminProjects(projects, msg, CsrfToken(c)))
}

// --- Blogs ---

func (a *App) handleAdminBlogs(c echo.Context) error {
	return a.renderAdminBlogs(c, c.QueryParam("msg"))
}

func (a *App) handleAdminBlogNew(c echo.Context) error {
	b := Blog{Status: StatusPublished, Author: a.Config.Author}
	return render(c, http.StatusOK, a.Views.BlogForm(b, nil, CsrfToken(c)))
}

func (a *App) handleAdminBlogEdit(c echo.Context) error {
	b, err := a.Actions.BlogByID(c.Param("id"))
	if err != nil {
		if err == ErrNotFound {
			return c.NoContent(http.StatusNotFound)
		}
		return err
	}
	return render(c, http.StatusOK, a.Views.BlogForm(b, nil, CsrfToken(c)))
}

// handleAdminBlogPreview shows a post on the public detail page no matter
// its status.
func (a *App) handleAdminBlogPreview(c echo.Context) error {
	b, err := a.Actions.BlogPreview(c.Param("slug"))
	if err != nil {
		if err == ErrNotFound {
			return c.NoContent(http.StatusNotFound)
		}
		return err
	}
	return render(c, http.StatusOK, a.Views.BlogPage(b, nil))
}

func (a *App) handleAdminBlogSave(c echo.Context) error {
	form, err := adminForm(c)
	if err != nil {
		return err
	}
	id := form.Get("id")

	var saveErr error
	if id == "" {
		_, saveErr = a.Actions.CreateBlog(form)
	} else {
		_, saveErr = a.Actions.UpdateBlog(id, form)
	}
	if saveErr != nil {
		var verr *ValidationError
		if errors.As(saveErr, &verr) {
			b, _ := ParseBlogForm(form)
			b.ID = id
			return render(c, http.StatusUnprocessableEntity, a.Views.BlogForm(b, verr, CsrfToken(c)))
		}
		if errors.Is(saveErr, ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		return saveErr
	}
	return c.Redirect(http.StatusSeeOther, "/admin/blogs/?msg=saved")
}

func (a *App) handleAdminBlogDelete(c echo.Context) error {
	if err := a.Actions.DeleteBlog(c.Param("id")); err != nil {
		if err == ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "blog not found")
		}
		return err
	}
	return a.renderAdminBlogs(c, "deleted")
}

func (a *App) renderAdminBlogs(c echo.Context, msg string) error {
	blogs, err := a.Actions.AllBlogs()
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, a.Views.AdminBlogs(blogs, msg, CsrfToken(c)))
}

// adminForm parses the request body into url.Values for the actions layer.
func adminForm(c echo.Context) (url.Values, error) {
	if err := c.Request().ParseForm(); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}
	return c.Request().PostForm, nil
}
