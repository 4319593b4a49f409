// Package views holds the templ components for the portfolio site. The
// components are handed to the portfolio App through its ViewFuncs struct,
// so all markup lives here and the application package stays render-free.
package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/hatamisugandi/portfolio"
)

// Funcs builds the ViewFuncs set for the given site configuration.
func Funcs(cfg portfolio.SiteConfig) portfolio.ViewFuncs {
	r := &renderer{cfg: cfg}
	return portfolio.ViewFuncs{
		Home:        r.home,
		ProjectPage: r.projectPage,
		BlogPage:    r.blogPage,

		AdminLogin:     r.adminLogin,
		AdminDashboard: r.adminDashboard,
		AdminProjects:  r.adminProjects,
		AdminBlogs:     r.adminBlogs,
		ProjectForm:    r.projectForm,
		BlogForm:       r.blogForm,
		AdminImages:    r.adminImages,

		NotFound:    r.notFound,
		ServerError: r.serverError,
	}
}

type renderer struct {
	cfg portfolio.SiteConfig
}

// component wraps a buffer-writing function as a templ.Component.
func component(fn func(b *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		fn(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// page wraps body markup in the shared document shell.
func (r *renderer) page(title string, fn func(b *bytes.Buffer)) templ.Component {
	return component(func(b *bytes.Buffer) {
		b.WriteString("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\">")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
		b.WriteString("<title>" + esc(title) + "</title>")
		if r.cfg.Description != "" {
			b.WriteString("<meta name=\"description\" content=\"" + esc(r.cfg.Description) + "\">")
		}
		b.WriteString("<link rel=\"icon\" href=\"/favicon.svg\">")
		b.WriteString("<link rel=\"stylesheet\" href=\"/public/styles.css\">")
		b.WriteString("</head><body>")
		b.WriteString("<header class=\"site-header\"><a href=\"/\" class=\"logo\">" + esc(r.cfg.Name) + "</a>")
		b.WriteString("<nav><a href=\"/#about\">About</a> <a href=\"/#projects\">Projects</a> <a href=\"/#blog\">Blog</a> <a href=\"/#faq\">FAQ</a></nav></header>")
		b.WriteString("<main>")
		fn(b)
		b.WriteString("</main>")
		b.WriteString("<footer class=\"site-footer\"><p>&copy; " + esc(r.cfg.Author) + "</p></footer>")
		b.WriteString("</body></html>")
	})
}
