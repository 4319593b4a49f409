package views

import (
	"bytes"
	"fmt"

	"github.com/a-h/templ"

	"github.com/hatamisugandi/portfolio"
)

// maxScreenshotInputs caps how many screenshot URLs the form offers; the
// limit lives here on purpose, the validation layer does not enforce it.
const maxScreenshotInputs = 4

func (r *renderer) adminLogin(showError bool, csrfToken string) templ.Component {
	return r.page("Admin | "+r.cfg.Name, func(b *bytes.Buffer) {
		b.WriteString("<section class=\"admin-login\"><h1>Admin</h1>")
		if showError {
			b.WriteString("<p class=\"form-error\">Wrong password.</p>")
		}
		b.WriteString("<form method=\"post\" action=\"/admin/login/\">")
		writeCsrf(b, csrfToken)
		b.WriteString("<label>Password <input type=\"password\" name=\"password\" autofocus></label>")
		b.WriteString("<button type=\"submit\">Sign in</button></form></section>")
	})
}

func (r *renderer) adminDashboard(projects []portfolio.Project, blogs []portfolio.Blog, csrfToken string) templ.Component {
	return r.page("Dashboard | "+r.cfg.Name, func(b *bytes.Buffer) {
		writeAdminNav(b, csrfToken)
		b.WriteString("<section class=\"admin-dashboard\"><h1>Dashboard</h1>")
		fmt.Fprintf(b, "<p><a href=\"/admin/projects/\">%d projects</a> &middot; <a href=\"/admin/blogs/\">%d blog posts</a></p>", len(projects), len(blogs))

		published, drafts := 0, 0
		for _, p := range projects {
			if p.Status == portfolio.StatusPublished {
				published++
			} else if p.Status == portfolio.StatusDraft {
				drafts++
			}
		}
		for _, post := range blogs {
			if post.Status == portfolio.StatusPublished {
				published++
			} else if post.Status == portfolio.StatusDraft {
				drafts++
			}
		}
		fmt.Fprintf(b, "<p>%d published, %d drafts</p>", published, drafts)
		b.WriteString("</section>")
	})
}

func (r *renderer) adminProjects(projects []portfolio.Project, message, csrfToken string) templ.Component {
	return r.page("Projects | "+r.cfg.Name, func(b *bytes.Buffer) {
		writeAdminNav(b, csrfToken)
		b.WriteString("<section class=\"admin-list\"><h1>Projects</h1>")
		writeFlash(b, message)
		b.WriteString("<p><a class=\"button\" href=\"/admin/projects/new/\">New project</a></p>")
		if len(projects) == 0 {
			b.WriteString("<p>No projects yet.</p></section>")
			return
		}
		b.WriteString("<form method=\"post\" action=\"/admin/projects/reorder/\">")
		writeCsrf(b, csrfToken)
		b.WriteString("<table><thead><tr><th>Order</th><th>Title</th><th>Status</th><th>Featured</th><th></th></tr></thead><tbody>")
		for _, p := range projects {
			b.WriteString("<tr>")
			b.WriteString("<td><input type=\"hidden\" name=\"id\" value=\"" + esc(p.ID) + "\">")
			fmt.Fprintf(b, "<input type=\"number\" name=\"order_index\" value=\"%d\"></td>", p.OrderIndex)
			b.WriteString("<td><a href=\"/admin/projects/" + esc(p.ID) + "/edit/\">" + esc(p.Title) + "</a></td>")
			b.WriteString("<td>" + esc(string(p.Status)) + "</td>")
			if p.Featured {
				b.WriteString("<td>&#9733;</td>")
			} else {
				b.WriteString("<td></td>")
			}
			b.WriteString("<td><a href=\"/admin/projects/preview/" + esc(p.Slug) + "/\">preview</a> " + deleteButton("/admin/projects/"+p.ID+"/", csrfToken) + "</td>")
			b.WriteString("</tr>")
		}
		b.WriteString("</tbody></table><button type=\"submit\">Save order</button></form></section>")
	})
}

func (r *renderer) adminBlogs(blogs []portfolio.Blog, message, csrfToken string) templ.Component {
	return r.page("Blog Posts | "+r.cfg.Name, func(b *bytes.Buffer) {
		writeAdminNav(b, csrfToken)
		b.WriteString("<section class=\"admin-list\"><h1>Blog Posts</h1>")
		writeFlash(b, message)
		b.WriteString("<p><a class=\"button\" href=\"/admin/blogs/new/\">New post</a></p>")
		if len(blogs) == 0 {
			b.WriteString("<p>No posts yet.</p></section>")
			return
		}
		b.WriteString("<table><thead><tr><th>Title</th><th>Status</th><th>Published</th><th>Views</th><th></th></tr></thead><tbody>")
		for _, post := range blogs {
			b.WriteString("<tr>")
			b.WriteString("<td><a href=\"/admin/blogs/" + esc(post.ID) + "/edit/\">" + esc(post.Title) + "</a></td>")
			b.WriteString("<td>" + esc(string(post.Status)) + "</td>")
			b.WriteString("<td>" + esc(formatDate(post.PublishedAt)) + "</td>")
			fmt.Fprintf(b, "<td>%d</td>", post.ViewCount)
			b.WriteString("<td><a href=\"/admin/blogs/preview/" + esc(post.Slug) + "/\">preview</a> " + deleteButton("/admin/blogs/"+post.ID+"/", csrfToken) + "</td>")
			b.WriteString("</tr>")
		}
		b.WriteString("</tbody></table></section>")
	})
}

func (r *renderer) projectForm(p portfolio.Project, verr *portfolio.ValidationError, csrfToken string) templ.Component {
	heading := "New Project"
	if p.ID != "" {
		heading = "Edit Project"
	}
	return r.page(heading+" | "+r.cfg.Name, func(b *bytes.Buffer) {
		writeAdminNav(b, csrfToken)
		b.WriteString("<section class=\"admin-form\"><h1>" + heading + "</h1>")
		b.WriteString("<form method=\"post\" action=\"/admin/projects/save/\">")
		writeCsrf(b, csrfToken)
		b.WriteString("<input type=\"hidden\" name=\"id\" value=\"" + esc(p.ID) + "\">")
		b.WriteString("<input type=\"hidden\" name=\"published_at\" value=\"" + esc(p.PublishedAt) + "\">")

		writeTextField(b, verr, "title", "Title", p.Title)
		writeTextField(b, verr, "slug", "Slug", p.Slug)
		writeTextField(b, verr, "short_description", "Short description", p.ShortDescription)
		writeTextArea(b, verr, "description", "Description", p.Description)
		writeTextArea(b, verr, "content", "Content", p.Content)
		writeTextField(b, verr, "image_url", "Image URL", p.ImageURL)
		writeTextField(b, verr, "github_url", "GitHub URL", p.GithubURL)
		writeTextField(b, verr, "live_url", "Live URL", p.LiveURL)
		writeTextField(b, verr, "technologies", "Technologies (comma separated)", JoinList(p.Technologies))
		writeTextField(b, verr, "features", "Features (comma separated)", JoinList(p.Features))
		for i := 0; i < maxScreenshotInputs; i++ {
			val := ""
			if i < len(p.Screenshots) {
				val = p.Screenshots[i]
			}
			fmt.Fprintf(b, "<label>Screenshot %d <input type=\"text\" name=\"screenshots\" value=\"%s\"></label>", i+1, esc(val))
		}
		writeTextField(b, verr, "category", "Category", p.Category)
		writeTextField(b, verr, "author", "Author", p.Author)
		writeCheckbox(b, "featured", "Featured", p.Featured)
		writeStatusSelect(b, verr, p.Status)
		fmt.Fprintf(b, "<label>Display order <input type=\"number\" name=\"order_index\" value=\"%d\"></label>", p.OrderIndex)

		b.WriteString("<button type=\"submit\">Save</button></form></section>")
	})
}

func (r *renderer) blogForm(post portfolio.Blog, verr *portfolio.ValidationError, csrfToken string) templ.Component {
	heading := "New Post"
	if post.ID != "" {
		heading = "Edit Post"
	}
	return r.page(heading+" | "+r.cfg.Name, func(b *bytes.Buffer) {
		writeAdminNav(b, csrfToken)
		b.WriteString("<section class=\"admin-form\"><h1>" + heading + "</h1>")
		b.WriteString("<form method=\"post\" action=\"/admin/blogs/save/\">")
		writeCsrf(b, csrfToken)
		b.WriteString("<input type=\"hidden\" name=\"id\" value=\"" + esc(post.ID) + "\">")
		b.WriteString("<input type=\"hidden\" name=\"published_at\" value=\"" + esc(post.PublishedAt) + "\">")

		writeTextField(b, verr, "title", "Title", post.Title)
		writeTextField(b, verr, "slug", "Slug", post.Slug)
		writeTextField(b, verr, "excerpt", "Excerpt", post.Excerpt)
		writeTextArea(b, verr, "content", "Content", post.Content)
		writeTextField(b, verr, "featured_image", "Featured image URL", post.FeaturedImage)
		writeTextField(b, verr, "author", "Author", post.Author)
		writeTextField(b, verr, "tags", "Tags (comma separated)", JoinList(post.Tags))
		writeTextField(b, verr, "category", "Category", post.Category)
		writeCheckbox(b, "featured", "Featured", post.Featured)
		writeStatusSelect(b, verr, post.Status)

		b.WriteString("<button type=\"submit\">Save</button></form></section>")
	})
}

func (r *renderer) adminImages(images []portfolio.Image, csrfToken string) templ.Component {
	return r.page("Images | "+r.cfg.Name, func(b *bytes.Buffer) {
		writeAdminNav(b, csrfToken)
		b.WriteString("<section class=\"admin-images\"><h1>Images</h1>")
		b.WriteString("<form method=\"post\" action=\"/admin/images/upload/\" enctype=\"multipart/form-data\">")
		writeCsrf(b, csrfToken)
		b.WriteString("<label>Upload (max 5MB) <input type=\"file\" name=\"image\" accept=\"image/*\"></label>")
		b.WriteString("<button type=\"submit\">Upload</button></form>")
		if len(images) == 0 {
			b.WriteString("<p>No uploads yet.</p></section>")
			return
		}
		b.WriteString("<table><thead><tr><th>Preview</th><th>Name</th><th>Dimensions</th><th>Size</th><th></th></tr></thead><tbody>")
		for _, img := range images {
			b.WriteString("<tr>")
			b.WriteString("<td><img src=\"" + esc(img.URL()) + "\" alt=\"" + esc(img.OriginalName) + "\" width=\"80\"></td>")
			b.WriteString("<td><code>" + esc(img.URL()) + "</code></td>")
			fmt.Fprintf(b, "<td>%d&times;%d</td><td>%d bytes</td>", img.Width, img.Height, img.Size)
			b.WriteString("<td>" + deleteButton("/admin/images/"+img.Filename+"/", csrfToken) + "</td>")
			b.WriteString("</tr>")
		}
		b.WriteString("</tbody></table></section>")
	})
}

// --- shared admin fragments ---

func writeAdminNav(b *bytes.Buffer, csrfToken string) {
	b.WriteString("<nav class=\"admin-nav\"><a href=\"/admin/\">Dashboard</a> ")
	b.WriteString("<a href=\"/admin/projects/\">Projects</a> ")
	b.WriteString("<a href=\"/admin/blogs/\">Blog</a> ")
	b.WriteString("<a href=\"/admin/images/\">Images</a>")
	b.WriteString("<form method=\"post\" action=\"/admin/logout/\" class=\"logout\">")
	writeCsrf(b, csrfToken)
	b.WriteString("<button type=\"submit\">Log out</button></form></nav>")
}

func writeCsrf(b *bytes.Buffer, token string) {
	b.WriteString("<input type=\"hidden\" name=\"_csrf\" value=\"" + esc(token) + "\">")
}

func writeFlash(b *bytes.Buffer, message string) {
	if message != "" {
		b.WriteString("<p class=\"flash\">" + esc(message) + "</p>")
	}
}

func writeTextField(b *bytes.Buffer, verr *portfolio.ValidationError, name, label, value string) {
	b.WriteString("<label>" + esc(label) + " <input type=\"text\" name=\"" + name + "\" value=\"" + esc(value) + "\">")
	if msg := verr.Message(name); msg != "" {
		b.WriteString("<span class=\"field-error\">" + esc(msg) + "</span>")
	}
	b.WriteString("</label>")
}

func writeTextArea(b *bytes.Buffer, verr *portfolio.ValidationError, name, label, value string) {
	b.WriteString("<label>" + esc(label) + " <textarea name=\"" + name + "\" rows=\"8\">" + esc(value) + "</textarea>")
	if msg := verr.Message(name); msg != "" {
		b.WriteString("<span class=\"field-error\">" + esc(msg) + "</span>")
	}
	b.WriteString("</label>")
}

func writeCheckbox(b *bytes.Buffer, name, label string, checked bool) {
	b.WriteString("<label class=\"checkbox\"><input type=\"checkbox\" name=\"" + name + "\" value=\"on\"")
	if checked {
		b.WriteString(" checked")
	}
	b.WriteString("> " + esc(label) + "</label>")
}

func writeStatusSelect(b *bytes.Buffer, verr *portfolio.ValidationError, current portfolio.Status) {
	if current == "" {
		current = portfolio.StatusPublished
	}
	b.WriteString("<label>Status <select name=\"status\">")
	for _, s := range []portfolio.Status{portfolio.StatusDraft, portfolio.StatusPublished, portfolio.StatusArchived} {
		b.WriteString("<option value=\"" + string(s) + "\"")
		if s == current {
			b.WriteString(" selected")
		}
		b.WriteString(">" + string(s) + "</option>")
	}
	b.WriteString("</select>")
	if msg := verr.Message("status"); msg != "" {
		b.WriteString("<span class=\"field-error\">" + esc(msg) + "</span>")
	}
	b.WriteString("</label>")
}

// deleteButton renders a small form that issues the DELETE through a
// method-override fetch, keeping the CSRF token in a header.
func deleteButton(path, csrfToken string) string {
	return "<button type=\"button\" class=\"delete\" " +
		"onclick=\"if(confirm('Delete?')){fetch('" + esc(path) + "',{method:'DELETE',headers:{'X-CSRF-Token':'" + esc(csrfToken) + "'}}).then(()=>location.reload())}\">Delete</button>"
}
