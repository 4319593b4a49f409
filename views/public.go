package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/hatamisugandi/portfolio"
)

func (r *renderer) home(featured, projects []portfolio.Project, blogs []portfolio.Blog) templ.Component {
	return r.page(r.cfg.Name, func(b *bytes.Buffer) {
		// Hero
		b.WriteString("<section id=\"hero\" class=\"hero\"><h1>" + esc(r.cfg.Name) + "</h1>")
		if r.cfg.Description != "" {
			b.WriteString("<p class=\"tagline\">" + esc(r.cfg.Description) + "</p>")
		}
		b.WriteString("<a class=\"cta\" href=\"/#projects\">See my work</a></section>")

		// About
		b.WriteString("<section id=\"about\" class=\"about\"><h2>About</h2>")
		b.WriteString("<p>Hi, I&#39;m " + esc(r.cfg.Author) + ", a software engineer building web things. ")
		b.WriteString("This site collects my projects and writing.</p></section>")

		if len(featured) > 0 {
			b.WriteString("<section id=\"featured\" class=\"projects\"><h2>Featured Projects</h2><div class=\"grid\">")
			for _, p := range featured {
				writeProjectCard(b, p)
			}
			b.WriteString("</div></section>")
		}

		b.WriteString("<section id=\"projects\" class=\"projects\"><h2>Projects</h2>")
		if len(projects) == 0 {
			b.WriteString("<p>Nothing here yet.</p>")
		} else {
			b.WriteString("<div class=\"grid\">")
			for _, p := range projects {
				writeProjectCard(b, p)
			}
			b.WriteString("</div>")
		}
		b.WriteString("</section>")

		b.WriteString("<section id=\"blog\" class=\"blog\"><h2>Latest Posts</h2>")
		if len(blogs) == 0 {
			b.WriteString("<p>No posts yet.</p>")
		} else {
			b.WriteString("<ul class=\"post-list\">")
			for _, post := range blogs {
				writeBlogCard(b, post)
			}
			b.WriteString("</ul>")
		}
		b.WriteString("</section>")

		writeFAQ(b)
	})
}

func writeProjectCard(b *bytes.Buffer, p portfolio.Project) {
	b.WriteString("<article class=\"card\">")
	if p.ImageURL != "" {
		b.WriteString("<img src=\"" + esc(p.ImageURL) + "\" alt=\"" + esc(p.Title) + "\" loading=\"lazy\">")
	}
	b.WriteString("<h3><a href=\"/projects/" + esc(p.Slug) + "/\">" + esc(p.Title) + "</a></h3>")
	if p.ShortDescription != "" {
		b.WriteString("<p>" + esc(p.ShortDescription) + "</p>")
	}
	if len(p.Technologies) > 0 {
		b.WriteString("<ul class=\"tags\">")
		for _, t := range p.Technologies {
			b.WriteString("<li>" + esc(t) + "</li>")
		}
		b.WriteString("</ul>")
	}
	b.WriteString("</article>")
}

func writeBlogCard(b *bytes.Buffer, post portfolio.Blog) {
	b.WriteString("<li class=\"post-card\">")
	b.WriteString("<a href=\"/blog/" + esc(post.Slug) + "/\">" + esc(post.Title) + "</a>")
	b.WriteString("<span class=\"meta\">" + esc(formatDate(post.PublishedAt)))
	if label := readingTimeLabel(post.ReadingTime); label != "" {
		b.WriteString(" &middot; " + esc(label))
	}
	b.WriteString("</span>")
	if post.Excerpt != "" {
		b.WriteString("<p>" + esc(post.Excerpt) + "</p>")
	}
	b.WriteString("</li>")
}

func writeFAQ(b *bytes.Buffer) {
	faqs := []struct{ q, a string }{
		{"Are you available for freelance work?", "Yes, reach out and tell me about your project."},
		{"What do you mainly work with?", "Web applications, from backend services to the UI in front of them."},
		{"Can I use your project code?", "Most of it is open source; check the repository license on each project page."},
	}
	b.WriteString("<section id=\"faq\" class=\"faq\"><h2>FAQ</h2>")
	for _, f := range faqs {
		b.WriteString("<details><summary>" + esc(f.q) + "</summary><p>" + esc(f.a) + "</p></details>")
	}
	b.WriteString("</section>")
}

func (r *renderer) projectPage(p portfolio.Project, related []portfolio.Project) templ.Component {
	return r.page(p.Title+" | "+r.cfg.Name, func(b *bytes.Buffer) {
		b.WriteString("<article class=\"project\"><h1>" + esc(p.Title) + "</h1>")
		if p.Category != "" {
			b.WriteString("<p class=\"category\">" + esc(p.Category) + "</p>")
		}
		if p.ImageURL != "" {
			b.WriteString("<img src=\"" + esc(p.ImageURL) + "\" alt=\"" + esc(p.Title) + "\">")
		}
		if p.Description != "" {
			b.WriteString(paragraphs(p.Description))
		}
		if p.Content != "" {
			b.WriteString(paragraphs(p.Content))
		}
		if len(p.Features) > 0 {
			b.WriteString("<h2>Features</h2><ul>")
			for _, f := range p.Features {
				b.WriteString("<li>" + esc(f) + "</li>")
			}
			b.WriteString("</ul>")
		}
		if len(p.Screenshots) > 0 {
			b.WriteString("<h2>Screenshots</h2><div class=\"screenshots\">")
			for _, s := range p.Screenshots {
				b.WriteString("<img src=\"" + esc(s) + "\" alt=\"Screenshot\" loading=\"lazy\">")
			}
			b.WriteString("</div>")
		}
		if len(p.Technologies) > 0 {
			b.WriteString("<h2>Built with</h2><ul class=\"tags\">")
			for _, t := range p.Technologies {
				b.WriteString("<li>" + esc(t) + "</li>")
			}
			b.WriteString("</ul>")
		}
		b.WriteString("<p class=\"links\">")
		if p.GithubURL != "" {
			b.WriteString("<a href=\"" + esc(p.GithubURL) + "\" rel=\"noopener\">Source</a> ")
		}
		if p.LiveURL != "" {
			b.WriteString("<a href=\"" + esc(p.LiveURL) + "\" rel=\"noopener\">Live site</a>")
		}
		b.WriteString("</p></article>")

		if len(related) > 0 {
			b.WriteString("<aside class=\"related\"><h2>Related projects</h2><div class=\"grid\">")
			for _, rp := range related {
				writeProjectCard(b, rp)
			}
			b.WriteString("</div></aside>")
		}
	})
}

func (r *renderer) blogPage(post portfolio.Blog, recent []portfolio.Blog) templ.Component {
	return r.page(post.Title+" | "+r.cfg.Name, func(b *bytes.Buffer) {
		b.WriteString("<article class=\"post\"><h1>" + esc(post.Title) + "</h1>")
		b.WriteString("<p class=\"meta\">" + esc(post.Author) + " &middot; " + esc(formatDate(post.PublishedAt)))
		if label := readingTimeLabel(post.ReadingTime); label != "" {
			b.WriteString(" &middot; " + esc(label))
		}
		b.WriteString("</p>")
		if post.FeaturedImage != "" {
			b.WriteString("<img src=\"" + esc(post.FeaturedImage) + "\" alt=\"" + esc(post.Title) + "\">")
		}
		b.WriteString(paragraphs(post.Content))
		if len(post.Tags) > 0 {
			b.WriteString("<ul class=\"tags\">")
			for _, t := range post.Tags {
				b.WriteString("<li>" + esc(t) + "</li>")
			}
			b.WriteString("</ul>")
		}
		b.WriteString("</article>")

		if len(recent) > 0 {
			b.WriteString("<aside class=\"recent\"><h2>More posts</h2><ul class=\"post-list\">")
			for _, rp := range recent {
				if rp.Slug == post.Slug {
					continue
				}
				writeBlogCard(b, rp)
			}
			b.WriteString("</ul></aside>")
		}
	})
}

func (r *renderer) notFound() templ.Component {
	return r.page("Not Found | "+r.cfg.Name, func(b *bytes.Buffer) {
		b.WriteString("<section class=\"error\"><h1>404</h1><p>That page does not exist.</p><a href=\"/\">Back home</a></section>")
	})
}

func (r *renderer) serverError() templ.Component {
	return r.page("Error | "+r.cfg.Name, func(b *bytes.Buffer) {
		b.WriteString("<section class=\"error\"><h1>500</h1><p>Something went wrong. Try again shortly.</p><a href=\"/\">Back home</a></section>")
	})
}
