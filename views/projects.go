package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/folio"
	"github.com/eringen/folio/markdown"
)

var sortOptions = []struct{ value, label string }{
	{"year", "Newest"},
	{"title", "Title"},
	{"category", "Category"},
}

// Home is the landing page with the most recent projects.
func Home(site folio.SiteConfig, featured []folio.ProjectCard, preload []string) templ.Component {
	body := component(func(w *writer) {
		w.raw(`<section class="hero">`)
		if len(featured) > 0 {
			lead := featured[0]
			w.child(Picture(lead.Project.CoverImage, lead.Project.Title, "hero-image", lead.Cover, true))
		}
		w.raw(`<div class="hero-text"><h1>`)
		w.text(site.Name)
		w.raw(`</h1><p>`)
		w.text(site.Description)
		w.raw(`</p><a class="button" href="/contact/">Start a project</a></div></section>`)
		w.raw(`<section class="featured"><h2>Recent work</h2>`)
		w.child(ProjectsGrid(featured))
		w.raw(`<p><a href="/projects/">All projects</a></p></section>`)
	})
	meta := folio.PageMeta{Title: site.Name, URL: folio.BuildURL(site.URL)}
	return Layout(site, meta, preload, body)
}

// Projects is the filterable project index.
func Projects(site folio.SiteConfig, cards []folio.ProjectCard, categories []string, active, sort string) templ.Component {
	body := component(func(w *writer) {
		w.raw(`<h1>Projects</h1>`)
		w.raw(`<form class="filters" action="/projects/" method="get" hx-get="/projects/?partial=grid" hx-target="#project-grid" hx-trigger="change">`)
		w.raw(`<select name="category"><option value="">All categories</option>`)
		for _, cat := range categories {
			w.raw(`<option`)
			w.attr("value", cat)
			if cat == active {
				w.raw(` selected`)
			}
			w.raw(`>`)
			w.text(cat)
			w.raw(`</option>`)
		}
		w.raw(`</select><select name="sort">`)
		for _, o := range sortOptions {
			w.raw(`<option`)
			w.attr("value", o.value)
			if o.value == sort {
				w.raw(` selected`)
			}
			w.raw(`>`)
			w.text(o.label)
			w.raw(`</option>`)
		}
		w.raw(`</select><noscript><button type="submit">Apply</button></noscript></form>`)
		w.child(ProjectsGrid(cards))
	})
	meta := folio.PageMeta{
		Title: "Projects | " + site.Name,
		URL:   folio.BuildURL(site.URL, "projects"),
	}
	return Layout(site, meta, nil, body)
}

// ProjectsGrid renders project cards; it is also the htmx fragment returned
// when filters change.
func ProjectsGrid(cards []folio.ProjectCard) templ.Component {
	return component(func(w *writer) {
		w.raw(`<div id="project-grid" class="project-grid">`)
		if len(cards) == 0 {
			w.raw(`<p class="empty">No projects match.</p>`)
		}
		for _, c := range cards {
			p := c.Project
			w.raw(`<article class="project-card"><a`)
			w.attr("href", p.Link())
			w.raw(`>`)
			w.child(Picture(p.CoverImage, p.Title, "card-image", c.Cover, false))
			w.raw(`<h3>`)
			w.text(p.Title)
			w.raw(`</h3><p class="meta">`)
			w.text(joinNonEmpty(" · ", p.Category, p.Location, p.Year))
			w.raw(`</p></a></article>`)
		}
		w.raw(`</div>`)
	})
}

// Project is a single project page.
func Project(site folio.SiteConfig, page folio.ProjectPage) templ.Component {
	p := page.Project
	body := component(func(w *writer) {
		w.raw(`<article class="project"><header class="project-hero">`)
		w.child(Picture(p.CoverImage, p.Title, "project-cover", page.Cover, true))
		w.raw(`<h1>`)
		w.text(p.Title)
		w.raw(`</h1></header><dl class="facts">`)
		fact(w, "Category", p.Category)
		fact(w, "Location", p.Location)
		fact(w, "Year", p.Year)
		fact(w, "Size", p.Size)
		fact(w, "Status", p.Status)
		if len(p.Services) > 0 {
			fact(w, "Services", joinNonEmpty(", ", p.Services...))
		}
		w.raw(`</dl><div class="description">`)
		w.child(markdown.Paragraphs(p.Description))
		w.raw(`</div>`)
		if !p.AdditionalInfo.Empty() {
			w.raw(`<dl class="credits">`)
			fact(w, "Client", p.AdditionalInfo.Client)
			fact(w, "Contractor", p.AdditionalInfo.Contractor)
			fact(w, "Photographer", p.AdditionalInfo.Photographer)
			w.raw(`</dl>`)
		}
		gallery(w, "Gallery", "gallery", p.Title, page.Gallery)
		gallery(w, "Floor plans", "floor-plans", p.Title, page.FloorPlans)
		if len(page.Related) > 0 {
			w.raw(`<section class="related"><h2>Related projects</h2>`)
			w.child(ProjectsGrid(page.Related))
			w.raw(`</section>`)
		}
		w.raw(`</article>`)
	})
	return Layout(site, page.Meta, page.Preload, body)
}

func fact(w *writer, label, value string) {
	if value == "" {
		return
	}
	w.raw(`<dt>`)
	w.text(label)
	w.raw(`</dt><dd>`)
	w.text(value)
	w.raw(`</dd>`)
}

func gallery(w *writer, heading, class, title string, images []folio.ProjectImage) {
	if len(images) == 0 {
		return
	}
	w.raw(`<section`)
	w.attr("class", class)
	w.raw(`><h2>`)
	w.text(heading)
	w.raw(`</h2>`)
	for _, img := range images {
		alt := img.Caption
		if alt == "" {
			alt = title
		}
		w.raw(`<figure>`)
		w.child(Picture(img.Name, alt, "", img.Image, false))
		if img.Caption != "" || img.PDF != "" {
			w.raw(`<figcaption>`)
			w.text(img.Caption)
			if img.PDF != "" {
				w.raw(` <a`)
				w.attr("href", img.PDF)
				w.raw(` target="_blank" rel="noopener">PDF</a>`)
			}
			w.raw(`</figcaption>`)
		}
		w.raw(`</figure>`)
	}
	w.raw(`</section>`)
}

func joinNonEmpty(sep string, parts ...string) string {
	out := ""
	for _, s := range parts {
		if s == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += s
	}
	return out
}

