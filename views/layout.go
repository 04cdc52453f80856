package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/folio"
)

var navLinks = []struct{ href, label string }{
	{"/projects/", "Projects"},
	{"/faq/", "FAQ"},
	{"/contact/", "Contact"},
}

// Layout wraps body in the site chrome. preload lists image URLs worth
// fetching before the parser reaches them.
func Layout(site folio.SiteConfig, meta folio.PageMeta, preload []string, body templ.Component) templ.Component {
	return component(func(w *writer) {
		title := meta.Title
		if title == "" {
			title = site.Name
		}
		desc := meta.Description
		if desc == "" {
			desc = site.Description
		}
		ogType := meta.OGType
		if ogType == "" {
			ogType = "website"
		}
		w.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		w.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		w.raw(`<title>`)
		w.text(title)
		w.raw(`</title><meta name="description"`)
		w.attr("content", desc)
		w.raw(`>`)
		if meta.URL != "" {
			w.raw(`<link rel="canonical"`)
			w.attr("href", meta.URL)
			w.raw(`><meta property="og:url"`)
			w.attr("content", meta.URL)
			w.raw(`>`)
		}
		w.raw(`<meta property="og:title"`)
		w.attr("content", title)
		w.raw(`><meta property="og:type"`)
		w.attr("content", ogType)
		w.raw(`>`)
		if meta.Image != "" {
			w.raw(`<meta property="og:image"`)
			w.attr("content", meta.Image)
			w.raw(`>`)
		}
		for _, href := range preload {
			w.raw(`<link rel="preload" as="image"`)
			w.attr("href", href)
			w.raw(`>`)
		}
		w.raw(`<link rel="alternate" type="application/rss+xml" title="Projects" href="/feed.xml">`)
		w.raw(`<link rel="stylesheet" href="/public/styles.css">`)
		w.raw(`<script src="/public/htmx.min.js" defer></script>`)
		w.raw(`<script src="/public/folio.js" defer></script>`)
		w.raw(`</head><body><header class="site-header"><a class="brand" href="/">`)
		w.text(site.Name)
		w.raw(`</a><nav>`)
		for _, l := range navLinks {
			w.raw(`<a`)
			w.attr("href", l.href)
			w.raw(`>`)
			w.text(l.label)
			w.raw(`</a>`)
		}
		w.raw(`</nav></header><main>`)
		w.child(body)
		w.raw(`</main><footer class="site-footer"><p>`)
		w.text(site.Name)
		if site.Email != "" {
			w.raw(` &middot; <a`)
			w.attr("href", "mailto:"+site.Email)
			w.raw(`>`)
			w.text(site.Email)
			w.raw(`</a>`)
		}
		w.raw(`</p></footer></body></html>`)
	})
}
