package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/folio"
	"github.com/eringen/folio/content"
	"github.com/eringen/folio/markdown"
)

// FAQ is the searchable questions page.
func FAQ(site folio.SiteConfig, items []content.FAQItem, categories []string, query string) templ.Component {
	body := component(func(w *writer) {
		w.raw(`<h1>Frequently asked questions</h1>`)
		w.raw(`<form class="faq-search" action="/faq/" method="get">`)
		w.raw(`<input type="search" name="q" placeholder="Search questions" hx-get="/faq/?partial=results" hx-target="#faq-results" hx-trigger="input changed delay:250ms"`)
		w.attr("value", query)
		w.raw(`></form>`)
		if len(categories) > 0 {
			w.raw(`<p class="faq-categories">`)
			for i, cat := range categories {
				if i > 0 {
					w.raw(` &middot; `)
				}
				w.raw(`<a`)
				w.attr("href", "#"+anchor(cat))
				w.raw(`>`)
				w.text(cat)
				w.raw(`</a>`)
			}
			w.raw(`</p>`)
		}
		w.child(FAQResults(items, query))
	})
	meta := folio.PageMeta{
		Title: "FAQ | " + site.Name,
		URL:   folio.BuildURL(site.URL, "faq"),
	}
	return Layout(site, meta, nil, body)
}

// FAQResults renders matching items grouped by category, in order.
func FAQResults(items []content.FAQItem, query string) templ.Component {
	return component(func(w *writer) {
		w.raw(`<div id="faq-results">`)
		if len(items) == 0 {
			w.raw(`<p class="empty">No questions match `)
			w.raw(`&ldquo;`)
			w.text(query)
			w.raw(`&rdquo;.</p>`)
		}
		current := ""
		for i, it := range items {
			if i == 0 || it.Category != current {
				if i > 0 {
					w.raw(`</section>`)
				}
				current = it.Category
				w.raw(`<section`)
				w.attr("id", anchor(current))
				w.raw(`><h2>`)
				w.text(current)
				w.raw(`</h2>`)
			}
			w.raw(`<details`)
			w.attr("id", it.ID)
			w.raw(`><summary>`)
			w.text(it.Question)
			w.raw(`</summary>`)
			w.child(markdown.Block(it.Answer))
			w.raw(`</details>`)
		}
		if len(items) > 0 {
			w.raw(`</section>`)
		}
		w.raw(`</div>`)
	})
}

func anchor(s string) string {
	out := make([]rune, 0, len(s))
	dash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
			dash = false
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
			dash = false
		default:
			if !dash && len(out) > 0 {
				out = append(out, '-')
				dash = true
			}
		}
	}
	if n := len(out); n > 0 && out[n-1] == '-' {
		out = out[:n-1]
	}
	return string(out)
}
