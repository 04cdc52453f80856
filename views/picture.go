package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/folio/imagery"
)

// Picture renders an orientation-aware image. The browser picks the portrait
// source through a media query; folio.js swaps the src on failure and
// re-resolves when the orientation changes on a plain <img>.
func Picture(name, alt, class string, img imagery.Pair, eager bool) templ.Component {
	return component(func(w *writer) {
		w.raw(`<picture`)
		w.attr("class", class)
		w.raw(`>`)
		if img.Portrait.URL != img.Landscape.URL {
			w.raw(`<source media="(orientation: portrait)"`)
			w.attr("srcset", img.Portrait.URL)
			w.raw(`>`)
		}
		w.raw(`<img`)
		w.attr("src", img.Landscape.URL)
		w.attr("alt", alt)
		w.attr("data-folio-image", name)
		if eager {
			w.raw(` fetchpriority="high" loading="eager"`)
		} else {
			w.raw(` loading="lazy"`)
		}
		w.raw(` decoding="async"`)
		if blur := img.Landscape.Blur; blur != "" {
			w.attr("style", "background-image:url("+blur+");background-size:cover;background-position:center")
		}
		w.raw(`></picture>`)
	})
}
