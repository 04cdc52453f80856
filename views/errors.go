package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/folio"
)

func NotFound(site folio.SiteConfig) templ.Component {
	body := component(func(w *writer) {
		w.raw(`<section class="error"><h1>Page not found</h1><p>The page you are looking for does not exist. <a href="/projects/">Browse projects</a>.</p></section>`)
	})
	return Layout(site, folio.PageMeta{Title: "Not found | " + site.Name}, nil, body)
}

func ServerError(site folio.SiteConfig) templ.Component {
	body := component(func(w *writer) {
		w.raw(`<section class="error"><h1>Something went wrong</h1><p>Please try again in a moment.</p></section>`)
	})
	return Layout(site, folio.PageMeta{Title: "Error | " + site.Name}, nil, body)
}

// Funcs returns the default theme as folio view functions.
func Funcs() folio.ViewFuncs {
	return folio.ViewFuncs{
		Home:         Home,
		Projects:     Projects,
		ProjectsGrid: ProjectsGrid,
		Project:      Project,
		FAQ:          FAQ,
		FAQResults:   FAQResults,
		Contact:      Contact,
		AdminLogin:   AdminLogin,
		AdminInbox:   AdminInbox,
		NotFound:     NotFound,
		ServerError:  ServerError,
	}
}
