package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/folio"
)

func AdminLogin(site folio.SiteConfig, showError bool, csrf string) templ.Component {
	body := component(func(w *writer) {
		w.raw(`<section class="admin-login"><h1>Inbox</h1>`)
		if showError {
			w.raw(`<p class="field-error">Wrong password.</p>`)
		}
		w.raw(`<form method="post" action="/admin/login/"><input type="hidden" name="_csrf"`)
		w.attr("value", csrf)
		w.raw(`><label>Password<input type="password" name="password" required autofocus></label>`)
		w.raw(`<button type="submit">Sign in</button></form></section>`)
	})
	return Layout(site, folio.PageMeta{Title: "Admin | " + site.Name}, nil, body)
}

func AdminInbox(site folio.SiteConfig, inquiries []folio.Inquiry, msg, csrf string) templ.Component {
	body := component(func(w *writer) {
		w.raw(`<section id="inbox" class="admin-inbox"><header><h1>Inquiries</h1>`)
		w.raw(`<form method="post" action="/admin/logout/"><input type="hidden" name="_csrf"`)
		w.attr("value", csrf)
		w.raw(`><button type="submit">Sign out</button></form></header>`)
		if msg != "" {
			w.raw(`<p class="notice">`)
			w.text(msg)
			w.raw(`</p>`)
		}
		if len(inquiries) == 0 {
			w.raw(`<p class="empty">No inquiries yet.</p>`)
		}
		for _, q := range inquiries {
			w.raw(`<article class="inquiry"><h2>`)
			w.text(q.FirstName + " " + q.LastName)
			w.raw(`</h2><p class="meta">`)
			w.text(q.CreatedAt.Format("2006-01-02 15:04"))
			w.raw(` &middot; <a`)
			w.attr("href", "mailto:"+q.Email)
			w.raw(`>`)
			w.text(q.Email)
			w.raw(`</a></p><dl>`)
			fact(w, "Phone", q.Phone)
			fact(w, "Company", q.Company)
			fact(w, "Project type", folio.ChoiceLabel(folio.ProjectTypes, q.ProjectType))
			services := make([]string, 0, len(q.Services))
			for _, s := range q.Services {
				services = append(services, folio.ChoiceLabel(folio.Services, s))
			}
			fact(w, "Services", joinNonEmpty(", ", services...))
			fact(w, "Budget", folio.ChoiceLabel(folio.BudgetRanges, q.Budget))
			fact(w, "Timeline", folio.ChoiceLabel(folio.Timelines, q.Timeline))
			fact(w, "Location", q.Location)
			w.raw(`</dl><p>`)
			w.text(q.Description)
			w.raw(`</p><button`)
			w.attr("hx-delete", "/admin/inquiry/"+q.ID+"/")
			w.attr("hx-headers", `{"X-CSRF-Token": "`+csrf+`"}`)
			w.raw(` hx-target="#inbox" hx-select="#inbox" hx-swap="outerHTML" hx-confirm="Delete this inquiry?">Delete</button></article>`)
		}
		w.raw(`</section>`)
	})
	return Layout(site, folio.PageMeta{Title: "Inquiries | " + site.Name}, nil, body)
}
