package views

import (
	"slices"

	"github.com/a-h/templ"

	"github.com/eringen/folio"
)

// Contact renders the inquiry form, its validation errors, or the thank-you
// note once sent.
func Contact(site folio.SiteConfig, form folio.ContactForm, errs folio.FieldErrors, sent bool, csrf string) templ.Component {
	body := component(func(w *writer) {
		w.raw(`<section id="contact" class="contact"><h1>Start a project</h1>`)
		if sent {
			w.raw(`<p class="notice">Thank you. We received your inquiry and will be in touch shortly.</p></section>`)
			return
		}
		w.raw(`<form method="post" action="/contact/" hx-post="/contact/" hx-target="#contact" hx-select="#contact" hx-swap="outerHTML">`)
		w.raw(`<input type="hidden" name="_csrf"`)
		w.attr("value", csrf)
		w.raw(`>`)
		input(w, errs, "firstName", "First name", "text", form.FirstName, true)
		input(w, errs, "lastName", "Last name", "text", form.LastName, true)
		input(w, errs, "email", "Email", "email", form.Email, true)
		input(w, errs, "phone", "Phone", "tel", form.Phone, false)
		input(w, errs, "company", "Company", "text", form.Company, false)
		selectField(w, errs, "projectType", "Project type", folio.ProjectTypes, form.ProjectType)
		w.raw(`<fieldset><legend>Services</legend>`)
		for _, c := range folio.Services {
			w.raw(`<label><input type="checkbox" name="services"`)
			w.attr("value", c.Value)
			if slices.Contains(form.Services, c.Value) {
				w.raw(` checked`)
			}
			w.raw(`> `)
			w.text(c.Label)
			w.raw(`</label>`)
		}
		fieldError(w, errs, "services")
		w.raw(`</fieldset>`)
		selectField(w, errs, "budget", "Budget", folio.BudgetRanges, form.Budget)
		selectField(w, errs, "timeline", "Timeline", folio.Timelines, form.Timeline)
		input(w, errs, "location", "Project location", "text", form.Location, true)
		w.raw(`<label>Tell us about the project<textarea name="description" rows="6" required>`)
		w.text(form.Description)
		w.raw(`</textarea></label>`)
		fieldError(w, errs, "description")
		w.raw(`<button type="submit">Send inquiry</button></form></section>`)
	})
	meta := folio.PageMeta{
		Title: "Contact | " + site.Name,
		URL:   folio.BuildURL(site.URL, "contact"),
	}
	return Layout(site, meta, nil, body)
}

func input(w *writer, errs folio.FieldErrors, name, label, typ, value string, required bool) {
	w.raw(`<label>`)
	w.text(label)
	w.raw(`<input`)
	w.attr("type", typ)
	w.attr("name", name)
	w.attr("value", value)
	if required {
		w.raw(` required`)
	}
	w.raw(`></label>`)
	fieldError(w, errs, name)
}

func selectField(w *writer, errs folio.FieldErrors, name, label string, choices []folio.Choice, value string) {
	w.raw(`<label>`)
	w.text(label)
	w.raw(`<select`)
	w.attr("name", name)
	w.raw(` required><option value="">Select</option>`)
	for _, c := range choices {
		w.raw(`<option`)
		w.attr("value", c.Value)
		if c.Value == value {
			w.raw(` selected`)
		}
		w.raw(`>`)
		w.text(c.Label)
		w.raw(`</option>`)
	}
	w.raw(`</select></label>`)
	fieldError(w, errs, name)
}

func fieldError(w *writer, errs folio.FieldErrors, name string) {
	if msg, ok := errs[name]; ok {
		w.raw(`<p class="field-error">`)
		w.text(msg)
		w.raw(`</p>`)
	}
}
