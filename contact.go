package folio

import (
	"net/http"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const minDescriptionLen = 20

// Choice is one option of a select or checkbox group on the contact form.
type Choice struct {
	Value string
	Label string
}

var (
	ProjectTypes = []Choice{
		{"residential", "Residential"},
		{"commercial", "Commercial"},
		{"renovation", "Renovation / Addition"},
		{"fire-rebuild", "Fire Rebuild"},
		{"consultation", "Consultation"},
		{"other", "Other"},
	}
	Services = []Choice{
		{"architecture", "Architecture"},
		{"interior", "Interior Design"},
		{"landscape", "Landscape Design"},
		{"fire-mitigation", "Fire Mitigation"},
		{"general-contractor", "General Contracting"},
		{"project-management", "Project Management"},
	}
	BudgetRanges = []Choice{
		{"under-100k", "Under $100k"},
		{"100k-250k", "$100k - $250k"},
		{"250k-500k", "$250k - $500k"},
		{"500k-1m", "$500k - $1M"},
		{"1m-plus", "$1M+"},
		{"prefer-not-to-say", "Prefer not to say"},
	}
	Timelines = []Choice{
		{"immediate", "Immediately"},
		{"3-months", "Within 3 months"},
		{"6-months", "Within 6 months"},
		{"1-year", "Within a year"},
		{"exploring", "Just exploring"},
	}
)

// ContactForm is a project inquiry as submitted on /contact/.
type ContactForm struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Company     string
	ProjectType string
	Services    []string
	Budget      string
	Timeline    string
	Location    string
	Description string
}

// FieldErrors maps a form field name to its validation message.
type FieldErrors map[string]string

// ParseContactForm reads and trims the submitted fields.
func ParseContactForm(c echo.Context) (ContactForm, error) {
	values, err := c.FormParams()
	if err != nil {
		return ContactForm{}, err
	}
	get := func(k string) string { return strings.TrimSpace(values.Get(k)) }
	return ContactForm{
		FirstName:   get("firstName"),
		LastName:    get("lastName"),
		Email:       get("email"),
		Phone:       get("phone"),
		Company:     get("company"),
		ProjectType: get("projectType"),
		Services:    FilterEmpty(values["services"]),
		Budget:      get("budget"),
		Timeline:    get("timeline"),
		Location:    get("location"),
		Description: get("description"),
	}, nil
}

// Validate checks required fields and that every choice is one the form
// offers. It returns nil when the form is acceptable.
func (f ContactForm) Validate() FieldErrors {
	errs := FieldErrors{}
	required := map[string]string{
		"firstName":   f.FirstName,
		"lastName":    f.LastName,
		"email":       f.Email,
		"projectType": f.ProjectType,
		"budget":      f.Budget,
		"timeline":    f.Timeline,
		"location":    f.Location,
		"description": f.Description,
	}
	for field, v := range required {
		if v == "" {
			errs[field] = "This field is required."
		}
	}
	if f.Email != "" {
		if addr, err := mail.ParseAddress(f.Email); err != nil || addr.Address != f.Email {
			errs["email"] = "Enter a valid email address."
		}
	}
	if f.ProjectType != "" && !validChoice(ProjectTypes, f.ProjectType) {
		errs["projectType"] = "Select a project type."
	}
	if f.Budget != "" && !validChoice(BudgetRanges, f.Budget) {
		errs["budget"] = "Select a budget range."
	}
	if f.Timeline != "" && !validChoice(Timelines, f.Timeline) {
		errs["timeline"] = "Select a timeline."
	}
	if len(f.Services) == 0 {
		errs["services"] = "Select at least one service."
	}
	for _, s := range f.Services {
		if !validChoice(Services, s) {
			errs["services"] = "Unknown service selected."
			break
		}
	}
	if f.Description != "" && utf8.RuneCountInString(f.Description) < minDescriptionLen {
		errs["description"] = "Tell us a little more about the project."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validChoice(choices []Choice, v string) bool {
	for _, c := range choices {
		if c.Value == v {
			return true
		}
	}
	return false
}

// ChoiceLabel returns the display label for v, or v itself when unknown.
func ChoiceLabel(choices []Choice, v string) string {
	for _, c := range choices {
		if c.Value == v {
			return c.Label
		}
	}
	return v
}

func (a *App) handleContact(c echo.Context) error {
	sent := c.QueryParam("sent") == "1"
	return Render(c, a.Views.Contact(a.Config, ContactForm{}, nil, sent, CsrfToken(c)))
}

func (a *App) handleContactSubmit(c echo.Context) error {
	if !a.contactLimiter.Allow(c.RealIP()) {
		a.Metrics.IncInquiry("limited")
		return c.String(http.StatusTooManyRequests, "Too many submissions. Try again later.")
	}
	form, err := ParseContactForm(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if errs := form.Validate(); errs != nil {
		a.Metrics.IncInquiry("invalid")
		// htmx only swaps 2xx responses.
		status := http.StatusUnprocessableEntity
		if isHTMX(c) {
			status = http.StatusOK
		}
		return RenderStatus(c, status,
			a.Views.Contact(a.Config, form, errs, false, CsrfToken(c)))
	}
	inquiry := Inquiry{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now(),
		ContactForm: form,
	}
	if err := a.Store.SaveInquiry(inquiry); err != nil {
		a.Metrics.IncInquiry("error")
		return err
	}
	a.Metrics.IncInquiry("saved")
	a.Logger.Info("contact: inquiry received", "id", inquiry.ID, "projectType", form.ProjectType)
	if isHTMX(c) {
		return Render(c, a.Views.Contact(a.Config, ContactForm{}, nil, true, CsrfToken(c)))
	}
	return c.Redirect(http.StatusSeeOther, "/contact/?sent=1")
}
