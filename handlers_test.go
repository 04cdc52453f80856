package folio_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eringen/folio"
	"github.com/eringen/folio/content"
	"github.com/eringen/folio/imagery"
	"github.com/eringen/folio/views"
)

func testProjects() *content.Repository {
	return content.NewRepository(
		content.Project{
			Slug:        "malibu-house",
			Title:       "Malibu House",
			Category:    "Residential",
			Location:    "Malibu, CA",
			Year:        "2023",
			CoverImage:  "malibu/Front",
			Description: []string{"A house on the bluff."},
			Gallery:     []content.ProjectImage{{Image: "malibu/Pool", Caption: "Pool"}},
		},
		content.Project{
			Slug:       "canyon-studio",
			Title:      "Canyon Studio",
			Category:   "Commercial",
			Year:       "2021",
			CoverImage: "canyon/Studio",
		},
	)
}

func testResolver() *imagery.Resolver {
	m := imagery.NewManifest(map[string]imagery.Entry{
		"/projects/malibu/Front": {
			Base: "/projects/malibu/Front",
			Variants: []imagery.Variant{
				{Path: "/projects/malibu/Front-L.jpg", Orientation: imagery.Landscape, Filename: "Front-L.jpg"},
				{Path: "/projects/malibu/Front-P.jpg", Orientation: imagery.Portrait, Filename: "Front-P.jpg"},
			},
		},
	})
	return imagery.NewResolver(m, nil, imagery.WithPlaceholder("/public/placeholder.svg"))
}

func newTestApp(t *testing.T, configure ...func(*folio.SiteConfig)) *folio.App {
	t.Helper()
	cfg := folio.SiteConfig{
		Name:          "Studio",
		URL:           "https://studio.example",
		AdminPassword: "secret",
		SessionSecret: "test-session-secret",
		StaticDir:     t.TempDir(),
	}
	for _, fn := range configure {
		fn(&cfg)
	}
	store, err := folio.NewStore(filepath.Join(t.TempDir(), "folio.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	app := folio.New(cfg, views.Funcs(),
		folio.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		folio.WithStore(store),
		folio.WithProjects(testProjects()),
		folio.WithResolver(testResolver()),
		folio.WithFAQ(&content.FAQ{Items: []content.FAQItem{
			{ID: "faq-1", Category: "Process", Question: "How long does design take?", Answer: "Usually three to six months."},
		}}),
	)
	if err := app.Setup(); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	t.Cleanup(func() { app.Close() })
	return app
}

func serve(app *folio.App, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)
	return rec
}

func get(app *folio.App, target string) *httptest.ResponseRecorder {
	return serve(app, httptest.NewRequest(http.MethodGet, target, nil))
}

func TestSetupRequiresSecrets(t *testing.T) {
	app := folio.New(folio.SiteConfig{}, views.Funcs())
	if err := app.Setup(); err == nil {
		t.Fatal("expected error without AdminPassword")
	}
}

func TestHomeListsProjects(t *testing.T) {
	app := newTestApp(t)
	rec := get(app, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Malibu House") || !strings.Contains(body, "Canyon Studio") {
		t.Errorf("home is missing projects")
	}
	if !strings.Contains(body, `<link rel="preload" as="image" href="/projects/malibu/Front-L.jpg">`) {
		t.Errorf("newest cover should be preloaded")
	}
}

func TestProjectPage(t *testing.T) {
	app := newTestApp(t)
	rec := get(app, "/projects/malibu-house/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"<h1>Malibu House</h1>",
		`srcset="/projects/malibu/Front-P.jpg"`,
		`src="/projects/malibu/Front-L.jpg"`,
		// Not in the manifest, so resolved by filename convention.
		`src="/projects/malibu/Pool-L.jpg"`,
		`<link rel="canonical" href="https://studio.example/projects/malibu-house/">`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("project page missing %q", want)
		}
	}
}

func TestProjectPageNotFound(t *testing.T) {
	app := newTestApp(t)
	rec := get(app, "/projects/nope/")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Page not found") {
		t.Errorf("expected not-found page")
	}
}

func TestProjectPathGetsTrailingSlash(t *testing.T) {
	app := newTestApp(t)
	rec := get(app, "/projects/malibu-house")
	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want 301", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/projects/malibu-house/" {
		t.Errorf("Location = %q", loc)
	}
}

func TestProjectsFilterPartial(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/projects/?category=commercial&partial=grid", nil)
	req.Header.Set("HX-Request", "true")
	rec := serve(app, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<html") {
		t.Errorf("partial should not include the layout")
	}
	if !strings.Contains(body, "Canyon Studio") || strings.Contains(body, "Malibu House") {
		t.Errorf("category filter not applied: %s", body)
	}
}

func TestAPIProject(t *testing.T) {
	app := newTestApp(t)

	rec := get(app, "/api/projects/malibu-house")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var p content.Project
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatal(err)
	}
	if p.Title != "Malibu House" {
		t.Errorf("title = %q", p.Title)
	}

	rec = get(app, "/api/projects/missing")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var e map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &e); err != nil {
		t.Fatal(err)
	}
	if e["error"] != "Project not found" {
		t.Errorf("error = %q", e["error"])
	}
}

func TestAPIProjectsList(t *testing.T) {
	app := newTestApp(t)
	rec := get(app, "/api/projects?sort=title")
	var list []content.Project
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].Slug != "canyon-studio" {
		t.Errorf("unexpected list: %+v", list)
	}
}

func TestAPIResolve(t *testing.T) {
	app := newTestApp(t)
	tests := []struct {
		query string
		url   string
	}{
		{"name=malibu/Front&portrait=true", "/projects/malibu/Front-P.jpg"},
		{"name=malibu/Front&portrait=false", "/projects/malibu/Front-L.jpg"},
		{"name=malibu/Front&w=800&h=1200", "/projects/malibu/Front-P.jpg"},
		{"name=malibu/Front", "/projects/malibu/Front-L.jpg"},
		{"name=" + url.QueryEscape("canyon/Big Room") + "&portrait=true", "/projects/canyon/Big%20Room-P.jpg"},
	}
	for _, tt := range tests {
		rec := get(app, "/api/images/resolve?"+tt.query)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", tt.query, rec.Code)
		}
		var res imagery.Resolution
		if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
			t.Fatal(err)
		}
		if res.URL != tt.url {
			t.Errorf("%s: url = %q, want %q", tt.query, res.URL, tt.url)
		}
	}

	if rec := get(app, "/api/images/resolve"); rec.Code != http.StatusBadRequest {
		t.Errorf("missing name: status = %d, want 400", rec.Code)
	}
}

func TestAPIFallback(t *testing.T) {
	app := newTestApp(t)
	fallback := func(failed string) (next *string, chain []string) {
		t.Helper()
		rec := get(app, "/api/images/fallback?url="+url.QueryEscape(failed))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var body struct {
			Next  *string  `json:"next"`
			Chain []string `json:"chain"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		return body.Next, body.Chain
	}

	next, chain := fallback("https://studio.example/projects/malibu/Front-P.jpg")
	if next == nil || *next != "/projects/malibu/Front-L.jpg" {
		t.Errorf("portrait failure should fall back to landscape, got %v", next)
	}
	if len(chain) != 2 || chain[1] != "/public/placeholder.svg" {
		t.Errorf("chain = %v", chain)
	}

	next, _ = fallback("/projects/malibu/Front-L.jpg")
	if next == nil || *next != "/public/placeholder.svg" {
		t.Errorf("landscape failure should fall back to placeholder, got %v", next)
	}

	next, chain = fallback("/public/placeholder.svg")
	if next != nil || len(chain) != 0 {
		t.Errorf("placeholder failure should end the chain, got %v %v", next, chain)
	}
}

func TestFAQSearch(t *testing.T) {
	app := newTestApp(t)
	rec := get(app, "/faq/?q=design")
	if !strings.Contains(rec.Body.String(), "How long does design take?") {
		t.Errorf("expected matching question")
	}
	rec = get(app, "/faq/?q=zoning")
	if strings.Contains(rec.Body.String(), "How long does design take?") {
		t.Errorf("unexpected match")
	}
}

func TestSitemapAndRobots(t *testing.T) {
	app := newTestApp(t)
	rec := get(app, "/sitemap.xml")
	if !strings.Contains(rec.Body.String(), "<loc>https://studio.example/projects/malibu-house/</loc>") {
		t.Errorf("sitemap missing project: %s", rec.Body.String())
	}
	rec = get(app, "/robots.txt")
	if !strings.Contains(rec.Body.String(), "Sitemap: https://studio.example/sitemap.xml") {
		t.Errorf("robots missing sitemap line")
	}
}

func TestFeedAttachesCover(t *testing.T) {
	app := newTestApp(t)
	rec := get(app, "/feed.xml")
	body := rec.Body.String()
	if !strings.Contains(body, `<enclosure url="https://studio.example/projects/malibu/Front-L.jpg" type="image/jpeg"`) {
		t.Errorf("feed missing cover enclosure: %s", body)
	}
}

func TestEmbeddedPlaceholder(t *testing.T) {
	app := newTestApp(t)
	rec := get(app, "/public/placeholder.svg")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "<svg") {
		t.Errorf("placeholder not served: %d", rec.Code)
	}
}

// csrfToken loads the contact page and returns the token cookie.
func csrfToken(t *testing.T, app *folio.App) *http.Cookie {
	t.Helper()
	rec := get(app, "/contact/")
	for _, c := range rec.Result().Cookies() {
		if c.Name == "_csrf" {
			return c
		}
	}
	t.Fatal("no _csrf cookie")
	return nil
}

func contactRequest(token *http.Cookie, form url.Values) *http.Request {
	form.Set("_csrf", token.Value)
	req := httptest.NewRequest(http.MethodPost, "/contact/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(token)
	return req
}

func validContact() url.Values {
	return url.Values{
		"firstName":   {"Ada"},
		"lastName":    {"Lovelace"},
		"email":       {"ada@example.com"},
		"projectType": {"residential"},
		"services":    {"architecture", "interior"},
		"budget":      {"250k-500k"},
		"timeline":    {"6-months"},
		"location":    {"Malibu, CA"},
		"description": {"A new house on a steep coastal lot."},
	}
}

func TestContactSubmit(t *testing.T) {
	app := newTestApp(t)
	token := csrfToken(t, app)

	rec := serve(app, contactRequest(token, validContact()))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303: %s", rec.Code, rec.Body.String())
	}
	list, err := app.Store.ListInquiries()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Email != "ada@example.com" || len(list[0].Services) != 2 {
		t.Errorf("stored inquiries = %+v", list)
	}
	if list[0].ID == "" {
		t.Error("inquiry should get an ID")
	}
}

func TestContactSubmitInvalid(t *testing.T) {
	app := newTestApp(t)
	token := csrfToken(t, app)
	form := validContact()
	form.Set("email", "nope")

	rec := serve(app, contactRequest(token, form))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Enter a valid email address.") {
		t.Errorf("missing field error")
	}
	if list, _ := app.Store.ListInquiries(); len(list) != 0 {
		t.Errorf("invalid inquiry was stored")
	}
}

func TestContactSubmitRequiresCSRF(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/contact/", strings.NewReader(validContact().Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if rec := serve(app, req); rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestContactSubmitRateLimited(t *testing.T) {
	app := newTestApp(t, func(c *folio.SiteConfig) { c.ContactLimit = 1 })
	token := csrfToken(t, app)

	if rec := serve(app, contactRequest(token, validContact())); rec.Code != http.StatusSeeOther {
		t.Fatalf("first submit: status = %d", rec.Code)
	}
	if rec := serve(app, contactRequest(token, validContact())); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second submit: status = %d, want 429", rec.Code)
	}
}

func TestAdminRequiresLogin(t *testing.T) {
	app := newTestApp(t)
	rec := get(app, "/admin/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `type="password"`) || strings.Contains(body, "Inquiries") {
		t.Errorf("expected login form")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t, func(c *folio.SiteConfig) { c.MetricsEnabled = true })
	get(app, "/projects/malibu-house/")
	rec := get(app, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "folio_projects_loaded 2") {
		t.Errorf("metrics missing project gauge")
	}
}
