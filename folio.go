// Package folio is the website engine for an architecture studio: a project
// portfolio with orientation-aware image galleries, an FAQ, and a contact
// form with an admin inbox, built with Go, Echo, and templ.
//
// Sites provide their own templ templates via the ViewFuncs struct; folio
// owns content loading, image resolution, handlers, middleware and storage.
package folio

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/imagery"
	"github.com/eringen/folio/metrics"
)

// ViewFuncs holds user-provided templ components that the framework calls
// when rendering pages.
type ViewFuncs struct {
	Home         func(site SiteConfig, featured []ProjectCard, preload []string) templ.Component
	Projects     func(site SiteConfig, cards []ProjectCard, categories []string, active, sort string) templ.Component
	ProjectsGrid func(cards []ProjectCard) templ.Component
	Project      func(site SiteConfig, page ProjectPage) templ.Component
	FAQ          func(site SiteConfig, items []content.FAQItem, categories []string, query string) templ.Component
	FAQResults   func(items []content.FAQItem, query string) templ.Component
	Contact      func(site SiteConfig, form ContactForm, errs FieldErrors, sent bool, csrfToken string) templ.Component
	AdminLogin   func(site SiteConfig, showError bool, csrfToken string) templ.Component
	AdminInbox   func(site SiteConfig, inquiries []Inquiry, message string, csrfToken string) templ.Component
	NotFound     func(site SiteConfig) templ.Component
	ServerError  func(site SiteConfig) templ.Component
}

// App is the central folio application. It wires together content, image
// resolution, the inquiry store, handlers, middleware, and templates.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Store    *Store
	Projects *content.Repository
	FAQ      *content.FAQ
	Images   *imagery.Resolver
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
	Views    ViewFuncs

	loginLimiter   *RateLimiter
	contactLimiter *RateLimiter
	customRoutes   []func(*App)
	manifestGroups int
}

// New creates a folio App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  views,
		Logger: slog.Default(),
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// WithProjects injects a preloaded project repository instead of reading
// Config.ContentDir.
func WithProjects(repo *content.Repository) Option {
	return func(a *App) { a.Projects = repo }
}

// WithResolver injects an image resolver instead of reading the manifest and
// blur placeholder files.
func WithResolver(r *imagery.Resolver) Option {
	return func(a *App) { a.Images = r }
}

// WithFAQ injects FAQ content instead of reading Config.FAQPath.
func WithFAQ(f *content.FAQ) Option {
	return func(a *App) { a.FAQ = f }
}

// WithMetrics injects a metrics registry, enabling /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *App) { a.Metrics = m }
}

// WithStore injects an inquiry store instead of opening Config.DatabasePath.
func WithStore(s *Store) Option {
	return func(a *App) { a.Store = s }
}

// Setup loads content and image data, opens the store, and registers
// middleware and routes. It is called by Start; tests call it directly and
// drive a.Echo with httptest.
func (a *App) Setup() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("folio: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("folio: SessionSecret is required")
	}

	if a.Store == nil {
		store, err := NewStore(a.Config.DatabasePath)
		if err != nil {
			return fmt.Errorf("folio: init store: %w", err)
		}
		a.Store = store
	}

	a.loadContent()

	if a.Metrics == nil && a.Config.MetricsEnabled {
		a.Metrics = metrics.New()
	}
	a.Metrics.SetContent(a.Projects.Len(), len(a.Projects.Rejected()), a.manifestGroups)

	a.loginLimiter = NewRateLimiter(5, time.Minute)
	a.contactLimiter = NewRateLimiter(a.Config.ContactLimit, a.Config.ContactWindow)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start sets the app up and serves until the server stops.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	a.Logger.Info("folio: listening", "addr", a.Config.Addr, "projects", a.Projects.Len())
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// loadContent fills in whatever was not injected. Every failure here
// degrades the site rather than stopping it: missing projects give an empty
// portfolio, a missing manifest puts the resolver in heuristic mode.
func (a *App) loadContent() {
	if a.Projects == nil {
		repo, err := content.Load(os.DirFS(a.Config.ContentDir), ".", a.Logger)
		if err != nil {
			a.Logger.Error("folio: projects unavailable", "dir", a.Config.ContentDir, "error", err)
			repo = content.NewRepository()
		}
		a.Projects = repo
	}

	if a.FAQ == nil {
		faq, err := content.ReadFAQFile(a.Config.FAQPath)
		if err != nil {
			a.Logger.Warn("folio: faq unavailable", "path", a.Config.FAQPath, "error", err)
			faq = &content.FAQ{}
		}
		a.FAQ = faq
	}

	if a.Images == nil {
		manifest, err := imagery.ReadManifestFile(a.Config.ManifestPath)
		if err != nil {
			a.Logger.Warn("folio: image manifest unavailable, resolving by filename convention",
				"path", a.Config.ManifestPath, "error", err)
		}
		blur, err := imagery.ReadBlurMapFile(a.Config.BlurPath)
		if err != nil {
			a.Logger.Warn("folio: blur placeholders unavailable", "path", a.Config.BlurPath, "error", err)
		}
		a.Images = imagery.NewResolver(manifest, blur,
			imagery.WithContentRoot(a.Config.ImageRoot),
			imagery.WithPlaceholder(a.Config.Placeholder),
		)
		a.manifestGroups = manifest.Len()
	}
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Framework assets (placeholder image, image script) are embedded and
	// take precedence over files of the same name in the static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/placeholder.svg", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/folio.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.Config.StaticDir)
	e.Static("/projects", filepath.Join(a.Config.StaticDir, "projects"))
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// Pages
	e.GET("/", a.handleHome)
	e.GET("/projects/", a.handleProjects)
	e.GET("/projects/:slug/", a.handleProject)
	e.GET("/faq/", a.handleFAQ)
	e.GET("/contact/", a.handleContact)
	e.POST("/contact/", a.handleContactSubmit)

	// JSON API consumed by the image script and external clients
	e.GET("/api/projects", a.handleAPIProjects)
	e.GET("/api/projects/:slug", a.handleAPIProject)
	e.GET("/api/images/resolve", a.handleAPIResolve)
	e.GET("/api/images/fallback", a.handleAPIFallback)

	// Admin inbox
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.DELETE("/admin/inquiry/:id/", a.handleAdminDelete)

	if a.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(a.Metrics.Handler()))
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.contactLimiter != nil {
		a.contactLimiter.Stop()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
