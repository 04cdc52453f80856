package folio

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string // Studio name (default "Studio")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for the feed and meta tags
	Email       string // Public contact address shown on the contact page

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path for contact inquiries (default "data/folio.db")

	ContentDir   string // Project JSON directory (default "content/projects")
	FAQPath      string // FAQ YAML file (default "content/faq.yaml")
	StaticDir    string // Public assets served under /public and image paths (default "public")
	ManifestPath string // Image manifest JSON (default "public/image-manifest.json")
	BlurPath     string // Blur placeholder JSON (default "public/blur-placeholders.json")
	ImageRoot    string // Prefix for unrooted logical image names (default "/projects/")
	Placeholder  string // Terminal fallback image (default "/public/placeholder.svg")

	AdminPassword string // Required: inbox login password
	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	ContactLimit  int           // Contact submissions per IP per window (default 5)
	ContactWindow time.Duration // Contact rate-limit window (default 10min)

	MetricsEnabled bool   // Serve /metrics
	LogLevel       string // debug, info, warn, error (default "info")
	LogFormat      string // text or json (default "text")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Studio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/folio.db"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content/projects"
	}
	if c.FAQPath == "" {
		c.FAQPath = "content/faq.yaml"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.ManifestPath == "" {
		c.ManifestPath = c.StaticDir + "/image-manifest.json"
	}
	if c.BlurPath == "" {
		c.BlurPath = c.StaticDir + "/blur-placeholders.json"
	}
	if c.ImageRoot == "" {
		c.ImageRoot = "/projects/"
	}
	if c.Placeholder == "" {
		c.Placeholder = "/public/placeholder.svg"
	}
	if c.ContactLimit == 0 {
		c.ContactLimit = 5
	}
	if c.ContactWindow == 0 {
		c.ContactWindow = 10 * time.Minute
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
}

// LoadDotEnv loads variables from the given files (".env" when none are
// given) into the process environment. Existing variables win. A missing
// file is not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// ConfigFromEnv builds a SiteConfig from environment variables. Unset values
// keep their defaults.
func ConfigFromEnv() SiteConfig {
	cfg := SiteConfig{
		Name:           os.Getenv("SITE_NAME"),
		URL:            os.Getenv("SITE_URL"),
		Description:    os.Getenv("SITE_DESCRIPTION"),
		Email:          os.Getenv("SITE_EMAIL"),
		Addr:           os.Getenv("ADDR"),
		DatabasePath:   os.Getenv("DATABASE_PATH"),
		ContentDir:     os.Getenv("CONTENT_DIR"),
		FAQPath:        os.Getenv("FAQ_PATH"),
		StaticDir:      os.Getenv("STATIC_DIR"),
		ManifestPath:   os.Getenv("IMAGE_MANIFEST"),
		BlurPath:       os.Getenv("BLUR_PLACEHOLDERS"),
		ImageRoot:      os.Getenv("IMAGE_ROOT"),
		Placeholder:    os.Getenv("IMAGE_PLACEHOLDER"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		SessionSecret:  os.Getenv("ADMIN_SESSION_SECRET"),
		CookieSecure:   envBool("COOKIE_SECURE"),
		ContactLimit:   envInt("CONTACT_LIMIT", 0),
		MetricsEnabled: envBool("METRICS_ENABLED"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		LogFormat:      os.Getenv("LOG_FORMAT"),
	}
	if v := os.Getenv("CONTACT_WINDOW"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ContactWindow = d
		}
	}
	cfg.setDefaults()
	return cfg
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

func envInt(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return fallback
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithLogger sets the structured logger (default slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.Logger = l
		}
	}
}
