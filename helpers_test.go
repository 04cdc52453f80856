package folio

import (
	"reflect"
	"testing"
	"time"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		expected string
	}{
		{"https://studio.example", nil, "https://studio.example"},
		{"https://studio.example", []string{"projects", "malibu"}, "https://studio.example/projects/malibu/"},
		{"https://studio.example/sub", []string{"faq"}, "https://studio.example/sub/faq/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.expected {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.expected)
		}
	}
}

func TestAbsoluteURL(t *testing.T) {
	tests := map[string]string{
		"/projects/a/b-L.jpg":     "https://studio.example/projects/a/b-L.jpg",
		"https://cdn.example/x":   "https://cdn.example/x",
		"data:image/jpeg;base64,": "data:image/jpeg;base64,",
		"":                        "",
	}
	for in, want := range tests {
		if got := AbsoluteURL("https://studio.example/", in); got != want {
			t.Errorf("AbsoluteURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFilterEmpty(t *testing.T) {
	got := FilterEmpty([]string{" a ", "", "  ", "b"})
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("FilterEmpty = %v", got)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SITE_NAME", "Atelier")
	t.Setenv("SITE_URL", "https://atelier.example/")
	t.Setenv("CONTACT_LIMIT", "3")
	t.Setenv("CONTACT_WINDOW", "30m")
	t.Setenv("METRICS_ENABLED", "true")

	cfg := ConfigFromEnv()
	if cfg.Name != "Atelier" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.URL != "https://atelier.example" {
		t.Errorf("URL should lose its trailing slash, got %q", cfg.URL)
	}
	if cfg.ContactLimit != 3 || cfg.ContactWindow != 30*time.Minute {
		t.Errorf("contact limit = %d per %s", cfg.ContactLimit, cfg.ContactWindow)
	}
	if !cfg.MetricsEnabled {
		t.Error("MetricsEnabled should be true")
	}
	if cfg.Placeholder != "/public/placeholder.svg" || cfg.ImageRoot != "/projects/" {
		t.Errorf("image defaults = %q, %q", cfg.Placeholder, cfg.ImageRoot)
	}
}
