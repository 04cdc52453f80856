// Package metrics exposes Prometheus counters for the site.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the site's collectors on a private registry.
type Metrics struct {
	registry         *prometheus.Registry
	requestsTotal    *prometheus.CounterVec
	resolutionsTotal *prometheus.CounterVec
	fallbacksTotal   *prometheus.CounterVec
	lookupsTotal     *prometheus.CounterVec
	inquiriesTotal   *prometheus.CounterVec
	projectsLoaded   prometheus.Gauge
	projectsRejected prometheus.Gauge
	manifestGroups   prometheus.Gauge
}

// New creates and registers the collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "folio_http_requests_total",
			Help: "HTTP requests by method and status code",
		}, []string{"method", "code"}),
		resolutionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "folio_image_resolutions_total",
			Help: "Image resolutions by source (manifest, heuristic, placeholder)",
		}, []string{"source"}),
		fallbacksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "folio_image_fallbacks_total",
			Help: "Image load failures reported by clients, by outcome",
		}, []string{"outcome"}),
		lookupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "folio_project_lookups_total",
			Help: "Project lookups by result (found, not_found)",
		}, []string{"result"}),
		inquiriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "folio_contact_inquiries_total",
			Help: "Contact form submissions by result",
		}, []string{"result"}),
		projectsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "folio_projects_loaded",
			Help: "Number of project records loaded",
		}),
		projectsRejected: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "folio_projects_rejected",
			Help: "Number of malformed project records skipped at load",
		}),
		manifestGroups: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "folio_image_manifest_groups",
			Help: "Logical images in the loaded manifest (0 means heuristic mode)",
		}),
	}

	registry.MustRegister(
		m.requestsTotal,
		m.resolutionsTotal,
		m.fallbacksTotal,
		m.lookupsTotal,
		m.inquiriesTotal,
		m.projectsLoaded,
		m.projectsRejected,
		m.manifestGroups,
	)
	return m
}

// ObserveRequest counts one HTTP response.
func (m *Metrics) ObserveRequest(method string, code int) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
}

// IncResolution counts an image resolution by source.
func (m *Metrics) IncResolution(source string) {
	if m == nil {
		return
	}
	m.resolutionsTotal.WithLabelValues(source).Inc()
}

// IncFallback counts a reported load failure; outcome is "next" or "exhausted".
func (m *Metrics) IncFallback(outcome string) {
	if m == nil {
		return
	}
	m.fallbacksTotal.WithLabelValues(outcome).Inc()
}

// IncLookup counts a project lookup.
func (m *Metrics) IncLookup(found bool) {
	if m == nil {
		return
	}
	result := "found"
	if !found {
		result = "not_found"
	}
	m.lookupsTotal.WithLabelValues(result).Inc()
}

// IncInquiry counts a contact submission; result is "accepted", "invalid" or "limited".
func (m *Metrics) IncInquiry(result string) {
	if m == nil {
		return
	}
	m.inquiriesTotal.WithLabelValues(result).Inc()
}

// SetContent records the outcome of loading content and the image manifest.
func (m *Metrics) SetContent(projects, rejected, manifestGroups int) {
	if m == nil {
		return
	}
	m.projectsLoaded.Set(float64(projects))
	m.projectsRejected.Set(float64(rejected))
	m.manifestGroups.Set(float64(manifestGroups))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
