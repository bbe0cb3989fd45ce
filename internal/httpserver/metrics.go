// internal/httpserver/metrics.go
//
// Prometheus metrics for the HTTP API, served on GET /metrics.
// Each Server owns its registry so several servers (tests) can coexist.

package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metrics struct {
	reg *prometheus.Registry

	// requests counts handled requests.
	// Labels: route (chi pattern), code
	requests *prometheus.CounterVec

	// latency measures handler time.
	// Labels: route
	latency *prometheus.HistogramVec

	// guesses counts scored guesses.
	// Labels: mode (normal, assist, daily)
	guesses *prometheus.CounterVec

	// finished counts completed games.
	// Labels: state (won, lost)
	finished *prometheus.CounterVec

	// candidates tracks how many words survive an assist request.
	candidates prometheus.Histogram

	// sessions reports games held in memory.
	sessions prometheus.GaugeFunc
}

func newMetrics(sessions func() float64) *metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &metrics{
		reg: reg,
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wordle",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Handled HTTP requests",
		}, []string{"route", "code"}),
		latency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wordle",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP handler latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route"}),
		guesses: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wordle",
			Subsystem: "game",
			Name:      "guesses_total",
			Help:      "Scored guesses",
		}, []string{"mode"}),
		finished: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wordle",
			Subsystem: "game",
			Name:      "finished_total",
			Help:      "Finished games by outcome",
		}, []string{"state"}),
		candidates: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "wordle",
			Subsystem: "assist",
			Name:      "candidates",
			Help:      "Words left after an assist filter",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250, 1000, 5000},
		}),
		sessions: f.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "wordle",
			Subsystem: "game",
			Name:      "sessions",
			Help:      "Game sessions held in memory",
		}, sessions),
	}
}

// instrument records count and latency per matched route.
func (m *metrics) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
		m.latency.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}
