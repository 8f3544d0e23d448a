package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cts_http_requests_total",
		Help: "HTTP requests by route and status class",
	}, []string{"route", "status"})
	HTTPRequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cts_http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000, 5000},
	}, []string{"route"})
	CareersSubmissionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cts_careers_submissions_total",
		Help: "Careers submissions by outcome (accepted, input, config, delivery)",
	}, []string{"outcome"})
	CareersHoneypotTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cts_careers_honeypot_total",
		Help: "Careers submissions dropped by the spam trap",
	})
	NearestLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cts_nearest_lookups_total",
		Help: "Nearest-location lookups by result (matched or failure reason)",
	}, []string{"result"})
	NearestLookupDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cts_nearest_lookup_duration_ms",
		Help:    "Nearest-location lookup duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 500, 1000, 5000, 15000},
	})
	ShoppingSelectionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cts_shopping_selections_total",
		Help: "Shopping location selections recorded, by slug",
	}, []string{"slug"})
	SSESubscribersActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cts_sse_subscribers_active",
		Help: "Open shopping-location event streams",
	})
	RateLimitedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cts_rate_limited_total",
		Help: "Requests rejected by the rate limiter, by scope",
	}, []string{"scope"})
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDurationMs)
	prometheus.MustRegister(CareersSubmissionsTotal)
	prometheus.MustRegister(CareersHoneypotTotal)
	prometheus.MustRegister(NearestLookupsTotal)
	prometheus.MustRegister(NearestLookupDurationMs)
	prometheus.MustRegister(ShoppingSelectionsTotal)
	prometheus.MustRegister(SSESubscribersActive)
	prometheus.MustRegister(RateLimitedTotal)
}

// Handler serves the registered metrics for Prometheus scrapes.
func Handler() http.Handler { return promhttp.Handler() }
