// Package web provides the HTTP server and handlers for the restaurant site.
package web

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/cracktacoshop/site/internal/careers"
	"github.com/cracktacoshop/site/internal/config"
	"github.com/cracktacoshop/site/internal/metrics"
	ctsmw "github.com/cracktacoshop/site/internal/web/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oschwald/geoip2-golang"
)

// Server is the HTTP server for the site.
type Server struct {
	cfg      *config.Config
	careers  *careers.Service
	geoDB    *geoip2.Reader
	sessions *sessionRegistry
	router   *chi.Mux
	server   *http.Server
}

// NewServer builds a server around the careers service and an optional
// GeoIP database. A nil geoDB disables server-side positioning; nearest
// lookups without coordinates then report unsupported.
func NewServer(cfg *config.Config, careersSvc *careers.Service, geoDB *geoip2.Reader) *Server {
	s := &Server{
		cfg:      cfg,
		careers:  careersSvc,
		geoDB:    geoDB,
		sessions: newSessionRegistry(sessionTTL),
		router:   chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(ctsmw.TrustedRealIP(s.cfg.Security.TrustedProxies))
	s.router.Use(ctsmw.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	s.router.Use(securityHeaders(s.cfg.Security.EnableCSP))

	if s.cfg.Rate.Enabled {
		limiter := newRateLimiter(s.cfg.Rate.RequestsPerMinute, time.Minute, "global")
		s.router.Use(limiter.middleware)
	}
}

// setupRoutes configures all HTTP routes. Request-response routes run
// under the request timeout; the event stream is mounted outside it so
// open streams are not cancelled after a minute.
func (s *Server) setupRoutes() {
	s.router.Group(func(g chi.Router) {
		if s.cfg.Server.RequestTimeout > 0 {
			g.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))
		}

		// Pages
		g.Get("/", s.handleHome)
		g.Get("/locations", s.handleLocations)
		g.Get("/locations/{slug}", s.handleLocationDetail)
		g.Get("/menu/{slug}", s.handleMenu)
		g.Get("/order-online", s.handleOrderOnline)
		g.Get("/specials", s.handleSpecials)
		g.Get("/our-story", s.handleOurStory)
		g.Get("/careers", s.handleCareersPage)
		g.Get("/contact", s.handleContact)
		g.Get("/faq", s.handleFAQ)
		g.Get("/reviews", s.handleReviews)

		// API routes
		g.Route("/api", func(r chi.Router) {
			r.Get("/locations", s.handleListLocations)
			r.Get("/locations/{slug}", s.handleGetLocation)
			r.Get("/locations/nearest", s.handleNearestLocation)
			r.Get("/menu/{slug}", s.handleGetMenu)

			r.Get("/shopping-location", s.handleGetShoppingLocation)
			r.Put("/shopping-location", s.handlePutShoppingLocation)

			// Careers submissions get their own, much tighter bucket.
			if s.cfg.Rate.Enabled {
				limiter := newRateLimiter(s.cfg.Rate.CareersLimit, time.Minute, "careers")
				r.With(limiter.middleware).Post("/careers", s.handleCareersSubmit)
			} else {
				r.Post("/careers", s.handleCareersSubmit)
			}
		})

		// Operational endpoints
		g.Get("/healthz", s.handleHealthz)
		g.Method(http.MethodGet, "/metrics", metrics.Handler())
	})

	// Long-lived stream, no request timeout.
	s.router.Get("/api/shopping-location/events", s.handleShoppingLocationEvents)
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout, // zero keeps SSE streams open
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// securityHeaders adds security headers to all responses. The CSP can be
// disabled for local development where inline tooling needs looser rules.
func securityHeaders(enableCSP bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			if enableCSP {
				w.Header().Set("Content-Security-Policy", "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data: https:; font-src 'self'; frame-src https://www.google.com")
			}

			next.ServeHTTP(w, r)
		})
	}
}

// rateLimiter implements a simple token bucket rate limiter per IP.
type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     int
	window   time.Duration
	scope    string
}

type visitor struct {
	tokens    int
	lastReset time.Time
}

func newRateLimiter(rate int, window time.Duration, scope string) *rateLimiter {
	rl := &rateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate,
		window:   window,
		scope:    scope,
	}
	go rl.cleanup()
	return rl
}

// cleanup removes stale visitor entries every minute.
func (rl *rateLimiter) cleanup() {
	for {
		time.Sleep(time.Minute)
		rl.mu.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// allow checks if the request should be allowed and consumes a token if so.
func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		rl.visitors[ip] = &visitor{
			tokens:    rl.rate - 1,
			lastReset: time.Now(),
		}
		return true
	}

	if time.Since(v.lastReset) > rl.window {
		v.tokens = rl.rate - 1
		v.lastReset = time.Now()
		return true
	}

	if v.tokens <= 0 {
		return false
	}

	v.tokens--
	return true
}

// middleware returns an HTTP middleware that rate limits by IP.
func (rl *rateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(r.RemoteAddr) {
			metrics.RateLimitedTotal.WithLabelValues(rl.scope).Inc()
			w.Header().Set("Retry-After", "60")
			respondError(w, r, http.StatusTooManyRequests, "Too many requests. Please slow down.", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
