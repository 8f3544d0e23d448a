package web

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/cracktacoshop/site/internal/content"
	"github.com/cracktacoshop/site/internal/geo"
	"github.com/cracktacoshop/site/internal/location"
	"github.com/cracktacoshop/site/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// handleListLocations returns the full store catalog.
func (s *Server) handleListLocations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, struct {
		Locations []location.Location `json:"locations"`
	}{Locations: location.Catalog})
}

// handleGetLocation returns a single store with its map links.
func (s *Server) handleGetLocation(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	loc, ok := location.BySlug(slug)
	if !ok {
		respondError(w, r, http.StatusNotFound, "Location not found.", nil)
		return
	}
	maps := loc.Maps()
	writeJSON(w, struct {
		Location location.Location    `json:"location"`
		MapsURL  string               `json:"mapsUrl"`
		MapsDir  string               `json:"directionsUrl"`
		Menu     content.LocationMenu `json:"menu"`
	}{Location: loc, MapsURL: maps.SearchURL(), MapsDir: maps.DirectionsURL(""), Menu: content.MenuFor(slug)})
}

// handleGetMenu returns the menu for a store slug. Unknown slugs fall back
// to the shared base menu rather than erroring, matching the pages.
func (s *Server) handleGetMenu(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	writeJSON(w, content.MenuFor(slug))
}

// nearestResponse is the JSON shape for nearest-store lookups. Failures are
// still HTTP 200 since the client renders them as guidance, not errors.
type nearestResponse struct {
	OK      bool   `json:"ok"`
	Slug    string `json:"slug,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
	Action  string `json:"action,omitempty"`
}

// handleNearestLocation resolves the closest store. Explicit lat/lon query
// parameters win; otherwise the client IP is positioned against the GeoIP
// database when one is loaded.
func (s *Server) handleNearestLocation(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	result := s.resolveNearest(r)
	metrics.NearestLookupDurationMs.Observe(float64(time.Since(start).Milliseconds()))

	if result.OK {
		metrics.NearestLookupsTotal.WithLabelValues("matched").Inc()
		writeJSON(w, nearestResponse{OK: true, Slug: result.Slug})
		return
	}

	metrics.NearestLookupsTotal.WithLabelValues(string(result.Reason)).Inc()
	guide := geo.Guide(result.Reason)
	writeJSON(w, nearestResponse{
		OK:      false,
		Reason:  string(result.Reason),
		Message: guide.Message,
		Action:  guide.Action,
	})
}

func (s *Server) resolveNearest(r *http.Request) geo.Result {
	points := location.Points()

	latStr := r.URL.Query().Get("lat")
	lonStr := r.URL.Query().Get("lon")
	if latStr != "" || lonStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			return geo.Result{Reason: geo.ReasonUnavailable}
		}
		slug, ok := location.Nearest(lat, lon, points)
		if !ok {
			return geo.Result{Reason: geo.ReasonNoMatch}
		}
		return geo.Result{OK: true, Slug: slug}
	}

	finder := s.finderFor(r)
	return finder.FindNearest(r.Context(), points)
}

// finderFor builds a two-stage finder positioned by the client's IP.
func (s *Server) finderFor(r *http.Request) *geo.Finder {
	var provider geo.Provider
	if s.geoDB != nil {
		provider = geo.NewGeoIPProvider(s.geoDB, clientIP(r))
	}

	finder := geo.NewFinder(provider)
	finder.QuickTimeout = s.cfg.Geo.QuickTimeout
	finder.QuickMaxAge = s.cfg.Geo.QuickMaxAge
	finder.PreciseTimeout = s.cfg.Geo.PreciseTimeout
	return finder
}

func clientIP(r *http.Request) net.IP {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return net.ParseIP(host)
	}
	return net.ParseIP(r.RemoteAddr)
}

// shoppingLocationResponse reports the session's current selection. The
// resolved location always falls back to the default store so the client
// can render without a second request.
type shoppingLocationResponse struct {
	Slug     string            `json:"slug,omitempty"`
	Selected bool              `json:"selected"`
	Location location.Location `json:"location"`
}

func (s *Server) handleGetShoppingLocation(w http.ResponseWriter, r *http.Request) {
	store := s.sessionStore(w, r)
	slug, ok := store.Get()
	writeJSON(w, shoppingLocationResponse{
		Slug:     slug,
		Selected: ok,
		Location: store.Selected(),
	})
}

/// handlePutShoppingLocation records a selection. Writes are permissive:
// any non-empty slug is stored, and unknown values resolve to the default
// store on read.
func (s *Server) handlePutShoppingLocation(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Slug string `json:"slug"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request body.", err)
		return
	}
	if body.Slug == "" {
		respondError(w, r, http.StatusBadRequest, "A location slug is required.", nil)
		return
	}

	store := s.sessionStore(w, r)
	store.Set(body.Slug)
	metrics.ShoppingSelectionsTotal.WithLabelValues(selectionLabel(body.Slug)).Inc()

	slug, ok := store.Get()
	writeJSON(w, shoppingLocationResponse{
		Slug:     slug,
		Selected: ok,
		Location: store.Selected(),
	})
}

// selectionLabel caps the metric label set at the catalog. Writes stay
// permissive, but a client-supplied slug must not mint new label series.
func selectionLabel(slug string) string {
	if _, ok := location.BySlug(slug); ok {
		return slug
	}
	return "other"
}

// handleShoppingLocationEvents streams selection changes for the session
// via Server-Sent Events. The current selection is sent immediately so a
// reconnecting client never misses state.
func (s *Server) handleShoppingLocationEvents(w http.ResponseWriter, r *http.Request) {
	store := s.sessionStore(w, r)

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, r, http.StatusInternalServerError, "Streaming is not supported.", nil)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	metrics.SSESubscribersActive.Inc()
	defer metrics.SSESubscribersActive.Dec()

	// Buffered so a slow client cannot stall the notifying writer.
	events := make(chan string, 8)
	unsubscribe := store.Subscribe(func(slug string) {
		select {
		case events <- slug:
		default:
		}
	})
	defer unsubscribe()

	send := func(slug string) {
		data, _ := json.Marshal(shoppingLocationResponse{
			Slug:     slug,
			Selected: slug != "",
			Location: store.Selected(),
		})
		fmt.Fprintf(w, "event: shopping-location\ndata: %s\n\n", data)
		flusher.Flush()
	}

	current, _ := store.Get()
	send(current)

	keepalive := time.NewTicker(25 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case slug := <-events:
			send(slug)
		case <-keepalive.C:
			fmt.Fprint(w, ": keepalive\n\n")
			flusher.Flush()
		case <-r.Context().Done():
			return
		}
	}
}

// handleHealthz reports liveness plus cheap operational facts.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, struct {
		Status      string `json:"status"`
		Locations   int    `json:"locations"`
		Sessions    int    `json:"sessions"`
		GeoIPLoaded bool   `json:"geoipLoaded"`
		MailReady   bool   `json:"mailReady"`
	}{
		Status:      "ok",
		Locations:   len(location.Catalog),
		Sessions:    s.sessions.len(),
		GeoIPLoaded: s.geoDB != nil,
		MailReady:   s.cfg.SMTP.Configured(),
	})
}
