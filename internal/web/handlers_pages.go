package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/cracktacoshop/site/internal/content"
	"github.com/cracktacoshop/site/internal/location"
	"github.com/cracktacoshop/site/internal/metrics"
	"github.com/go-chi/chi/v5"
)

//go:embed templates
var templateFiles embed.FS

// pageTemplates holds one template set per page, each sharing the layout.
var pageTemplates = func() map[string]*template.Template {
	pages := []string{"home", "locations", "location", "menu", "order-online", "specials", "our-story", "careers", "contact", "faq", "reviews"}
	m := make(map[string]*template.Template, len(pages))
	for _, p := range pages {
		m[p] = template.Must(template.ParseFS(templateFiles,
			"templates/layout.html", "templates/"+p+".html"))
	}
	return m
}()

// pageData is the envelope every page template receives.
type pageData struct {
	Title    string
	Site     any
	Selected location.Location
	Data     any
}

// renderPage executes a page template with the shared envelope. The
// session's selected store is always present so the header can show it.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, page, title string, data any) {
	tmpl, ok := pageTemplates[page]
	if !ok {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}

	store := s.sessionStore(w, r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := tmpl.ExecuteTemplate(w, "layout", pageData{
		Title:    title,
		Site:     content.Site,
		Selected: store.Selected(),
		Data:     data,
	})
	if err != nil {
		slog.Error("template render error", "page", page, "error", err)
	}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "home", "Home", struct {
		Highlights []content.Highlight
		Marketing  []content.MarketingHighlight
	}{content.Highlights, content.MarketingHighlights})
}

func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "locations", "Locations", struct {
		Locations []location.Location
	}{location.Catalog})
}

// handleLocationDetail renders a store page. Visiting a valid store page
// also records it as the session's shopping location.
func (s *Server) handleLocationDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	loc, ok := location.BySlug(slug)
	if !ok {
		http.NotFound(w, r)
		return
	}

	store := s.sessionStore(w, r)
	store.Set(slug)
	metrics.ShoppingSelectionsTotal.WithLabelValues(slug).Inc()

	maps := loc.Maps()
	s.renderPage(w, r, "location", loc.Name, struct {
		Location      location.Location
		MapsURL       string
		DirectionsURL string
		EmbedURL      string
	}{loc, maps.SearchURL(), maps.DirectionsURL(""), maps.EmbedURL("")})
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	loc, ok := location.BySlug(slug)
	if !ok {
		loc = location.Default()
	}

	s.renderPage(w, r, "menu", loc.Name+" Menu", struct {
		Location location.Location
		Menu     content.LocationMenu
	}{loc, content.MenuFor(loc.Slug)})
}

func (s *Server) handleOrderOnline(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "order-online", "Order Online", struct {
		Locations []location.Location
	}{location.Catalog})
}

func (s *Server) handleSpecials(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "specials", "Specials", struct {
		Specials  []content.Special
		Locations []location.Location
	}{content.Specials, location.Catalog})
}

func (s *Server) handleOurStory(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "our-story", "Our Story", struct {
		Highlights []content.Highlight
	}{content.Highlights})
}

func (s *Server) handleCareersPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "careers", "Careers", struct {
		Locations []location.Location
	}{location.Catalog})
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "contact", "Contact", struct {
		Locations []location.Location
	}{location.Catalog})
}

func (s *Server) handleFAQ(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "faq", "FAQ", struct {
		FAQ []content.FAQItem
	}{content.FAQ})
}

func (s *Server) handleReviews(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "reviews", "Reviews", struct {
		Reviews []content.Review
	}{content.Reviews})
}
