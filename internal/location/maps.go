package location

import (
	"net/url"
	"strings"
)

// maps.go builds Google Maps links for store addresses. The URLs are only
// constructed here, never fetched; they are handed to the browser as search,
// directions, and embed targets. A stable place ID is preferred over a free
// text address query when one is configured.

// MapsLink identifies a destination for maps URL construction.
type MapsLink struct {
	Address string
	PlaceID string
	// MapsURL overrides construction entirely when the location has a
	// curated short link.
	MapsURL string
}

// SearchURL returns a Google Maps search link for the destination.
func (m MapsLink) SearchURL() string {
	if u := strings.TrimSpace(m.MapsURL); u != "" {
		return u
	}
	if id := strings.TrimSpace(m.PlaceID); id != "" {
		return "https://www.google.com/maps/place/?q=place_id:" + url.QueryEscape(id)
	}
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(m.Address)
}

// DirectionsURL returns a Google Maps directions link to the destination.
// origin is optional; when empty the maps client uses the viewer's position.
func (m MapsLink) DirectionsURL(origin string) string {
	if u := strings.TrimSpace(m.MapsURL); u != "" {
		return u
	}

	dest := url.QueryEscape(m.Address)
	originParam := ""
	if origin != "" {
		originParam = "&origin=" + url.QueryEscape(origin)
	}

	if id := strings.TrimSpace(m.PlaceID); id != "" {
		return "https://www.google.com/maps/dir/?api=1&destination=" + dest + originParam +
			"&destination_place_id=" + url.QueryEscape(id)
	}
	return "https://www.google.com/maps/dir/?api=1&destination=" + dest + originParam
}

// EmbedURL returns an embeddable maps URL. With an API key the official
// embed endpoint is used; without one the keyless output=embed form.
func (m MapsLink) EmbedURL(apiKey string) string {
	query := m.Address
	if id := strings.TrimSpace(m.PlaceID); id != "" {
		query = "place_id:" + id
	}

	if key := strings.TrimSpace(apiKey); key != "" {
		return "https://www.google.com/maps/embed/v1/place?key=" + url.QueryEscape(key) +
			"&q=" + url.QueryEscape(query)
	}
	return "https://www.google.com/maps?q=" + url.QueryEscape(query) + "&output=embed"
}

// Maps returns the maps destination for a catalog location.
func (l Location) Maps() MapsLink {
	return MapsLink{Address: l.Address, PlaceID: l.PlaceID}
}
