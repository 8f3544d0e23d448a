package geo

import (
	"context"
	"net"

	"github.com/oschwald/geoip2-golang"
)

// GeoIPProvider resolves a position from a client IP using a MaxMind
// GeoLite2/GeoIP2 City database. It is the server-side position source for
// clients that send no coordinates of their own.
//
// IP lookup needs no user prompt, so Permission always reports granted. The
// accuracy and cache-age options are accepted but have no effect on a local
// database read.
type GeoIPProvider struct {
	reader *geoip2.Reader
	ip     net.IP
}

// OpenGeoIP opens the database at path. The returned reader is shared by all
// per-request providers and must be closed on shutdown.
func OpenGeoIP(path string) (*geoip2.Reader, error) {
	return geoip2.Open(path)
}

// NewGeoIPProvider binds a shared reader to one client IP. reader may be nil
// when no database is configured; the provider then reports unsupported.
func NewGeoIPProvider(reader *geoip2.Reader, ip net.IP) *GeoIPProvider {
	return &GeoIPProvider{reader: reader, ip: ip}
}

func (p *GeoIPProvider) Supported() bool {
	return p.reader != nil && p.ip != nil
}

func (p *GeoIPProvider) Permission(ctx context.Context) PermissionState {
	return PermissionGranted
}

func (p *GeoIPProvider) Position(ctx context.Context, opts Options) (Position, error) {
	if err := ctx.Err(); err != nil {
		return Position{}, ErrUnavailable
	}
	if !p.Supported() {
		return Position{}, ErrUnavailable
	}

	city, err := p.reader.City(p.ip)
	if err != nil {
		return Position{}, ErrUnavailable
	}

	// Private and unrouted addresses come back zeroed; treat that as no fix
	// rather than a position in the Gulf of Guinea.
	if city.Location.Latitude == 0 && city.Location.Longitude == 0 {
		return Position{}, ErrUnavailable
	}

	return Position{
		Latitude:  city.Location.Latitude,
		Longitude: city.Location.Longitude,
	}, nil
}
