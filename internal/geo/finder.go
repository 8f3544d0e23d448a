// Package geo resolves the nearest store from a position source, degrading
// gracefully across capability, permission, and timeout failures.
package geo

import (
	"context"
	"errors"
	"time"

	"github.com/cracktacoshop/site/internal/location"
)

// Reason enumerates why a nearest-location lookup produced no slug. Lookups
// never surface errors; every failure maps to one of these values.
type Reason string

const (
	ReasonUnsupported      Reason = "unsupported"
	ReasonPermissionDenied Reason = "permission-denied"
	ReasonTimeout          Reason = "timeout"
	ReasonUnavailable      Reason = "unavailable"
	ReasonNoMatch          Reason = "no-match"
)

// Sentinel errors a Provider uses to report position fetch failures.
var (
	ErrPermissionDenied = errors.New("geo: permission denied")
	ErrTimeout          = errors.New("geo: position request timed out")
	ErrUnavailable      = errors.New("geo: position unavailable")
)

// PermissionState mirrors the runtime's permission query result.
type PermissionState int

const (
	// PermissionUnknown means no permission query capability exists; the
	// lookup proceeds and lets the fetch itself fail if access is denied.
	PermissionUnknown PermissionState = iota
	PermissionGranted
	PermissionPrompt
	PermissionDenied
)

// Position is a resolved coordinate pair.
type Position struct {
	Latitude  float64
	Longitude float64
}

// Options controls a single position fetch.
type Options struct {
	// HighAccuracy requests a precise fix at the cost of latency.
	HighAccuracy bool
	// Timeout bounds the fetch; expiry maps to ErrTimeout.
	Timeout time.Duration
	// MaximumAge allows a cached position no older than this. Zero demands
	// a fresh fix.
	MaximumAge time.Duration
}

// Provider is a source of positions. Implementations wrap whatever the
// runtime offers: a GeoIP database, a client-forwarded fix, or a test fake.
type Provider interface {
	// Supported reports whether this runtime can produce positions at all.
	Supported() bool
	// Permission reports the current permission state without prompting.
	Permission(ctx context.Context) PermissionState
	// Position fetches a position under the given options. Failures are
	// one of the package sentinel errors (or wrap one).
	Position(ctx context.Context, opts Options) (Position, error)
}

// Result is the outcome of FindNearest. OK distinguishes the two arms; Slug
// is set on success, Reason on failure.
type Result struct {
	OK     bool
	Slug   string
	Reason Reason
}

func success(slug string) Result   { return Result{OK: true, Slug: slug} }
func failure(reason Reason) Result { return Result{Reason: reason} }

// Finder orchestrates a two-stage nearest-store lookup against a Provider.
type Finder struct {
	provider Provider

	// Stage tuning. The quick stage favors responsiveness: it accepts a
	// cached position and gives up fast. The precise stage demands a fresh
	// high-accuracy fix and waits longer.
	QuickTimeout   time.Duration
	QuickMaxAge    time.Duration
	PreciseTimeout time.Duration
}

// NewFinder returns a Finder with the standard stage timing.
func NewFinder(provider Provider) *Finder {
	return &Finder{
		provider:       provider,
		QuickTimeout:   5 * time.Second,
		QuickMaxAge:    5 * time.Minute,
		PreciseTimeout: 12 * time.Second,
	}
}

// FindNearest resolves the nearest of points from the provider's position.
//
// The lookup is an ordered sequence of attempts with a distinct outcome per
// stage: capability check, permission check, quick low-accuracy fetch, then
// precise high-accuracy fetch. A stage's failure reason is preserved, never
// collapsed into a generic error. At most one position request is in flight
// per invocation; concurrent invocations are independent and are not
// deduplicated.
//
// FindNearest never mutates selection state; callers decide whether to
// persist the result.
func (f *Finder) FindNearest(ctx context.Context, points []location.Point) Result {
	if len(points) == 0 {
		return failure(ReasonNoMatch)
	}

	if f.provider == nil || !f.provider.Supported() {
		return failure(ReasonUnsupported)
	}

	// A permission already reported denied fails without a fetch, avoiding
	// a prompt that cannot succeed.
	if f.provider.Permission(ctx) == PermissionDenied {
		return failure(ReasonPermissionDenied)
	}

	// Quick stage: cached, low accuracy, short timeout.
	pos, err := f.provider.Position(ctx, Options{
		HighAccuracy: false,
		Timeout:      f.QuickTimeout,
		MaximumAge:   f.QuickMaxAge,
	})
	if err == nil {
		if slug, ok := location.Nearest(pos.Latitude, pos.Longitude, points); ok {
			return success(slug)
		}
		// No match falls through to the precise stage.
	} else if errors.Is(err, ErrPermissionDenied) {
		// Denial mid-flow is terminal; the precise stage would just
		// prompt again.
		return failure(ReasonPermissionDenied)
	}

	// Precise stage: fresh fix, high accuracy, longer timeout.
	pos, err = f.provider.Position(ctx, Options{
		HighAccuracy: true,
		Timeout:      f.PreciseTimeout,
		MaximumAge:   0,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrPermissionDenied):
			return failure(ReasonPermissionDenied)
		case errors.Is(err, ErrTimeout):
			return failure(ReasonTimeout)
		default:
			return failure(ReasonUnavailable)
		}
	}

	slug, ok := location.Nearest(pos.Latitude, pos.Longitude, points)
	if !ok {
		return failure(ReasonNoMatch)
	}
	return success(slug)
}
