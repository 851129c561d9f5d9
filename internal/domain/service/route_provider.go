package service

import (
	"context"

	"moim/internal/errors"

	"github.com/paulmach/orb"
)

// ErrRouteUnavailable is returned when a provider (or the whole fallback
// chain) cannot produce a driving route for a coordinate pair. The cause is
// deliberately not distinguished: the caller's policy is the same for a
// network error, a bad response or missing credentials.
var ErrRouteUnavailable = errors.New("driving route unavailable")

// Coordinate is a WGS84 point. The zero value means "not geocoded yet".
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// IsZero reports whether either component is missing.
func (c Coordinate) IsZero() bool {
	return c.Latitude == 0 || c.Longitude == 0
}

// RouteResult is one resolved driving route between two coordinates.
// Distance is kilometers, duration minutes; providers normalize their native
// units exactly once. Path is the driven geometry as [lng, lat] points and
// may be empty when the provider returned no geometry.
type RouteResult struct {
	DistanceKm  float64     `json:"distance_km"`
	DurationMin float64     `json:"duration_min"`
	Path        []orb.Point `json:"path"`
}

// RouteProvider wraps one external driving-directions service.
// Implementations issue a single bounded network call and report every
// failure mode as an error; they never panic and never retry.
type RouteProvider interface {
	// Name identifies the provider in logs.
	Name() string

	// Route resolves a driving route between two valid coordinates.
	// Callers guarantee both coordinates are non-zero before invoking.
	Route(ctx context.Context, origin, dest Coordinate) (*RouteResult, error)
}

// RouteResolver selects among providers; the infra layer implements it as an
// ordered fallback chain.
type RouteResolver interface {
	// Resolve returns the first provider's successful result, or
	// ErrRouteUnavailable when every provider failed.
	Resolve(ctx context.Context, origin, dest Coordinate) (*RouteResult, error)
}
