package service

import (
	"context"

	"moim/internal/errors"
)

// ErrAddressNotFound is returned when the geocoder has no match for an address
// or search query.
var ErrAddressNotFound = errors.New("address not found")

// GeocodeResult is a resolved address: WGS84 coordinates plus the normalized
// display form of the address.
type GeocodeResult struct {
	Latitude       float64 `json:"lat"`
	Longitude      float64 `json:"lng"`
	DisplayAddress string  `json:"display_address"`
	// Exact is false when the result came from keyword search rather than a
	// direct address match.
	Exact bool `json:"exact"`
}

// Geocoder converts free-text addresses and keywords to coordinates.
// Single external call per operation; failures surface as errors, there is
// no fallback chain here.
type Geocoder interface {
	// Geocode resolves a street address. Returns ErrAddressNotFound when the
	// provider has no match.
	Geocode(ctx context.Context, address string) (*GeocodeResult, error)

	// SearchPlace resolves a free-form query, falling back from address
	// geocoding to keyword search (e.g. station or venue names).
	SearchPlace(ctx context.Context, query string) (*GeocodeResult, error)
}
