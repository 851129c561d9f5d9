package usecase

import "context"

// GeocodeOutput carries resolved coordinates plus the normalized address.
// Exact is false when the match came from keyword search rather than a
// direct address lookup.
type GeocodeOutput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
	Exact     bool    `json:"exact"`
}

// GeocodeUsecase defines the interface for address resolution operations.
type GeocodeUsecase interface {
	// Geocode resolves a street address to coordinates.
	Geocode(ctx context.Context, address string) (*GeocodeOutput, error)

	// SearchPlace resolves a free-form query, falling back to keyword search
	// when the query is not a plain address.
	SearchPlace(ctx context.Context, query string) (*GeocodeOutput, error)
}
