package routing

import (
	"context"

	"moim/config"
	"moim/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const defaultEstimateSpeedKmh = 38.0

// haversineProvider is an offline last-resort estimator: straight-line
// distance with a fixed assumed driving speed. It never fails for valid
// coordinates, so it only belongs at the very end of the chain and only when
// explicitly enabled.
type haversineProvider struct {
	speedKmh float64
}

// NewHaversineProvider builds the straight-line estimator.
func NewHaversineProvider(cfg *config.Config) service.RouteProvider {
	speed := cfg.Routing.EstimateSpeedKmh
	if speed <= 0 {
		speed = defaultEstimateSpeedKmh
	}

	return &haversineProvider{speedKmh: speed}
}

func (p *haversineProvider) Name() string { return "haversine" }

// Route estimates distance and duration without any network call.
// The path is just the two endpoints.
func (p *haversineProvider) Route(_ context.Context, origin, dest service.Coordinate) (*service.RouteResult, error) {
	from := orb.Point{origin.Longitude, origin.Latitude}
	to := orb.Point{dest.Longitude, dest.Latitude}

	distanceKm := geo.Distance(from, to) / 1000

	return &service.RouteResult{
		DistanceKm:  distanceKm,
		DurationMin: distanceKm / p.speedKmh * 60,
		Path:        []orb.Point{from, to},
	}, nil
}
