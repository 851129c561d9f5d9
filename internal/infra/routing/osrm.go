package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"moim/config"
	"moim/internal/domain/service"
	"moim/internal/errors"

	"github.com/paulmach/orb"
)

// osrmProvider resolves driving routes through an OSRM instance. The public
// demo server needs no credentials, which makes it the natural fallback.
type osrmProvider struct {
	client  *http.Client
	baseURL string
}

// NewOSRMProvider builds the open-data route provider.
func NewOSRMProvider(cfg *config.Config) service.RouteProvider {
	return &osrmProvider{
		client:  &http.Client{Timeout: cfg.Routing.ProviderTimeout},
		baseURL: cfg.OSRM.BaseURL,
	}
}

func (p *osrmProvider) Name() string { return "osrm" }

type osrmRouteResponse struct {
	Routes []struct {
		Distance float64 `json:"distance"` // meters
		Duration float64 `json:"duration"` // seconds
		Geometry struct {
			Coordinates []orb.Point `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// Route resolves a driving route via the OSRM route service.
func (p *osrmProvider) Route(ctx context.Context, origin, dest service.Coordinate) (*service.RouteResult, error) {
	endpoint := fmt.Sprintf(
		"%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=geojson",
		p.baseURL,
		origin.Longitude, origin.Latitude,
		dest.Longitude, dest.Latitude,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create osrm request")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call osrm")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("osrm status %d", resp.StatusCode)
	}

	var decoded osrmRouteResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.Wrap(err, "decode osrm response")
	}

	if len(decoded.Routes) == 0 {
		return nil, errors.New("osrm returned no routes")
	}

	route := decoded.Routes[0]

	return &service.RouteResult{
		DistanceKm:  route.Distance / 1000,
		DurationMin: route.Duration / 60,
		Path:        route.Geometry.Coordinates,
	}, nil
}
