// Package routing implements the driving-route provider adapters and the
// fallback chain that selects among them.
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"moim/config"
	"moim/internal/domain/service"
	"moim/internal/errors"

	"github.com/paulmach/orb"
)

const naverDirectionsURL = "https://maps.apigw.ntruss.com/map-direction/v1/driving"

// errMissingCredentials marks a provider that cannot be used because its
// credentials were never configured. The resolver logs these at Warn but the
// fallback behavior is the same as any other failure.
var errMissingCredentials = errors.New("provider credentials are not configured")

// naverProvider resolves driving routes through the NCP Maps Directions API.
type naverProvider struct {
	client   *http.Client
	baseURL  string
	clientID string
	secret   string
}

// NewNaverProvider builds the primary commercial route provider.
// Credentials may be empty; Route then fails immediately without a network
// call and the resolver falls through to the next provider.
func NewNaverProvider(cfg *config.Config) service.RouteProvider {
	return &naverProvider{
		client:   &http.Client{Timeout: cfg.Routing.ProviderTimeout},
		baseURL:  naverDirectionsURL,
		clientID: cfg.Naver.MapClientID,
		secret:   cfg.Naver.MapClientSecret,
	}
}

func (p *naverProvider) Name() string { return "naver" }

// naverDirectionsResponse covers the fields we read from the traoptimal route.
type naverDirectionsResponse struct {
	Code  int `json:"code"`
	Route struct {
		Traoptimal []struct {
			Summary struct {
				Distance float64 `json:"distance"` // meters
				Duration float64 `json:"duration"` // milliseconds
			} `json:"summary"`
			Path []orb.Point `json:"path"`
		} `json:"traoptimal"`
	} `json:"route"`
}

// Route resolves a driving route via the Directions 5 API.
func (p *naverProvider) Route(ctx context.Context, origin, dest service.Coordinate) (*service.RouteResult, error) {
	if p.clientID == "" || p.secret == "" {
		return nil, errors.Wrap(errMissingCredentials, "naver maps")
	}

	query := url.Values{}
	query.Set("start", fmt.Sprintf("%f,%f", origin.Longitude, origin.Latitude))
	query.Set("goal", fmt.Sprintf("%f,%f", dest.Longitude, dest.Latitude))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "create directions request")
	}
	req.Header.Set("x-ncp-apigw-api-key-id", p.clientID)
	req.Header.Set("x-ncp-apigw-api-key", p.secret)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call naver directions")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("naver directions status %d", resp.StatusCode)
	}

	var decoded naverDirectionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.Wrap(err, "decode naver directions response")
	}

	if decoded.Code != 0 || len(decoded.Route.Traoptimal) == 0 {
		return nil, errors.Errorf("naver directions returned no route (code %d)", decoded.Code)
	}

	route := decoded.Route.Traoptimal[0]

	return &service.RouteResult{
		DistanceKm:  route.Summary.Distance / 1000,
		DurationMin: route.Summary.Duration / float64(time.Minute/time.Millisecond),
		Path:        route.Path,
	}, nil
}
