// Package geocode implements the address geocoder on the Naver APIs.
package geocode

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"moim/config"
	"moim/internal/domain/service"
	"moim/internal/errors"

	"go.uber.org/fx"
)

const (
	ncpGeocodeURL  = "https://maps.apigw.ntruss.com/map-geocode/v2/geocode"
	localSearchURL = "https://openapi.naver.com/v1/search/local.json"

	requestTimeout = 5 * time.Second
)

// naverGeocoder implements service.Geocoder on the NCP geocoding API, with
// Naver Local Search as the keyword path for SearchPlace. One external call
// per lookup, no fallback chain, no retry.
type naverGeocoder struct {
	client         *http.Client
	geocodeURL     string
	localSearchURL string
	cfg            *config.NaverConfig
	logger         *slog.Logger
}

// GeocoderParams holds dependencies for the geocoder, injected by Fx.
type GeocoderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewNaverGeocoder is the constructor for naverGeocoder.
func NewNaverGeocoder(params GeocoderParams) service.Geocoder {
	return &naverGeocoder{
		client:         &http.Client{Timeout: requestTimeout},
		geocodeURL:     ncpGeocodeURL,
		localSearchURL: localSearchURL,
		cfg:            params.Config.Naver,
		logger:         params.Logger,
	}
}

type ncpGeocodeResponse struct {
	Addresses []struct {
		X            string `json:"x"` // longitude
		Y            string `json:"y"` // latitude
		RoadAddress  string `json:"roadAddress"`
		JibunAddress string `json:"jibunAddress"`
	} `json:"addresses"`
}

// Geocode resolves a street address through the NCP geocoding API.
func (g *naverGeocoder) Geocode(ctx context.Context, address string) (*service.GeocodeResult, error) {
	if g.cfg.MapClientID == "" || g.cfg.MapClientSecret == "" {
		return nil, errors.New("naver map credentials are not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		g.geocodeURL+"?query="+url.QueryEscape(address), nil)
	if err != nil {
		return nil, errors.Wrap(err, "create geocode request")
	}
	req.Header.Set("x-ncp-apigw-api-key-id", g.cfg.MapClientID)
	req.Header.Set("x-ncp-apigw-api-key", g.cfg.MapClientSecret)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call ncp geocode")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("ncp geocode status %d", resp.StatusCode)
	}

	var decoded ncpGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.Wrap(err, "decode geocode response")
	}

	if len(decoded.Addresses) == 0 {
		return nil, service.ErrAddressNotFound
	}

	addr := decoded.Addresses[0]
	lat, err := strconv.ParseFloat(addr.Y, 64)
	if err != nil {
		return nil, errors.Wrap(err, "parse latitude")
	}
	lng, err := strconv.ParseFloat(addr.X, 64)
	if err != nil {
		return nil, errors.Wrap(err, "parse longitude")
	}

	display := addr.RoadAddress
	if display == "" {
		display = addr.JibunAddress
	}
	if display == "" {
		display = address
	}

	return &service.GeocodeResult{
		Latitude:       lat,
		Longitude:      lng,
		DisplayAddress: display,
		Exact:          true,
	}, nil
}

type localSearchResponse struct {
	Items []struct {
		Title       string `json:"title"`
		RoadAddress string `json:"roadAddress"`
		Address     string `json:"address"`
	} `json:"items"`
}

// SearchPlace resolves a free-form query. Addresses resolve directly; keyword
// queries (e.g. "정자역") go through Local Search, whose road address is then
// re-geocoded for accurate WGS84 coordinates.
func (g *naverGeocoder) SearchPlace(ctx context.Context, query string) (*service.GeocodeResult, error) {
	result, err := g.Geocode(ctx, query)
	if err == nil {
		return result, nil
	}
	if !errors.Is(err, service.ErrAddressNotFound) {
		return nil, err
	}

	if g.cfg.SearchClientID == "" || g.cfg.SearchClientSecret == "" {
		return nil, service.ErrAddressNotFound
	}

	values := url.Values{}
	values.Set("query", query)
	values.Set("display", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		g.localSearchURL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "create local search request")
	}
	req.Header.Set("X-Naver-Client-Id", g.cfg.SearchClientID)
	req.Header.Set("X-Naver-Client-Secret", g.cfg.SearchClientSecret)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call local search")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("local search status %d", resp.StatusCode)
	}

	var decoded localSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.Wrap(err, "decode local search response")
	}

	if len(decoded.Items) == 0 {
		return nil, service.ErrAddressNotFound
	}

	item := decoded.Items[0]
	roadAddr := item.RoadAddress
	if roadAddr == "" {
		roadAddr = item.Address
	}
	if roadAddr == "" {
		return nil, service.ErrAddressNotFound
	}

	resolved, err := g.Geocode(ctx, roadAddr)
	if err != nil {
		g.logger.Debug("re-geocoding local search result failed",
			slog.String("query", query),
			slog.Any("error", err),
		)

		return nil, service.ErrAddressNotFound
	}

	resolved.Exact = false

	return resolved, nil
}
