package geocode

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"moim/config"
	"moim/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(geocodeURL, searchURL string, client *http.Client) *naverGeocoder {
	return &naverGeocoder{
		client:         client,
		geocodeURL:     geocodeURL,
		localSearchURL: searchURL,
		cfg: &config.NaverConfig{
			MapClientID:        "map-id",
			MapClientSecret:    "map-secret",
			SearchClientID:     "search-id",
			SearchClientSecret: "search-secret",
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestGeocode_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "map-id", r.Header.Get("x-ncp-apigw-api-key-id"))
		assert.Equal(t, "map-secret", r.Header.Get("x-ncp-apigw-api-key"))
		w.Write([]byte(`{
			"addresses": [{
				"x": "127.0276", "y": "37.4979",
				"roadAddress": "서울특별시 강남구 강남대로 396",
				"jibunAddress": "서울특별시 강남구 역삼동 858"
			}]
		}`))
	}))
	defer srv.Close()

	g := newTestGeocoder(srv.URL, "http://search.invalid", srv.Client())

	result, err := g.Geocode(context.Background(), "강남대로 396")
	require.NoError(t, err)
	assert.InDelta(t, 37.4979, result.Latitude, 1e-9)
	assert.InDelta(t, 127.0276, result.Longitude, 1e-9)
	assert.Equal(t, "서울특별시 강남구 강남대로 396", result.DisplayAddress)
	assert.True(t, result.Exact)
}

func TestGeocode_NoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"addresses": []}`))
	}))
	defer srv.Close()

	g := newTestGeocoder(srv.URL, "http://search.invalid", srv.Client())

	_, err := g.Geocode(context.Background(), "존재하지 않는 주소")
	require.ErrorIs(t, err, service.ErrAddressNotFound)
}

func TestGeocode_MissingCredentials(t *testing.T) {
	g := newTestGeocoder("http://geocode.invalid", "http://search.invalid", http.DefaultClient)
	g.cfg = &config.NaverConfig{}

	_, err := g.Geocode(context.Background(), "서울역")
	assert.Error(t, err)
}

func TestSearchPlace_KeywordFallsBackToLocalSearch(t *testing.T) {
	// First geocode call (the raw keyword) finds nothing; the second call,
	// with the road address from Local Search, succeeds.
	geocodeCalls := 0
	geocodeSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		geocodeCalls++
		if geocodeCalls == 1 {
			w.Write([]byte(`{"addresses": []}`))

			return
		}
		assert.Contains(t, r.URL.RawQuery, "query=")
		w.Write([]byte(`{
			"addresses": [{
				"x": "127.1116", "y": "37.3670",
				"roadAddress": "경기도 성남시 분당구 성남대로 333"
			}]
		}`))
	}))
	defer geocodeSrv.Close()

	searchSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "search-id", r.Header.Get("X-Naver-Client-Id"))
		assert.Equal(t, "search-secret", r.Header.Get("X-Naver-Client-Secret"))
		w.Write([]byte(`{
			"items": [{
				"title": "정자역 수인분당선",
				"roadAddress": "경기도 성남시 분당구 성남대로 333",
				"address": "경기도 성남시 분당구 정자동 11"
			}]
		}`))
	}))
	defer searchSrv.Close()

	g := newTestGeocoder(geocodeSrv.URL, searchSrv.URL, http.DefaultClient)

	result, err := g.SearchPlace(context.Background(), "정자역")
	require.NoError(t, err)
	assert.Equal(t, 2, geocodeCalls)
	assert.InDelta(t, 37.3670, result.Latitude, 1e-9)
	assert.False(t, result.Exact, "keyword matches are marked inexact")
}

func TestSearchPlace_DirectAddressSkipsLocalSearch(t *testing.T) {
	geocodeSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"addresses": [{"x": "126.97", "y": "37.55", "roadAddress": "서울특별시 중구 한강대로 405"}]}`))
	}))
	defer geocodeSrv.Close()

	searchSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("local search must not be called when the address geocodes directly")
	}))
	defer searchSrv.Close()

	g := newTestGeocoder(geocodeSrv.URL, searchSrv.URL, http.DefaultClient)

	result, err := g.SearchPlace(context.Background(), "한강대로 405")
	require.NoError(t, err)
	assert.True(t, result.Exact)
}

func TestSearchPlace_NothingFound(t *testing.T) {
	geocodeSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"addresses": []}`))
	}))
	defer geocodeSrv.Close()

	searchSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": []}`))
	}))
	defer searchSrv.Close()

	g := newTestGeocoder(geocodeSrv.URL, searchSrv.URL, http.DefaultClient)

	_, err := g.SearchPlace(context.Background(), "아무데도 없는 곳")
	require.ErrorIs(t, err, service.ErrAddressNotFound)
}
