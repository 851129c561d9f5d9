package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"moim/internal/domain/service"
	"moim/internal/errors"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingResolver struct {
	result *service.RouteResult
	err    error
	calls  int
}

func (c *countingResolver) Resolve(context.Context, service.Coordinate, service.Coordinate) (*service.RouteResult, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}

	return c.result, nil
}

func newTestCache(t *testing.T, next service.RouteResolver) service.RouteResolver {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewWithClient(next, client, time.Minute, logger)
}

func TestCachedResolver_SecondCallHits(t *testing.T) {
	next := &countingResolver{result: &service.RouteResult{DistanceKm: 3, DurationMin: 7}}
	resolver := newTestCache(t, next)

	origin := service.Coordinate{Latitude: 37.55, Longitude: 126.97}
	dest := service.Coordinate{Latitude: 37.49, Longitude: 127.02}

	first, err := resolver.Resolve(context.Background(), origin, dest)
	require.NoError(t, err)

	second, err := resolver.Resolve(context.Background(), origin, dest)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, next.calls, "second resolve must come from cache")
}

func TestCachedResolver_FailuresNotCached(t *testing.T) {
	next := &countingResolver{err: service.ErrRouteUnavailable}
	resolver := newTestCache(t, next)

	origin := service.Coordinate{Latitude: 37.55, Longitude: 126.97}
	dest := service.Coordinate{Latitude: 37.49, Longitude: 127.02}

	_, err := resolver.Resolve(context.Background(), origin, dest)
	require.ErrorIs(t, err, service.ErrRouteUnavailable)

	_, err = resolver.Resolve(context.Background(), origin, dest)
	require.ErrorIs(t, err, service.ErrRouteUnavailable)

	assert.Equal(t, 2, next.calls, "unavailability is re-probed every time")
}

func TestCachedResolver_DistinctPairsMiss(t *testing.T) {
	next := &countingResolver{result: &service.RouteResult{DurationMin: 5}}
	resolver := newTestCache(t, next)

	origin := service.Coordinate{Latitude: 37.55, Longitude: 126.97}

	_, err := resolver.Resolve(context.Background(), origin, service.Coordinate{Latitude: 37.49, Longitude: 127.02})
	require.NoError(t, err)
	_, err = resolver.Resolve(context.Background(), origin, service.Coordinate{Latitude: 37.51, Longitude: 127.10})
	require.NoError(t, err)

	assert.Equal(t, 2, next.calls)
}

func TestCachedResolver_ErrorPassthrough(t *testing.T) {
	wrapped := &countingResolver{err: errors.New("provider exploded")}
	resolver := newTestCache(t, wrapped)

	_, err := resolver.Resolve(context.Background(),
		service.Coordinate{Latitude: 1, Longitude: 2},
		service.Coordinate{Latitude: 3, Longitude: 4})
	assert.Error(t, err)
}
