// Package cache adds an optional, explicitly-scoped Redis cache in front of
// the route resolver. Routing stays correct without it; it only saves
// provider calls for repeated coordinate pairs.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"moim/config"
	"moim/internal/domain/service"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 10 * time.Minute

// cachedResolver decorates a RouteResolver with a Redis lookaside cache.
// Only successful results are cached; unavailability is always re-probed.
type cachedResolver struct {
	next   service.RouteResolver
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// Wrap returns the resolver unchanged when the cache is disabled, otherwise
// the caching decorator around it.
func Wrap(next service.RouteResolver, cfg *config.Config, logger *slog.Logger) service.RouteResolver {
	if cfg.RouteCache == nil || !cfg.RouteCache.Enabled {
		return next
	}

	ttl := cfg.RouteCache.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RouteCache.Addr,
		Password: cfg.RouteCache.Password,
		DB:       cfg.RouteCache.DB,
	})

	return &cachedResolver{next: next, client: client, ttl: ttl, logger: logger}
}

// NewWithClient builds the decorator around an existing client; used by tests.
func NewWithClient(next service.RouteResolver, client *redis.Client, ttl time.Duration, logger *slog.Logger) service.RouteResolver {
	return &cachedResolver{next: next, client: client, ttl: ttl, logger: logger}
}

// Resolve serves from cache when possible, otherwise delegates and stores the
// result. Cache failures degrade to a plain resolver call.
func (r *cachedResolver) Resolve(ctx context.Context, origin, dest service.Coordinate) (*service.RouteResult, error) {
	key := cacheKey(origin, dest)

	payload, err := r.client.Get(ctx, key).Bytes()
	if err == nil {
		var cached service.RouteResult
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
		r.logger.Warn("dropping corrupt route cache entry", slog.String("key", key))
		r.client.Del(ctx, key)
	} else if err != redis.Nil {
		r.logger.Warn("route cache read failed", slog.Any("error", err))
	}

	result, err := r.next.Resolve(ctx, origin, dest)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(result); err == nil {
		if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
			r.logger.Warn("route cache write failed", slog.Any("error", err))
		}
	}

	return result, nil
}

// cacheKey rounds coordinates to ~1m precision so jittery inputs still hit.
func cacheKey(origin, dest service.Coordinate) string {
	return fmt.Sprintf("route:%.5f,%.5f:%.5f,%.5f",
		origin.Longitude, origin.Latitude,
		dest.Longitude, dest.Latitude,
	)
}
