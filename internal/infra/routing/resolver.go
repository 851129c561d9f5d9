package routing

import (
	"context"
	"log/slog"

	"moim/config"
	"moim/internal/domain/service"
	"moim/internal/errors"

	"go.uber.org/fx"
)

// chainResolver tries providers in a fixed preference order and returns the
// first success. Provider order is configuration, not a latency race.
type chainResolver struct {
	providers []service.RouteProvider
	logger    *slog.Logger
}

// ResolverParams holds dependencies for the resolver, injected by Fx.
type ResolverParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewResolver builds the provider fallback chain: Naver first, OSRM second,
// plus the offline estimator when enabled.
func NewResolver(params ResolverParams) service.RouteResolver {
	providers := []service.RouteProvider{
		NewNaverProvider(params.Config),
		NewOSRMProvider(params.Config),
	}
	if params.Config.Routing.HaversineFallback {
		providers = append(providers, NewHaversineProvider(params.Config))
	}

	return &chainResolver{providers: providers, logger: params.Logger}
}

// newChainResolver wires an explicit provider list; used by tests and the
// cache decorator.
func newChainResolver(providers []service.RouteProvider, logger *slog.Logger) service.RouteResolver {
	return &chainResolver{providers: providers, logger: logger}
}

// Resolve returns the first provider's successful result, or
// ErrRouteUnavailable when every provider failed. Failures fall through
// uniformly; misconfigured credentials are merely logged louder than
// transient errors.
func (r *chainResolver) Resolve(ctx context.Context, origin, dest service.Coordinate) (*service.RouteResult, error) {
	for _, provider := range r.providers {
		result, err := provider.Route(ctx, origin, dest)
		if err == nil {
			return result, nil
		}

		level := slog.LevelDebug
		if errors.Is(err, errMissingCredentials) {
			level = slog.LevelWarn
		}
		r.logger.LogAttrs(ctx, level, "route provider failed",
			slog.String("provider", provider.Name()),
			slog.Any("error", err),
		)
	}

	return nil, service.ErrRouteUnavailable
}
