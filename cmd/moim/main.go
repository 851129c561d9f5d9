package main

import (
	"context"
	"log/slog"
	"os"

	"moim/config"
	"moim/internal/delivery"
	"moim/internal/delivery/http"
	"moim/internal/delivery/http/middleware"
	"moim/internal/delivery/http/router/handler"
	"moim/internal/infra/auth"
	"moim/internal/infra/geocode"
	logs "moim/internal/infra/log"
	"moim/internal/infra/persistence/postgres"
	"moim/internal/infra/routing"
	"moim/internal/infra/routing/cache"
	"moim/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		// The Redis lookaside cache decorates the resolver only when enabled.
		fx.Decorate(cache.Wrap),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewFriendRepository,
			postgres.NewPlaceRepository,
			postgres.NewCategoryRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			geocode.NewNaverGeocoder,
			routing.NewResolver,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewFriendService,
			impl.NewPlaceService,
			impl.NewCategoryService,
			impl.NewGeocodeService,
			impl.NewTravelService,
			impl.NewSeedService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewFriendHandler,
			handler.NewPlaceHandler,
			handler.NewCategoryHandler,
			handler.NewGeocodeHandler,
			handler.NewTravelHandler,
			handler.NewSeedHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
