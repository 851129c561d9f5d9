package impl

import (
	"context"
	"log/slog"

	"moim/internal/domain/entity"
	"moim/internal/domain/repository"
	"moim/internal/errors"
	"moim/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// seedService implements the SeedUsecase interface.
type seedService struct {
	friendRepo repository.FriendRepository
	placeRepo  repository.PlaceRepository
	logger     *slog.Logger
}

// SeedServiceParams holds dependencies for seedService, injected by Fx.
type SeedServiceParams struct {
	fx.In

	FriendRepo repository.FriendRepository
	PlaceRepo  repository.PlaceRepository
	Logger     *slog.Logger
}

// NewSeedService is the constructor for seedService.
func NewSeedService(params SeedServiceParams) usecase.SeedUsecase {
	return &seedService{
		friendRepo: params.FriendRepo,
		placeRepo:  params.PlaceRepo,
		logger:     params.Logger,
	}
}

// Seed inserts the demo dataset for a fresh account. Accounts that already
// have friends are left untouched so re-calls stay idempotent.
func (srv *seedService) Seed(ctx context.Context, userID uuid.UUID) (*usecase.SeedOutput, error) {
	count, err := srv.friendRepo.CountFriendsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing friends")
	}
	if count > 0 {
		return &usecase.SeedOutput{Seeded: false}, nil
	}

	out := &usecase.SeedOutput{Seeded: true}

	for _, record := range demoFriends {
		display := record.addressDisplay
		lat, lng := record.latitude, record.longitude
		friend := &entity.Friend{
			UserID:         userID,
			Name:           record.name,
			AddressRaw:     record.addressRaw,
			AddressDisplay: &display,
			Latitude:       &lat,
			Longitude:      &lng,
		}
		if err := srv.friendRepo.CreateFriend(ctx, friend); err != nil {
			return nil, errors.Wrap(err, "failed to seed friend")
		}
		out.Friends++
	}

	for _, record := range demoPlaces {
		display := record.addressDisplay
		lat, lng := record.latitude, record.longitude
		place := &entity.Place{
			UserID:         userID,
			Name:           record.name,
			AddressRaw:     record.addressRaw,
			AddressDisplay: &display,
			Latitude:       &lat,
			Longitude:      &lng,
		}
		if err := srv.placeRepo.CreatePlace(ctx, place); err != nil {
			return nil, errors.Wrap(err, "failed to seed place")
		}
		out.Places++
	}

	srv.logger.Info("Seeded demo dataset",
		slog.Any("userID", userID),
		slog.Int("friends", out.Friends),
		slog.Int("places", out.Places),
	)

	return out, nil
}
