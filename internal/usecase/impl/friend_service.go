package impl

import (
	"context"
	"log/slog"
	"strings"

	"moim/internal/domain/entity"
	domainerrors "moim/internal/domain/errors"
	"moim/internal/domain/repository"
	"moim/internal/domain/service"
	"moim/internal/errors"
	"moim/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// friendService implements the FriendUsecase interface.
type friendService struct {
	friendRepo repository.FriendRepository
	geocoder   service.Geocoder
	logger     *slog.Logger
}

// FriendServiceParams holds dependencies for friendService, injected by Fx.
type FriendServiceParams struct {
	fx.In

	FriendRepo repository.FriendRepository
	Geocoder   service.Geocoder
	Logger     *slog.Logger
}

// NewFriendService is the constructor for friendService.
func NewFriendService(params FriendServiceParams) usecase.FriendUsecase {
	return &friendService{
		friendRepo: params.FriendRepo,
		geocoder:   params.Geocoder,
		logger:     params.Logger,
	}
}

// ListFriends returns the user's friends, newest first.
func (srv *friendService) ListFriends(ctx context.Context, userID uuid.UUID) ([]*entity.Friend, error) {
	return srv.friendRepo.FindFriendsByUser(ctx, userID)
}

// CreateFriend registers a friend. When the caller did not supply coordinates
// the address is geocoded best-effort: a geocoding miss still creates the
// friend, just without coordinates (routing will short-circuit for them).
func (srv *friendService) CreateFriend(ctx context.Context, input usecase.CreateFriendInput) (*entity.Friend, error) {
	name := strings.TrimSpace(input.Name)
	address := strings.TrimSpace(input.Address)
	if name == "" || address == "" {
		return nil, domainerrors.ErrFriendInputRequired
	}

	friend := &entity.Friend{
		UserID:     input.UserID,
		Name:       name,
		AddressRaw: address,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
	}

	if input.Latitude == nil || input.Longitude == nil {
		srv.geocodeInto(ctx, address, &friend.Latitude, &friend.Longitude, &friend.AddressDisplay)
	}

	if err := srv.friendRepo.CreateFriend(ctx, friend); err != nil {
		return nil, err
	}

	return friend, nil
}

// UpdateFriend applies a partial update; a changed address without explicit
// coordinates is re-geocoded.
func (srv *friendService) UpdateFriend(ctx context.Context, input usecase.UpdateFriendInput) (*entity.Friend, error) {
	friend, err := srv.friendRepo.FindFriendByID(ctx, input.UserID, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrFriendNotFound) {
			return nil, domainerrors.ErrFriendNotFound
		}

		return nil, errors.Wrap(err, "failed to load friend")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.ErrFriendInputRequired
		}
		friend.Name = name
	}

	if input.Address != nil {
		address := strings.TrimSpace(*input.Address)
		if address == "" {
			return nil, domainerrors.ErrFriendInputRequired
		}
		if address != friend.AddressRaw {
			friend.AddressRaw = address
			friend.AddressDisplay = nil
			friend.Latitude = nil
			friend.Longitude = nil
			if input.Latitude == nil || input.Longitude == nil {
				srv.geocodeInto(ctx, address, &friend.Latitude, &friend.Longitude, &friend.AddressDisplay)
			}
		}
	}

	if input.Latitude != nil && input.Longitude != nil {
		friend.Latitude = input.Latitude
		friend.Longitude = input.Longitude
	}

	if err := srv.friendRepo.UpdateFriend(ctx, friend); err != nil {
		if errors.Is(err, repository.ErrFriendNotFound) {
			return nil, domainerrors.ErrFriendNotFound
		}

		return nil, err
	}

	return friend, nil
}

// DeleteFriend removes a friend owned by the user.
func (srv *friendService) DeleteFriend(ctx context.Context, userID, id uuid.UUID) error {
	if err := srv.friendRepo.DeleteFriend(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrFriendNotFound) {
			return domainerrors.ErrFriendNotFound
		}

		return err
	}

	return nil
}

// geocodeInto resolves an address and writes the result through the given
// slots. Failures are logged and otherwise swallowed.
func (srv *friendService) geocodeInto(ctx context.Context, address string, lat, lng **float64, display **string) {
	result, err := srv.geocoder.Geocode(ctx, address)
	if err != nil {
		srv.logger.Debug("geocoding failed, storing address without coordinates",
			slog.String("address", address),
			slog.Any("error", err),
		)

		return
	}

	*lat = &result.Latitude
	*lng = &result.Longitude
	*display = &result.DisplayAddress
}
