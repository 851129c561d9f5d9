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

// placeService implements the PlaceUsecase interface.
type placeService struct {
	placeRepo    repository.PlaceRepository
	categoryRepo repository.CategoryRepository
	geocoder     service.Geocoder
	logger       *slog.Logger
}

// PlaceServiceParams holds dependencies for placeService, injected by Fx.
type PlaceServiceParams struct {
	fx.In

	PlaceRepo    repository.PlaceRepository
	CategoryRepo repository.CategoryRepository
	Geocoder     service.Geocoder
	Logger       *slog.Logger
}

// NewPlaceService is the constructor for placeService.
func NewPlaceService(params PlaceServiceParams) usecase.PlaceUsecase {
	return &placeService{
		placeRepo:    params.PlaceRepo,
		categoryRepo: params.CategoryRepo,
		geocoder:     params.Geocoder,
		logger:       params.Logger,
	}
}

// ListPlaces returns the user's places, optionally filtered by category.
func (srv *placeService) ListPlaces(ctx context.Context, userID uuid.UUID, categoryID *uuid.UUID) ([]*entity.Place, error) {
	return srv.placeRepo.FindPlacesByUser(ctx, userID, categoryID)
}

// CreatePlace registers a candidate venue, geocoding the address when the
// caller supplied no coordinates. The category, when given, must be the
// user's own.
func (srv *placeService) CreatePlace(ctx context.Context, input usecase.CreatePlaceInput) (*entity.Place, error) {
	name := strings.TrimSpace(input.Name)
	address := strings.TrimSpace(input.Address)
	if name == "" || address == "" {
		return nil, domainerrors.ErrPlaceInputRequired
	}

	if input.CategoryID != nil {
		if _, err := srv.categoryRepo.FindCategoryByID(ctx, input.UserID, *input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, domainerrors.ErrCategoryNotFound
			}

			return nil, errors.Wrap(err, "failed to verify category")
		}
	}

	place := &entity.Place{
		UserID:     input.UserID,
		Name:       name,
		AddressRaw: address,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		CategoryID: input.CategoryID,
	}

	if input.Latitude == nil || input.Longitude == nil {
		srv.geocodePlace(ctx, address, place)
	}

	if err := srv.placeRepo.CreatePlace(ctx, place); err != nil {
		return nil, err
	}

	return place, nil
}

// UpdatePlace applies a partial update; a changed address without explicit
// coordinates is re-geocoded.
func (srv *placeService) UpdatePlace(ctx context.Context, input usecase.UpdatePlaceInput) (*entity.Place, error) {
	place, err := srv.placeRepo.FindPlaceByID(ctx, input.UserID, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrPlaceNotFound) {
			return nil, domainerrors.ErrPlaceNotFound
		}

		return nil, errors.Wrap(err, "failed to load place")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.ErrPlaceInputRequired
		}
		place.Name = name
	}

	if input.Address != nil {
		address := strings.TrimSpace(*input.Address)
		if address == "" {
			return nil, domainerrors.ErrPlaceInputRequired
		}
		if address != place.AddressRaw {
			place.AddressRaw = address
			place.AddressDisplay = nil
			place.Latitude = nil
			place.Longitude = nil
			if input.Latitude == nil || input.Longitude == nil {
				srv.geocodePlace(ctx, address, place)
			}
		}
	}

	if input.Latitude != nil && input.Longitude != nil {
		place.Latitude = input.Latitude
		place.Longitude = input.Longitude
	}

	switch {
	case input.ClearCategory:
		place.CategoryID = nil
		place.Category = nil
	case input.CategoryID != nil:
		if _, err := srv.categoryRepo.FindCategoryByID(ctx, input.UserID, *input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, domainerrors.ErrCategoryNotFound
			}

			return nil, errors.Wrap(err, "failed to verify category")
		}
		place.CategoryID = input.CategoryID
	}

	if err := srv.placeRepo.UpdatePlace(ctx, place); err != nil {
		if errors.Is(err, repository.ErrPlaceNotFound) {
			return nil, domainerrors.ErrPlaceNotFound
		}

		return nil, err
	}

	return place, nil
}

// DeletePlace removes a place owned by the user.
func (srv *placeService) DeletePlace(ctx context.Context, userID, id uuid.UUID) error {
	if err := srv.placeRepo.DeletePlace(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrPlaceNotFound) {
			return domainerrors.ErrPlaceNotFound
		}

		return err
	}

	return nil
}

func (srv *placeService) geocodePlace(ctx context.Context, address string, place *entity.Place) {
	result, err := srv.geocoder.Geocode(ctx, address)
	if err != nil {
		srv.logger.Debug("geocoding failed, storing place without coordinates",
			slog.String("address", address),
			slog.Any("error", err),
		)

		return
	}

	place.Latitude = &result.Latitude
	place.Longitude = &result.Longitude
	place.AddressDisplay = &result.DisplayAddress
}
