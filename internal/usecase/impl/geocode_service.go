package impl

import (
	"context"
	"strings"

	domainerrors "moim/internal/domain/errors"
	"moim/internal/domain/service"
	"moim/internal/errors"
	"moim/internal/usecase"

	"go.uber.org/fx"
)

// geocodeService implements the GeocodeUsecase interface.
type geocodeService struct {
	geocoder service.Geocoder
}

// GeocodeServiceParams holds dependencies for geocodeService, injected by Fx.
type GeocodeServiceParams struct {
	fx.In

	Geocoder service.Geocoder
}

// NewGeocodeService is the constructor for geocodeService.
func NewGeocodeService(params GeocodeServiceParams) usecase.GeocodeUsecase {
	return &geocodeService{geocoder: params.Geocoder}
}

// Geocode resolves a street address to coordinates.
func (srv *geocodeService) Geocode(ctx context.Context, address string) (*usecase.GeocodeOutput, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, domainerrors.ErrAddressRequired
	}

	result, err := srv.geocoder.Geocode(ctx, address)
	if err != nil {
		return nil, mapGeocodeError(err)
	}

	return toGeocodeOutput(result), nil
}

// SearchPlace resolves a free-form query, falling back to keyword search.
func (srv *geocodeService) SearchPlace(ctx context.Context, query string) (*usecase.GeocodeOutput, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domainerrors.ErrQueryRequired
	}

	result, err := srv.geocoder.SearchPlace(ctx, query)
	if err != nil {
		return nil, mapGeocodeError(err)
	}

	return toGeocodeOutput(result), nil
}

func mapGeocodeError(err error) error {
	if errors.Is(err, service.ErrAddressNotFound) {
		return domainerrors.ErrAddressNotFound
	}

	return domainerrors.ErrGeocodingFailed.WrapMessage(err.Error())
}

func toGeocodeOutput(result *service.GeocodeResult) *usecase.GeocodeOutput {
	return &usecase.GeocodeOutput{
		Latitude:  result.Latitude,
		Longitude: result.Longitude,
		Address:   result.DisplayAddress,
		Exact:     result.Exact,
	}
}
