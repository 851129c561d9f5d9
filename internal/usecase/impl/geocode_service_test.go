package impl

import (
	"context"
	"testing"

	domainerrors "moim/internal/domain/errors"
	"moim/internal/domain/service"
	mockService "moim/internal/mocks/service"
	"moim/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type geocodeServiceFixtures struct {
	service  usecase.GeocodeUsecase
	geocoder *mockService.MockGeocoder
}

func createTestGeocodeService(t *testing.T) *geocodeServiceFixtures {
	t.Helper()

	geocoder := mockService.NewMockGeocoder(t)
	svc := NewGeocodeService(GeocodeServiceParams{Geocoder: geocoder})

	return &geocodeServiceFixtures{service: svc, geocoder: geocoder}
}

func TestGeocodeService_Geocode_Success(t *testing.T) {
	f := createTestGeocodeService(t)

	f.geocoder.EXPECT().Geocode(mock.Anything, "서울 중구 을지로 65").
		Return(&service.GeocodeResult{
			Latitude:       37.5660,
			Longitude:      126.9827,
			DisplayAddress: "서울특별시 중구 을지로 65",
			Exact:          true,
		}, nil)

	out, err := f.service.Geocode(context.Background(), "서울 중구 을지로 65")

	require.NoError(t, err)
	assert.Equal(t, 37.5660, out.Latitude)
	assert.Equal(t, "서울특별시 중구 을지로 65", out.Address)
	assert.True(t, out.Exact)
}

func TestGeocodeService_Geocode_BlankAddress(t *testing.T) {
	f := createTestGeocodeService(t)

	_, err := f.service.Geocode(context.Background(), "   ")

	assert.ErrorIs(t, err, domainerrors.ErrAddressRequired)
	f.geocoder.AssertNotCalled(t, "Geocode")
}

func TestGeocodeService_Geocode_NoMatch(t *testing.T) {
	f := createTestGeocodeService(t)

	f.geocoder.EXPECT().Geocode(mock.Anything, "존재하지 않는 주소").
		Return(nil, service.ErrAddressNotFound)

	_, err := f.service.Geocode(context.Background(), "존재하지 않는 주소")

	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestGeocodeService_Geocode_ProviderFailure(t *testing.T) {
	f := createTestGeocodeService(t)

	f.geocoder.EXPECT().Geocode(mock.Anything, "서울 중구 을지로 65").
		Return(nil, assert.AnError)

	_, err := f.service.Geocode(context.Background(), "서울 중구 을지로 65")

	assert.ErrorIs(t, err, domainerrors.ErrGeocodingFailed)
}

func TestGeocodeService_SearchPlace_KeywordMatch(t *testing.T) {
	f := createTestGeocodeService(t)

	f.geocoder.EXPECT().SearchPlace(mock.Anything, "강남역").
		Return(&service.GeocodeResult{
			Latitude:       37.4979,
			Longitude:      127.0276,
			DisplayAddress: "서울특별시 강남구 강남대로 396",
			Exact:          false,
		}, nil)

	out, err := f.service.SearchPlace(context.Background(), "강남역")

	require.NoError(t, err)
	assert.False(t, out.Exact)
	assert.Equal(t, 127.0276, out.Longitude)
}

func TestGeocodeService_SearchPlace_BlankQuery(t *testing.T) {
	f := createTestGeocodeService(t)

	_, err := f.service.SearchPlace(context.Background(), "")

	assert.ErrorIs(t, err, domainerrors.ErrQueryRequired)
}
