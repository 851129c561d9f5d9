package impl

import (
	"context"
	"testing"

	"moim/internal/domain/entity"
	domainerrors "moim/internal/domain/errors"
	"moim/internal/domain/repository"
	"moim/internal/domain/service"
	mockRepo "moim/internal/mocks/repository"
	mockService "moim/internal/mocks/service"
	"moim/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type placeServiceFixtures struct {
	service      usecase.PlaceUsecase
	placeRepo    *mockRepo.MockPlaceRepository
	categoryRepo *mockRepo.MockCategoryRepository
	geocoder     *mockService.MockGeocoder
}

func createTestPlaceService(t *testing.T) *placeServiceFixtures {
	t.Helper()

	placeRepo := mockRepo.NewMockPlaceRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	geocoder := mockService.NewMockGeocoder(t)

	svc := NewPlaceService(PlaceServiceParams{
		PlaceRepo:    placeRepo,
		CategoryRepo: categoryRepo,
		Geocoder:     geocoder,
		Logger:       newDiscardLogger(),
	})

	return &placeServiceFixtures{
		service:      svc,
		placeRepo:    placeRepo,
		categoryRepo: categoryRepo,
		geocoder:     geocoder,
	}
}

func TestPlaceService_CreatePlace_WithCategory(t *testing.T) {
	f := createTestPlaceService(t)
	userID, categoryID := uuid.New(), uuid.New()

	f.categoryRepo.EXPECT().FindCategoryByID(mock.Anything, userID, categoryID).
		Return(&entity.Category{ID: categoryID, UserID: userID, Name: "카페"}, nil)
	f.geocoder.EXPECT().Geocode(mock.Anything, "서울 중구 을지로 65").
		Return(&service.GeocodeResult{
			Latitude:       37.5660,
			Longitude:      126.9827,
			DisplayAddress: "서울특별시 중구 을지로 65",
			Exact:          true,
		}, nil)
	f.placeRepo.EXPECT().CreatePlace(mock.Anything, mock.MatchedBy(func(p *entity.Place) bool {
		return p.CategoryID != nil && *p.CategoryID == categoryID && p.HasCoordinates()
	})).Return(nil)

	place, err := f.service.CreatePlace(context.Background(), usecase.CreatePlaceInput{
		UserID:     userID,
		Name:       "을지로입구역 스타벅스",
		Address:    "서울 중구 을지로 65",
		CategoryID: &categoryID,
	})

	require.NoError(t, err)
	assert.Equal(t, 37.5660, *place.Latitude)
}

func TestPlaceService_CreatePlace_ForeignCategoryRejected(t *testing.T) {
	f := createTestPlaceService(t)
	userID, categoryID := uuid.New(), uuid.New()

	f.categoryRepo.EXPECT().FindCategoryByID(mock.Anything, userID, categoryID).
		Return(nil, repository.ErrCategoryNotFound)

	_, err := f.service.CreatePlace(context.Background(), usecase.CreatePlaceInput{
		UserID:     userID,
		Name:       "을지로입구역 스타벅스",
		Address:    "서울 중구 을지로 65",
		CategoryID: &categoryID,
	})

	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestPlaceService_CreatePlace_BlankInput(t *testing.T) {
	f := createTestPlaceService(t)

	_, err := f.service.CreatePlace(context.Background(), usecase.CreatePlaceInput{
		UserID:  uuid.New(),
		Name:    "을지로입구역 스타벅스",
		Address: "  ",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPlaceInputRequired)
}

func TestPlaceService_UpdatePlace_ClearCategory(t *testing.T) {
	f := createTestPlaceService(t)
	userID, placeID, categoryID := uuid.New(), uuid.New(), uuid.New()
	lat, lng := 37.5660, 126.9827

	f.placeRepo.EXPECT().FindPlaceByID(mock.Anything, userID, placeID).
		Return(&entity.Place{
			ID:         placeID,
			UserID:     userID,
			Name:       "을지로입구역 스타벅스",
			AddressRaw: "서울 중구 을지로 65",
			Latitude:   &lat,
			Longitude:  &lng,
			CategoryID: &categoryID,
			Category:   &entity.Category{ID: categoryID, Name: "카페"},
		}, nil)
	f.placeRepo.EXPECT().UpdatePlace(mock.Anything, mock.MatchedBy(func(p *entity.Place) bool {
		return p.CategoryID == nil
	})).Return(nil)

	place, err := f.service.UpdatePlace(context.Background(), usecase.UpdatePlaceInput{
		UserID:        userID,
		ID:            placeID,
		ClearCategory: true,
	})

	require.NoError(t, err)
	assert.Nil(t, place.CategoryID)
	assert.Nil(t, place.Category)
}

func TestPlaceService_UpdatePlace_ChangeCategoryVerifiesOwnership(t *testing.T) {
	f := createTestPlaceService(t)
	userID, placeID, categoryID := uuid.New(), uuid.New(), uuid.New()

	f.placeRepo.EXPECT().FindPlaceByID(mock.Anything, userID, placeID).
		Return(&entity.Place{ID: placeID, UserID: userID, Name: "스타벅스", AddressRaw: "서울 중구 을지로 65"}, nil)
	f.categoryRepo.EXPECT().FindCategoryByID(mock.Anything, userID, categoryID).
		Return(&entity.Category{ID: categoryID, UserID: userID, Name: "카페"}, nil)
	f.placeRepo.EXPECT().UpdatePlace(mock.Anything, mock.Anything).Return(nil)

	place, err := f.service.UpdatePlace(context.Background(), usecase.UpdatePlaceInput{
		UserID:     userID,
		ID:         placeID,
		CategoryID: &categoryID,
	})

	require.NoError(t, err)
	require.NotNil(t, place.CategoryID)
	assert.Equal(t, categoryID, *place.CategoryID)
}

func TestPlaceService_UpdatePlace_NotFound(t *testing.T) {
	f := createTestPlaceService(t)
	userID, placeID := uuid.New(), uuid.New()

	f.placeRepo.EXPECT().FindPlaceByID(mock.Anything, userID, placeID).
		Return(nil, repository.ErrPlaceNotFound)

	_, err := f.service.UpdatePlace(context.Background(), usecase.UpdatePlaceInput{
		UserID: userID,
		ID:     placeID,
	})

	assert.ErrorIs(t, err, domainerrors.ErrPlaceNotFound)
}

func TestPlaceService_ListPlaces_PassesCategoryFilter(t *testing.T) {
	f := createTestPlaceService(t)
	userID, categoryID := uuid.New(), uuid.New()

	f.placeRepo.EXPECT().FindPlacesByUser(mock.Anything, userID, &categoryID).
		Return([]*entity.Place{}, nil)

	places, err := f.service.ListPlaces(context.Background(), userID, &categoryID)

	require.NoError(t, err)
	assert.Empty(t, places)
}
