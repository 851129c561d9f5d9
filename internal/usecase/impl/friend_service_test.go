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

type friendServiceFixtures struct {
	service    usecase.FriendUsecase
	friendRepo *mockRepo.MockFriendRepository
	geocoder   *mockService.MockGeocoder
}

func createTestFriendService(t *testing.T) *friendServiceFixtures {
	t.Helper()

	friendRepo := mockRepo.NewMockFriendRepository(t)
	geocoder := mockService.NewMockGeocoder(t)

	svc := NewFriendService(FriendServiceParams{
		FriendRepo: friendRepo,
		Geocoder:   geocoder,
		Logger:     newDiscardLogger(),
	})

	return &friendServiceFixtures{
		service:    svc,
		friendRepo: friendRepo,
		geocoder:   geocoder,
	}
}

func TestFriendService_CreateFriend_GeocodesAddress(t *testing.T) {
	f := createTestFriendService(t)
	userID := uuid.New()

	f.geocoder.EXPECT().Geocode(mock.Anything, "서울 용산구 한강대로 405").
		Return(&service.GeocodeResult{
			Latitude:       37.5547,
			Longitude:      126.9707,
			DisplayAddress: "서울특별시 용산구 한강대로 405",
			Exact:          true,
		}, nil)
	f.friendRepo.EXPECT().CreateFriend(mock.Anything, mock.MatchedBy(func(fr *entity.Friend) bool {
		return fr.Name == "김민수" && fr.Latitude != nil && *fr.Latitude == 37.5547
	})).Return(nil)

	friend, err := f.service.CreateFriend(context.Background(), usecase.CreateFriendInput{
		UserID:  userID,
		Name:    "김민수",
		Address: "서울 용산구 한강대로 405",
	})

	require.NoError(t, err)
	require.NotNil(t, friend.AddressDisplay)
	assert.Equal(t, "서울특별시 용산구 한강대로 405", *friend.AddressDisplay)
	assert.True(t, friend.HasCoordinates())
}

func TestFriendService_CreateFriend_GeocodeMissStillCreates(t *testing.T) {
	f := createTestFriendService(t)

	f.geocoder.EXPECT().Geocode(mock.Anything, "존재하지 않는 주소").
		Return(nil, service.ErrAddressNotFound)
	f.friendRepo.EXPECT().CreateFriend(mock.Anything, mock.MatchedBy(func(fr *entity.Friend) bool {
		return fr.Latitude == nil && fr.Longitude == nil && fr.AddressDisplay == nil
	})).Return(nil)

	friend, err := f.service.CreateFriend(context.Background(), usecase.CreateFriendInput{
		UserID:  uuid.New(),
		Name:    "이서연",
		Address: "존재하지 않는 주소",
	})

	require.NoError(t, err)
	assert.False(t, friend.HasCoordinates())
	assert.Equal(t, "존재하지 않는 주소", friend.AddressRaw)
}

func TestFriendService_CreateFriend_ExplicitCoordinatesSkipGeocoding(t *testing.T) {
	f := createTestFriendService(t)
	lat, lng := 37.4979, 127.0276

	f.friendRepo.EXPECT().CreateFriend(mock.Anything, mock.Anything).Return(nil)

	friend, err := f.service.CreateFriend(context.Background(), usecase.CreateFriendInput{
		UserID:    uuid.New(),
		Name:      "이서연",
		Address:   "서울 강남구 강남대로 396",
		Latitude:  &lat,
		Longitude: &lng,
	})

	require.NoError(t, err)
	assert.Equal(t, lat, *friend.Latitude)
	f.geocoder.AssertNotCalled(t, "Geocode")
}

func TestFriendService_CreateFriend_BlankInput(t *testing.T) {
	f := createTestFriendService(t)

	_, err := f.service.CreateFriend(context.Background(), usecase.CreateFriendInput{
		UserID:  uuid.New(),
		Name:    "   ",
		Address: "서울 용산구 한강대로 405",
	})

	assert.ErrorIs(t, err, domainerrors.ErrFriendInputRequired)
}

func TestFriendService_UpdateFriend_ChangedAddressRegeocodes(t *testing.T) {
	f := createTestFriendService(t)
	userID, friendID := uuid.New(), uuid.New()
	oldLat, oldLng := 37.5547, 126.9707
	newAddress := "서울 마포구 양화로 160"

	f.friendRepo.EXPECT().FindFriendByID(mock.Anything, userID, friendID).
		Return(&entity.Friend{
			ID:         friendID,
			UserID:     userID,
			Name:       "박지훈",
			AddressRaw: "서울 용산구 한강대로 405",
			Latitude:   &oldLat,
			Longitude:  &oldLng,
		}, nil)
	f.geocoder.EXPECT().Geocode(mock.Anything, newAddress).
		Return(&service.GeocodeResult{
			Latitude:       37.5563,
			Longitude:      126.9237,
			DisplayAddress: "서울특별시 마포구 양화로 160",
			Exact:          true,
		}, nil)
	f.friendRepo.EXPECT().UpdateFriend(mock.Anything, mock.Anything).Return(nil)

	friend, err := f.service.UpdateFriend(context.Background(), usecase.UpdateFriendInput{
		UserID:  userID,
		ID:      friendID,
		Address: &newAddress,
	})

	require.NoError(t, err)
	assert.Equal(t, newAddress, friend.AddressRaw)
	assert.Equal(t, 37.5563, *friend.Latitude)
	assert.Equal(t, 126.9237, *friend.Longitude)
}

func TestFriendService_UpdateFriend_SameAddressKeepsCoordinates(t *testing.T) {
	f := createTestFriendService(t)
	userID, friendID := uuid.New(), uuid.New()
	lat, lng := 37.5547, 126.9707
	sameAddress := "서울 용산구 한강대로 405"
	newName := "박지훈"

	f.friendRepo.EXPECT().FindFriendByID(mock.Anything, userID, friendID).
		Return(&entity.Friend{
			ID:         friendID,
			UserID:     userID,
			Name:       "지훈",
			AddressRaw: sameAddress,
			Latitude:   &lat,
			Longitude:  &lng,
		}, nil)
	f.friendRepo.EXPECT().UpdateFriend(mock.Anything, mock.Anything).Return(nil)

	friend, err := f.service.UpdateFriend(context.Background(), usecase.UpdateFriendInput{
		UserID:  userID,
		ID:      friendID,
		Name:    &newName,
		Address: &sameAddress,
	})

	require.NoError(t, err)
	assert.Equal(t, "박지훈", friend.Name)
	assert.Equal(t, lat, *friend.Latitude)
	f.geocoder.AssertNotCalled(t, "Geocode")
}

func TestFriendService_UpdateFriend_NotFound(t *testing.T) {
	f := createTestFriendService(t)
	userID, friendID := uuid.New(), uuid.New()

	f.friendRepo.EXPECT().FindFriendByID(mock.Anything, userID, friendID).
		Return(nil, repository.ErrFriendNotFound)

	_, err := f.service.UpdateFriend(context.Background(), usecase.UpdateFriendInput{
		UserID: userID,
		ID:     friendID,
	})

	assert.ErrorIs(t, err, domainerrors.ErrFriendNotFound)
}

func TestFriendService_DeleteFriend_NotFound(t *testing.T) {
	f := createTestFriendService(t)
	userID, friendID := uuid.New(), uuid.New()

	f.friendRepo.EXPECT().DeleteFriend(mock.Anything, userID, friendID).
		Return(repository.ErrFriendNotFound)

	err := f.service.DeleteFriend(context.Background(), userID, friendID)

	assert.ErrorIs(t, err, domainerrors.ErrFriendNotFound)
}
