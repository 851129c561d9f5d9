package impl

import (
	"context"
	"testing"

	"moim/internal/domain/entity"
	mockRepo "moim/internal/mocks/repository"
	"moim/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type seedServiceFixtures struct {
	service    usecase.SeedUsecase
	friendRepo *mockRepo.MockFriendRepository
	placeRepo  *mockRepo.MockPlaceRepository
}

func createTestSeedService(t *testing.T) *seedServiceFixtures {
	t.Helper()

	friendRepo := mockRepo.NewMockFriendRepository(t)
	placeRepo := mockRepo.NewMockPlaceRepository(t)

	svc := NewSeedService(SeedServiceParams{
		FriendRepo: friendRepo,
		PlaceRepo:  placeRepo,
		Logger:     newDiscardLogger(),
	})

	return &seedServiceFixtures{
		service:    svc,
		friendRepo: friendRepo,
		placeRepo:  placeRepo,
	}
}

func TestSeedService_Seed_FreshAccount(t *testing.T) {
	f := createTestSeedService(t)
	userID := uuid.New()

	f.friendRepo.EXPECT().CountFriendsByUser(mock.Anything, userID).Return(0, nil)
	f.friendRepo.EXPECT().CreateFriend(mock.Anything, mock.MatchedBy(func(fr *entity.Friend) bool {
		return fr.UserID == userID && fr.HasCoordinates()
	})).Return(nil).Times(len(demoFriends))
	f.placeRepo.EXPECT().CreatePlace(mock.Anything, mock.MatchedBy(func(p *entity.Place) bool {
		return p.UserID == userID && p.HasCoordinates() && p.CategoryID == nil
	})).Return(nil).Times(len(demoPlaces))

	out, err := f.service.Seed(context.Background(), userID)

	require.NoError(t, err)
	assert.True(t, out.Seeded)
	assert.Equal(t, len(demoFriends), out.Friends)
	assert.Equal(t, len(demoPlaces), out.Places)
}

func TestSeedService_Seed_ExistingDataUntouched(t *testing.T) {
	f := createTestSeedService(t)
	userID := uuid.New()

	f.friendRepo.EXPECT().CountFriendsByUser(mock.Anything, userID).Return(4, nil)

	out, err := f.service.Seed(context.Background(), userID)

	require.NoError(t, err)
	assert.False(t, out.Seeded)
	assert.Zero(t, out.Friends)
	f.friendRepo.AssertNotCalled(t, "CreateFriend")
	f.placeRepo.AssertNotCalled(t, "CreatePlace")
}
