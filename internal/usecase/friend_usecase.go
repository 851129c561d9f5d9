package usecase

import (
	"context"

	"moim/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateFriendInput defines the data required to register a friend.
// Coordinates may be supplied directly (the client already geocoded) or left
// nil, in which case the service geocodes the address best-effort.
type CreateFriendInput struct {
	UserID    uuid.UUID
	Name      string
	Address   string
	Latitude  *float64
	Longitude *float64
}

// UpdateFriendInput defines a partial update; nil fields are left untouched.
// Changing the address without supplying coordinates triggers re-geocoding.
type UpdateFriendInput struct {
	UserID    uuid.UUID
	ID        uuid.UUID
	Name      *string
	Address   *string
	Latitude  *float64
	Longitude *float64
}

// FriendUsecase defines the interface for friend management operations.
type FriendUsecase interface {
	ListFriends(ctx context.Context, userID uuid.UUID) ([]*entity.Friend, error)
	CreateFriend(ctx context.Context, input CreateFriendInput) (*entity.Friend, error)
	UpdateFriend(ctx context.Context, input UpdateFriendInput) (*entity.Friend, error)
	DeleteFriend(ctx context.Context, userID, id uuid.UUID) error
}
