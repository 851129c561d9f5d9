package repository

import (
	"context"

	"moim/internal/domain/entity"
	"moim/internal/errors"

	"github.com/google/uuid"
)

// ErrFriendNotFound is returned when a friend record does not exist.
var ErrFriendNotFound = errors.New("friend not found")

// FriendRepository defines the interface for friend persistence.
// Every query is scoped to the owning user; a friend of another user is
// indistinguishable from a missing one.
type FriendRepository interface {
	// CreateFriend persists a new friend for a user.
	CreateFriend(ctx context.Context, friend *entity.Friend) error

	// FindFriendByID retrieves a friend owned by userID.
	// Returns ErrFriendNotFound when missing or owned by someone else.
	FindFriendByID(ctx context.Context, userID, id uuid.UUID) (*entity.Friend, error)

	// FindFriendsByUser retrieves all friends of a user, newest first.
	FindFriendsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Friend, error)

	// FindFriendsByIDs retrieves the subset of the given friend IDs owned by userID,
	// preserving the order of ids.
	FindFriendsByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*entity.Friend, error)

	// UpdateFriend updates an existing friend record.
	UpdateFriend(ctx context.Context, friend *entity.Friend) error

	// DeleteFriend removes a friend owned by userID.
	DeleteFriend(ctx context.Context, userID, id uuid.UUID) error

	// CountFriendsByUser returns the number of friends a user has registered.
	CountFriendsByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
