package repository

import (
	"context"

	"moim/internal/domain/entity"
	"moim/internal/errors"

	"github.com/google/uuid"
)

// ErrPlaceNotFound is returned when a place record does not exist.
var ErrPlaceNotFound = errors.New("place not found")

// PlaceRepository defines the interface for place persistence.
type PlaceRepository interface {
	// CreatePlace persists a new place for a user.
	CreatePlace(ctx context.Context, place *entity.Place) error

	// FindPlaceByID retrieves a place owned by userID, category preloaded.
	// Returns ErrPlaceNotFound when missing or owned by someone else.
	FindPlaceByID(ctx context.Context, userID, id uuid.UUID) (*entity.Place, error)

	// FindPlacesByUser retrieves all places of a user, newest first, with
	// categories preloaded. A non-nil categoryID narrows to one category.
	FindPlacesByUser(ctx context.Context, userID uuid.UUID, categoryID *uuid.UUID) ([]*entity.Place, error)

	// FindPlacesByIDs retrieves the subset of the given place IDs owned by userID,
	// preserving the order of ids.
	FindPlacesByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*entity.Place, error)

	// UpdatePlace updates an existing place record.
	UpdatePlace(ctx context.Context, place *entity.Place) error

	// DeletePlace removes a place owned by userID.
	DeletePlace(ctx context.Context, userID, id uuid.UUID) error

	// CountPlacesByCategory returns how many places reference a category.
	// Used to block deleting categories that are still in use.
	CountPlacesByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}
