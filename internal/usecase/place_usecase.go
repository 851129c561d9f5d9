package usecase

import (
	"context"

	"moim/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePlaceInput defines the data required to register a candidate venue.
type CreatePlaceInput struct {
	UserID     uuid.UUID
	Name       string
	Address    string
	Latitude   *float64
	Longitude  *float64
	CategoryID *uuid.UUID
}

// UpdatePlaceInput defines a partial update; nil fields are left untouched.
// ClearCategory detaches the place from its category (CategoryID alone can't
// express "set to NULL" since nil already means "don't touch").
type UpdatePlaceInput struct {
	UserID        uuid.UUID
	ID            uuid.UUID
	Name          *string
	Address       *string
	Latitude      *float64
	Longitude     *float64
	CategoryID    *uuid.UUID
	ClearCategory bool
}

// PlaceUsecase defines the interface for place management operations.
type PlaceUsecase interface {
	// ListPlaces returns the user's places, optionally narrowed to one category.
	ListPlaces(ctx context.Context, userID uuid.UUID, categoryID *uuid.UUID) ([]*entity.Place, error)
	CreatePlace(ctx context.Context, input CreatePlaceInput) (*entity.Place, error)
	UpdatePlace(ctx context.Context, input UpdatePlaceInput) (*entity.Place, error)
	DeletePlace(ctx context.Context, userID, id uuid.UUID) error
}
