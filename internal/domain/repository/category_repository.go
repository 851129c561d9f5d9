package repository

import (
	"context"

	"moim/internal/domain/entity"
	"moim/internal/errors"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category record does not exist.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the interface for place-category persistence.
type CategoryRepository interface {
	// CreateCategory persists a new category for a user.
	CreateCategory(ctx context.Context, category *entity.Category) error

	// FindCategoryByID retrieves a category owned by userID.
	FindCategoryByID(ctx context.Context, userID, id uuid.UUID) (*entity.Category, error)

	// FindCategoriesByUser retrieves all categories of a user ordered by name,
	// with PlacesCount populated.
	FindCategoriesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// UpdateCategory updates an existing category record.
	UpdateCategory(ctx context.Context, category *entity.Category) error

	// DeleteCategory removes a category owned by userID.
	DeleteCategory(ctx context.Context, userID, id uuid.UUID) error
}
