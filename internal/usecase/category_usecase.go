package usecase

import (
	"context"

	"moim/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryUsecase defines the interface for place-category management.
type CategoryUsecase interface {
	// ListCategories returns the user's categories ordered by name, each with
	// the number of places currently assigned to it.
	ListCategories(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)
	CreateCategory(ctx context.Context, userID uuid.UUID, name string) (*entity.Category, error)
	UpdateCategory(ctx context.Context, userID, id uuid.UUID, name string) (*entity.Category, error)
	// DeleteCategory removes a category; rejected while places still reference it.
	DeleteCategory(ctx context.Context, userID, id uuid.UUID) error
}
