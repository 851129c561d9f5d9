package impl

import (
	"context"
	"fmt"
	"strings"

	"moim/internal/domain/entity"
	domainerrors "moim/internal/domain/errors"
	"moim/internal/domain/repository"
	"moim/internal/errors"
	"moim/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	placeRepo    repository.PlaceRepository
}

// CategoryServiceParams holds dependencies for categoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	PlaceRepo    repository.PlaceRepository
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		placeRepo:    params.PlaceRepo,
	}
}

// ListCategories returns the user's categories with place counts.
func (srv *categoryService) ListCategories(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	return srv.categoryRepo.FindCategoriesByUser(ctx, userID)
}

// CreateCategory creates a named category for the user.
func (srv *categoryService) CreateCategory(ctx context.Context, userID uuid.UUID, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrCategoryNameRequired
	}

	category := &entity.Category{
		UserID: userID,
		Name:   name,
	}
	if err := srv.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// UpdateCategory renames a category owned by the user.
func (srv *categoryService) UpdateCategory(ctx context.Context, userID, id uuid.UUID, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrCategoryNameRequired
	}

	category, err := srv.categoryRepo.FindCategoryByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to load category")
	}

	category.Name = name
	if err := srv.categoryRepo.UpdateCategory(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, err
	}

	return category, nil
}

// DeleteCategory removes an empty category. Deletion is refused while places
// still reference it so places never end up pointing at a dead category.
func (srv *categoryService) DeleteCategory(ctx context.Context, userID, id uuid.UUID) error {
	count, err := srv.placeRepo.CountPlacesByCategory(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to count places in category")
	}
	if count > 0 {
		return domainerrors.ErrCategoryInUse.WithDetails(fmt.Sprintf("%d places still use this category", count))
	}

	if err := srv.categoryRepo.DeleteCategory(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return err
	}

	return nil
}
