package postgres

import (
	"context"

	"moim/internal/domain/entity"
	domainerrors "moim/internal/domain/errors"
	"moim/internal/domain/repository"
	"moim/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// placeRepository implements the repository.PlaceRepository interface using GORM.
type placeRepository struct {
	db *gorm.DB
}

// NewPlaceRepository is the constructor for placeRepository.
func NewPlaceRepository(db *gorm.DB) repository.PlaceRepository {
	return &placeRepository{db: db}
}

// CreatePlace persists a new place for a user.
func (repo *placeRepository) CreatePlace(ctx context.Context, place *entity.Place) error {
	placeM := fromPlaceDomain(place)

	if err := repo.db.WithContext(ctx).Create(placeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("category does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create place")
	}

	place.ID = placeM.ID
	place.CreatedAt = placeM.CreatedAt
	place.UpdatedAt = placeM.UpdatedAt

	return nil
}

// FindPlaceByID retrieves a place owned by userID, category preloaded.
func (repo *placeRepository) FindPlaceByID(ctx context.Context, userID, id uuid.UUID) (*entity.Place, error) {
	var placeM model.PlaceModel
	err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND id = ?", userID, id).
		First(&placeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlaceNotFound
		}

		return nil, errors.Wrap(err, "failed to find place by id")
	}

	return toPlaceDomain(&placeM), nil
}

// FindPlacesByUser retrieves all places of a user, newest first. A non-nil
// categoryID narrows the result to one category.
func (repo *placeRepository) FindPlacesByUser(ctx context.Context, userID uuid.UUID, categoryID *uuid.UUID) ([]*entity.Place, error) {
	query := repo.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var placeMs []model.PlaceModel
	if err := query.Order("created_at DESC").Find(&placeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list places")
	}

	places := make([]*entity.Place, 0, len(placeMs))
	for i := range placeMs {
		places = append(places, toPlaceDomain(&placeMs[i]))
	}

	return places, nil
}

// FindPlacesByIDs retrieves the given place IDs owned by userID, preserving
// the order of ids. Missing or foreign IDs are silently skipped.
func (repo *placeRepository) FindPlacesByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*entity.Place, error) {
	if len(ids) == 0 {
		return []*entity.Place{}, nil
	}

	var placeMs []model.PlaceModel
	err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&placeMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find places by ids")
	}

	byID := make(map[uuid.UUID]*entity.Place, len(placeMs))
	for i := range placeMs {
		byID[placeMs[i].ID] = toPlaceDomain(&placeMs[i])
	}

	places := make([]*entity.Place, 0, len(ids))
	for _, id := range ids {
		if place, ok := byID[id]; ok {
			places = append(places, place)
		}
	}

	return places, nil
}

// UpdatePlace updates an existing place record.
func (repo *placeRepository) UpdatePlace(ctx context.Context, place *entity.Place) error {
	placeM := fromPlaceDomain(place)

	result := repo.db.WithContext(ctx).
		Model(&model.PlaceModel{}).
		Where("user_id = ? AND id = ?", place.UserID, place.ID).
		Select("Name", "AddressRaw", "AddressDisplay", "Latitude", "Longitude", "CategoryID").
		Updates(placeM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("category does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update place")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlaceNotFound
	}

	return nil
}

// DeletePlace removes a place owned by userID.
func (repo *placeRepository) DeletePlace(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.PlaceModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete place")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlaceNotFound
	}

	return nil
}

// CountPlacesByCategory returns how many places reference a category.
func (repo *placeRepository) CountPlacesByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.PlaceModel{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count places by category")
	}

	return count, nil
}

// --- Mapper Functions ---

func toPlaceDomain(data *model.PlaceModel) *entity.Place {
	if data == nil {
		return nil
	}

	return &entity.Place{
		ID:             data.ID,
		UserID:         data.UserID,
		Name:           data.Name,
		AddressRaw:     data.AddressRaw,
		AddressDisplay: data.AddressDisplay,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		CategoryID:     data.CategoryID,
		Category:       toCategoryDomain(data.Category),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromPlaceDomain(data *entity.Place) *model.PlaceModel {
	if data == nil {
		return nil
	}

	return &model.PlaceModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Name:           data.Name,
		AddressRaw:     data.AddressRaw,
		AddressDisplay: data.AddressDisplay,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		CategoryID:     data.CategoryID,
	}
}
