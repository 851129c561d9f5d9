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

// friendRepository implements the repository.FriendRepository interface using GORM.
// Every query carries the owning user's ID so one user can never read or
// mutate another user's friends.
type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository is the constructor for friendRepository.
func NewFriendRepository(db *gorm.DB) repository.FriendRepository {
	return &friendRepository{db: db}
}

// CreateFriend persists a new friend for a user.
func (repo *friendRepository) CreateFriend(ctx context.Context, friend *entity.Friend) error {
	friendM := fromFriendDomain(friend)

	if err := repo.db.WithContext(ctx).Create(friendM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create friend")
	}

	friend.ID = friendM.ID
	friend.CreatedAt = friendM.CreatedAt
	friend.UpdatedAt = friendM.UpdatedAt

	return nil
}

// FindFriendByID retrieves a friend owned by userID.
func (repo *friendRepository) FindFriendByID(ctx context.Context, userID, id uuid.UUID) (*entity.Friend, error) {
	var friendM model.FriendModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&friendM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFriendNotFound
		}

		return nil, errors.Wrap(err, "failed to find friend by id")
	}

	return toFriendDomain(&friendM), nil
}

// FindFriendsByUser retrieves all friends of a user, newest first.
func (repo *friendRepository) FindFriendsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Friend, error) {
	var friendMs []model.FriendModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&friendMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list friends")
	}

	friends := make([]*entity.Friend, 0, len(friendMs))
	for i := range friendMs {
		friends = append(friends, toFriendDomain(&friendMs[i]))
	}

	return friends, nil
}

// FindFriendsByIDs retrieves the given friend IDs owned by userID, preserving
// the order of ids. IDs that do not exist (or belong to someone else) are
// silently skipped.
func (repo *friendRepository) FindFriendsByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*entity.Friend, error) {
	if len(ids) == 0 {
		return []*entity.Friend{}, nil
	}

	var friendMs []model.FriendModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&friendMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find friends by ids")
	}

	byID := make(map[uuid.UUID]*entity.Friend, len(friendMs))
	for i := range friendMs {
		byID[friendMs[i].ID] = toFriendDomain(&friendMs[i])
	}

	// Reorder to match the caller's selection order.
	friends := make([]*entity.Friend, 0, len(ids))
	for _, id := range ids {
		if friend, ok := byID[id]; ok {
			friends = append(friends, friend)
		}
	}

	return friends, nil
}

// UpdateFriend updates an existing friend record.
func (repo *friendRepository) UpdateFriend(ctx context.Context, friend *entity.Friend) error {
	friendM := fromFriendDomain(friend)

	result := repo.db.WithContext(ctx).
		Model(&model.FriendModel{}).
		Where("user_id = ? AND id = ?", friend.UserID, friend.ID).
		Select("Name", "AddressRaw", "AddressDisplay", "Latitude", "Longitude").
		Updates(friendM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update friend")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFriendNotFound
	}

	return nil
}

// DeleteFriend removes a friend owned by userID.
func (repo *friendRepository) DeleteFriend(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.FriendModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete friend")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFriendNotFound
	}

	return nil
}

// CountFriendsByUser returns the number of friends a user has registered.
func (repo *friendRepository) CountFriendsByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.FriendModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count friends")
	}

	return count, nil
}

// --- Mapper Functions ---

func toFriendDomain(data *model.FriendModel) *entity.Friend {
	if data == nil {
		return nil
	}

	return &entity.Friend{
		ID:             data.ID,
		UserID:         data.UserID,
		Name:           data.Name,
		AddressRaw:     data.AddressRaw,
		AddressDisplay: data.AddressDisplay,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromFriendDomain(data *entity.Friend) *model.FriendModel {
	if data == nil {
		return nil
	}

	return &model.FriendModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Name:           data.Name,
		AddressRaw:     data.AddressRaw,
		AddressDisplay: data.AddressDisplay,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
	}
}
