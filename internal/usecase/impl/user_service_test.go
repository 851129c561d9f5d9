package impl

import (
	"context"
	"testing"

	"moim/internal/domain/entity"
	domainerrors "moim/internal/domain/errors"
	"moim/internal/domain/repository"
	"moim/internal/domain/service"
	mockRepo "moim/internal/mocks/repository"
	mockService "moim/internal/mocks/service"
	"moim/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestUserService(t *testing.T) *userServiceFixtures {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	svc := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return &userServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindUserByEmail(mock.Anything, "minsu@example.com").
		Return(nil, repository.ErrUserNotFound)
	f.hasher.EXPECT().Hash("secret1234").Return("$2a$10$hashed", nil)
	f.userRepo.EXPECT().CreateUser(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "minsu@example.com" && u.Name == "김민수" && u.PasswordHash == "$2a$10$hashed"
	})).Return(nil)

	out, err := f.service.Register(ctx, usecase.RegisterInput{
		Name:     "김민수",
		Email:    "minsu@example.com",
		Password: "secret1234",
	})

	require.NoError(t, err)
	assert.Equal(t, "minsu@example.com", out.User.Email)
	assert.Equal(t, "$2a$10$hashed", out.User.PasswordHash)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	f := createTestUserService(t)

	f.userRepo.EXPECT().FindUserByEmail(mock.Anything, "minsu@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "minsu@example.com"}, nil)

	_, err := f.service.Register(context.Background(), usecase.RegisterInput{
		Name:     "김민수",
		Email:    "minsu@example.com",
		Password: "secret1234",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	f := createTestUserService(t)
	userID := uuid.New()

	f.userRepo.EXPECT().FindUserByEmail(mock.Anything, "minsu@example.com").
		Return(&entity.User{ID: userID, Email: "minsu@example.com", PasswordHash: "$2a$10$hashed"}, nil)
	f.hasher.EXPECT().Check("secret1234", "$2a$10$hashed").Return(true)
	f.tokenService.EXPECT().GenerateTokens(userID).Return("access-token", "refresh-token", nil)

	out, err := f.service.Login(context.Background(), usecase.LoginInput{
		Email:    "minsu@example.com",
		Password: "secret1234",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, userID, out.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	f := createTestUserService(t)

	f.userRepo.EXPECT().FindUserByEmail(mock.Anything, "minsu@example.com").
		Return(&entity.User{ID: uuid.New(), PasswordHash: "$2a$10$hashed"}, nil)
	f.hasher.EXPECT().Check("wrong", "$2a$10$hashed").Return(false)

	_, err := f.service.Login(context.Background(), usecase.LoginInput{
		Email:    "minsu@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmailSameError(t *testing.T) {
	f := createTestUserService(t)

	f.userRepo.EXPECT().FindUserByEmail(mock.Anything, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := f.service.Login(context.Background(), usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	// Unknown email must be indistinguishable from a wrong password.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Refresh_Success(t *testing.T) {
	f := createTestUserService(t)
	userID := uuid.New()

	f.tokenService.EXPECT().ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: userID}, nil)
	f.userRepo.EXPECT().FindUserByID(mock.Anything, userID).
		Return(&entity.User{ID: userID, Email: "minsu@example.com"}, nil)
	f.tokenService.EXPECT().GenerateTokens(userID).Return("new-access", "new-refresh", nil)

	out, err := f.service.Refresh(context.Background(), usecase.RefreshInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", out.AccessToken)
	assert.Equal(t, "new-refresh", out.RefreshToken)
}

func TestUserService_Refresh_InvalidToken(t *testing.T) {
	f := createTestUserService(t)

	f.tokenService.EXPECT().ValidateRefreshToken("garbage").
		Return(nil, assert.AnError)

	_, err := f.service.Refresh(context.Background(), usecase.RefreshInput{RefreshToken: "garbage"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Refresh_DeletedUser(t *testing.T) {
	f := createTestUserService(t)
	userID := uuid.New()

	f.tokenService.EXPECT().ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: userID}, nil)
	f.userRepo.EXPECT().FindUserByID(mock.Anything, userID).
		Return(nil, repository.ErrUserNotFound)

	_, err := f.service.Refresh(context.Background(), usecase.RefreshInput{RefreshToken: "refresh-token"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}
