package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserService(t *testing.T) (usecase.UserUsecase, *mockRepo.MockUserRepository) {
	userRepo := mockRepo.NewMockUserRepository(t)

	return NewUserService(UserServiceParams{UserRepo: userRepo, Logger: newDiscardLogger()}), userRepo
}

func TestUserService_GetProfile(t *testing.T) {
	service, userRepo := createTestUserService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.User{ID: 7, Name: "Ada"}, nil)
	userRepo.EXPECT().FindByID(ctx, int64(8)).Return(nil, repository.ErrUserNotFound)

	user, err := service.GetProfile(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)

	_, err = service.GetProfile(ctx, 8)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateProfile(t *testing.T) {
	t.Run("success trims input", func(t *testing.T) {
		service, userRepo := createTestUserService(t)
		ctx := context.Background()

		userRepo.EXPECT().
			UpdateProfile(ctx, &entity.User{ID: 7, Name: "Ada L", Email: "ada@example.com"}).
			Return(nil)

		err := service.UpdateProfile(ctx, 7, usecase.UpdateProfileInput{Name: " Ada L ", Email: "ada@example.com "})
		require.NoError(t, err)
	})

	t.Run("missing fields", func(t *testing.T) {
		service, _ := createTestUserService(t)

		err := service.UpdateProfile(context.Background(), 7, usecase.UpdateProfileInput{Name: "Ada"})
		assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
	})

	t.Run("missing user", func(t *testing.T) {
		service, userRepo := createTestUserService(t)
		ctx := context.Background()

		userRepo.EXPECT().UpdateProfile(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrUserNotFound)

		err := service.UpdateProfile(ctx, 9, usecase.UpdateProfileInput{Name: "Ada", Email: "ada@example.com"})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		service, userRepo := createTestUserService(t)
		ctx := context.Background()

		userRepo.EXPECT().
			UpdateProfile(ctx, mock.AnythingOfType("*entity.User")).
			Return(domainerrors.ErrEmailAlreadyExists.WrapMessage("user email already exists"))

		err := service.UpdateProfile(ctx, 7, usecase.UpdateProfileInput{Name: "Ada", Email: "taken@example.com"})
		assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
	})
}
