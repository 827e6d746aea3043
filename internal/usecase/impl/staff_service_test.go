package impl

import (
	"context"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type staffServiceFixtures struct {
	service   usecase.StaffUsecase
	staffRepo *mockRepo.MockStaffRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestStaffService(t *testing.T, bootstrap *config.BootstrapConfig) staffServiceFixtures {
	staffRepo := mockRepo.NewMockStaffRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewStaffService(StaffServiceParams{
		StaffRepo: staffRepo,
		Hasher:    hasher,
		Config:    &config.Config{Bootstrap: bootstrap},
		Logger:    newDiscardLogger(),
	})

	return staffServiceFixtures{service: service, staffRepo: staffRepo, hasher: hasher}
}

func TestStaffService_Verify(t *testing.T) {
	fx := createTestStaffService(t, nil)
	ctx := context.Background()

	fx.staffRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Staff{ID: 1, Role: entity.RoleAdmin}, nil)
	fx.staffRepo.EXPECT().FindByID(ctx, int64(2)).Return(nil, repository.ErrStaffNotFound)

	staff, err := fx.service.Verify(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, staff.Role)

	_, err = fx.service.Verify(ctx, 2)
	assert.ErrorIs(t, err, domainerrors.ErrStaffNotFound)
}

func TestStaffService_Get_NotFound(t *testing.T) {
	fx := createTestStaffService(t, nil)
	ctx := context.Background()

	fx.staffRepo.EXPECT().FindByID(ctx, int64(5)).Return(nil, repository.ErrStaffNotFound)

	_, err := fx.service.Get(ctx, 5)

	assert.ErrorIs(t, err, domainerrors.ErrStaffMemberNotFound)
}

func TestStaffService_Create(t *testing.T) {
	t.Run("default role is staff", func(t *testing.T) {
		fx := createTestStaffService(t, nil)
		ctx := context.Background()

		fx.staffRepo.EXPECT().EmailTaken(ctx, "grace@example.com", int64(0)).Return(false, nil)
		fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)
		fx.staffRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Staff")).
			Run(func(ctx context.Context, staff *entity.Staff) {
				staff.ID = 4
			}).
			Return(nil)

		staff, err := fx.service.Create(ctx, usecase.CreateStaffInput{Name: "Grace", Email: "grace@example.com", Password: "secret"})

		require.NoError(t, err)
		assert.Equal(t, int64(4), staff.ID)
		assert.Equal(t, entity.RoleStaff, staff.Role)
		assert.Equal(t, "hashed", staff.PasswordHash)
	})

	t.Run("invalid role", func(t *testing.T) {
		fx := createTestStaffService(t, nil)

		_, err := fx.service.Create(context.Background(), usecase.CreateStaffInput{
			Name: "Grace", Email: "grace@example.com", Password: "secret", Role: "owner",
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
	})

	t.Run("email taken", func(t *testing.T) {
		fx := createTestStaffService(t, nil)
		ctx := context.Background()

		fx.staffRepo.EXPECT().EmailTaken(ctx, "grace@example.com", int64(0)).Return(true, nil)

		_, err := fx.service.Create(ctx, usecase.CreateStaffInput{Name: "Grace", Email: "grace@example.com", Password: "secret"})

		assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
	})

	t.Run("password too long", func(t *testing.T) {
		fx := createTestStaffService(t, nil)

		_, err := fx.service.Create(context.Background(), usecase.CreateStaffInput{
			Name: "Grace", Email: "grace@example.com", Password: strings.Repeat("x", 73),
		})

		assert.ErrorIs(t, err, domainerrors.ErrPasswordTooLong)
	})

	t.Run("missing fields", func(t *testing.T) {
		fx := createTestStaffService(t, nil)

		_, err := fx.service.Create(context.Background(), usecase.CreateStaffInput{Name: "Grace"})

		assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
	})
}

func TestStaffService_Update(t *testing.T) {
	t.Run("keeps password when omitted", func(t *testing.T) {
		fx := createTestStaffService(t, nil)
		ctx := context.Background()

		fx.staffRepo.EXPECT().FindByID(ctx, int64(4)).
			Return(&entity.Staff{ID: 4, Name: "Grace", Email: "grace@example.com", PasswordHash: "old", Role: entity.RoleStaff}, nil)
		fx.staffRepo.EXPECT().EmailTaken(ctx, "grace@new.example.com", int64(4)).Return(false, nil)
		fx.staffRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Staff")).
			Run(func(ctx context.Context, staff *entity.Staff) {
				assert.Equal(t, "Grace H", staff.Name)
				assert.Equal(t, "grace@new.example.com", staff.Email)
				assert.Equal(t, entity.RoleAdmin, staff.Role)
				assert.Empty(t, staff.PasswordHash)
			}).
			Return(nil)

		err := fx.service.Update(ctx, 4, usecase.UpdateStaffInput{Name: "Grace H", Email: "grace@new.example.com", Role: "Admin"})

		require.NoError(t, err)
	})

	t.Run("rehashes new password", func(t *testing.T) {
		fx := createTestStaffService(t, nil)
		ctx := context.Background()

		fx.staffRepo.EXPECT().FindByID(ctx, int64(4)).Return(&entity.Staff{ID: 4}, nil)
		fx.staffRepo.EXPECT().EmailTaken(ctx, "grace@example.com", int64(4)).Return(false, nil)
		fx.hasher.EXPECT().Hash("new-secret").Return("new-hash", nil)
		fx.staffRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(staff *entity.Staff) bool { return staff.PasswordHash == "new-hash" })).
			Return(nil)

		err := fx.service.Update(ctx, 4, usecase.UpdateStaffInput{
			Name: "Grace", Email: "grace@example.com", Role: "staff", Password: "new-secret",
		})

		require.NoError(t, err)
	})

	t.Run("email used by another member", func(t *testing.T) {
		fx := createTestStaffService(t, nil)
		ctx := context.Background()

		fx.staffRepo.EXPECT().FindByID(ctx, int64(4)).Return(&entity.Staff{ID: 4}, nil)
		fx.staffRepo.EXPECT().EmailTaken(ctx, "taken@example.com", int64(4)).Return(true, nil)

		err := fx.service.Update(ctx, 4, usecase.UpdateStaffInput{Name: "Grace", Email: "taken@example.com", Role: "staff"})

		assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
	})

	t.Run("missing member", func(t *testing.T) {
		fx := createTestStaffService(t, nil)
		ctx := context.Background()

		fx.staffRepo.EXPECT().FindByID(ctx, int64(9)).Return(nil, repository.ErrStaffNotFound)

		err := fx.service.Update(ctx, 9, usecase.UpdateStaffInput{Name: "Grace", Email: "g@example.com", Role: "staff"})

		assert.ErrorIs(t, err, domainerrors.ErrStaffMemberNotFound)
	})

	t.Run("new password too long", func(t *testing.T) {
		fx := createTestStaffService(t, nil)

		err := fx.service.Update(context.Background(), 4, usecase.UpdateStaffInput{
			Name: "Grace", Email: "g@example.com", Role: "staff", Password: strings.Repeat("x", 73),
		})

		assert.ErrorIs(t, err, domainerrors.ErrPasswordTooLong)
	})

	t.Run("role is required", func(t *testing.T) {
		fx := createTestStaffService(t, nil)

		err := fx.service.Update(context.Background(), 4, usecase.UpdateStaffInput{Name: "Grace", Email: "g@example.com"})

		assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
	})
}

func TestStaffService_Delete(t *testing.T) {
	t.Run("self delete is refused", func(t *testing.T) {
		fx := createTestStaffService(t, nil)

		err := fx.service.Delete(context.Background(), 4, 4)

		require.ErrorIs(t, err, domainerrors.ErrSelfDelete)
		assert.Equal(t, "Cannot delete your own account", domainerrors.ErrSelfDelete.Message())
	})

	t.Run("deletes other member", func(t *testing.T) {
		fx := createTestStaffService(t, nil)
		ctx := context.Background()

		fx.staffRepo.EXPECT().Delete(ctx, int64(5)).Return(nil)

		require.NoError(t, fx.service.Delete(ctx, 4, 5))
	})

	t.Run("missing member", func(t *testing.T) {
		fx := createTestStaffService(t, nil)
		ctx := context.Background()

		fx.staffRepo.EXPECT().Delete(ctx, int64(5)).Return(repository.ErrStaffNotFound)

		assert.ErrorIs(t, fx.service.Delete(ctx, 4, 5), domainerrors.ErrStaffMemberNotFound)
	})
}

func TestStaffService_Stats(t *testing.T) {
	fx := createTestStaffService(t, nil)
	ctx := context.Background()

	want := &entity.StaffStats{Total: 3, Admins: 1, NonAdmin: 2, Recent: 1}
	fx.staffRepo.EXPECT().Stats(ctx).Return(want, nil)

	got, err := fx.service.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStaffService_EnsureBootstrapAdmin(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		fx := createTestStaffService(t, &config.BootstrapConfig{AdminEmail: "admin@example.com"})

		require.NoError(t, fx.service.EnsureBootstrapAdmin(context.Background()))
	})

	t.Run("staff already present", func(t *testing.T) {
		fx := createTestStaffService(t, &config.BootstrapConfig{AdminEmail: "admin@example.com", AdminPassword: "secret"})
		ctx := context.Background()

		fx.staffRepo.EXPECT().Stats(ctx).Return(&entity.StaffStats{Total: 2}, nil)

		require.NoError(t, fx.service.EnsureBootstrapAdmin(ctx))
	})

	t.Run("seeds admin into empty table", func(t *testing.T) {
		fx := createTestStaffService(t, &config.BootstrapConfig{AdminEmail: "admin@example.com", AdminPassword: "secret"})
		ctx := context.Background()

		fx.staffRepo.EXPECT().Stats(ctx).Return(&entity.StaffStats{}, nil)
		fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)
		fx.staffRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Staff")).
			Run(func(ctx context.Context, staff *entity.Staff) {
				assert.Equal(t, "Administrator", staff.Name)
				assert.Equal(t, "admin@example.com", staff.Email)
				assert.Equal(t, entity.RoleAdmin, staff.Role)
				assert.Equal(t, "hashed", staff.PasswordHash)
			}).
			Return(nil)

		require.NoError(t, fx.service.EnsureBootstrapAdmin(ctx))
	})
}
