package impl

import (
	"context"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	staffRepo    *mockRepo.MockStaffRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	staffRepo := mockRepo.NewMockStaffRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		StaffRepo:    staffRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		staffRepo:    staffRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_SignUp_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "Ada", user.Name)
			assert.Equal(t, "ada@example.com", user.Email)
			assert.Equal(t, "hashed", user.PasswordHash)
			user.ID = 7
		}).
		Return(nil)

	userID, err := fx.service.SignUp(ctx, usecase.SignUpInput{
		Name:     " Ada ",
		Email:    "ada@example.com",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}

func TestAuthService_SignUp_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.SignUp(context.Background(), usecase.SignUpInput{Name: "Ada", Email: "  "})

	assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
}

func TestAuthService_SignUp_PasswordTooLong(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.SignUp(context.Background(), usecase.SignUpInput{
		Name: "Ada", Email: "ada@example.com", Password: strings.Repeat("x", 73),
	})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooLong)
}

func TestAuthService_SignUp_PasswordAtLimit(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	password := strings.Repeat("x", 72)

	fx.hasher.EXPECT().Hash(password).Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	_, err := fx.service.SignUp(ctx, usecase.SignUpInput{Name: "Ada", Email: "ada@example.com", Password: password})

	require.NoError(t, err)
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrEmailAlreadyExists.WrapMessage("user email already exists"))

	_, err := fx.service.SignUp(ctx, usecase.SignUpInput{Name: "Ada", Email: "ada@example.com", Password: "secret"})

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestAuthService_SignUp_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().Hash("secret").Return("", errors.New("cost out of range"))

	_, err := fx.service.SignUp(context.Background(), usecase.SignUpInput{Name: "Ada", Email: "ada@example.com", Password: "secret"})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ada@example.com").
		Return(&entity.User{ID: 7, Email: "ada@example.com", PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("secret", "hashed").Return(true)
	fx.tokenService.EXPECT().
		GenerateToken(entity.Principal{ID: 7, Kind: entity.PrincipalUser}).
		Return("signed-token", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), output.UserID)
	assert.Equal(t, "signed-token", output.Token)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "secret"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().
			FindByEmail(ctx, "ada@example.com").
			Return(&entity.User{ID: 7, PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "wrong"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{Email: "ada@example.com"})

	assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
}

func TestAuthService_StaffLogin_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	staff := &entity.Staff{ID: 3, Name: "Grace", Email: "grace@example.com", PasswordHash: "hashed", Role: entity.RoleAdmin}
	fx.staffRepo.EXPECT().FindByEmail(ctx, "grace@example.com").Return(staff, nil)
	fx.hasher.EXPECT().Check("secret", "hashed").Return(true)
	fx.tokenService.EXPECT().
		GenerateToken(entity.Principal{ID: 3, Kind: entity.PrincipalStaff, Role: entity.RoleAdmin}).
		Return("staff-token", nil)

	output, err := fx.service.StaffLogin(ctx, usecase.LoginInput{Email: "grace@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Same(t, staff, output.Staff)
	assert.Equal(t, "staff-token", output.Token)
}

func TestAuthService_StaffLogin_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.staffRepo.EXPECT().FindByEmail(ctx, "x@example.com").Return(nil, repository.ErrStaffNotFound)

	_, err := fx.service.StaffLogin(ctx, usecase.LoginInput{Email: "x@example.com", Password: "secret"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_StaffLogin_TokenFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.staffRepo.EXPECT().
		FindByEmail(ctx, "grace@example.com").
		Return(&entity.Staff{ID: 3, PasswordHash: "hashed", Role: entity.RoleStaff}, nil)
	fx.hasher.EXPECT().Check("secret", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateToken(mock.Anything).Return("", errors.New("sign failed"))

	_, err := fx.service.StaffLogin(ctx, usecase.LoginInput{Email: "grace@example.com", Password: "secret"})

	assert.ErrorIs(t, err, domainerrors.ErrTokenIssueFailed)
}
