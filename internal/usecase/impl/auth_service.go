// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	staffRepo    repository.StaffRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	StaffRepo    repository.StaffRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		staffRepo:    params.StaffRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a customer and returns the new user id.
func (srv *authService) SignUp(ctx context.Context, input usecase.SignUpInput) (int64, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return 0, errors.WithStack(domainerrors.ErrMissingFields)
	}
	if len(input.Password) > service.MaxPasswordBytes {
		return 0, errors.WithStack(domainerrors.ErrPasswordTooLong)
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during sign up", slog.String("email", email), slog.Any("error", err))

		return 0, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Warn("Sign up failed", slog.String("email", email), slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User signed up", slog.Int64("userID", user.ID))

	return user.ID, nil
}

// Login verifies customer credentials and issues a user token.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingFields)
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "unknown email"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// bcrypt is CPU-bound; no connection is held here.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.GenerateToken(entity.Principal{ID: user.ID, Kind: entity.PrincipalUser})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return &usecase.LoginOutput{UserID: user.ID, Token: token}, nil
}

// StaffLogin verifies staff credentials and issues a staff token carrying the role.
func (srv *authService) StaffLogin(ctx context.Context, input usecase.LoginInput) (*usecase.StaffLoginOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingFields)
	}

	staff, err := srv.staffRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrStaffNotFound) {
		srv.log(ctx).Warn("Staff login failed", slog.String("email", email), slog.String("reason", "unknown email"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "staff login failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load staff for login")
	}

	if !srv.hasher.Check(input.Password, staff.PasswordHash) {
		srv.log(ctx).Warn("Staff login failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "staff login failed")
	}

	token, err := srv.tokenService.GenerateToken(entity.Principal{
		ID:   staff.ID,
		Kind: entity.PrincipalStaff,
		Role: staff.Role,
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	srv.log(ctx).Info("Staff logged in", slog.Int64("staffID", staff.ID), slog.String("role", string(staff.Role)))

	return &usecase.StaffLoginOutput{Staff: staff, Token: token}, nil
}
