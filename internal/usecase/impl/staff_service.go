package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultBootstrapAdminName = "Administrator"

// staffService implements the StaffUsecase interface.
type staffService struct {
	staffRepo repository.StaffRepository
	hasher    service.PasswordHasher
	bootstrap config.BootstrapConfig
	logger    *slog.Logger
}

// StaffServiceParams holds dependencies for StaffService, injected by Fx.
type StaffServiceParams struct {
	fx.In

	StaffRepo repository.StaffRepository
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewStaffService is the constructor for staffService.
func NewStaffService(params StaffServiceParams) usecase.StaffUsecase {
	var bootstrap config.BootstrapConfig
	if params.Config != nil && params.Config.Bootstrap != nil {
		bootstrap = *params.Config.Bootstrap
	}

	return &staffService{
		staffRepo: params.StaffRepo,
		hasher:    params.Hasher,
		bootstrap: bootstrap,
		logger:    params.Logger,
	}
}

func (srv *staffService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Verify returns ErrStaffNotFound when the marker names no staff member.
func (srv *staffService) Verify(ctx context.Context, staffID int64) (*entity.Staff, error) {
	staff, err := srv.staffRepo.FindByID(ctx, staffID)
	if errors.Is(err, repository.ErrStaffNotFound) {
		return nil, errors.WithStack(domainerrors.ErrStaffNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify staff")
	}

	return staff, nil
}

func (srv *staffService) List(ctx context.Context) ([]*entity.Staff, error) {
	staff, err := srv.staffRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list staff")
	}

	return staff, nil
}

func (srv *staffService) Get(ctx context.Context, staffID int64) (*entity.Staff, error) {
	staff, err := srv.staffRepo.FindByID(ctx, staffID)
	if errors.Is(err, repository.ErrStaffNotFound) {
		return nil, errors.WithStack(domainerrors.ErrStaffMemberNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get staff member")
	}

	return staff, nil
}

func (srv *staffService) Create(ctx context.Context, input usecase.CreateStaffInput) (*entity.Staff, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingFields)
	}

	if len(input.Password) > service.MaxPasswordBytes {
		return nil, errors.WithStack(domainerrors.ErrPasswordTooLong)
	}

	role, ok := entity.ParseRole(input.Role)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrInvalidRole)
	}

	taken, err := srv.staffRepo.EmailTaken(ctx, email, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check staff email")
	}
	if taken {
		return nil, errors.WithStack(domainerrors.ErrEmailAlreadyExists)
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	staff := &entity.Staff{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
	}
	if err := srv.staffRepo.Create(ctx, staff); err != nil {
		return nil, errors.Wrap(err, "failed to create staff")
	}

	srv.log(ctx).Info("Staff created", slog.Int64("staffID", staff.ID), slog.String("role", string(role)))

	return staff, nil
}

func (srv *staffService) Update(ctx context.Context, staffID int64, input usecase.UpdateStaffInput) error {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" || strings.TrimSpace(input.Role) == "" {
		return errors.WithStack(domainerrors.ErrMissingFields)
	}

	if len(input.Password) > service.MaxPasswordBytes {
		return errors.WithStack(domainerrors.ErrPasswordTooLong)
	}

	role, ok := entity.ParseRole(input.Role)
	if !ok {
		return errors.WithStack(domainerrors.ErrInvalidRole)
	}

	existing, err := srv.Get(ctx, staffID)
	if err != nil {
		return err
	}

	taken, err := srv.staffRepo.EmailTaken(ctx, email, staffID)
	if err != nil {
		return errors.Wrap(err, "failed to check staff email")
	}
	if taken {
		return errors.WithStack(domainerrors.ErrEmailAlreadyExists)
	}

	existing.Name = name
	existing.Email = email
	existing.Role = role
	// An empty hash leaves the stored password untouched.
	existing.PasswordHash = ""
	if input.Password != "" {
		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		existing.PasswordHash = hashedPassword
	}

	err = srv.staffRepo.Update(ctx, existing)
	if errors.Is(err, repository.ErrStaffNotFound) {
		return errors.WithStack(domainerrors.ErrStaffMemberNotFound)
	}
	if err != nil {
		return errors.Wrap(err, "failed to update staff")
	}

	return nil
}

func (srv *staffService) Delete(ctx context.Context, actingID, targetID int64) error {
	if actingID == targetID {
		srv.log(ctx).Warn("Staff attempted to delete own account", slog.Int64("staffID", actingID))

		return errors.WithStack(domainerrors.ErrSelfDelete)
	}

	err := srv.staffRepo.Delete(ctx, targetID)
	if errors.Is(err, repository.ErrStaffNotFound) {
		return errors.WithStack(domainerrors.ErrStaffMemberNotFound)
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete staff")
	}

	srv.log(ctx).Info("Staff deleted", slog.Int64("staffID", targetID), slog.Int64("deletedBy", actingID))

	return nil
}

func (srv *staffService) Stats(ctx context.Context) (*entity.StaffStats, error) {
	stats, err := srv.staffRepo.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get staff stats")
	}

	return stats, nil
}

func (srv *staffService) EnsureBootstrapAdmin(ctx context.Context) error {
	email := strings.TrimSpace(srv.bootstrap.AdminEmail)
	if email == "" || srv.bootstrap.AdminPassword == "" {
		return nil
	}

	stats, err := srv.staffRepo.Stats(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count staff for bootstrap")
	}
	if stats.Total > 0 {
		return nil
	}

	name := strings.TrimSpace(srv.bootstrap.AdminName)
	if name == "" {
		name = defaultBootstrapAdminName
	}

	hashedPassword, err := srv.hasher.Hash(srv.bootstrap.AdminPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash bootstrap admin password")
	}

	admin := &entity.Staff{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleAdmin,
	}
	if err := srv.staffRepo.Create(ctx, admin); err != nil {
		return errors.Wrap(err, "failed to create bootstrap admin")
	}

	srv.log(ctx).Info("Bootstrap admin created", slog.Int64("staffID", admin.ID), slog.String("email", email))

	return nil
}
