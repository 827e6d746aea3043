package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// staffStatsQuery counts everything in one pass so the numbers are mutually consistent.
const staffStatsQuery = `
SELECT
	COUNT(*) AS total_staff,
	COUNT(*) FILTER (WHERE role = 'admin') AS admin_count,
	COUNT(*) FILTER (WHERE role <> 'admin') AS staff_count,
	COUNT(*) FILTER (WHERE created_at >= NOW() - INTERVAL '30 days') AS recent_staff
FROM staff`

type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository returns a StaffRepository bound to db.
func NewStaffRepository(db *gorm.DB) repository.StaffRepository {
	return &staffRepository{db: db}
}

func (repo *staffRepository) List(ctx context.Context) ([]*entity.Staff, error) {
	var rows []model.StaffModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list staff")
	}

	staff := make([]*entity.Staff, 0, len(rows))
	for i := range rows {
		staff = append(staff, toStaffDomain(&rows[i]))
	}

	return staff, nil
}

func (repo *staffRepository) FindByID(ctx context.Context, id int64) (*entity.Staff, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *staffRepository) FindByEmail(ctx context.Context, email string) (*entity.Staff, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *staffRepository) findOne(ctx context.Context, query string, arg any) (*entity.Staff, error) {
	var staffM model.StaffModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&staffM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStaffNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find staff")
	}

	return toStaffDomain(&staffM), nil
}

func (repo *staffRepository) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.StaffModel{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check staff email")
	}

	return count > 0, nil
}

func (repo *staffRepository) Create(ctx context.Context, staff *entity.Staff) error {
	staffM := fromStaffDomain(staff)

	if err := repo.db.WithContext(ctx).Create(staffM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("staff email already exists")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRole.WrapMessage("staff role rejected by storage")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create staff")
	}

	staff.ID = staffM.ID
	staff.CreatedAt = staffM.CreatedAt

	return nil
}

func (repo *staffRepository) Update(ctx context.Context, staff *entity.Staff) error {
	updates := map[string]any{
		"name":  staff.Name,
		"email": staff.Email,
		"role":  string(staff.Role),
	}
	if staff.PasswordHash != "" {
		updates["password"] = staff.PasswordHash
	}

	result := repo.db.WithContext(ctx).
		Model(&model.StaffModel{}).
		Where("id = ?", staff.ID).
		Updates(updates)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("staff email already exists")
		}
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidRole.WrapMessage("staff role rejected by storage")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update staff")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStaffNotFound
	}

	return nil
}

func (repo *staffRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.StaffModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete staff")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStaffNotFound
	}

	return nil
}

func (repo *staffRepository) Stats(ctx context.Context) (*entity.StaffStats, error) {
	var row model.StaffStatsRow
	if err := repo.db.WithContext(ctx).Raw(staffStatsQuery).Scan(&row).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate staff stats")
	}

	return &entity.StaffStats{
		Total:    row.TotalStaff,
		Admins:   row.AdminCount,
		NonAdmin: row.StaffCount,
		Recent:   row.RecentStaff,
	}, nil
}

func toStaffDomain(data *model.StaffModel) *entity.Staff {
	if data == nil {
		return nil
	}

	return &entity.Staff{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.Password,
		Role:         entity.Role(data.Role),
		CreatedAt:    data.CreatedAt,
	}
}

func fromStaffDomain(data *entity.Staff) *model.StaffModel {
	if data == nil {
		return nil
	}

	return &model.StaffModel{
		ID:       data.ID,
		Name:     data.Name,
		Email:    data.Email,
		Password: data.PasswordHash,
		Role:     string(data.Role),
	}
}
