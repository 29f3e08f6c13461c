package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"warden/contexts/identity-access/user-service/domain/entities"
	domainerrors "warden/contexts/identity-access/user-service/domain/errors"
	"warden/contexts/identity-access/user-service/ports"
)

const uniqueViolationCode = "23505"

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Migrate creates the users table when it does not exist yet.
func (r *Repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&userModel{})
}

// EnsureSuperAdmin seeds the reserved id-1 record when absent. Called once
// from bootstrap; never touches an existing record.
func (r *Repository) EnsureSuperAdmin(ctx context.Context, username, passwordHash string) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", entities.SuperAdminID).
		Count(&count).
		Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	row := userModel{
		ID:           entities.SuperAdminID,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         string(entities.RoleAdmin),
		Enabled:      true,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) Create(ctx context.Context, user entities.User) (entities.User, error) {
	row := userModel{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		Enabled:      user.Enabled,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return entities.User{}, domainerrors.ErrUsernameTaken
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) List(ctx context.Context, filter ports.ListFilter, page ports.Page) ([]entities.User, int64, error) {
	tx := r.db.WithContext(ctx).Model(&userModel{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		tx = tx.Where("username ILIKE ? OR CAST(id AS TEXT) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []userModel
	offset := (page.Number - 1) * page.Size
	if err := tx.Order("id ASC").Offset(offset).Limit(page.Size).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	items := make([]entities.User, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, total, nil
}

func (r *Repository) UpdateRole(ctx context.Context, id int64, role entities.Role) (entities.User, error) {
	return r.updateColumn(ctx, id, "role", string(role))
}

func (r *Repository) UpdateEnabled(ctx context.Context, id int64, enabled bool) (entities.User, error) {
	return r.updateColumn(ctx, id, "enabled", enabled)
}

func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&userModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}
	return nil
}

func (r *Repository) UpdatePassword(ctx context.Context, id int64, newHash string) error {
	result := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", id).
		Update("password_hash", newHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}
	return nil
}

func (r *Repository) updateColumn(ctx context.Context, id int64, column string, value any) (entities.User, error) {
	result := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", id).
		Update(column, value)
	if result.Error != nil {
		return entities.User{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return r.FindByID(ctx, id)
}

// SystemClock satisfies ports.Clock with wall time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type userModel struct {
	ID           int64          `gorm:"column:id;primaryKey;autoIncrement"`
	Username     string         `gorm:"column:username;uniqueIndex"`
	PasswordHash string         `gorm:"column:password_hash"`
	Role         string         `gorm:"column:role"`
	Enabled      bool           `gorm:"column:enabled"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (userModel) TableName() string {
	return "users"
}

func (m userModel) toEntity() entities.User {
	return entities.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         entities.Role(m.Role),
		Enabled:      m.Enabled,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
