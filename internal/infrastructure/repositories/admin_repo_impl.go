package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"portfolio.backend/internal/domain/entities"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/internal/infrastructure/models"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Admin{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AdminRepository) Create(ctx context.Context, admin *entities.Admin) error {
	m := &models.Admin{
		ID:           admin.ID,
		Username:     admin.Username,
		PasswordHash: admin.PasswordHash,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	admin.CreatedAt = m.CreatedAt
	admin.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Admin, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*entities.Admin, error) {
	return r.first(ctx, "username = ?", username)
}

// GetFirst returns the oldest admin row
func (r *AdminRepository) GetFirst(ctx context.Context) (*entities.Admin, error) {
	var m models.Admin
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("created_at ASC").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *AdminRepository) first(ctx context.Context, query string, arg interface{}) (*entities.Admin, error) {
	var m models.Admin
	if err := GetDB(ctx, r.db).WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *AdminRepository) UpdateCredentials(ctx context.Context, id uuid.UUID, username, passwordHash string) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Admin{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"username":      username,
			"password_hash": passwordHash,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *AdminRepository) toEntity(m *models.Admin) *entities.Admin {
	return &entities.Admin{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
