package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"portfolio.backend/internal/domain/entities"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/internal/infrastructure/models"
)

type ExperienceRepository struct {
	db *gorm.DB
}

func NewExperienceRepository(db *gorm.DB) *ExperienceRepository {
	return &ExperienceRepository{db: db}
}

func (r *ExperienceRepository) Create(ctx context.Context, experience *entities.Experience) error {
	m := r.toModel(experience)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	experience.CreatedAt = m.CreatedAt
	experience.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ExperienceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Experience, error) {
	var m models.Experience
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ExperienceRepository) ListPublic(ctx context.Context) ([]*entities.Experience, error) {
	return r.list(ctx, true)
}

func (r *ExperienceRepository) ListAdmin(ctx context.Context) ([]*entities.Experience, error) {
	return r.list(ctx, false)
}

func (r *ExperienceRepository) list(ctx context.Context, visibleOnly bool) ([]*entities.Experience, error) {
	var ms []models.Experience
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Experience{})
	if visibleOnly {
		query = query.Where("is_visible = ?", true)
	}
	if err := query.Order("display_order ASC, created_at ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Experience, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *ExperienceRepository) Update(ctx context.Context, experience *entities.Experience) error {
	now := time.Now()
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Experience{}).
		Where("id = ?", experience.ID).
		Updates(map[string]interface{}{
			"role":          experience.Role,
			"company":       experience.Company,
			"duration":      experience.Duration,
			"description":   experience.Description.Ptr(),
			"display_order": experience.Order,
			"is_visible":    experience.IsVisible,
			"updated_at":    now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	experience.UpdatedAt = now
	return nil
}

func (r *ExperienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, GetDB(ctx, r.db), &models.Experience{}, id)
}

func (r *ExperienceRepository) NextOrder(ctx context.Context) (int, error) {
	return nextDisplayOrder(ctx, GetDB(ctx, r.db), &models.Experience{})
}

func (r *ExperienceRepository) UpdateOrder(ctx context.Context, id uuid.UUID, order int) error {
	return updateDisplayOrder(ctx, GetDB(ctx, r.db), &models.Experience{}, id, order)
}

func (r *ExperienceRepository) toEntity(m *models.Experience) *entities.Experience {
	return &entities.Experience{
		ID:          m.ID,
		Role:        m.Role,
		Company:     m.Company,
		Duration:    m.Duration,
		Description: null.StringFromPtr(m.Description),
		Order:       m.DisplayOrder,
		IsVisible:   m.IsVisible,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *ExperienceRepository) toModel(e *entities.Experience) *models.Experience {
	return &models.Experience{
		ID:           e.ID,
		Role:         e.Role,
		Company:      e.Company,
		Duration:     e.Duration,
		Description:  e.Description.Ptr(),
		DisplayOrder: e.Order,
		IsVisible:    e.IsVisible,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func (r *ExperienceRepository) OrderTaken(ctx context.Context, order int, exclude uuid.UUID) (bool, error) {
	return orderTaken(ctx, GetDB(ctx, r.db), &models.Experience{}, order, exclude)
}
