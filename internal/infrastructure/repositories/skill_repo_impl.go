package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"portfolio.backend/internal/domain/entities"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/internal/infrastructure/models"
)

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

func (r *SkillRepository) Create(ctx context.Context, skill *entities.Skill) error {
	m := r.toModel(skill)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	skill.CreatedAt = m.CreatedAt
	skill.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *SkillRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Skill, error) {
	var m models.Skill
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *SkillRepository) ListPublic(ctx context.Context) ([]*entities.Skill, error) {
	return r.list(ctx, true)
}

func (r *SkillRepository) ListAdmin(ctx context.Context) ([]*entities.Skill, error) {
	return r.list(ctx, false)
}

func (r *SkillRepository) list(ctx context.Context, visibleOnly bool) ([]*entities.Skill, error) {
	var ms []models.Skill
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Skill{})
	if visibleOnly {
		query = query.Where("is_visible = ?", true)
	}
	if err := query.Order("display_order ASC, created_at ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Skill, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *SkillRepository) Update(ctx context.Context, skill *entities.Skill) error {
	updates := map[string]interface{}{
		"category":      skill.Category,
		"skills":        pq.StringArray(stringsOrEmpty(skill.Skills)),
		"display_order": skill.Order,
		"is_visible":    skill.IsVisible,
		"updated_at":    time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Skill{}).
		Where("id = ?", skill.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	skill.UpdatedAt = updates["updated_at"].(time.Time)
	return nil
}

func (r *SkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, GetDB(ctx, r.db), &models.Skill{}, id)
}

func (r *SkillRepository) NextOrder(ctx context.Context) (int, error) {
	return nextDisplayOrder(ctx, GetDB(ctx, r.db), &models.Skill{})
}

func (r *SkillRepository) UpdateOrder(ctx context.Context, id uuid.UUID, order int) error {
	return updateDisplayOrder(ctx, GetDB(ctx, r.db), &models.Skill{}, id, order)
}

func (r *SkillRepository) toEntity(m *models.Skill) *entities.Skill {
	return &entities.Skill{
		ID:        m.ID,
		Category:  m.Category,
		Skills:    stringsOrEmpty([]string(m.Skills)),
		Order:     m.DisplayOrder,
		IsVisible: m.IsVisible,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *SkillRepository) toModel(e *entities.Skill) *models.Skill {
	return &models.Skill{
		ID:           e.ID,
		Category:     e.Category,
		Skills:       pq.StringArray(stringsOrEmpty(e.Skills)),
		DisplayOrder: e.Order,
		IsVisible:    e.IsVisible,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func (r *SkillRepository) OrderTaken(ctx context.Context, order int, exclude uuid.UUID) (bool, error) {
	return orderTaken(ctx, GetDB(ctx, r.db), &models.Skill{}, order, exclude)
}
