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

type EducationRepository struct {
	db *gorm.DB
}

func NewEducationRepository(db *gorm.DB) *EducationRepository {
	return &EducationRepository{db: db}
}

func (r *EducationRepository) Create(ctx context.Context, education *entities.Education) error {
	m := r.toModel(education)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	education.CreatedAt = m.CreatedAt
	education.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *EducationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Education, error) {
	var m models.Education
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *EducationRepository) ListPublic(ctx context.Context) ([]*entities.Education, error) {
	return r.list(ctx, true)
}

func (r *EducationRepository) ListAdmin(ctx context.Context) ([]*entities.Education, error) {
	return r.list(ctx, false)
}

func (r *EducationRepository) list(ctx context.Context, visibleOnly bool) ([]*entities.Education, error) {
	var ms []models.Education
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Education{})
	if visibleOnly {
		query = query.Where("is_visible = ?", true)
	}
	if err := query.Order("display_order ASC, created_at ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Education, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *EducationRepository) Update(ctx context.Context, education *entities.Education) error {
	now := time.Now()
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Education{}).
		Where("id = ?", education.ID).
		Updates(map[string]interface{}{
			"degree":        education.Degree,
			"institution":   education.Institution,
			"department":    education.Department.Ptr(),
			"year":          education.Year,
			"grade":         education.Grade.Ptr(),
			"description":   education.Description.Ptr(),
			"display_order": education.Order,
			"is_visible":    education.IsVisible,
			"updated_at":    now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	education.UpdatedAt = now
	return nil
}

func (r *EducationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, GetDB(ctx, r.db), &models.Education{}, id)
}

func (r *EducationRepository) NextOrder(ctx context.Context) (int, error) {
	return nextDisplayOrder(ctx, GetDB(ctx, r.db), &models.Education{})
}

func (r *EducationRepository) UpdateOrder(ctx context.Context, id uuid.UUID, order int) error {
	return updateDisplayOrder(ctx, GetDB(ctx, r.db), &models.Education{}, id, order)
}

func (r *EducationRepository) toEntity(m *models.Education) *entities.Education {
	return &entities.Education{
		ID:          m.ID,
		Degree:      m.Degree,
		Institution: m.Institution,
		Department:  null.StringFromPtr(m.Department),
		Year:        m.Year,
		Grade:       null.StringFromPtr(m.Grade),
		Description: null.StringFromPtr(m.Description),
		Order:       m.DisplayOrder,
		IsVisible:   m.IsVisible,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *EducationRepository) toModel(e *entities.Education) *models.Education {
	return &models.Education{
		ID:           e.ID,
		Degree:       e.Degree,
		Institution:  e.Institution,
		Department:   e.Department.Ptr(),
		Year:         e.Year,
		Grade:        e.Grade.Ptr(),
		Description:  e.Description.Ptr(),
		DisplayOrder: e.Order,
		IsVisible:    e.IsVisible,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func (r *EducationRepository) OrderTaken(ctx context.Context, order int, exclude uuid.UUID) (bool, error) {
	return orderTaken(ctx, GetDB(ctx, r.db), &models.Education{}, order, exclude)
}
