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

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *entities.Project) error {
	m := r.toModel(project)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	project.CreatedAt = m.CreatedAt
	project.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	var m models.Project
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ListPublic returns published projects only
func (r *ProjectRepository) ListPublic(ctx context.Context) ([]*entities.Project, error) {
	return r.list(ctx, true)
}

func (r *ProjectRepository) ListAdmin(ctx context.Context) ([]*entities.Project, error) {
	return r.list(ctx, false)
}

func (r *ProjectRepository) list(ctx context.Context, publishedOnly bool) ([]*entities.Project, error) {
	var ms []models.Project
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Project{})
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	// newest first among projects sharing an order value
	if err := query.Order("display_order ASC, created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Project, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *entities.Project) error {
	now := time.Now()
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", project.ID).
		Updates(map[string]interface{}{
			"title":         project.Title,
			"description":   project.Description,
			"tech_stack":    pq.StringArray(stringsOrEmpty(project.TechStack)),
			"github_link":   project.GithubLink,
			"live_link":     project.LiveLink,
			"image_urls":    pq.StringArray(stringsOrEmpty(project.ImageURLs)),
			"is_published":  project.IsPublished,
			"display_order": project.Order,
			"updated_at":    now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	project.UpdatedAt = now
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, GetDB(ctx, r.db), &models.Project{}, id)
}

func (r *ProjectRepository) NextOrder(ctx context.Context) (int, error) {
	return nextDisplayOrder(ctx, GetDB(ctx, r.db), &models.Project{})
}

func (r *ProjectRepository) UpdateOrder(ctx context.Context, id uuid.UUID, order int) error {
	return updateDisplayOrder(ctx, GetDB(ctx, r.db), &models.Project{}, id, order)
}

func (r *ProjectRepository) toEntity(m *models.Project) *entities.Project {
	return &entities.Project{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		TechStack:   stringsOrEmpty([]string(m.TechStack)),
		GithubLink:  m.GithubLink,
		LiveLink:    m.LiveLink,
		ImageURLs:   stringsOrEmpty([]string(m.ImageURLs)),
		IsPublished: m.IsPublished,
		Order:       m.DisplayOrder,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *ProjectRepository) toModel(e *entities.Project) *models.Project {
	return &models.Project{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		TechStack:    pq.StringArray(stringsOrEmpty(e.TechStack)),
		GithubLink:   e.GithubLink,
		LiveLink:     e.LiveLink,
		ImageURLs:    pq.StringArray(stringsOrEmpty(e.ImageURLs)),
		IsPublished:  e.IsPublished,
		DisplayOrder: e.Order,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func (r *ProjectRepository) OrderTaken(ctx context.Context, order int, exclude uuid.UUID) (bool, error) {
	return orderTaken(ctx, GetDB(ctx, r.db), &models.Project{}, order, exclude)
}
