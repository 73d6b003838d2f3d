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

type CertificateRepository struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{db: db}
}

func (r *CertificateRepository) Create(ctx context.Context, certificate *entities.Certificate) error {
	m := r.toModel(certificate)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	certificate.CreatedAt = m.CreatedAt
	certificate.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *CertificateRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Certificate, error) {
	var m models.Certificate
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *CertificateRepository) ListPublic(ctx context.Context) ([]*entities.Certificate, error) {
	return r.list(ctx, true)
}

func (r *CertificateRepository) ListAdmin(ctx context.Context) ([]*entities.Certificate, error) {
	return r.list(ctx, false)
}

func (r *CertificateRepository) list(ctx context.Context, visibleOnly bool) ([]*entities.Certificate, error) {
	var ms []models.Certificate
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Certificate{})
	if visibleOnly {
		query = query.Where("is_visible = ?", true)
	}
	if err := query.Order("year DESC, created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Certificate, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *CertificateRepository) Update(ctx context.Context, certificate *entities.Certificate) error {
	now := time.Now()
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Certificate{}).
		Where("id = ?", certificate.ID).
		Updates(map[string]interface{}{
			"title":           certificate.Title,
			"provider":        certificate.Provider,
			"year":            certificate.Year,
			"certificate_url": certificate.CertificateURL.Ptr(),
			"is_visible":      certificate.IsVisible,
			"updated_at":      now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	certificate.UpdatedAt = now
	return nil
}

func (r *CertificateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, GetDB(ctx, r.db), &models.Certificate{}, id)
}

func (r *CertificateRepository) toEntity(m *models.Certificate) *entities.Certificate {
	return &entities.Certificate{
		ID:             m.ID,
		Title:          m.Title,
		Provider:       m.Provider,
		Year:           m.Year,
		CertificateURL: null.StringFromPtr(m.CertificateURL),
		IsVisible:      m.IsVisible,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func (r *CertificateRepository) toModel(e *entities.Certificate) *models.Certificate {
	return &models.Certificate{
		ID:             e.ID,
		Title:          e.Title,
		Provider:       e.Provider,
		Year:           e.Year,
		CertificateURL: e.CertificateURL.Ptr(),
		IsVisible:      e.IsVisible,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
