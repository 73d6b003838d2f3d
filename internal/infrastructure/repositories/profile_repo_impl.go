package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"portfolio.backend/internal/domain/entities"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/internal/infrastructure/models"
)

// profileSlot is the fixed key of the singleton profile row
const profileSlot = 1

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Get returns ErrNotFound until the profile has been saved once
func (r *ProfileRepository) Get(ctx context.Context) (*entities.Profile, error) {
	var m models.Profile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("slot = ?", profileSlot).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Save inserts the profile or overwrites the existing row in place
func (r *ProfileRepository) Save(ctx context.Context, profile *entities.Profile) error {
	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	m := r.toModel(profile)
	return GetDB(ctx, r.db).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "slot"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "title", "location", "about", "email", "phone",
				"github", "linkedin", "resume_url", "image_url", "favicon",
				"updated_at",
			}),
		}).
		Create(m).Error
}

func (r *ProfileRepository) toEntity(m *models.Profile) *entities.Profile {
	return &entities.Profile{
		ID:        m.ID,
		Name:      m.Name,
		Title:     m.Title,
		Location:  m.Location,
		About:     m.About,
		Email:     m.Email,
		Phone:     m.Phone,
		Github:    m.Github,
		Linkedin:  m.Linkedin,
		ResumeURL: m.ResumeURL,
		ImageURL:  m.ImageURL,
		Favicon:   m.Favicon,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *ProfileRepository) toModel(e *entities.Profile) *models.Profile {
	return &models.Profile{
		ID:        e.ID,
		Slot:      profileSlot,
		Name:      e.Name,
		Title:     e.Title,
		Location:  e.Location,
		About:     e.About,
		Email:     e.Email,
		Phone:     e.Phone,
		Github:    e.Github,
		Linkedin:  e.Linkedin,
		ResumeURL: e.ResumeURL,
		ImageURL:  e.ImageURL,
		Favicon:   e.Favicon,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
