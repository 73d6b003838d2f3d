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

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, message *entities.Message) error {
	m := &models.Message{
		ID:      message.ID,
		Name:    message.Name,
		Email:   message.Email,
		Message: message.Message,
		IsRead:  message.IsRead,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	message.CreatedAt = m.CreatedAt
	message.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *MessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Message, error) {
	var m models.Message
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// List returns every message, newest first
func (r *MessageRepository) List(ctx context.Context) ([]*entities.Message, error) {
	var ms []models.Message
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Message, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *MessageRepository) SetRead(ctx context.Context, id uuid.UUID, isRead bool) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Message{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_read":    isRead,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *MessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, GetDB(ctx, r.db), &models.Message{}, id)
}

func (r *MessageRepository) toEntity(m *models.Message) *entities.Message {
	return &entities.Message{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
