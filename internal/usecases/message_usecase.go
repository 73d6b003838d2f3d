package usecases

import (
	"context"

	"github.com/google/uuid"
	"portfolio.backend/internal/domain/entities"
	"portfolio.backend/internal/domain/repositories"
	"portfolio.backend/pkg/utils"
)

// NotificationQueue accepts saved messages for out-of-band email delivery
type NotificationQueue interface {
	Enqueue(msg *entities.Message) bool
}

// MessageUsecase handles contact form submissions
type MessageUsecase struct {
	repo  repositories.MessageRepository
	queue NotificationQueue
}

func NewMessageUsecase(repo repositories.MessageRepository, queue NotificationQueue) *MessageUsecase {
	return &MessageUsecase{repo: repo, queue: queue}
}

// Create persists the message first; the notification never affects the result
func (u *MessageUsecase) Create(ctx context.Context, input *entities.CreateMessageInput) (*entities.Message, error) {
	name, err := requireText("name", input.Name)
	if err != nil {
		return nil, err
	}
	email, err := requireText("email", input.Email)
	if err != nil {
		return nil, err
	}
	body, err := requireText("message", input.Message)
	if err != nil {
		return nil, err
	}

	msg := &entities.Message{
		ID:      utils.GenerateUUIDv7(),
		Name:    name,
		Email:   email,
		Message: body,
		IsRead:  false,
	}
	if err := u.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	if u.queue != nil {
		notification := *msg
		u.queue.Enqueue(&notification)
	}
	return msg, nil
}

func (u *MessageUsecase) List(ctx context.Context) ([]*entities.Message, error) {
	return u.repo.List(ctx)
}

// MarkRead sets the read flag, defaulting to true
func (u *MessageUsecase) MarkRead(ctx context.Context, id uuid.UUID, input *entities.MarkMessageReadInput) (*entities.Message, error) {
	isRead := true
	if input != nil {
		isRead = boolOrDefault(input.IsRead, true)
	}
	if err := u.repo.SetRead(ctx, id, isRead); err != nil {
		return nil, err
	}
	return u.repo.GetByID(ctx, id)
}

func (u *MessageUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.repo.Delete(ctx, id)
}
