package entities

import (
	"time"

	"github.com/google/uuid"
)

// Message is a contact form submission
type Message struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateMessageInput represents a public contact form submission
type CreateMessageInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// MarkMessageReadInput toggles the read flag; IsRead defaults to true
type MarkMessageReadInput struct {
	IsRead *bool `json:"isRead"`
}
