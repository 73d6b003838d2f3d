package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Experience is a work history entry
type Experience struct {
	ID          uuid.UUID   `json:"id"`
	Role        string      `json:"role"`
	Company     string      `json:"company"`
	Duration    string      `json:"duration"`
	Description null.String `json:"description"`
	Order       int         `json:"order"`
	IsVisible   bool        `json:"isVisible"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type CreateExperienceInput struct {
	Role        string  `json:"role"`
	Company     string  `json:"company"`
	Duration    string  `json:"duration"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
	IsVisible   *bool   `json:"isVisible"`
}

type UpdateExperienceInput struct {
	Role        *string `json:"role"`
	Company     *string `json:"company"`
	Duration    *string `json:"duration"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
	IsVisible   *bool   `json:"isVisible"`
}
