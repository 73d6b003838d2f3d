package entities

import (
	"time"

	"github.com/google/uuid"
)

// Skill is a category of skills shown on the skills page
type Skill struct {
	ID        uuid.UUID `json:"id"`
	Category  string    `json:"category"`
	Skills    []string  `json:"skills"`
	Order     int       `json:"order"`
	IsVisible bool      `json:"isVisible"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateSkillInput represents input for creating a skill category
type CreateSkillInput struct {
	Category  string   `json:"category"`
	Skills    []string `json:"skills"`
	Order     *int     `json:"order"`
	IsVisible *bool    `json:"isVisible"`
}

// UpdateSkillInput is a partial update; nil fields keep their stored value
type UpdateSkillInput struct {
	Category  *string   `json:"category"`
	Skills    *[]string `json:"skills"`
	Order     *int      `json:"order"`
	IsVisible *bool     `json:"isVisible"`
}
