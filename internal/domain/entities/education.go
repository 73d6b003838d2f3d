package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Education is a degree or course entry
type Education struct {
	ID          uuid.UUID   `json:"id"`
	Degree      string      `json:"degree"`
	Institution string      `json:"institution"`
	Department  null.String `json:"department"`
	Year        string      `json:"year"`
	Grade       null.String `json:"grade"`
	Description null.String `json:"description"`
	Order       int         `json:"order"`
	IsVisible   bool        `json:"isVisible"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type CreateEducationInput struct {
	Degree      string  `json:"degree"`
	Institution string  `json:"institution"`
	Department  *string `json:"department"`
	Year        string  `json:"year"`
	Grade       *string `json:"grade"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
	IsVisible   *bool   `json:"isVisible"`
}

type UpdateEducationInput struct {
	Degree      *string `json:"degree"`
	Institution *string `json:"institution"`
	Department  *string `json:"department"`
	Year        *string `json:"year"`
	Grade       *string `json:"grade"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
	IsVisible   *bool   `json:"isVisible"`
}
