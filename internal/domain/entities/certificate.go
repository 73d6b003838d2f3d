package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Certificate has no persisted display order; lists sort by year.
type Certificate struct {
	ID             uuid.UUID   `json:"id"`
	Title          string      `json:"title"`
	Provider       string      `json:"provider"`
	Year           string      `json:"year"`
	CertificateURL null.String `json:"certificateUrl"`
	IsVisible      bool        `json:"isVisible"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

type CreateCertificateInput struct {
	Title          string  `json:"title"`
	Provider       string  `json:"provider"`
	Year           string  `json:"year"`
	CertificateURL *string `json:"certificateUrl"`
	IsVisible      *bool   `json:"isVisible"`
}

type UpdateCertificateInput struct {
	Title          *string `json:"title"`
	Provider       *string `json:"provider"`
	Year           *string `json:"year"`
	CertificateURL *string `json:"certificateUrl"`
	IsVisible      *bool   `json:"isVisible"`
}
