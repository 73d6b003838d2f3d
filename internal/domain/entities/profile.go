package entities

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the site owner's singleton profile document
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	About     string    `json:"about"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Github    string    `json:"github"`
	Linkedin  string    `json:"linkedin"`
	ResumeURL string    `json:"resumeUrl"`
	ImageURL  string    `json:"imageUrl"`
	Favicon   string    `json:"favicon"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UpsertProfileInput merges onto the stored profile, or creates it when absent
type UpsertProfileInput struct {
	Name      *string `json:"name"`
	Title     *string `json:"title"`
	Location  *string `json:"location"`
	About     *string `json:"about"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Github    *string `json:"github"`
	Linkedin  *string `json:"linkedin"`
	ResumeURL *string `json:"resumeUrl"`
	ImageURL  *string `json:"imageUrl"`
	Favicon   *string `json:"favicon"`
}
