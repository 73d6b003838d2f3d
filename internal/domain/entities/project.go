package entities

import (
	"time"

	"github.com/google/uuid"
)

// Project is a portfolio project
type Project struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TechStack   []string  `json:"techStack"`
	GithubLink  string    `json:"githubLink"`
	LiveLink    string    `json:"liveLink"`
	ImageURLs   []string  `json:"imageUrls"`
	IsPublished bool      `json:"isPublished"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateProjectInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	GithubLink  string   `json:"githubLink"`
	LiveLink    string   `json:"liveLink"`
	ImageURLs   []string `json:"imageUrls"`
	IsPublished *bool    `json:"isPublished"`
	Order       *int     `json:"order"`
}

type UpdateProjectInput struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	TechStack   *[]string `json:"techStack"`
	GithubLink  *string   `json:"githubLink"`
	LiveLink    *string   `json:"liveLink"`
	ImageURLs   *[]string `json:"imageUrls"`
	IsPublished *bool     `json:"isPublished"`
	Order       *int      `json:"order"`
}
