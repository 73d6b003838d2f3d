package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Skill struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Category     string         `gorm:"type:varchar(120);not null"`
	Skills       pq.StringArray `gorm:"type:text[]"`
	DisplayOrder int            `gorm:"not null;index"`
	IsVisible    bool           `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Project struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Title        string         `gorm:"type:varchar(200);not null"`
	Description  string         `gorm:"type:text;not null"`
	TechStack    pq.StringArray `gorm:"type:text[]"`
	GithubLink   string         `gorm:"type:text"`
	LiveLink     string         `gorm:"type:text"`
	ImageURLs    pq.StringArray `gorm:"column:image_urls;type:text[]"`
	IsPublished  bool           `gorm:"not null"`
	DisplayOrder int            `gorm:"not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Education maps to the "education" table; the plural form reads badly.
type Education struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Degree       string    `gorm:"type:varchar(200);not null"`
	Institution  string    `gorm:"type:varchar(200);not null"`
	Department   *string   `gorm:"type:varchar(200)"`
	Year         string    `gorm:"type:varchar(40);not null"`
	Grade        *string   `gorm:"type:varchar(40)"`
	Description  *string   `gorm:"type:text"`
	DisplayOrder int       `gorm:"not null;index"`
	IsVisible    bool      `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Education) TableName() string { return "education" }

type Experience struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role         string    `gorm:"type:varchar(200);not null"`
	Company      string    `gorm:"type:varchar(200);not null"`
	Duration     string    `gorm:"type:varchar(120);not null"`
	Description  *string   `gorm:"type:text"`
	DisplayOrder int       `gorm:"not null;index"`
	IsVisible    bool      `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Experience) TableName() string { return "experience" }

type Certificate struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title          string    `gorm:"type:varchar(200);not null"`
	Provider       string    `gorm:"type:varchar(200);not null"`
	Year           string    `gorm:"type:varchar(40);not null;index"`
	CertificateURL *string   `gorm:"column:certificate_url;type:text"`
	IsVisible      bool      `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Message struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Email     string    `gorm:"type:varchar(320);not null"`
	Message   string    `gorm:"type:text;not null"`
	IsRead    bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// Profile has a unique Slot so at most one row can exist.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slot      int       `gorm:"not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Location  string    `gorm:"type:varchar(200);not null"`
	About     string    `gorm:"type:text;not null"`
	Email     string    `gorm:"type:varchar(320);not null"`
	Phone     string    `gorm:"type:varchar(40)"`
	Github    string    `gorm:"type:text"`
	Linkedin  string    `gorm:"type:text"`
	ResumeURL string    `gorm:"column:resume_url;type:text"`
	ImageURL  string    `gorm:"column:image_url;type:text"`
	Favicon   string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Admin struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(120);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:text;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// All lists every model migrated at startup
func All() []interface{} {
	return []interface{}{
		&Admin{},
		&Profile{},
		&Skill{},
		&Project{},
		&Education{},
		&Experience{},
		&Certificate{},
		&Message{},
	}
}
