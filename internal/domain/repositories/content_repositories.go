package repositories

import (
	"context"

	"github.com/google/uuid"
	"portfolio.backend/internal/domain/entities"
)

// Orderable is implemented by repositories whose documents carry a display order.
// UpdateOrder returns ErrNotFound when no document has the given ID.
// OrderTaken ignores the document identified by exclude (uuid.Nil excludes nothing).
type Orderable interface {
	NextOrder(ctx context.Context) (int, error)
	OrderTaken(ctx context.Context, order int, exclude uuid.UUID) (bool, error)
	UpdateOrder(ctx context.Context, id uuid.UUID, order int) error
}

type SkillRepository interface {
	Orderable
	Create(ctx context.Context, skill *entities.Skill) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Skill, error)
	ListPublic(ctx context.Context) ([]*entities.Skill, error)
	ListAdmin(ctx context.Context) ([]*entities.Skill, error)
	Update(ctx context.Context, skill *entities.Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProjectRepository interface {
	Orderable
	Create(ctx context.Context, project *entities.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error)
	ListPublic(ctx context.Context) ([]*entities.Project, error)
	ListAdmin(ctx context.Context) ([]*entities.Project, error)
	Update(ctx context.Context, project *entities.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type EducationRepository interface {
	Orderable
	Create(ctx context.Context, education *entities.Education) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Education, error)
	ListPublic(ctx context.Context) ([]*entities.Education, error)
	ListAdmin(ctx context.Context) ([]*entities.Education, error)
	Update(ctx context.Context, education *entities.Education) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ExperienceRepository interface {
	Orderable
	Create(ctx context.Context, experience *entities.Experience) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Experience, error)
	ListPublic(ctx context.Context) ([]*entities.Experience, error)
	ListAdmin(ctx context.Context) ([]*entities.Experience, error)
	Update(ctx context.Context, experience *entities.Experience) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CertificateRepository interface {
	Create(ctx context.Context, certificate *entities.Certificate) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Certificate, error)
	ListPublic(ctx context.Context) ([]*entities.Certificate, error)
	ListAdmin(ctx context.Context) ([]*entities.Certificate, error)
	Update(ctx context.Context, certificate *entities.Certificate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MessageRepository interface {
	Create(ctx context.Context, message *entities.Message) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Message, error)
	List(ctx context.Context) ([]*entities.Message, error)
	SetRead(ctx context.Context, id uuid.UUID, isRead bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProfileRepository stores the singleton profile row
type ProfileRepository interface {
	Get(ctx context.Context) (*entities.Profile, error)
	Save(ctx context.Context, profile *entities.Profile) error
}

// AdminRepository stores the single admin credentials row
type AdminRepository interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, admin *entities.Admin) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Admin, error)
	GetByUsername(ctx context.Context, username string) (*entities.Admin, error)
	GetFirst(ctx context.Context) (*entities.Admin, error)
	UpdateCredentials(ctx context.Context, id uuid.UUID, username, passwordHash string) error
}
