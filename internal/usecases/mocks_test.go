package usecases_test

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"portfolio.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock SkillRepository
type MockSkillRepository struct {
	mock.Mock
}

func (m *MockSkillRepository) Create(ctx context.Context, skill *entities.Skill) error {
	args := m.Called(ctx, skill)
	return args.Error(0)
}

func (m *MockSkillRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Skill), args.Error(1)
}

func (m *MockSkillRepository) ListPublic(ctx context.Context) ([]*entities.Skill, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.Skill), args.Error(1)
}

func (m *MockSkillRepository) ListAdmin(ctx context.Context) ([]*entities.Skill, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.Skill), args.Error(1)
}

func (m *MockSkillRepository) Update(ctx context.Context, skill *entities.Skill) error {
	args := m.Called(ctx, skill)
	return args.Error(0)
}

func (m *MockSkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSkillRepository) NextOrder(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockSkillRepository) OrderTaken(ctx context.Context, order int, exclude uuid.UUID) (bool, error) {
	args := m.Called(ctx, order, exclude)
	return args.Bool(0), args.Error(1)
}

func (m *MockSkillRepository) UpdateOrder(ctx context.Context, id uuid.UUID, order int) error {
	args := m.Called(ctx, id, order)
	return args.Error(0)
}

// Mock ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *entities.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *MockProjectRepository) ListPublic(ctx context.Context) ([]*entities.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.Project), args.Error(1)
}

func (m *MockProjectRepository) ListAdmin(ctx context.Context) ([]*entities.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.Project), args.Error(1)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *entities.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepository) NextOrder(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockProjectRepository) OrderTaken(ctx context.Context, order int, exclude uuid.UUID) (bool, error) {
	args := m.Called(ctx, order, exclude)
	return args.Bool(0), args.Error(1)
}

func (m *MockProjectRepository) UpdateOrder(ctx context.Context, id uuid.UUID, order int) error {
	args := m.Called(ctx, id, order)
	return args.Error(0)
}

// Mock EducationRepository
type MockEducationRepository struct {
	mock.Mock
}

func (m *MockEducationRepository) Create(ctx context.Context, education *entities.Education) error {
	args := m.Called(ctx, education)
	return args.Error(0)
}

func (m *MockEducationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Education, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Education), args.Error(1)
}

func (m *MockEducationRepository) ListPublic(ctx context.Context) ([]*entities.Education, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.Education), args.Error(1)
}

func (m *MockEducationRepository) ListAdmin(ctx context.Context) ([]*entities.Education, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.Education), args.Error(1)
}

func (m *MockEducationRepository) Update(ctx context.Context, education *entities.Education) error {
	args := m.Called(ctx, education)
	return args.Error(0)
}

func (m *MockEducationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEducationRepository) NextOrder(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockEducationRepository) OrderTaken(ctx context.Context, order int, exclude uuid.UUID) (bool, error) {
	args := m.Called(ctx, order, exclude)
	return args.Bool(0), args.Error(1)
}

func (m *MockEducationRepository) UpdateOrder(ctx context.Context, id uuid.UUID, order int) error {
	args := m.Called(ctx, id, order)
	return args.Error(0)
}

// Mock ExperienceRepository
type MockExperienceRepository struct {
	mock.Mock
}

func (m *MockExperienceRepository) Create(ctx context.Context, experience *entities.Experience) error {
	args := m.Called(ctx, experience)
	return args.Error(0)
}

func (m *MockExperienceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Experience, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Experience), args.Error(1)
}

func (m *MockExperienceRepository) ListPublic(ctx context.Context) ([]*entities.Experience, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.Experience), args.Error(1)
}

func (m *MockExperienceRepository) ListAdmin(ctx context.Context) ([]*entities.Experience, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.Experience), args.Error(1)
}

func (m *MockExperienceRepository) Update(ctx context.Context, experience *entities.Experience) error {
	args := m.Called(ctx, experience)
	return args.Error(0)
}

func (m *MockExperienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExperienceRepository) NextOrder(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockExperienceRepository) OrderTaken(ctx context.Context, order int, exclude uuid.UUID) (bool, error) {
	args := m.Called(ctx, order, exclude)
	return args.Bool(0), args.Error(1)
}

func (m *MockExperienceRepository) UpdateOrder(ctx context.Context, id uuid.UUID, order int) error {
	args := m.Called(ctx, id, order)
	return args.Error(0)
}

// Mock CertificateRepository
type MockCertificateRepository struct {
	mock.Mock
}

func (m *MockCertificateRepository) Create(ctx context.Context, certificate *entities.Certificate) error {
	args := m.Called(ctx, certificate)
	return args.Error(0)
}

func (m *MockCertificateRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Certificate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Certificate), args.Error(1)
}

func (m *MockCertificateRepository) ListPublic(ctx context.Context) ([]*entities.Certificate, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.Certificate), args.Error(1)
}

func (m *MockCertificateRepository) ListAdmin(ctx context.Context) ([]*entities.Certificate, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.Certificate), args.Error(1)
}

func (m *MockCertificateRepository) Update(ctx context.Context, certificate *entities.Certificate) error {
	args := m.Called(ctx, certificate)
	return args.Error(0)
}

func (m *MockCertificateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, message *entities.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Message), args.Error(1)
}

func (m *MockMessageRepository) List(ctx context.Context) ([]*entities.Message, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.Message), args.Error(1)
}

func (m *MockMessageRepository) SetRead(ctx context.Context, id uuid.UUID, isRead bool) error {
	args := m.Called(ctx, id, isRead)
	return args.Error(0)
}

func (m *MockMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Get(ctx context.Context) (*entities.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) Save(ctx context.Context, profile *entities.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// Mock AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *entities.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetByUsername(ctx context.Context, username string) (*entities.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetFirst(ctx context.Context) (*entities.Admin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Admin), args.Error(1)
}

func (m *MockAdminRepository) UpdateCredentials(ctx context.Context, id uuid.UUID, username, passwordHash string) error {
	args := m.Called(ctx, id, username, passwordHash)
	return args.Error(0)
}

// Mock NotificationQueue
type MockNotificationQueue struct {
	mock.Mock
}

func (m *MockNotificationQueue) Enqueue(msg *entities.Message) bool {
	args := m.Called(msg)
	return args.Bool(0)
}

// Mock ImageUploader
type MockImageUploader struct {
	mock.Mock
}

func (m *MockImageUploader) Upload(ctx context.Context, file io.Reader) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}
