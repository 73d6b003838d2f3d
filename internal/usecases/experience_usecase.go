package usecases

import (
	"context"

	"github.com/google/uuid"
	"portfolio.backend/internal/domain/entities"
	"portfolio.backend/internal/domain/repositories"
	"portfolio.backend/pkg/utils"
)

type ExperienceUsecase struct {
	repo repositories.ExperienceRepository
	uow  repositories.UnitOfWork
}

func NewExperienceUsecase(repo repositories.ExperienceRepository, uow repositories.UnitOfWork) *ExperienceUsecase {
	return &ExperienceUsecase{repo: repo, uow: uow}
}

func (u *ExperienceUsecase) ListPublic(ctx context.Context) ([]*entities.Experience, error) {
	return u.repo.ListPublic(ctx)
}

func (u *ExperienceUsecase) ListAll(ctx context.Context) ([]*entities.Experience, error) {
	return u.repo.ListAdmin(ctx)
}

func (u *ExperienceUsecase) Create(ctx context.Context, input *entities.CreateExperienceInput) (*entities.Experience, error) {
	role, err := requireText("role", input.Role)
	if err != nil {
		return nil, err
	}
	company, err := requireText("company", input.Company)
	if err != nil {
		return nil, err
	}
	duration, err := requireText("duration", input.Duration)
	if err != nil {
		return nil, err
	}
	order, err := initialOrder(ctx, u.repo, input.Order)
	if err != nil {
		return nil, err
	}

	experience := &entities.Experience{
		ID:          utils.GenerateUUIDv7(),
		Role:        role,
		Company:     company,
		Duration:    duration,
		Description: optionalString(input.Description),
		Order:       order,
		IsVisible:   boolOrDefault(input.IsVisible, true),
	}
	if err := u.repo.Create(ctx, experience); err != nil {
		return nil, err
	}
	return experience, nil
}

func (u *ExperienceUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateExperienceInput) (*entities.Experience, error) {
	experience, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := patchText(&experience.Role, "role", input.Role); err != nil {
		return nil, err
	}
	if err := patchText(&experience.Company, "company", input.Company); err != nil {
		return nil, err
	}
	if err := patchText(&experience.Duration, "duration", input.Duration); err != nil {
		return nil, err
	}
	patchOptional(&experience.Description, input.Description)
	order, err := changeOrder(ctx, u.repo, experience.ID, experience.Order, input.Order)
	if err != nil {
		return nil, err
	}
	experience.Order = order
	experience.IsVisible = boolOrDefault(input.IsVisible, experience.IsVisible)

	if err := u.repo.Update(ctx, experience); err != nil {
		return nil, err
	}
	return experience, nil
}

func (u *ExperienceUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.repo.Delete(ctx, id)
}

func (u *ExperienceUsecase) Reorder(ctx context.Context, ids []string) error {
	return reorder(ctx, u.uow, u.repo, ids)
}
