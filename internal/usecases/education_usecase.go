package usecases

import (
	"context"

	"github.com/google/uuid"
	"portfolio.backend/internal/domain/entities"
	"portfolio.backend/internal/domain/repositories"
	"portfolio.backend/pkg/utils"
)

type EducationUsecase struct {
	repo repositories.EducationRepository
	uow  repositories.UnitOfWork
}

func NewEducationUsecase(repo repositories.EducationRepository, uow repositories.UnitOfWork) *EducationUsecase {
	return &EducationUsecase{repo: repo, uow: uow}
}

func (u *EducationUsecase) ListPublic(ctx context.Context) ([]*entities.Education, error) {
	return u.repo.ListPublic(ctx)
}

func (u *EducationUsecase) ListAll(ctx context.Context) ([]*entities.Education, error) {
	return u.repo.ListAdmin(ctx)
}

func (u *EducationUsecase) Create(ctx context.Context, input *entities.CreateEducationInput) (*entities.Education, error) {
	degree, err := requireText("degree", input.Degree)
	if err != nil {
		return nil, err
	}
	institution, err := requireText("institution", input.Institution)
	if err != nil {
		return nil, err
	}
	year, err := requireText("year", input.Year)
	if err != nil {
		return nil, err
	}
	order, err := initialOrder(ctx, u.repo, input.Order)
	if err != nil {
		return nil, err
	}

	education := &entities.Education{
		ID:          utils.GenerateUUIDv7(),
		Degree:      degree,
		Institution: institution,
		Department:  optionalString(input.Department),
		Year:        year,
		Grade:       optionalString(input.Grade),
		Description: optionalString(input.Description),
		Order:       order,
		IsVisible:   boolOrDefault(input.IsVisible, true),
	}
	if err := u.repo.Create(ctx, education); err != nil {
		return nil, err
	}
	return education, nil
}

func (u *EducationUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateEducationInput) (*entities.Education, error) {
	education, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := patchText(&education.Degree, "degree", input.Degree); err != nil {
		return nil, err
	}
	if err := patchText(&education.Institution, "institution", input.Institution); err != nil {
		return nil, err
	}
	if err := patchText(&education.Year, "year", input.Year); err != nil {
		return nil, err
	}
	patchOptional(&education.Department, input.Department)
	patchOptional(&education.Grade, input.Grade)
	patchOptional(&education.Description, input.Description)
	order, err := changeOrder(ctx, u.repo, education.ID, education.Order, input.Order)
	if err != nil {
		return nil, err
	}
	education.Order = order
	education.IsVisible = boolOrDefault(input.IsVisible, education.IsVisible)

	if err := u.repo.Update(ctx, education); err != nil {
		return nil, err
	}
	return education, nil
}

func (u *EducationUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.repo.Delete(ctx, id)
}

func (u *EducationUsecase) Reorder(ctx context.Context, ids []string) error {
	return reorder(ctx, u.uow, u.repo, ids)
}
