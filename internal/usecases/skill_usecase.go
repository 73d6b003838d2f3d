package usecases

import (
	"context"

	"github.com/google/uuid"
	"portfolio.backend/internal/domain/entities"
	"portfolio.backend/internal/domain/repositories"
	"portfolio.backend/pkg/utils"
)

// SkillUsecase manages skill groups
type SkillUsecase struct {
	repo repositories.SkillRepository
	uow  repositories.UnitOfWork
}

func NewSkillUsecase(repo repositories.SkillRepository, uow repositories.UnitOfWork) *SkillUsecase {
	return &SkillUsecase{repo: repo, uow: uow}
}

func (u *SkillUsecase) ListPublic(ctx context.Context) ([]*entities.Skill, error) {
	return u.repo.ListPublic(ctx)
}

func (u *SkillUsecase) ListAll(ctx context.Context) ([]*entities.Skill, error) {
	return u.repo.ListAdmin(ctx)
}

func (u *SkillUsecase) Create(ctx context.Context, input *entities.CreateSkillInput) (*entities.Skill, error) {
	category, err := requireText("category", input.Category)
	if err != nil {
		return nil, err
	}
	order, err := initialOrder(ctx, u.repo, input.Order)
	if err != nil {
		return nil, err
	}

	skill := &entities.Skill{
		ID:        utils.GenerateUUIDv7(),
		Category:  category,
		Skills:    cleanList(input.Skills),
		Order:     order,
		IsVisible: boolOrDefault(input.IsVisible, true),
	}
	if err := u.repo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (u *SkillUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateSkillInput) (*entities.Skill, error) {
	skill, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := patchText(&skill.Category, "category", input.Category); err != nil {
		return nil, err
	}
	if input.Skills != nil {
		skill.Skills = cleanList(*input.Skills)
	}
	order, err := changeOrder(ctx, u.repo, skill.ID, skill.Order, input.Order)
	if err != nil {
		return nil, err
	}
	skill.Order = order
	skill.IsVisible = boolOrDefault(input.IsVisible, skill.IsVisible)

	if err := u.repo.Update(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (u *SkillUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.repo.Delete(ctx, id)
}

func (u *SkillUsecase) Reorder(ctx context.Context, ids []string) error {
	return reorder(ctx, u.uow, u.repo, ids)
}
