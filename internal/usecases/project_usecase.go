package usecases

import (
	"context"

	"github.com/google/uuid"
	"portfolio.backend/internal/domain/entities"
	"portfolio.backend/internal/domain/repositories"
	"portfolio.backend/pkg/utils"
)

// ProjectUsecase manages portfolio projects
type ProjectUsecase struct {
	repo repositories.ProjectRepository
	uow  repositories.UnitOfWork
}

func NewProjectUsecase(repo repositories.ProjectRepository, uow repositories.UnitOfWork) *ProjectUsecase {
	return &ProjectUsecase{repo: repo, uow: uow}
}

// ListPublic returns published projects only
func (u *ProjectUsecase) ListPublic(ctx context.Context) ([]*entities.Project, error) {
	return u.repo.ListPublic(ctx)
}

func (u *ProjectUsecase) ListAll(ctx context.Context) ([]*entities.Project, error) {
	return u.repo.ListAdmin(ctx)
}

func (u *ProjectUsecase) Create(ctx context.Context, input *entities.CreateProjectInput) (*entities.Project, error) {
	title, err := requireText("title", input.Title)
	if err != nil {
		return nil, err
	}
	description, err := requireText("description", input.Description)
	if err != nil {
		return nil, err
	}
	order, err := initialOrder(ctx, u.repo, input.Order)
	if err != nil {
		return nil, err
	}

	project := &entities.Project{
		ID:          utils.GenerateUUIDv7(),
		Title:       title,
		Description: description,
		TechStack:   cleanList(input.TechStack),
		GithubLink:  trimmedOrEmpty(&input.GithubLink),
		LiveLink:    trimmedOrEmpty(&input.LiveLink),
		ImageURLs:   cleanList(input.ImageURLs),
		IsPublished: boolOrDefault(input.IsPublished, true),
		Order:       order,
	}
	if err := u.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (u *ProjectUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateProjectInput) (*entities.Project, error) {
	project, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := patchText(&project.Title, "title", input.Title); err != nil {
		return nil, err
	}
	if err := patchText(&project.Description, "description", input.Description); err != nil {
		return nil, err
	}
	if input.TechStack != nil {
		project.TechStack = cleanList(*input.TechStack)
	}
	if input.GithubLink != nil {
		project.GithubLink = trimmedOrEmpty(input.GithubLink)
	}
	if input.LiveLink != nil {
		project.LiveLink = trimmedOrEmpty(input.LiveLink)
	}
	if input.ImageURLs != nil {
		project.ImageURLs = cleanList(*input.ImageURLs)
	}
	order, err := changeOrder(ctx, u.repo, project.ID, project.Order, input.Order)
	if err != nil {
		return nil, err
	}
	project.Order = order
	project.IsPublished = boolOrDefault(input.IsPublished, project.IsPublished)

	if err := u.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (u *ProjectUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.repo.Delete(ctx, id)
}

func (u *ProjectUsecase) Reorder(ctx context.Context, ids []string) error {
	return reorder(ctx, u.uow, u.repo, ids)
}
