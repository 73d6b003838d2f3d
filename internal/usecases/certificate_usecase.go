package usecases

import (
	"context"

	"github.com/google/uuid"
	"portfolio.backend/internal/domain/entities"
	"portfolio.backend/internal/domain/repositories"
	"portfolio.backend/pkg/utils"
)

// CertificateUsecase manages certificates. Certificates have no stored order.
type CertificateUsecase struct {
	repo repositories.CertificateRepository
}

func NewCertificateUsecase(repo repositories.CertificateRepository) *CertificateUsecase {
	return &CertificateUsecase{repo: repo}
}

func (u *CertificateUsecase) ListPublic(ctx context.Context) ([]*entities.Certificate, error) {
	return u.repo.ListPublic(ctx)
}

func (u *CertificateUsecase) ListAll(ctx context.Context) ([]*entities.Certificate, error) {
	return u.repo.ListAdmin(ctx)
}

func (u *CertificateUsecase) Create(ctx context.Context, input *entities.CreateCertificateInput) (*entities.Certificate, error) {
	title, err := requireText("title", input.Title)
	if err != nil {
		return nil, err
	}
	provider, err := requireText("provider", input.Provider)
	if err != nil {
		return nil, err
	}
	year, err := requireText("year", input.Year)
	if err != nil {
		return nil, err
	}

	certificate := &entities.Certificate{
		ID:             utils.GenerateUUIDv7(),
		Title:          title,
		Provider:       provider,
		Year:           year,
		CertificateURL: optionalString(input.CertificateURL),
		IsVisible:      boolOrDefault(input.IsVisible, true),
	}
	if err := u.repo.Create(ctx, certificate); err != nil {
		return nil, err
	}
	return certificate, nil
}

func (u *CertificateUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateCertificateInput) (*entities.Certificate, error) {
	certificate, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := patchText(&certificate.Title, "title", input.Title); err != nil {
		return nil, err
	}
	if err := patchText(&certificate.Provider, "provider", input.Provider); err != nil {
		return nil, err
	}
	if err := patchText(&certificate.Year, "year", input.Year); err != nil {
		return nil, err
	}
	patchOptional(&certificate.CertificateURL, input.CertificateURL)
	certificate.IsVisible = boolOrDefault(input.IsVisible, certificate.IsVisible)

	if err := u.repo.Update(ctx, certificate); err != nil {
		return nil, err
	}
	return certificate, nil
}

func (u *CertificateUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.repo.Delete(ctx, id)
}
