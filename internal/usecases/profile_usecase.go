package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/patrickmn/go-cache"
	"portfolio.backend/internal/domain/entities"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/internal/domain/repositories"
	"portfolio.backend/pkg/utils"
)

const profileCacheKey = "profile"

// ProfileUsecase reads and upserts the singleton profile
type ProfileUsecase struct {
	repo  repositories.ProfileRepository
	cache *cache.Cache
}

func NewProfileUsecase(repo repositories.ProfileRepository, ttl time.Duration) *ProfileUsecase {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ProfileUsecase{
		repo:  repo,
		cache: cache.New(ttl, 2*ttl),
	}
}

// Get returns nil without error when no profile has been saved yet
func (u *ProfileUsecase) Get(ctx context.Context) (*entities.Profile, error) {
	if cached, ok := u.cache.Get(profileCacheKey); ok {
		profile := *cached.(*entities.Profile)
		return &profile, nil
	}

	profile, err := u.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	u.cache.SetDefault(profileCacheKey, profile)
	copied := *profile
	return &copied, nil
}

// Upsert merges input onto the stored profile, creating it when absent
func (u *ProfileUsecase) Upsert(ctx context.Context, input *entities.UpsertProfileInput) (*entities.Profile, error) {
	profile, err := u.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		profile = &entities.Profile{ID: utils.GenerateUUIDv7()}
	}

	required := []struct {
		field string
		dst   *string
		value *string
	}{
		{"name", &profile.Name, input.Name},
		{"title", &profile.Title, input.Title},
		{"location", &profile.Location, input.Location},
		{"about", &profile.About, input.About},
		{"email", &profile.Email, input.Email},
	}
	for _, r := range required {
		if err := patchText(r.dst, r.field, r.value); err != nil {
			return nil, err
		}
		if *r.dst == "" {
			return nil, domainerrors.BadRequest(r.field + " is required")
		}
	}

	optional := []struct {
		dst   *string
		value *string
	}{
		{&profile.Phone, input.Phone},
		{&profile.Github, input.Github},
		{&profile.Linkedin, input.Linkedin},
		{&profile.ResumeURL, input.ResumeURL},
		{&profile.ImageURL, input.ImageURL},
		{&profile.Favicon, input.Favicon},
	}
	for _, o := range optional {
		if o.value != nil {
			*o.dst = trimmedOrEmpty(o.value)
		}
	}

	if err := u.repo.Save(ctx, profile); err != nil {
		return nil, err
	}

	saved, err := u.repo.Get(ctx)
	if err != nil {
		u.cache.Delete(profileCacheKey)
		return nil, err
	}
	u.cache.SetDefault(profileCacheKey, saved)
	copied := *saved
	return &copied, nil
}
