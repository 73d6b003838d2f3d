package usecases_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"portfolio.backend/internal/config"
	"portfolio.backend/internal/domain/entities"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/internal/usecases"
	"portfolio.backend/pkg/crypto"
	"portfolio.backend/pkg/jwt"
)

func newAuthFixture(t *testing.T) (*usecases.AuthUsecase, *MockAdminRepository, *jwt.JWTService) {
	t.Helper()
	repo := new(MockAdminRepository)
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	return usecases.NewAuthUsecase(repo, jwtService), repo, jwtService
}

func adminWithPassword(t *testing.T, username, password string) *entities.Admin {
	t.Helper()
	hash, err := crypto.HashPassword(password)
	require.NoError(t, err)
	return &entities.Admin{ID: uuid.New(), Username: username, PasswordHash: hash}
}

func TestAuthUsecase_Login_Success(t *testing.T) {
	uc, repo, jwtService := newAuthFixture(t)
	ctx := context.Background()
	admin := adminWithPassword(t, "admin", "correct-horse")

	repo.On("GetByUsername", ctx, "admin").Return(admin, nil).Once()

	resp, err := uc.Login(ctx, &entities.LoginInput{Username: " admin ", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, admin, resp.Admin)
	assert.True(t, resp.ExpiresAt.After(time.Now()))

	claims, err := jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.AdminID)
}

func TestAuthUsecase_Login_FailuresAreIndistinguishable(t *testing.T) {
	uc, repo, _ := newAuthFixture(t)
	ctx := context.Background()
	admin := adminWithPassword(t, "admin", "correct-horse")

	repo.On("GetByUsername", ctx, "admin").Return(admin, nil).Once()
	repo.On("GetByUsername", ctx, "ghost").Return(nil, domainerrors.ErrNotFound).Once()

	_, wrongPassword := uc.Login(ctx, &entities.LoginInput{Username: "admin", Password: "nope"})
	_, unknownUser := uc.Login(ctx, &entities.LoginInput{Username: "ghost", Password: "nope"})

	assert.ErrorIs(t, wrongPassword, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestAuthUsecase_Login_StoreError(t *testing.T) {
	uc, repo, _ := newAuthFixture(t)
	ctx := context.Background()

	repo.On("GetByUsername", ctx, "admin").Return(nil, errors.New("db down")).Once()

	_, err := uc.Login(ctx, &entities.LoginInput{Username: "admin", Password: "x"})
	assert.EqualError(t, err, "db down")
}

func TestAuthUsecase_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("existing admin is left alone", func(t *testing.T) {
		uc, repo, _ := newAuthFixture(t)
		repo.On("Count", ctx).Return(int64(1), nil).Once()
		require.NoError(t, uc.EnsureAdmin(ctx, config.AdminConfig{Username: "admin", Password: "secret"}))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("seeds from plain password", func(t *testing.T) {
		uc, repo, _ := newAuthFixture(t)
		repo.On("Count", ctx).Return(int64(0), nil).Once()
		repo.On("Create", ctx, mock.MatchedBy(func(a *entities.Admin) bool {
			return a.Username == "admin" && crypto.CheckPassword("secret-pass", a.PasswordHash)
		})).Return(nil).Once()
		require.NoError(t, uc.EnsureAdmin(ctx, config.AdminConfig{Username: "admin", Password: "secret-pass"}))
		repo.AssertExpectations(t)
	})

	t.Run("seeds from precomputed hash", func(t *testing.T) {
		uc, repo, _ := newAuthFixture(t)
		hash, err := crypto.HashPassword("from-hash")
		require.NoError(t, err)
		repo.On("Count", ctx).Return(int64(0), nil).Once()
		repo.On("Create", ctx, mock.MatchedBy(func(a *entities.Admin) bool {
			return a.PasswordHash == hash
		})).Return(nil).Once()
		require.NoError(t, uc.EnsureAdmin(ctx, config.AdminConfig{Username: "admin", PasswordHash: hash, Password: "ignored"}))
		repo.AssertExpectations(t)
	})

	t.Run("rejects a non-bcrypt hash", func(t *testing.T) {
		uc, repo, _ := newAuthFixture(t)
		repo.On("Count", ctx).Return(int64(0), nil).Once()
		err := uc.EnsureAdmin(ctx, config.AdminConfig{Username: "admin", PasswordHash: "plaintext"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})

	t.Run("requires a password", func(t *testing.T) {
		uc, repo, _ := newAuthFixture(t)
		repo.On("Count", ctx).Return(int64(0), nil).Once()
		err := uc.EnsureAdmin(ctx, config.AdminConfig{Username: "admin"})
		assert.ErrorIs(t, err, usecases.ErrAdminNotConfigured)
	})
}

func TestAuthUsecase_GetAdmin_MissingIsUnauthorized(t *testing.T) {
	uc, repo, _ := newAuthFixture(t)
	ctx := context.Background()
	id := uuid.New()

	repo.On("GetByID", ctx, id).Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.GetAdmin(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthUsecase_ChangePassword(t *testing.T) {
	uc, repo, _ := newAuthFixture(t)
	ctx := context.Background()
	admin := adminWithPassword(t, "admin", "old-password")

	repo.On("GetByID", ctx, admin.ID).Return(admin, nil)
	repo.On("UpdateCredentials", ctx, admin.ID, "admin", mock.MatchedBy(func(hash string) bool {
		return crypto.CheckPassword("new-password", hash)
	})).Return(nil).Once()

	err := uc.ChangePassword(ctx, admin.ID, &entities.ChangePasswordInput{CurrentPassword: "wrong", NewPassword: "new-password"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	err = uc.ChangePassword(ctx, admin.ID, &entities.ChangePasswordInput{CurrentPassword: "old-password", NewPassword: "short"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	err = uc.ChangePassword(ctx, admin.ID, &entities.ChangePasswordInput{CurrentPassword: "old-password", NewPassword: "new-password"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestAuthUsecase_SetCredentials(t *testing.T) {
	ctx := context.Background()

	t.Run("updates the existing admin", func(t *testing.T) {
		uc, repo, _ := newAuthFixture(t)
		existing := &entities.Admin{ID: uuid.New(), Username: "old"}
		repo.On("GetFirst", ctx).Return(existing, nil).Once()
		repo.On("UpdateCredentials", ctx, existing.ID, "owner", mock.AnythingOfType("string")).Return(nil).Once()

		admin, err := uc.SetCredentials(ctx, " owner ", "new-password")
		require.NoError(t, err)
		assert.Equal(t, "owner", admin.Username)
		assert.True(t, crypto.CheckPassword("new-password", admin.PasswordHash))
	})

	t.Run("creates the admin when absent", func(t *testing.T) {
		uc, repo, _ := newAuthFixture(t)
		repo.On("GetFirst", ctx).Return(nil, domainerrors.ErrNotFound).Once()
		repo.On("Create", ctx, mock.AnythingOfType("*entities.Admin")).Return(nil).Once()

		admin, err := uc.SetCredentials(ctx, "owner", "new-password")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, admin.ID)
	})

	t.Run("requires both values", func(t *testing.T) {
		uc, _, _ := newAuthFixture(t)
		_, err := uc.SetCredentials(ctx, "", "x")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})
}
