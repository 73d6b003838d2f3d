package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"portfolio.backend/internal/config"
	"portfolio.backend/internal/domain/entities"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/internal/domain/repositories"
	"portfolio.backend/pkg/crypto"
	"portfolio.backend/pkg/jwt"
	"portfolio.backend/pkg/logger"
	"portfolio.backend/pkg/utils"
)

// ErrAdminNotConfigured is returned when the admin table is empty and no bootstrap password is set
var ErrAdminNotConfigured = errors.New("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set to seed the admin account")

var (
	hashPassword  = crypto.HashPassword
	checkPassword = crypto.CheckPassword
)

// AuthUsecase authenticates the single site admin
type AuthUsecase struct {
	adminRepo  repositories.AdminRepository
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(adminRepo repositories.AdminRepository, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// EnsureAdmin seeds the admin row from configuration when the table is empty
func (u *AuthUsecase) EnsureAdmin(ctx context.Context, cfg config.AdminConfig) error {
	count, err := u.adminRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	username := strings.TrimSpace(cfg.Username)
	if username == "" {
		return ErrAdminNotConfigured
	}

	hash := strings.TrimSpace(cfg.PasswordHash)
	switch {
	case hash != "":
		if !crypto.IsHash(hash) {
			return domainerrors.NewError("ADMIN_PASSWORD_HASH is not a bcrypt hash", domainerrors.ErrInvalidInput)
		}
	case cfg.Password != "":
		hash, err = hashPassword(cfg.Password)
		if err != nil {
			return err
		}
	default:
		return ErrAdminNotConfigured
	}

	admin := &entities.Admin{
		ID:           utils.GenerateUUIDv7(),
		Username:     username,
		PasswordHash: hash,
	}
	if err := u.adminRepo.Create(ctx, admin); err != nil {
		return err
	}
	logger.Info(ctx, "Admin account seeded", zap.String("username", username))
	return nil
}

// Login checks credentials and issues a session token.
// An unknown username and a wrong password fail the same way.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	admin, err := u.adminRepo.GetByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !checkPassword(input.Password, admin.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, expiresAt, err := u.jwtService.GenerateToken(admin.ID, admin.Username)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin:     admin,
	}, nil
}

// GetAdmin returns the admin a session belongs to
func (u *AuthUsecase) GetAdmin(ctx context.Context, id uuid.UUID) (*entities.Admin, error) {
	admin, err := u.adminRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}
		return nil, err
	}
	return admin, nil
}

// ChangePassword verifies the current password before storing the new hash
func (u *AuthUsecase) ChangePassword(ctx context.Context, id uuid.UUID, input *entities.ChangePasswordInput) error {
	admin, err := u.GetAdmin(ctx, id)
	if err != nil {
		return err
	}
	if !checkPassword(input.CurrentPassword, admin.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}
	if len(input.NewPassword) < 8 {
		return domainerrors.BadRequest("newPassword must be at least 8 characters")
	}

	hash, err := hashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	return u.adminRepo.UpdateCredentials(ctx, admin.ID, admin.Username, hash)
}

// SetCredentials replaces the admin username and password, creating the row when absent
func (u *AuthUsecase) SetCredentials(ctx context.Context, username, password string) (*entities.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domainerrors.BadRequest("username and password are required")
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	existing, err := u.adminRepo.GetFirst(ctx)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		admin := &entities.Admin{ID: utils.GenerateUUIDv7(), Username: username, PasswordHash: hash}
		if err := u.adminRepo.Create(ctx, admin); err != nil {
			return nil, err
		}
		return admin, nil
	}

	if err := u.adminRepo.UpdateCredentials(ctx, existing.ID, username, hash); err != nil {
		return nil, err
	}
	existing.Username = username
	existing.PasswordHash = hash
	return existing, nil
}
