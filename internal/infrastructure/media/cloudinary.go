package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"portfolio.backend/internal/config"
	domainerrors "portfolio.backend/internal/domain/errors"
)

var errNotConfigured = errors.New("media host is not configured")

// Uploader stores an image with the media host and returns its public URL
type Uploader interface {
	Upload(ctx context.Context, file io.Reader) (string, error)
}

var uploadToCloudinary = func(ctx context.Context, cld *cloudinary.Cloudinary, file io.Reader, params uploader.UploadParams) (*uploader.UploadResult, error) {
	return cld.Upload.Upload(ctx, file, params)
}

// CloudinaryUploader relays uploads to Cloudinary
type CloudinaryUploader struct {
	cld     *cloudinary.Cloudinary
	folder  string
	timeout time.Duration
}

// NewUploader returns a Cloudinary uploader, or one that always fails when credentials are missing
func NewUploader(cfg config.MediaConfig) (Uploader, error) {
	if !cfg.Enabled() {
		return DisabledUploader{}, nil
	}
	return NewCloudinaryUploader(cfg)
}

func NewCloudinaryUploader(cfg config.MediaConfig) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}
	cld.Config.URL.Secure = true

	timeout := cfg.UploadTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &CloudinaryUploader{cld: cld, folder: cfg.Folder, timeout: timeout}, nil
}

// Upload sends file under the configured folder. Every failure wraps ErrUploadFailed.
func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	result, err := uploadToCloudinary(ctx, u.cld, file, uploader.UploadParams{Folder: u.folder})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domainerrors.ErrUploadFailed, err)
	}
	if result == nil {
		return "", fmt.Errorf("%w: empty response", domainerrors.ErrUploadFailed)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("%w: %s", domainerrors.ErrUploadFailed, result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("%w: no url returned", domainerrors.ErrUploadFailed)
	}
	return result.SecureURL, nil
}

// DisabledUploader is used when no media host credentials are configured
type DisabledUploader struct{}

func (DisabledUploader) Upload(context.Context, io.Reader) (string, error) {
	return "", fmt.Errorf("%w: %v", domainerrors.ErrUploadFailed, errNotConfigured)
}
