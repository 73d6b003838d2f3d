package usecases

import (
	"context"
	"io"

	"go.uber.org/zap"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/pkg/logger"
)

// ImageUploader stores an image and returns its public URL
type ImageUploader interface {
	Upload(ctx context.Context, file io.Reader) (string, error)
}

// UploadUsecase relays images to the media host
type UploadUsecase struct {
	uploader ImageUploader
}

func NewUploadUsecase(uploader ImageUploader) *UploadUsecase {
	return &UploadUsecase{uploader: uploader}
}

// UploadImage returns the public URL of the stored image
func (u *UploadUsecase) UploadImage(ctx context.Context, file io.Reader, filename string) (string, error) {
	url, err := u.uploader.Upload(ctx, file)
	if err != nil {
		logger.Error(ctx, "Image upload failed", zap.String("filename", filename), zap.Error(err))
		return "", domainerrors.UploadFailed("image upload failed", err)
	}
	logger.Info(ctx, "Image uploaded", zap.String("filename", filename), zap.String("url", url))
	return url, nil
}
