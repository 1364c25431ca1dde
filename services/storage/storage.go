package storage

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService defines the interface for media storage operations.
type StorageService interface {
	// UploadImage stores an uploaded file under the given folder and
	// returns its public URL.
	UploadImage(ctx context.Context, file multipart.File, destFolder string) (string, error)
	DeleteImage(ctx context.Context, publicID string) error
}

// CloudinaryStorageService implements StorageService using Cloudinary.
type CloudinaryStorageService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorageService creates a StorageService backed by Cloudinary.
func NewCloudinaryStorageService(cloudName, apiKey, apiSecret string) (*CloudinaryStorageService, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryStorageService{cld: cld}, nil
}

// UploadImage uploads the file and returns its delivery URL.
func (s *CloudinaryStorageService) UploadImage(ctx context.Context, file multipart.File, destFolder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: destFolder})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload returned no URL")
	}
	return result.SecureURL, nil
}

// DeleteImage removes a previously uploaded image by its public ID.
func (s *CloudinaryStorageService) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}
