// Package media wraps the Cloudinary upload API. Handlers store only the
// returned absolute URL; the hosted service owns the file.
package media

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/NguyenMaiPhuong311/ISD-Final/config"
)

// Uploader is the upload surface the HTTP layer depends on.
type Uploader interface {
	Upload(ctx context.Context, file multipart.File, filename string) (string, error)
}

// CloudinaryUploader uploads files into a configured Cloudinary folder.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryUploader creates an uploader from media configuration.
func NewCloudinaryUploader(cfg *config.MediaConfig) (*CloudinaryUploader, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, errors.New("media: cloudinary credentials not configured")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("media: init cloudinary: %w", err)
	}

	return &CloudinaryUploader{cld: cld, folder: cfg.Folder}, nil
}

// Upload sends the file to Cloudinary and returns its absolute URL.
func (u *CloudinaryUploader) Upload(ctx context.Context, file multipart.File, filename string) (string, error) {
	result, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         u.folder,
		UseFilename:    api.Bool(true),
		UniqueFilename: api.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("media: upload %q: %w", filename, err)
	}
	if result.SecureURL == "" {
		return "", errors.New("media: upload returned no URL")
	}
	return result.SecureURL, nil
}
