package storage

import (
	"context"
	"io"
)

// StorageService stores hotel images on the image host.
type StorageService interface {
	// UploadImage stores one image and returns its public HTTPS URL.
	UploadImage(ctx context.Context, file io.Reader, filename string) (string, error)
}

// StorageServiceImpl implements StorageService on Cloudinary.
type StorageServiceImpl struct {
	uploader cloudinaryUploader
	folder   string
}
