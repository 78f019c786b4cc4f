package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"hotelbooking/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"golang.org/x/sync/errgroup"
)

type cloudinaryUploader interface {
	Upload(ctx context.Context, file interface{}, uploadParams uploader.UploadParams) (*uploader.UploadResult, error)
}

// NewStorageService creates a Cloudinary-backed StorageService.
func NewStorageService(cloudName, apiKey, apiSecret, folder string) (*StorageServiceImpl, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &StorageServiceImpl{uploader: &cld.Upload, folder: folder}, nil
}

// UploadImage uploads one image into the configured folder.
func (s *StorageServiceImpl) UploadImage(ctx context.Context, file io.Reader, filename string) (string, error) {
	start := time.Now()
	result, err := s.uploader.Upload(ctx, file, uploader.UploadParams{Folder: s.folder})
	utils.ObserveExternal("cloudinary", "upload", err, time.Since(start))
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", filename, err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("failed to upload %s: %s", filename, result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("no URL returned for %s", filename)
	}
	return result.SecureURL, nil
}

// UploadImages uploads files concurrently and returns their URLs in input
// order. The first failure cancels the remaining uploads.
func UploadImages(ctx context.Context, svc StorageService, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, fh := range files {
		i, fh := i, fh
		g.Go(func() error {
			f, err := fh.Open()
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", fh.Filename, err)
			}
			defer f.Close()

			url, err := svc.UploadImage(gctx, f, fh.Filename)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}
