package hotel

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	hotelRepo "hotelbooking/database/repository/hotel"
	"hotelbooking/models"
	"hotelbooking/services/storage"
	"hotelbooking/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultHotelService) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	hotels, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Error fetching hotels", err)
	}
	return hotels, nil
}

func (s *DefaultHotelService) GetHotel(ctx context.Context, hotelID string) (*models.Hotel, error) {
	return s.lookup(s.Repo.GetByID(ctx, hotelID))
}

func (s *DefaultHotelService) ListOwnHotels(ctx context.Context, userID string) ([]models.Hotel, error) {
	hotels, err := s.Repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, utils.NewInternalError("Error fetching hotels", err)
	}
	return hotels, nil
}

func (s *DefaultHotelService) GetOwnHotel(ctx context.Context, userID, hotelID string) (*models.Hotel, error) {
	return s.lookup(s.Repo.GetByOwner(ctx, hotelID, userID))
}

func (s *DefaultHotelService) lookup(h *models.Hotel, err error) (*models.Hotel, error) {
	if err != nil {
		if errors.Is(err, hotelRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError("Hotel not found")
		}
		return nil, utils.NewInternalError("Error fetching hotel", err)
	}
	return h, nil
}

func (s *DefaultHotelService) CreateHotel(ctx context.Context, userID string, form models.HotelForm, images []*multipart.FileHeader) (*models.Hotel, error) {
	if err := validateForm(form, images); err != nil {
		return nil, err
	}

	urls, err := s.upload(ctx, images)
	if err != nil {
		return nil, err
	}

	h := fromForm(form)
	h.ID = uuid.New().String()
	h.UserID = userID
	h.ImageURLs = urls
	h.LastUpdated = time.Now().UTC()
	h.Bookings = []models.Booking{}

	if err := s.Repo.Create(ctx, &h); err != nil {
		return nil, utils.NewInternalError("Something went wrong", err)
	}
	utils.GetLogger().Info("Hotel created", zap.String("hotelId", h.ID), zap.String("userId", userID), zap.Int("images", len(urls)))
	return &h, nil
}

func (s *DefaultHotelService) UpdateHotel(ctx context.Context, userID, hotelID string, form models.HotelForm, images []*multipart.FileHeader) (*models.Hotel, error) {
	if err := validateForm(form, images); err != nil {
		return nil, err
	}
	// Fail before uploading anything for a hotel the caller does not own.
	if _, err := s.GetOwnHotel(ctx, userID, hotelID); err != nil {
		return nil, err
	}

	urls, err := s.upload(ctx, images)
	if err != nil {
		return nil, err
	}

	h := fromForm(form)
	h.ID = hotelID
	h.UserID = userID
	h.ImageURLs = append(append([]string{}, form.ImageURLs...), urls...)
	h.LastUpdated = time.Now().UTC()

	updated, err := s.Repo.Update(ctx, &h)
	if err != nil {
		return s.lookup(nil, err)
	}
	return updated, nil
}

func (s *DefaultHotelService) upload(ctx context.Context, images []*multipart.FileHeader) ([]string, error) {
	if len(images) == 0 {
		return []string{}, nil
	}
	if s.Storage == nil {
		return nil, utils.NewUpstreamError("Image upload is unavailable", errors.New("no image storage configured"))
	}
	urls, err := storage.UploadImages(ctx, s.Storage, images)
	if err != nil {
		return nil, utils.NewUpstreamError("Image upload failed", err)
	}
	return urls, nil
}

func validateForm(form models.HotelForm, images []*multipart.FileHeader) error {
	var fields []utils.FieldError
	if len(form.Facilities) == 0 {
		fields = append(fields, utils.FieldError{Field: "facilities", Message: "facilities are required"})
	}
	if len(images) > MaxImages {
		fields = append(fields, utils.FieldError{
			Field:   "imageFiles",
			Message: fmt.Sprintf("at most %d images can be uploaded", MaxImages),
		})
	}
	for _, fh := range images {
		if fh.Size > MaxImageSize {
			fields = append(fields, utils.FieldError{
				Field:   "imageFiles",
				Message: fmt.Sprintf("%s is larger than 5MB", fh.Filename),
			})
		}
	}
	if len(fields) > 0 {
		return utils.NewValidationError("Invalid request", fields...)
	}
	return nil
}

func fromForm(form models.HotelForm) models.Hotel {
	facilities := make([]string, 0, len(form.Facilities))
	for _, f := range form.Facilities {
		if f = strings.TrimSpace(f); f != "" {
			facilities = append(facilities, f)
		}
	}
	return models.Hotel{
		Name:          strings.TrimSpace(form.Name),
		City:          strings.TrimSpace(form.City),
		Country:       strings.TrimSpace(form.Country),
		Description:   strings.TrimSpace(form.Description),
		Type:          strings.TrimSpace(form.Type),
		AdultCount:    form.AdultCount,
		ChildCount:    form.ChildCount,
		Facilities:    facilities,
		PricePerNight: form.PricePerNight,
		StarRating:    form.StarRating,
	}
}
