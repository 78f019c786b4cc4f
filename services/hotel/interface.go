package hotel

import (
	"context"
	"mime/multipart"

	hotelRepo "hotelbooking/database/repository/hotel"
	"hotelbooking/models"
	"hotelbooking/services/storage"
)

// Upload limits for hotel images.
const (
	MaxImages    = 6
	MaxImageSize = 5 << 20
)

// HotelService covers public browsing and owner management of hotels.
type HotelService interface {
	ListHotels(ctx context.Context) ([]models.Hotel, error)
	GetHotel(ctx context.Context, hotelID string) (*models.Hotel, error)

	// CreateHotel uploads the images and saves a hotel owned by userID.
	CreateHotel(ctx context.Context, userID string, form models.HotelForm, images []*multipart.FileHeader) (*models.Hotel, error)
	// UpdateHotel replaces the editable fields, keeping form.ImageURLs and
	// appending newly uploaded images. Only the owner may update.
	UpdateHotel(ctx context.Context, userID, hotelID string, form models.HotelForm, images []*multipart.FileHeader) (*models.Hotel, error)
	ListOwnHotels(ctx context.Context, userID string) ([]models.Hotel, error)
	GetOwnHotel(ctx context.Context, userID, hotelID string) (*models.Hotel, error)
}

// DefaultHotelService implements HotelService.
type DefaultHotelService struct {
	Repo    hotelRepo.HotelRepository
	Storage storage.StorageService
}
