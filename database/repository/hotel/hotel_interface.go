package hotelRepo

import (
	"context"
	"errors"

	"hotelbooking/models"
)

var (
	// ErrNotFound is returned when no hotel matches the id (and owner, where given).
	ErrNotFound = errors.New("hotel not found")
	// ErrDuplicateBooking is returned by AddBooking when duplicates are rejected
	// and the hotel already holds a booking for the payment intent.
	ErrDuplicateBooking = errors.New("booking already recorded for payment intent")
)

// HotelRepository defines methods for hotel data access. Bookings live
// inside their hotel document.
type HotelRepository interface {
	Create(ctx context.Context, hotel *models.Hotel) error
	GetByID(ctx context.Context, id string) (*models.Hotel, error)
	// GetAll returns every hotel, most recently updated first.
	GetAll(ctx context.Context) ([]models.Hotel, error)
	// Search runs a compiled plan and returns one page plus the total match count.
	Search(ctx context.Context, plan models.SearchPlan) ([]models.Hotel, int64, error)

	ListByOwner(ctx context.Context, userID string) ([]models.Hotel, error)
	GetByOwner(ctx context.Context, id, userID string) (*models.Hotel, error)
	// Update replaces the editable fields of a hotel owned by hotel.UserID.
	Update(ctx context.Context, hotel *models.Hotel) (*models.Hotel, error)

	// AddBooking appends a booking atomically. With rejectDuplicate set the
	// append only happens if no booking carries the same payment intent id.
	AddBooking(ctx context.Context, hotelID string, booking models.Booking, rejectDuplicate bool) error
	// ListWithBookingsFor returns the hotels holding at least one booking by userID.
	ListWithBookingsFor(ctx context.Context, userID string) ([]models.Hotel, error)
}
