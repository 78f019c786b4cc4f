package booking

import (
	"context"

	hotelRepo "hotelbooking/database/repository/hotel"
	"hotelbooking/models"
	"hotelbooking/services/payment"

	"go.uber.org/zap"
)

// BookingService reconciles processor payments with hotel bookings.
type BookingService interface {
	// CreatePaymentIntent prices the stay server-side and opens a processor intent.
	CreatePaymentIntent(ctx context.Context, hotelID, userID string, numberOfNights int) (*models.PaymentIntentResponse, error)
	// ConfirmBooking verifies the intent and appends the booking to the hotel.
	ConfirmBooking(ctx context.Context, hotelID, userID string, req models.BookingRequest) (*models.Booking, error)
	// ListMyBookings returns the hotels the user booked, each carrying only that user's bookings.
	ListMyBookings(ctx context.Context, userID string) ([]models.Hotel, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Hotels   hotelRepo.HotelRepository
	Payments payment.PaymentProcessor
	Currency string
	// RejectDuplicates refuses a second booking for the same payment intent.
	RejectDuplicates bool
	Logger           *zap.Logger
}
