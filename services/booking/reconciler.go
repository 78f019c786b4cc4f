package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	hotelRepo "hotelbooking/database/repository/hotel"
	"hotelbooking/models"
	"hotelbooking/services/payment"
	"hotelbooking/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}

func (s *DefaultBookingService) currency() string {
	if s.Currency == "" {
		return "gbp"
	}
	return s.Currency
}

// MaxNights bounds a single stay.
const MaxNights = 365

// MaxAmount is the largest charge the processor accepts, in minor units.
const MaxAmount int64 = 99999999

// ToMinorUnits converts a cost in major units into the processor's integer minor units.
func ToMinorUnits(cost float64) int64 {
	return int64(math.Round(cost * 100))
}

func (s *DefaultBookingService) CreatePaymentIntent(ctx context.Context, hotelID, userID string, numberOfNights int) (*models.PaymentIntentResponse, error) {
	if numberOfNights < 1 {
		return nil, utils.NewValidationError("Invalid request", utils.FieldError{
			Field:   "numberOfNights",
			Message: "numberOfNights must be a positive whole number",
		})
	}
	if numberOfNights > MaxNights {
		return nil, utils.NewValidationError("Invalid request", utils.FieldError{
			Field:   "numberOfNights",
			Message: fmt.Sprintf("numberOfNights must be at most %d", MaxNights),
		})
	}

	hotel, err := s.Hotels.GetByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError("Hotel not found")
		}
		return nil, utils.NewInternalError("Something went wrong", err)
	}

	totalCost := float64(numberOfNights) * hotel.PricePerNight
	if totalCost*100 > float64(MaxAmount) || ToMinorUnits(totalCost) < 1 {
		return nil, utils.NewValidationError("Invalid request", utils.FieldError{
			Field:   "numberOfNights",
			Message: "total cost is outside the range the payment processor accepts",
		})
	}
	intent, err := s.Payments.CreateIntent(ctx, models.PaymentIntentParams{
		Amount:   ToMinorUnits(totalCost),
		Currency: s.currency(),
		HotelID:  hotelID,
		UserID:   userID,
	})
	if err != nil {
		return nil, utils.NewUpstreamError("Error creating payment intent", err)
	}
	if intent.ClientSecret == "" {
		return nil, utils.NewUpstreamError("Error creating payment intent", fmt.Errorf("intent %s has no client secret", intent.ID))
	}

	s.logger().Info("Payment intent created",
		zap.String("hotelId", hotelID),
		zap.String("userId", userID),
		zap.String("paymentIntentId", intent.ID),
		zap.Int64("amount", intent.Amount))

	return &models.PaymentIntentResponse{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		TotalCost:       totalCost,
	}, nil
}

func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, hotelID, userID string, req models.BookingRequest) (*models.Booking, error) {
	intentID := strings.TrimSpace(req.PaymentIntentID)
	if intentID == "" {
		return nil, utils.NewValidationError("Invalid request", utils.FieldError{
			Field:   "paymentIntentId",
			Message: "paymentIntentId is required",
		})
	}

	intent, err := s.Payments.RetrieveIntent(ctx, intentID)
	if err != nil {
		if errors.Is(err, payment.ErrIntentNotFound) {
			return nil, utils.NewValidationError("Payment Intent not found")
		}
		return nil, utils.NewUpstreamError("Error retrieving payment intent", err)
	}

	if intent.Metadata[models.MetadataHotelID] != hotelID || intent.Metadata[models.MetadataUserID] != userID {
		s.logger().Warn("Payment intent metadata mismatch",
			zap.String("paymentIntentId", intent.ID),
			zap.String("hotelId", hotelID),
			zap.String("userId", userID))
		return nil, utils.NewConflictError("payment intent mismatch")
	}

	if intent.Status != models.PaymentIntentSucceeded {
		return nil, utils.NewValidationError(fmt.Sprintf("Payment intent not succeeded. Status: %s", intent.Status))
	}

	booking := models.Booking{
		ID:              uuid.New().String(),
		UserID:          userID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		AdultCount:      req.AdultCount,
		ChildCount:      req.ChildCount,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		NumberOfNights:  req.NumberOfNights,
		TotalCost:       float64(intent.Amount) / 100,
		PaymentIntentID: intent.ID,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.Hotels.AddBooking(ctx, hotelID, booking, s.RejectDuplicates); err != nil {
		switch {
		case errors.Is(err, hotelRepo.ErrNotFound):
			s.logger().Error("Paid booking has no hotel to land in",
				zap.String("paymentIntentId", intent.ID), zap.String("hotelId", hotelID))
			return nil, utils.NewValidationError("Hotel not found")
		case errors.Is(err, hotelRepo.ErrDuplicateBooking):
			return nil, utils.NewConflictError("Booking already recorded for this payment")
		default:
			// The charge stands; nothing is refunded here.
			s.logger().Error("Failed to store paid booking",
				zap.String("paymentIntentId", intent.ID), zap.String("hotelId", hotelID), zap.Error(err))
			return nil, utils.NewInternalError("Something went wrong", err)
		}
	}

	utils.BookingsCommitted.Inc()
	s.logger().Info("Booking committed",
		zap.String("bookingId", booking.ID),
		zap.String("hotelId", hotelID),
		zap.String("paymentIntentId", intent.ID))
	return &booking, nil
}

func (s *DefaultBookingService) ListMyBookings(ctx context.Context, userID string) ([]models.Hotel, error) {
	hotels, err := s.Hotels.ListWithBookingsFor(ctx, userID)
	if err != nil {
		return nil, utils.NewInternalError("Unable to fetch bookings", err)
	}
	out := make([]models.Hotel, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, h.BookingsOf(userID))
	}
	return out, nil
}
