package payment

import (
	"context"
	"errors"

	"hotelbooking/models"
)

// ErrIntentNotFound is returned when the processor has no intent with the given id.
var ErrIntentNotFound = errors.New("payment intent not found")

// PaymentProcessor is the slice of the payment processor the booking flow needs.
type PaymentProcessor interface {
	CreateIntent(ctx context.Context, params models.PaymentIntentParams) (*models.PaymentIntent, error)
	RetrieveIntent(ctx context.Context, id string) (*models.PaymentIntent, error)
}
