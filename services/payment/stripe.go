package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"hotelbooking/models"
	"hotelbooking/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// StripeProcessor talks to Stripe's payment intents API.
type StripeProcessor struct {
	client *paymentintent.Client
}

// NewStripeProcessor builds a client bound to key instead of the package-global stripe.Key.
func NewStripeProcessor(key string) *StripeProcessor {
	return &StripeProcessor{
		client: &paymentintent.Client{B: stripe.GetBackend(stripe.APIBackend), Key: key},
	}
}

func (p *StripeProcessor) CreateIntent(ctx context.Context, in models.PaymentIntentParams) (*models.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(in.Amount),
		Currency: stripe.String(in.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata(models.MetadataHotelID, in.HotelID)
	params.AddMetadata(models.MetadataUserID, in.UserID)

	start := time.Now()
	pi, err := p.client.New(params)
	utils.ObserveExternal("stripe", "create_intent", err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	return toModel(pi), nil
}

func (p *StripeProcessor) RetrieveIntent(ctx context.Context, id string) (*models.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	start := time.Now()
	pi, err := p.client.Get(id, params)
	utils.ObserveExternal("stripe", "retrieve_intent", err, time.Since(start))
	if err != nil {
		if isMissing(err) {
			return nil, ErrIntentNotFound
		}
		return nil, fmt.Errorf("failed to retrieve payment intent: %w", err)
	}
	return toModel(pi), nil
}

func isMissing(err error) bool {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return false
	}
	return stripeErr.Code == stripe.ErrorCodeResourceMissing || stripeErr.HTTPStatusCode == http.StatusNotFound
}

func toModel(pi *stripe.PaymentIntent) *models.PaymentIntent {
	return &models.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Metadata:     pi.Metadata,
	}
}
