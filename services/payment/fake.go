package payment

import (
	"context"
	"fmt"
	"sync"

	"hotelbooking/models"
)

// FakeProcessor is an in-memory PaymentProcessor for tests and local runs
// without processor credentials. Intents start in requires_payment_method.
type FakeProcessor struct {
	mu      sync.Mutex
	seq     int
	intents map[string]models.PaymentIntent

	// Err, when set, is returned from every call.
	Err error
	// OmitClientSecret simulates a processor response without a client secret.
	OmitClientSecret bool
}

func NewFakeProcessor() *FakeProcessor {
	return &FakeProcessor{intents: map[string]models.PaymentIntent{}}
}

func (f *FakeProcessor) CreateIntent(_ context.Context, in models.PaymentIntentParams) (*models.PaymentIntent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}

	f.seq++
	pi := models.PaymentIntent{
		ID:       fmt.Sprintf("pi_fake_%d", f.seq),
		Status:   "requires_payment_method",
		Amount:   in.Amount,
		Currency: in.Currency,
		Metadata: map[string]string{
			models.MetadataHotelID: in.HotelID,
			models.MetadataUserID:  in.UserID,
		},
	}
	if !f.OmitClientSecret {
		pi.ClientSecret = pi.ID + "_secret"
	}
	f.intents[pi.ID] = pi
	return &pi, nil
}

func (f *FakeProcessor) RetrieveIntent(_ context.Context, id string) (*models.PaymentIntent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}

	pi, ok := f.intents[id]
	if !ok {
		return nil, ErrIntentNotFound
	}
	return &pi, nil
}

// Put stores or replaces an intent as-is.
func (f *FakeProcessor) Put(pi models.PaymentIntent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.intents[pi.ID] = pi
}

// Settle moves an intent to the given status, as the browser-side
// confirmation would.
func (f *FakeProcessor) Settle(id, status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if pi, ok := f.intents[id]; ok {
		pi.Status = status
		f.intents[id] = pi
	}
}
